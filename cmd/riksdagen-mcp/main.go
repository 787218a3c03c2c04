// Package main provides the CLI entry point for the riksdagen-mcp server that
// connects to the Swedish Parliament's open data API.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mhagsved/riksdagen-mcp/internal/server"
)

const (
	version = "1.0.0"
	appName = "riksdagen-mcp"
)

// validateAndSetMode validates that only one mode is specified and sets default mode if none is specified
func validateAndSetMode(sseMode, httpMode, stdioMode *bool) {
	modeCount := 0
	if *sseMode {
		modeCount++
	}
	if *httpMode {
		modeCount++
	}
	if *stdioMode {
		modeCount++
	}

	if modeCount > 1 {
		fmt.Fprintf(os.Stderr, "Error: Cannot specify multiple modes (-sse, -http, and -stdio are mutually exclusive)\n")
		os.Exit(1)
	}

	// Default to stdio mode if no mode specified
	if modeCount == 0 {
		*stdioMode = true
	}
}

func main() {
	var (
		showHelp    = flag.Bool("help", false, "Show help message")
		showVersion = flag.Bool("version", false, "Show version information")
		sseMode     = flag.Bool("sse", false, "Start SSE stream server mode (real-time with heartbeat)")
		httpMode    = flag.Bool("http", false, "Start HTTP server mode (stateless, easier for hosting)")
		serverAddr  = flag.String("addr", ":8080", "Server address (used with -sse or -http)")
		stdioMode   = flag.Bool("stdio", false, "Use stdio mode (default)")
		debugMode   = flag.Bool("debug", false, "Enable debug logging")
	)

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS]\n\n", appName)
		fmt.Fprintf(os.Stderr, "%s - Swedish Parliament Archive MCP Server\n\n", appName)
		fmt.Fprintf(os.Stderr, "This server provides search access to the Swedish Parliament (Riksdagen)\n")
		fmt.Fprintf(os.Stderr, "document archive through the Model Context Protocol (MCP) interface.\n\n")
		fmt.Fprintf(os.Stderr, "OPTIONS:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nMODES:\n")
		fmt.Fprintf(os.Stderr, "  Default mode is stdio for use with MCP clients\n")
		fmt.Fprintf(os.Stderr, "  SSE mode provides real-time streaming with heartbeat (best for development/testing)\n")
		fmt.Fprintf(os.Stderr, "  HTTP mode is stateless and easier for production hosting with load balancers\n\n")
		fmt.Fprintf(os.Stderr, "EXAMPLES:\n")
		fmt.Fprintf(os.Stderr, "  %s                    # Start in stdio mode (default)\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -stdio             # Explicit stdio mode\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -sse               # Start SSE server on :8080\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -http              # Start HTTP server on :8080\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -sse -addr :9000   # Start SSE server on :9000\n", appName)
		fmt.Fprintf(os.Stderr, "  %s -debug             # Enable debug logging\n", appName)
		fmt.Fprintf(os.Stderr, "\nLOGGING:\n")
		fmt.Fprintf(os.Stderr, "  Logs are written to stderr in stdio, SSE, and HTTP modes\n")
		fmt.Fprintf(os.Stderr, "  Use -debug for detailed request/response logging\n\n")
	}

	flag.Parse()

	if *showHelp {
		flag.Usage()
		os.Exit(0)
	}

	if *showVersion {
		fmt.Printf("%s version %s\n", appName, version)
		os.Exit(0)
	}

	// Validate and set mode
	validateAndSetMode(sseMode, httpMode, stdioMode)

	// Create server with configuration
	config := server.Config{
		DebugMode: *debugMode,
	}

	riksServer := server.NewRiksdagenServerWithConfig(config)
	// The shared HTTP client is released once, whether the run ends cleanly
	// or with an error.
	defer riksServer.Close()

	var err error
	if *sseMode {
		fmt.Fprintf(os.Stderr, "Starting %s SSE server on %s (debug=%v)\n", appName, *serverAddr, *debugMode)
		fmt.Fprintf(os.Stderr, "SSE mode provides real-time connection with heartbeat. Logs will be visible in this terminal. Use Ctrl+C to stop.\n")
		err = riksServer.RunSSE(*serverAddr)
	} else if *httpMode {
		fmt.Fprintf(os.Stderr, "Starting %s HTTP server on %s (debug=%v)\n", appName, *serverAddr, *debugMode)
		fmt.Fprintf(os.Stderr, "HTTP mode is stateless and easier for hosting. Logs will be visible in this terminal. Use Ctrl+C to stop.\n")
		err = riksServer.RunHTTP(*serverAddr)
	} else {
		// stdio mode - don't print startup messages to stderr as it interferes with MCP protocol
		err = riksServer.RunStdio()
	}

	if err != nil {
		// os.Exit skips deferred calls, so release explicitly here.
		riksServer.Close()
		fmt.Fprintf(os.Stderr, "Server error: %v\n", err)
		os.Exit(1)
	}
}
