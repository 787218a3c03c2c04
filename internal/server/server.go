// Package server implements the MCP server that exposes the Swedish
// Parliament (Riksdagen) document archive as agent-callable tools.
package server

import (
	"encoding/json"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/mark3labs/mcp-go/server"

	"github.com/mhagsved/riksdagen-mcp/pkg/riksdagen"
)

// Config holds server configuration options
type Config struct {
	DebugMode bool
}

// RiksdagenServer provides access to the Riksdagen open data API through the
// MCP protocol. It owns the single shared HTTP client used by all tool
// invocations for its whole lifetime.
type RiksdagenServer struct {
	server  *server.MCPServer
	archive *riksdagen.Client
	logger  *slog.Logger
	config  Config
}

// NewRiksdagenServer creates a new instance of RiksdagenServer with default configuration.
func NewRiksdagenServer() *RiksdagenServer {
	return NewRiksdagenServerWithConfig(Config{DebugMode: false})
}

// NewRiksdagenServerWithConfig creates a new instance of RiksdagenServer with custom configuration.
func NewRiksdagenServerWithConfig(config Config) *RiksdagenServer {
	// One shared HTTP client, reused across concurrent tool calls.
	client := &http.Client{
		Timeout: riksdagen.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        10,
			MaxIdleConnsPerHost: 5,
			IdleConnTimeout:     90 * time.Second,
		},
	}

	logLevel := slog.LevelInfo
	if config.DebugMode {
		logLevel = slog.LevelDebug
	}

	// Structured logging goes to stderr so stdio mode keeps stdout clean for
	// the MCP protocol.
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level:     logLevel,
		AddSource: true,
	}))
	logger.Info("riksdagen-mcp server starting up",
		slog.Bool("debugMode", config.DebugMode),
		slog.String("logLevel", logLevel.String()),
		slog.String("archive", riksdagen.DefaultBaseURL))

	s := &RiksdagenServer{
		archive: riksdagen.NewClient(client, "", logger),
		logger:  logger,
		config:  config,
	}

	mcpServer := server.NewMCPServer(
		"riksdagen-mcp",
		"1.0.0",
		server.WithLogging(),
	)

	s.server = mcpServer
	s.registerTools()

	return s
}

// Close releases the shared HTTP client. It must be called exactly once when
// the server's active lifetime ends, regardless of how many requests were
// served or whether any of them failed.
func (s *RiksdagenServer) Close() {
	s.logger.Debug("Releasing shared HTTP client")
	s.archive.Close()
}

// RunStdio starts the server in stdio mode for MCP client communication.
func (s *RiksdagenServer) RunStdio() error {
	s.logger.Debug("Starting server in stdio mode")
	return server.ServeStdio(s.server)
}

// RunSSE starts the server in SSE mode with real-time streaming capabilities.
func (s *RiksdagenServer) RunSSE(addr string) error {
	s.logger.Info("Starting server in SSE mode", slog.String("address", addr))

	sseServer := server.NewSSEServer(s.server,
		server.WithSSEEndpoint("/mcp"),
		server.WithMessageEndpoint("/mcp/message"),
		server.WithKeepAlive(true),
		server.WithKeepAliveInterval(10*time.Second))

	mux := http.NewServeMux()
	s.registerHealthEndpoints(mux)

	mux.Handle("/mcp", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Info("MCP request received",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("userAgent", r.Header.Get("User-Agent")),
			slog.String("accept", r.Header.Get("Accept")))

		sseServer.ServeHTTP(w, r)
	}))
	mux.Handle("/mcp/message", sseServer.MessageHandler())

	listener, err := s.listen(addr)
	if err != nil {
		return err
	}

	httpServer := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 30 * time.Second,
	}

	return httpServer.Serve(listener)
}

// RunHTTP starts the server in stateless HTTP mode for production deployment.
func (s *RiksdagenServer) RunHTTP(addr string) error {
	s.logger.Info("Starting server in HTTP mode", slog.String("address", addr))

	streamableServer := server.NewStreamableHTTPServer(s.server,
		server.WithEndpointPath("/mcp"),
		server.WithStateLess(true),
		server.WithHeartbeatInterval(30*time.Second))

	mux := http.NewServeMux()
	s.registerHealthEndpoints(mux)

	mux.Handle("/mcp", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.logger.Info("MCP HTTP request received",
			slog.String("method", r.Method),
			slog.String("path", r.URL.Path),
			slog.String("userAgent", r.Header.Get("User-Agent")),
			slog.String("contentType", r.Header.Get("Content-Type")))

		streamableServer.ServeHTTP(w, r)
	}))

	listener, err := s.listen(addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           mux,
		ReadHeaderTimeout: 30 * time.Second,
	}

	return srv.Serve(listener)
}

func (s *RiksdagenServer) listen(addr string) (net.Listener, error) {
	listener, err := net.Listen("tcp", addr)
	if err != nil {
		if strings.Contains(err.Error(), "address already in use") {
			s.logger.Error("Port already in use",
				slog.String("address", addr),
				slog.String("suggestion", "Try a different port with -addr :8081 or kill existing processes"))
		}
		return nil, fmt.Errorf("failed to create listener on %s: %w", addr, err)
	}

	actualAddr := listener.Addr().String()
	_, port, _ := net.SplitHostPort(actualAddr)
	s.logger.Info("Server will be available with endpoints",
		slog.String("actualAddress", actualAddr),
		slog.String("health", "http://localhost:"+port+"/health"),
		slog.String("mcp", "http://localhost:"+port+"/mcp"))

	return listener, nil
}

func (s *RiksdagenServer) registerHealthEndpoints(mux *http.ServeMux) {
	mux.HandleFunc("/health", func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("Health check request received", slog.String("method", r.Method), slog.String("path", r.URL.Path))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		if _, err := w.Write([]byte(`{"status":"healthy","service":"riksdagen-mcp","version":"1.0.0"}`)); err != nil {
			s.logger.Warn("Failed to write health check response", slog.Any("error", err))
		}
	})

	mux.HandleFunc("/", func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("Root endpoint request", slog.String("method", r.Method), slog.String("path", r.URL.Path))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		rootResponse := map[string]interface{}{
			"service": "riksdagen-mcp",
			"version": "1.0.0",
			"status":  "healthy",
			"mcp":     "/mcp",
		}
		if err := json.NewEncoder(w).Encode(rootResponse); err != nil {
			s.logger.Warn("Failed to encode root response", slog.Any("error", err))
		}
	})

	mux.HandleFunc("/mcp/health", func(w http.ResponseWriter, r *http.Request) {
		s.logger.Debug("MCP health check request received", slog.String("method", r.Method), slog.String("path", r.URL.Path))
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		healthResponse := map[string]interface{}{
			"jsonrpc": "2.0",
			"result": map[string]interface{}{
				"protocolVersion": "2024-11-05",
				"capabilities": map[string]interface{}{
					"logging": map[string]interface{}{},
					"tools": map[string]interface{}{
						"listChanged": true,
					},
				},
				"serverInfo": map[string]interface{}{
					"name":    "riksdagen-mcp",
					"version": "1.0.0",
				},
			},
		}
		if err := json.NewEncoder(w).Encode(healthResponse); err != nil {
			s.logger.Warn("Failed to encode health response", slog.Any("error", err))
		}
	})
}

func (s *RiksdagenServer) registerTools() {
	s.registerRiksdagenTools()
}
