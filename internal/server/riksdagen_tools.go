package server

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"

	"github.com/mhagsved/riksdagen-mcp/pkg/riksdagen"
)

const defaultSearchLimit = 10

func (s *RiksdagenServer) registerRiksdagenTools() {
	s.server.AddTool(mcp.Tool{
		Name:        "riksdagen_search",
		Description: "Search the Swedish Parliament (Riksdagen) document archive. Returns normalized document metadata including ID, title, document type, dates, parliamentary session, responsible committee, status, and direct URLs to the plain-text and HTML renderings. Covers government bills, motions, committee reports, protocols, interpellations, written questions, and more. Essential for researching Swedish legislation, tracking parliamentary activity, and locating official documents. Use riksdagen_get_document_types to discover valid doktyp filter values.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"sok": map[string]interface{}{
					"type":        "string",
					"description": "Free-text search term (e.g. 'budget', 'klimat', 'skatt'). Searches document titles and contents.",
				},
				"doktyp": map[string]interface{}{
					"type":        "string",
					"description": "Document type code filter (e.g. 'prop' for government bills, 'mot' for motions, 'bet' for committee reports). Get valid codes from riksdagen_get_document_types.",
				},
				"rm": map[string]interface{}{
					"type":        "string",
					"description": "Parliamentary session year in the archive's range format (e.g. '2021/22', '2022/23'). Sessions run autumn to autumn.",
				},
				"from_date": map[string]interface{}{
					"type":        "string",
					"description": "Earliest document date in YYYY-MM-DD format (e.g. '2023-01-01'). Use with tom for date range searches.",
				},
				"tom": map[string]interface{}{
					"type":        "string",
					"description": "Latest document date in YYYY-MM-DD format (e.g. '2023-12-31'). Use with from_date for date range searches.",
				},
				"sort": map[string]interface{}{
					"type":        "string",
					"description": "Sort key (default: 'rel' for relevance). Options: 'rel', 'datum' (document date), 'beteckning' (designation), 'publikation' (publication date).",
				},
				"sortorder": map[string]interface{}{
					"type":        "string",
					"description": "Sort direction (default: 'desc'). Options: 'desc', 'asc'.",
				},
				"limit": map[string]interface{}{
					"type":        "number",
					"description": "Maximum number of documents to return (default: 10). Applied after the upstream page is fetched, so total_hits may exceed the number of returned documents.",
				},
			},
		},
	}, s.handleSearch)

	s.server.AddTool(mcp.Tool{
		Name:        "riksdagen_get_document_types",
		Description: "Get the catalog of document type codes used by the Riksdagen archive, mapping each short code (e.g. 'prop', 'mot', 'bet') to a human-readable description. Use these codes as the doktyp filter in riksdagen_search. The catalog is fixed and requires no network access.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
		},
	}, s.handleGetDocumentTypes)

	s.server.AddTool(mcp.Tool{
		Name:        "riksdagen_create_url_list",
		Description: "Create direct document URLs for a list of Riksdagen document IDs in the requested rendering format. Supported formats: 'json' (structured metadata), 'html' (formatted document), 'text' (plain text). Document IDs come from riksdagen_search results (the 'id' field). URLs are returned in the same order as the input IDs. Pure URL synthesis; no network access.",
		InputSchema: mcp.ToolInputSchema{
			Type: "object",
			Properties: map[string]interface{}{
				"document_ids": map[string]interface{}{
					"type":        "array",
					"items":       map[string]interface{}{"type": "string"},
					"description": "Document IDs to build URLs for (e.g. ['H8C1', 'H8C2']). Get IDs from riksdagen_search results.",
				},
				"format": map[string]interface{}{
					"type":        "string",
					"description": "Document rendering format (default: 'json'). Options: 'json', 'html', 'text'. Case-insensitive.",
				},
			},
			Required: []string{"document_ids"},
		},
	}, s.handleCreateURLList)
}

func (s *RiksdagenServer) handleSearch(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	limit := request.GetInt("limit", defaultSearchLimit)
	if limit <= 0 {
		limit = defaultSearchLimit
	}

	params := riksdagen.NewSearchParams()
	params.Sok = request.GetString("sok", "")
	params.Doktyp = request.GetString("doktyp", "")
	params.Rm = request.GetString("rm", "")
	params.FromDate = request.GetString("from_date", "")
	params.Tom = request.GetString("tom", "")
	params.Sort = request.GetString("sort", riksdagen.DefaultSort)
	params.SortOrder = request.GetString("sortorder", riksdagen.DefaultSortOrder)
	// Normalization below assumes the JSON rendering, so the output format is
	// fixed and not exposed as a tool parameter.
	params.Utformat = riksdagen.DefaultFormat

	raw, err := s.archive.Search(ctx, params)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to search the Riksdagen archive: %v. Please try again.", err)), nil
	}

	var list riksdagen.DocumentList
	if err := json.Unmarshal(raw, &list); err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to parse search results from API response: %v. The API may have returned unexpected data format.", err)), nil
	}

	entries := list.Dokumentlista.Dokument
	if len(entries) > limit {
		entries = entries[:limit]
	}

	documents := make([]riksdagen.Document, 0, len(entries))
	for _, entry := range entries {
		documents = append(documents, riksdagen.Normalize(entry))
	}

	response := riksdagen.SearchResponse{
		TotalHits: int(list.Dokumentlista.Traffar),
		Documents: documents,
	}

	result, err := json.MarshalIndent(response, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode search response: %v.", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}

func (s *RiksdagenServer) handleGetDocumentTypes(_ context.Context, _ mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	result, err := json.MarshalIndent(riksdagen.DocumentTypes(), "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode document type catalog: %v.", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}

func (s *RiksdagenServer) handleCreateURLList(_ context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	documentIDs := request.GetStringSlice("document_ids", nil)
	if len(documentIDs) == 0 {
		return mcp.NewToolResultError("The 'document_ids' parameter is required and must contain at least one document ID. Get IDs from riksdagen_search results."), nil
	}

	format := request.GetString("format", "json")

	list, err := riksdagen.BuildURLList(documentIDs, format)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to build URL list: %v.", err)), nil
	}

	result, err := json.MarshalIndent(list, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("Failed to encode URL list: %v.", err)), nil
	}

	return mcp.NewToolResultText(string(result)), nil
}
