package tradetools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/svillegasm/latam-trade-mcp/internal/store"
)

// SearchTool handles the trade_search MCP tool.
type SearchTool struct {
	store *store.Store
}

// NewSearchTool creates a SearchTool.
func NewSearchTool(s *store.Store) *SearchTool {
	return &SearchTool{store: s}
}

// Definition returns the MCP tool definition for trade_search.
func (t *SearchTool) Definition() mcp.Tool {
	return mcp.NewTool("trade_search",
		mcp.WithDescription(
			"Full-text search across agreement names, summaries, and treaty texts. "+
				"Results are ranked by relevance and include a snippet showing the match in context. "+
				"Use trade_get_agreement with a hit's code to read the full text.",
		),
		mcp.WithString("query",
			mcp.Required(),
			mcp.Description("Search terms — natural language or keywords"),
		),
		mcp.WithNumber("limit",
			mcp.Description("Max results (default: 10, max: 50)"),
		),
	)
}

// searchResponse is the envelope for trade_search.
type searchResponse struct {
	Found   bool              `json:"found"`
	Query   string            `json:"query"`
	Count   int               `json:"count"`
	Hits    []store.SearchHit `json:"hits,omitempty"`
	Message string            `json:"message,omitempty"`
	Meta    Meta              `json:"meta"`
}

// Handle processes the trade_search tool call.
func (t *SearchTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	query := req.GetString("query", "")
	if query == "" {
		return mcp.NewToolResultError("'query' is required"), nil
	}
	limit := intArg(req, "limit", 10)

	hits, err := t.store.SearchAgreements(query, limit)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("search failed: %v", err)), nil
	}

	resp := searchResponse{
		Found: len(hits) > 0,
		Query: query,
		Count: len(hits),
		Hits:  hits,
	}
	if len(hits) == 0 {
		resp.Message = fmt.Sprintf("No agreements match %q.", query)
	}
	resp.Meta = newMeta()

	return jsonResult(resp), nil
}
