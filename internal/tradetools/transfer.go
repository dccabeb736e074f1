package tradetools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/svillegasm/latam-trade-mcp/internal/countries"
	"github.com/svillegasm/latam-trade-mcp/internal/store"
)

// TransferRuleTool handles the trade_transfer_rule MCP tool.
type TransferRuleTool struct {
	store *store.Store
}

// NewTransferRuleTool creates a TransferRuleTool.
func NewTransferRuleTool(s *store.Store) *TransferRuleTool {
	return &TransferRuleTool{store: s}
}

// Definition returns the MCP tool definition for trade_transfer_rule.
func (t *TransferRuleTool) Definition() mcp.Tool {
	return mcp.NewTool("trade_transfer_rule",
		mcp.WithDescription(
			"Look up the bilateral data-transfer rule between two countries: adequacy status, "+
				"accepted legal mechanisms, and the governing framework. The relation is symmetric — "+
				"query in either order. When the rule was authored for the opposite direction, the "+
				"response sets reversed_lookup so you can interpret direction-specific text correctly.",
		),
		mcp.WithString("source",
			mcp.Required(),
			mcp.Description("Country code of the data exporter (e.g. AR, BR, EU)"),
		),
		mcp.WithString("dest",
			mcp.Required(),
			mcp.Description("Country code of the data importer"),
		),
	)
}

// transferResponse is the envelope for trade_transfer_rule.
type transferResponse struct {
	Found          bool                `json:"found"`
	Source         string              `json:"source"`
	Dest           string              `json:"dest"`
	SourceName     string              `json:"source_name"`
	DestName       string              `json:"dest_name"`
	ReversedLookup bool                `json:"reversed_lookup,omitempty"`
	Rule           *store.TransferRule `json:"rule,omitempty"`
	Message        string              `json:"message,omitempty"`
	Meta           Meta                `json:"meta"`
}

// Handle processes the trade_transfer_rule tool call.
func (t *TransferRuleTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	source := req.GetString("source", "")
	if source == "" {
		return mcp.NewToolResultError("'source' is required"), nil
	}
	dest := req.GetString("dest", "")
	if dest == "" {
		return mcp.NewToolResultError("'dest' is required"), nil
	}

	source = countries.Normalize(source)
	dest = countries.Normalize(dest)

	rule, reversed, err := t.store.TransferRule(source, dest)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("transfer rule lookup failed: %v", err)), nil
	}

	resp := transferResponse{
		Found:      rule != nil,
		Source:     source,
		Dest:       dest,
		SourceName: countries.DisplayName(source),
		DestName:   countries.DisplayName(dest),
	}
	if rule != nil {
		resp.Rule = rule
		resp.ReversedLookup = reversed
	} else {
		resp.Message = fmt.Sprintf("No data-transfer rule is on record between %s and %s.",
			resp.SourceName, resp.DestName)
		if unknown := unknownCodes(source, dest); unknown != "" {
			resp.Message += " Note: " + unknown + " not covered by this catalogue."
		}
	}
	resp.Meta = newMeta()

	return jsonResult(resp), nil
}
