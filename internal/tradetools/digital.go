package tradetools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/svillegasm/latam-trade-mcp/internal/countries"
	"github.com/svillegasm/latam-trade-mcp/internal/store"
)

// DigitalObligationsTool handles the trade_digital_obligations MCP tool.
type DigitalObligationsTool struct {
	store *store.Store
}

// NewDigitalObligationsTool creates a DigitalObligationsTool.
func NewDigitalObligationsTool(s *store.Store) *DigitalObligationsTool {
	return &DigitalObligationsTool{store: s}
}

// Definition returns the MCP tool definition for trade_digital_obligations.
func (t *DigitalObligationsTool) Definition() mcp.Tool {
	return mcp.NewTool("trade_digital_obligations",
		mcp.WithDescription(
			"List digital-trade obligations (data flows, data localization, source code, e-signatures, "+
				"online consumer protection) binding any of the given countries, grouped by agreement "+
				"and category. Pass one or more country codes; the result is the union across them.",
		),
		mcp.WithArray("countries",
			mcp.Required(),
			mcp.Description("Country codes to query, e.g. [\"CL\", \"MX\"]. Also accepts a comma-separated string."),
		),
	)
}

// digitalResponse is the envelope for trade_digital_obligations.
type digitalResponse struct {
	Found        bool                      `json:"found"`
	Countries    []string                  `json:"countries"`
	CountryNames []string                  `json:"country_names"`
	Count        int                       `json:"count"`
	Obligations  []store.DigitalObligation `json:"obligations,omitempty"`
	Message      string                    `json:"message,omitempty"`
	Meta         Meta                      `json:"meta"`
}

// Handle processes the trade_digital_obligations tool call.
func (t *DigitalObligationsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	codes := stringListArg(req, "countries")
	// An empty list is a malformed request, not a data-absence result —
	// it gets a tool error, never a found:false envelope.
	if len(codes) == 0 {
		return mcp.NewToolResultError("'countries' must contain at least one country code"), nil
	}

	for i, c := range codes {
		codes[i] = countries.Normalize(c)
	}

	rows, err := t.store.DigitalObligations(codes)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("digital obligations lookup failed: %v", err)), nil
	}

	names := make([]string, len(codes))
	for i, c := range codes {
		names[i] = countries.DisplayName(c)
	}

	resp := digitalResponse{
		Found:        len(rows) > 0,
		Countries:    codes,
		CountryNames: names,
		Count:        len(rows),
		Obligations:  rows,
	}
	if len(rows) == 0 {
		resp.Message = fmt.Sprintf("No digital-trade obligations on record for %s.",
			joinNames(names))
		if unknown := unknownCodes(codes...); unknown != "" {
			resp.Message += " Note: " + unknown + " not covered by this catalogue."
		}
	}
	resp.Meta = newMeta()

	return jsonResult(resp), nil
}

// joinNames renders a display-name list for messages: "A", "A and B",
// "A, B and C".
func joinNames(names []string) string {
	switch len(names) {
	case 0:
		return ""
	case 1:
		return names[0]
	case 2:
		return names[0] + " and " + names[1]
	}
	out := names[0]
	for _, n := range names[1 : len(names)-1] {
		out += ", " + n
	}
	return out + " and " + names[len(names)-1]
}
