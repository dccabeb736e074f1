package tradetools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/svillegasm/latam-trade-mcp/internal/countries"
	"github.com/svillegasm/latam-trade-mcp/internal/store"
)

// RecognitionTool handles the trade_mutual_recognition MCP tool.
type RecognitionTool struct {
	store *store.Store
}

// NewRecognitionTool creates a RecognitionTool.
func NewRecognitionTool(s *store.Store) *RecognitionTool {
	return &RecognitionTool{store: s}
}

// Definition returns the MCP tool definition for trade_mutual_recognition.
func (t *RecognitionTool) Definition() mcp.Tool {
	return mcp.NewTool("trade_mutual_recognition",
		mcp.WithDescription(
			"List mutual-recognition arrangements between two countries — customs AEO programmes, "+
				"conformity assessment, professional qualifications, digital signatures, and similar. "+
				"A pair can hold several arrangements, one per domain; filter with the optional domain argument.",
		),
		mcp.WithString("country_a",
			mcp.Required(),
			mcp.Description("First country code (order does not matter)"),
		),
		mcp.WithString("country_b",
			mcp.Required(),
			mcp.Description("Second country code"),
		),
		mcp.WithString("domain",
			mcp.Description("Exact domain filter, e.g. customs_procedures, conformity_assessment, digital_signatures"),
		),
	)
}

// recognitionResponse is the envelope for trade_mutual_recognition.
type recognitionResponse struct {
	Found        bool                `json:"found"`
	CountryA     string              `json:"country_a"`
	CountryB     string              `json:"country_b"`
	CountryAName string              `json:"country_a_name"`
	CountryBName string              `json:"country_b_name"`
	Domain       string              `json:"domain,omitempty"`
	Count        int                 `json:"count"`
	Arrangements []store.Recognition `json:"arrangements,omitempty"`
	Message      string              `json:"message,omitempty"`
	Meta         Meta                `json:"meta"`
}

// Handle processes the trade_mutual_recognition tool call.
func (t *RecognitionTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	a := req.GetString("country_a", "")
	if a == "" {
		return mcp.NewToolResultError("'country_a' is required"), nil
	}
	b := req.GetString("country_b", "")
	if b == "" {
		return mcp.NewToolResultError("'country_b' is required"), nil
	}
	domain := req.GetString("domain", "")

	a = countries.Normalize(a)
	b = countries.Normalize(b)

	rows, err := t.store.MutualRecognitions(a, b, domain)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("mutual recognition lookup failed: %v", err)), nil
	}

	resp := recognitionResponse{
		Found:        len(rows) > 0,
		CountryA:     a,
		CountryB:     b,
		CountryAName: countries.DisplayName(a),
		CountryBName: countries.DisplayName(b),
		Domain:       domain,
		Count:        len(rows),
		Arrangements: rows,
	}
	if len(rows) == 0 {
		if domain != "" {
			resp.Message = fmt.Sprintf("No mutual-recognition arrangements on record between %s and %s in domain %q.",
				resp.CountryAName, resp.CountryBName, domain)
		} else {
			resp.Message = fmt.Sprintf("No mutual-recognition arrangements on record between %s and %s.",
				resp.CountryAName, resp.CountryBName)
		}
	}
	resp.Meta = newMeta()

	return jsonResult(resp), nil
}
