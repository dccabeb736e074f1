package tradetools

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/svillegasm/latam-trade-mcp/internal/countries"
	"github.com/svillegasm/latam-trade-mcp/internal/store"
)

// ─── ListAgreementsTool ─────────────────────────────────────────────────────

// ListAgreementsTool handles the trade_list_agreements MCP tool.
type ListAgreementsTool struct {
	store *store.Store
}

// NewListAgreementsTool creates a ListAgreementsTool.
func NewListAgreementsTool(s *store.Store) *ListAgreementsTool {
	return &ListAgreementsTool{store: s}
}

// Definition returns the MCP tool definition for trade_list_agreements.
func (t *ListAgreementsTool) Definition() mcp.Tool {
	return mcp.NewTool("trade_list_agreements",
		mcp.WithDescription(
			"Browse the agreement catalogue. Filter by party country, status "+
				"(in_force, signed), or topic (e.g. digital_trade, customs_union). "+
				"Returns summaries; use trade_get_agreement for the full text.",
		),
		mcp.WithString("country",
			mcp.Description("Only agreements where this country code is a party"),
		),
		mcp.WithString("status",
			mcp.Description("Filter by status: in_force or signed"),
		),
		mcp.WithString("topic",
			mcp.Description("Filter by topic tag, e.g. digital_trade, data_flows, goods"),
		),
	)
}

// listResponse is the envelope for trade_list_agreements.
type listResponse struct {
	Found       bool              `json:"found"`
	Country     string            `json:"country,omitempty"`
	CountryName string            `json:"country_name,omitempty"`
	Status      string            `json:"status,omitempty"`
	Topic       string            `json:"topic,omitempty"`
	Count       int               `json:"count"`
	Agreements  []store.Agreement `json:"agreements,omitempty"`
	Message     string            `json:"message,omitempty"`
	Meta        Meta              `json:"meta"`
}

// Handle processes the trade_list_agreements tool call.
func (t *ListAgreementsTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	country := countries.Normalize(req.GetString("country", ""))
	status := req.GetString("status", "")
	topic := req.GetString("topic", "")

	agreements, err := t.store.ListAgreements(store.ListOptions{
		Country: country,
		Status:  status,
		Topic:   topic,
	})
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list agreements failed: %v", err)), nil
	}

	resp := listResponse{
		Found:      len(agreements) > 0,
		Country:    country,
		Status:     status,
		Topic:      topic,
		Count:      len(agreements),
		Agreements: agreements,
	}
	if country != "" {
		resp.CountryName = countries.DisplayName(country)
	}
	if len(agreements) == 0 {
		resp.Message = "No agreements match the given filters."
	}
	resp.Meta = newMeta()

	return jsonResult(resp), nil
}

// ─── GetAgreementTool ───────────────────────────────────────────────────────

// GetAgreementTool handles the trade_get_agreement MCP tool.
type GetAgreementTool struct {
	store *store.Store
}

// NewGetAgreementTool creates a GetAgreementTool.
func NewGetAgreementTool(s *store.Store) *GetAgreementTool {
	return &GetAgreementTool{store: s}
}

// Definition returns the MCP tool definition for trade_get_agreement.
func (t *GetAgreementTool) Definition() mcp.Tool {
	return mcp.NewTool("trade_get_agreement",
		mcp.WithDescription(
			"Fetch one agreement by its catalogue code (e.g. MERCOSUR, DEPA, USMCA), "+
				"including parties, status, dates, and the full text excerpt.",
		),
		mcp.WithString("code",
			mcp.Required(),
			mcp.Description("Agreement code as returned by trade_list_agreements or trade_search"),
		),
	)
}

// agreementResponse is the envelope for trade_get_agreement.
type agreementResponse struct {
	Found     bool             `json:"found"`
	Code      string           `json:"code"`
	Agreement *store.Agreement `json:"agreement,omitempty"`
	Message   string           `json:"message,omitempty"`
	Meta      Meta             `json:"meta"`
}

// Handle processes the trade_get_agreement tool call.
func (t *GetAgreementTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	code := req.GetString("code", "")
	if code == "" {
		return mcp.NewToolResultError("'code' is required"), nil
	}
	code = countries.Normalize(code)

	agreement, err := t.store.GetAgreement(code)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("get agreement failed: %v", err)), nil
	}

	resp := agreementResponse{
		Found:     agreement != nil,
		Code:      code,
		Agreement: agreement,
	}
	if agreement == nil {
		resp.Message = fmt.Sprintf("No agreement with code %q in the catalogue.", code)
	}
	resp.Meta = newMeta()

	return jsonResult(resp), nil
}

// ─── ListCountriesTool ──────────────────────────────────────────────────────

// ListCountriesTool handles the trade_list_countries MCP tool.
type ListCountriesTool struct {
	store *store.Store
}

// NewListCountriesTool creates a ListCountriesTool.
func NewListCountriesTool(s *store.Store) *ListCountriesTool {
	return &ListCountriesTool{store: s}
}

// Definition returns the MCP tool definition for trade_list_countries.
func (t *ListCountriesTool) Definition() mcp.Tool {
	return mcp.NewTool("trade_list_countries",
		mcp.WithDescription(
			"List every country and bloc code the catalogue covers, with display names and regions. "+
				"Use these codes in the other trade_* tools.",
		),
	)
}

// countriesResponse is the envelope for trade_list_countries.
type countriesResponse struct {
	Found     bool            `json:"found"`
	Count     int             `json:"count"`
	Countries []store.Country `json:"countries"`
	Meta      Meta            `json:"meta"`
}

// Handle processes the trade_list_countries tool call.
func (t *ListCountriesTool) Handle(ctx context.Context, req mcp.CallToolRequest) (*mcp.CallToolResult, error) {
	cs, err := t.store.Countries()
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("list countries failed: %v", err)), nil
	}

	return jsonResult(countriesResponse{
		Found:     len(cs) > 0,
		Count:     len(cs),
		Countries: cs,
		Meta:      newMeta(),
	}), nil
}
