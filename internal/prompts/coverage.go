package prompts

import (
	"context"

	"github.com/mark3labs/mcp-go/mcp"
)

// CoveragePrompt handles the trade-coverage MCP prompt.
// It instructs the AI to read and present what the catalogue contains.
type CoveragePrompt struct{}

// NewCoveragePrompt creates a CoveragePrompt.
func NewCoveragePrompt() *CoveragePrompt {
	return &CoveragePrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *CoveragePrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("trade-coverage",
		mcp.WithPromptDescription(
			"Summarise what this trade catalogue covers: which countries, "+
				"agreements, and record types are available, and how current "+
				"the data is.",
		),
	)
}

// Handle processes the trade-coverage prompt request.
func (p *CoveragePrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	return &mcp.GetPromptResult{
		Description: "Trade Catalogue Coverage",
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(
					"Please read the `trade://catalog/coverage` resource and run `trade_list_countries`.\n\n" +
						"Then:\n" +
						"1. Show me the record counts per category in a clear format\n" +
						"2. List the covered countries grouped by region\n" +
						"3. State the data version and what that implies about currency\n" +
						"4. Tell me which kinds of questions this catalogue can and cannot answer",
				),
			},
		},
	}, nil
}
