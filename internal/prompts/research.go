// Package prompts implements MCP prompt handlers for the trade server.
//
// MCP prompts are user-triggered workflows (like slash commands) that
// instruct the AI to execute a specific sequence. Unlike tools (which
// the AI calls), prompts are initiated by the user.
package prompts

import (
	"context"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
)

// ResearchPrompt handles the trade-research MCP prompt.
// It guides the AI through a full bilateral lookup for a country pair.
type ResearchPrompt struct{}

// NewResearchPrompt creates a ResearchPrompt.
func NewResearchPrompt() *ResearchPrompt {
	return &ResearchPrompt{}
}

// Definition returns the MCP prompt definition for registration.
func (p *ResearchPrompt) Definition() mcp.Prompt {
	return mcp.NewPrompt("trade-research",
		mcp.WithPromptDescription(
			"Research the trade relationship between two countries. "+
				"Walks through data-transfer rules, mutual-recognition "+
				"arrangements, shared agreements, and digital-trade obligations.",
		),
		mcp.WithArgument("country_a",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("First country code (e.g. AR, BR, CL)"),
		),
		mcp.WithArgument("country_b",
			mcp.RequiredArgument(),
			mcp.ArgumentDescription("Second country code (e.g. EU, MX, UY)"),
		),
	)
}

// Handle processes the trade-research prompt request.
func (p *ResearchPrompt) Handle(ctx context.Context, req mcp.GetPromptRequest) (*mcp.GetPromptResult, error) {
	countryA := "AR"
	countryB := "EU"
	if args := req.Params.Arguments; args != nil {
		if a, ok := args["country_a"]; ok && a != "" {
			countryA = a
		}
		if b, ok := args["country_b"]; ok && b != "" {
			countryB = b
		}
	}

	return &mcp.GetPromptResult{
		Description: fmt.Sprintf("Trade relationship research: %s / %s", countryA, countryB),
		Messages: []mcp.PromptMessage{
			{
				Role: mcp.RoleUser,
				Content: mcp.NewTextContent(fmt.Sprintf(
					"I want a full picture of the trade relationship between '%s' and '%s'.\n\n"+
						"Please:\n"+
						"1. Run `trade_transfer_rule` with source='%s', dest='%s' and report the data-transfer basis (note the reversed_lookup flag if set)\n"+
						"2. Run `trade_mutual_recognition` with country_a='%s', country_b='%s' and list any arrangements by domain\n"+
						"3. Run `trade_list_agreements` filtered by each country and identify the agreements they share\n"+
						"4. Run `trade_digital_obligations` with countries=['%s','%s'] and summarise the binding commitments\n"+
						"5. Close with a short synthesis, and remind me this is reference data, not legal advice\n",
					countryA, countryB, countryA, countryB, countryA, countryB, countryA, countryB,
				)),
			},
		},
	}, nil
}
