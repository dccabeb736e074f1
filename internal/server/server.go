// Package server wires all MCP components and creates the server instance.
//
// This is the composition root (DIP): it opens the catalogue store and
// injects it into the tools/prompts/resources that depend on it.
// No business logic lives here — only wiring.
package server

import (
	"fmt"

	"github.com/mark3labs/mcp-go/server"
	"github.com/svillegasm/latam-trade-mcp/internal/prompts"
	"github.com/svillegasm/latam-trade-mcp/internal/resources"
	"github.com/svillegasm/latam-trade-mcp/internal/store"
	"github.com/svillegasm/latam-trade-mcp/internal/tradetools"
)

// Version is set at build time via ldflags.
var Version = "dev"

// New creates and configures the MCP server with all tools, prompts,
// and resources registered. This is the single place where all
// dependencies are resolved.
//
// The returned cleanup function closes the catalogue database and must
// be called on shutdown (typically via defer). It is always non-nil.
func New(cfg store.Config) (*server.MCPServer, func(), error) {
	// --- Open the catalogue store ---

	st, err := store.Open(cfg)
	if err != nil {
		return nil, noop, fmt.Errorf("opening catalogue store: %w", err)
	}
	cleanup := func() { _ = st.Close() }

	// Tool responses stamp the server identity into their meta block.
	tradetools.ServerVersion = Version

	// --- Create the MCP server ---

	s := server.NewMCPServer(
		"latam-trade-mcp",
		Version,
		server.WithToolCapabilities(true),
		server.WithResourceCapabilities(false, true),
		server.WithPromptCapabilities(true),
		server.WithRecovery(),
		server.WithInstructions(serverInstructions()),
	)

	// --- Register bilateral lookup tools ---

	transferTool := tradetools.NewTransferRuleTool(st)
	s.AddTool(transferTool.Definition(), transferTool.Handle)

	recognitionTool := tradetools.NewRecognitionTool(st)
	s.AddTool(recognitionTool.Definition(), recognitionTool.Handle)

	digitalTool := tradetools.NewDigitalObligationsTool(st)
	s.AddTool(digitalTool.Definition(), digitalTool.Handle)

	// --- Register catalogue tools ---

	searchTool := tradetools.NewSearchTool(st)
	s.AddTool(searchTool.Definition(), searchTool.Handle)

	listTool := tradetools.NewListAgreementsTool(st)
	s.AddTool(listTool.Definition(), listTool.Handle)

	getTool := tradetools.NewGetAgreementTool(st)
	s.AddTool(getTool.Definition(), getTool.Handle)

	countriesTool := tradetools.NewListCountriesTool(st)
	s.AddTool(countriesTool.Definition(), countriesTool.Handle)

	// --- Register prompts ---

	researchPrompt := prompts.NewResearchPrompt()
	s.AddPrompt(researchPrompt.Definition(), researchPrompt.Handle)

	coveragePrompt := prompts.NewCoveragePrompt()
	s.AddPrompt(coveragePrompt.Definition(), coveragePrompt.Handle)

	// --- Register resources ---

	resourceHandler := resources.NewHandler(st)
	s.AddResource(resourceHandler.CoverageResource(), resourceHandler.HandleCoverage)

	return s, cleanup, nil
}

// noop is a no-op cleanup function used when the store failed to open.
func noop() {}

// serverInstructions returns the system instructions that tell the AI
// how to use the trade catalogue effectively.
func serverInstructions() string {
	return `You have access to a read-only catalogue of Latin American trade
agreements, cross-border data-transfer rules, mutual-recognition
arrangements, and digital-trade obligations.

## What this server is for

Use it whenever the user asks about:
- Whether personal data can flow between two countries, and on what legal basis
- Mutual recognition between two countries (customs, qualifications, conformity)
- Digital-trade commitments a country has taken on (data flows, localisation bans,
  e-signatures, source-code protection)
- Which trade agreements exist between LATAM countries or with outside partners

## How the bilateral tools behave

- trade_transfer_rule is direction-tolerant: ask in either order. When the
  stored rule was authored for the opposite direction, the response carries
  reversed_lookup=true — read direction-specific wording (exporter/importer)
  with the roles swapped.
- trade_mutual_recognition is order-independent: country_a/country_b can be
  given either way and the same arrangements come back.
- trade_digital_obligations takes a list of country codes and returns every
  obligation binding at least one of them.

## Interpreting responses

- Every response is JSON with a "found" field. found=false is a normal answer
  meaning the catalogue has no record — it is NOT an error. Tell the user the
  catalogue has no entry rather than guessing.
- Tool errors (invalid or missing arguments) mean the request was malformed —
  fix the arguments and retry.
- Country codes are ISO 3166-1 alpha-2, plus EU for the European Union.
  Codes are case-insensitive; responses echo them normalized.
- Every response includes a meta block with a disclaimer and the data version.
  Always pass the disclaimer on: this is reference data, not legal advice, and
  the user should verify against official sources for decisions that matter.

## Workflow prompts

- trade-research walks through a full bilateral picture for a country pair.
- trade-coverage summarises what the catalogue contains.
- The trade://catalog/coverage resource exposes record counts and the country
  table as JSON.`
}
