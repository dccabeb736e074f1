// Package resources implements MCP resource handlers for the trade catalogue.
//
// Resources provide read-only data that the host can consume for context.
// They use URI-based addressing (trade://...) following MCP conventions.
package resources

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/svillegasm/latam-trade-mcp/internal/store"
)

// Handler manages trade catalogue resource endpoints.
type Handler struct {
	store *store.Store
}

// NewHandler creates a resource Handler with its dependencies.
func NewHandler(s *store.Store) *Handler {
	return &Handler{store: s}
}

// CoverageResource returns the MCP resource definition for catalogue coverage.
func (h *Handler) CoverageResource() mcp.Resource {
	return mcp.NewResource(
		"trade://catalog/coverage",
		"Trade Catalogue Coverage",
		mcp.WithResourceDescription("What the catalogue contains: record counts per table, the reference country table, and the data version"),
		mcp.WithMIMEType("application/json"),
	)
}

// coverage is the JSON shape served at trade://catalog/coverage.
type coverage struct {
	DataVersion string          `json:"data_version"`
	Stats       *store.Stats    `json:"stats"`
	Countries   []store.Country `json:"countries"`
}

// HandleCoverage returns the catalogue coverage summary as JSON.
func (h *Handler) HandleCoverage(ctx context.Context, req mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
	stats, err := h.store.Stats()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}
	countries, err := h.store.Countries()
	if err != nil {
		return errorResource(req.Params.URI, err.Error()), nil
	}

	data, err := json.MarshalIndent(coverage{
		DataVersion: store.DataVersion,
		Stats:       stats,
		Countries:   countries,
	}, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("marshaling coverage: %w", err)
	}

	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      req.Params.URI,
			MIMEType: "application/json",
			Text:     string(data),
		},
	}, nil
}

// errorResource returns a resource with an error message.
func errorResource(uri, message string) []mcp.ResourceContents {
	return []mcp.ResourceContents{
		mcp.TextResourceContents{
			URI:      uri,
			MIMEType: "text/plain",
			Text:     fmt.Sprintf("Error: %s", message),
		},
	}
}
