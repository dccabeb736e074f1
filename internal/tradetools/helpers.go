// Package tradetools provides the MCP tool handlers for the trade
// catalogue.
//
// Each tool handler follows the same pattern:
// - A struct with its dependency (store.Store) injected via constructor
// - Definition() returns the mcp.Tool schema
// - Handle() processes the request and returns a result
//
// Tools are read-only lookups. Absence of data is a normal response
// (found: false in the JSON envelope); only structurally invalid
// requests produce a tool error.
package tradetools

import (
	"strings"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/svillegasm/latam-trade-mcp/internal/countries"
)

// intArg extracts an integer argument from a tool request, returning
// defaultVal if the key is missing or not a number (JSON numbers are float64).
func intArg(req mcp.CallToolRequest, key string, defaultVal int) int {
	v, ok := req.GetArguments()[key].(float64)
	if !ok {
		return defaultVal
	}
	return int(v)
}

// stringListArg extracts a string-array argument. It also accepts a
// single comma-separated string, since some hosts serialize small
// lists that way. Blank elements are dropped.
func stringListArg(req mcp.CallToolRequest, key string) []string {
	var raw []string
	switch v := req.GetArguments()[key].(type) {
	case []any:
		for _, item := range v {
			if s, ok := item.(string); ok {
				raw = append(raw, s)
			}
		}
	case string:
		raw = strings.Split(v, ",")
	}

	var out []string
	for _, s := range raw {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// unknownCodes phrases the subset of codes absent from the country
// reference table ("ZZ is" / "ZZ and XY are"), or "" when all are known.
// Unknown codes still get a normal found:false response; the phrase just
// helps the caller notice a likely typo.
func unknownCodes(codes ...string) string {
	var unknown []string
	for _, c := range codes {
		if !countries.Known(c) {
			unknown = append(unknown, countries.Normalize(c))
		}
	}
	switch len(unknown) {
	case 0:
		return ""
	case 1:
		return unknown[0] + " is"
	default:
		return strings.Join(unknown[:len(unknown)-1], ", ") + " and " + unknown[len(unknown)-1] + " are"
	}
}
