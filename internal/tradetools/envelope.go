package tradetools

import (
	"encoding/json"
	"fmt"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/svillegasm/latam-trade-mcp/internal/store"
)

// ServerVersion is stamped by the composition root at startup; "dev"
// until then. It appears in every response's meta block.
var ServerVersion = "dev"

// disclaimer is attached to every response, found or not.
const disclaimer = "Informational summary of trade-agreement provisions; not legal advice. Verify against the official treaty texts."

// Meta is the uniform metadata block closing every tool response.
type Meta struct {
	Disclaimer  string `json:"disclaimer"`
	DataVersion string `json:"data_version"`
	Server      string `json:"server"`
}

// newMeta builds the meta block. Attached as the final step of response
// assembly regardless of the result outcome.
func newMeta() Meta {
	return Meta{
		Disclaimer:  disclaimer,
		DataVersion: store.DataVersion,
		Server:      "latam-trade-mcp " + ServerVersion,
	}
}

// jsonResult marshals a response envelope into a text tool result.
func jsonResult(v any) *mcp.CallToolResult {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encoding response: %v", err))
	}
	return mcp.NewToolResultText(string(data))
}
