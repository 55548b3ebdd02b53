package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// StatsInput defines the input schema for the stats tool.
type StatsInput struct{}

// NewStatsHandler creates the stats tool handler.
// Reports per-operation timing statistics for the running server.
func NewStatsHandler(deps *Dependencies) mcp.ToolHandlerFor[StatsInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input StatsInput) (
		*mcp.CallToolResult, any, error,
	) {
		snap := deps.Linker.Metrics().Snapshot()
		jsonBytes, _ := json.MarshalIndent(snap, "", "  ")
		return TextResult(string(jsonBytes)), nil, nil
	}
}
