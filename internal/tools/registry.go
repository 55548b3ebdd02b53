package tools

import (
	"github.com/modelcontextprotocol/go-sdk/mcp"
)

// RegisterAll registers all tools with the MCP server.
// This is called from main after server creation but before Run().
func RegisterAll(server *mcp.Server, deps *Dependencies) {
	// Ping tool - test/placeholder
	mcp.AddTool(server, &mcp.Tool{
		Name:        "ping",
		Description: "Test tool - responds with pong or echoes input",
	}, NewPingHandler(deps))

	// Full discovery pipeline over the stored vocabulary
	mcp.AddTool(server, &mcp.Tool{
		Name:        "suggest_links",
		Description: "Discover candidate links between vocabulary items using similarity, theme, and causal matchers",
	}, NewSuggestLinksHandler(deps))

	// Ranked suggestions excluding accepted pairs
	mcp.AddTool(server, &mcp.Tool{
		Name:        "recommend",
		Description: "Return the top-ranked link recommendations for human review, excluding accepted pairs",
	}, NewRecommendHandler(deps))

	// Bounded simple-path enumeration
	mcp.AddTool(server, &mcp.Tool{
		Name:        "find_paths",
		Description: "Enumerate simple paths between two vocabulary items over the discovered link graph",
	}, NewFindPathsHandler(deps))

	// Community detection
	mcp.AddTool(server, &mcp.Tool{
		Name:        "clusters",
		Description: "Group vocabulary items into communities using louvain or walktrap",
	}, NewClustersHandler(deps))

	// Runtime statistics
	mcp.AddTool(server, &mcp.Tool{
		Name:        "stats",
		Description: "Report per-operation timing statistics for this server",
	}, NewStatsHandler(deps))
}
