package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rvisser/bowlink/internal/graph"
	"github.com/rvisser/bowlink/internal/service"
)

// ClustersInput defines the input schema for the clusters tool.
type ClustersInput struct {
	Algorithm string `json:"algorithm,omitempty" jsonschema:"Community algorithm: louvain or walktrap (default louvain)"`
}

// NewClustersHandler creates the clusters tool handler.
// Groups vocabulary items into communities over the discovered links.
func NewClustersHandler(deps *Dependencies) mcp.ToolHandlerFor[ClustersInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input ClustersInput) (
		*mcp.CallToolResult, any, error,
	) {
		algorithm := graph.Algorithm(input.Algorithm)
		if algorithm == "" {
			algorithm = graph.AlgorithmLouvain
		}

		vocab, err := deps.Store.ListVocabulary(ctx)
		if err != nil {
			deps.Logger.Error("clusters: load vocabulary failed", "error", err)
			return ErrorResult("Loading vocabulary failed", "Database may be unavailable"), nil, nil
		}

		linkSet, err := deps.Linker.SuggestLinks(ctx, vocab, service.DefaultSuggestOptions())
		if err != nil {
			return ErrorResult("Link discovery failed", err.Error()), nil, nil
		}

		assignments, err := deps.Linker.Clusters(linkSet, algorithm)
		if err != nil {
			return ErrorResult(err.Error(), "Use louvain or walktrap"), nil, nil
		}

		jsonBytes, _ := json.MarshalIndent(assignments, "", "  ")
		deps.Logger.Info("clusters completed", "algorithm", string(algorithm), "nodes", len(assignments))
		return TextResult(string(jsonBytes)), nil, nil
	}
}
