package tools

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rvisser/bowlink/internal/service"
)

// FindPathsInput defines the input schema for the find_paths tool.
type FindPathsInput struct {
	From      string `json:"from" jsonschema:"required,Starting item ID"`
	To        string `json:"to" jsonschema:"required,Target item ID"`
	MaxLength int    `json:"max_length,omitempty" jsonschema:"Maximum path length in edges 1-10 (default 3)"`
}

// FindPathsResult is the response from the find_paths tool.
type FindPathsResult struct {
	PathsFound int    `json:"paths_found"`
	Paths      any    `json:"paths,omitempty"`
	Message    string `json:"message,omitempty"`
}

// NewFindPathsHandler creates the find_paths tool handler.
// Enumerates bounded simple paths between two vocabulary items over
// the discovered links.
func NewFindPathsHandler(deps *Dependencies) mcp.ToolHandlerFor[FindPathsInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input FindPathsInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.From == "" {
			return ErrorResult("from cannot be empty", "Provide starting item ID"), nil, nil
		}
		if input.To == "" {
			return ErrorResult("to cannot be empty", "Provide target item ID"), nil, nil
		}

		maxLength := input.MaxLength
		if maxLength <= 0 {
			maxLength = 3
		}
		if maxLength > 10 {
			return ErrorResult("max_length must be between 1 and 10", "Reduce max_length value"), nil, nil
		}

		vocab, err := deps.Store.ListVocabulary(ctx)
		if err != nil {
			deps.Logger.Error("find_paths: load vocabulary failed", "error", err)
			return ErrorResult("Loading vocabulary failed", "Database may be unavailable"), nil, nil
		}

		linkSet, err := deps.Linker.SuggestLinks(ctx, vocab, service.DefaultSuggestOptions())
		if err != nil {
			return ErrorResult("Link discovery failed", err.Error()), nil, nil
		}

		paths := deps.Linker.Paths(linkSet, input.From, input.To, maxLength)

		result := FindPathsResult{PathsFound: len(paths)}
		if len(paths) == 0 {
			result.Message = fmt.Sprintf("No path found between %s and %s within %d hops", input.From, input.To, maxLength)
		} else {
			result.Paths = paths
		}

		jsonBytes, _ := json.MarshalIndent(result, "", "  ")
		deps.Logger.Info("find_paths completed", "from", input.From, "to", input.To, "paths", len(paths))
		return TextResult(string(jsonBytes)), nil, nil
	}
}
