package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rvisser/bowlink/internal/models"
)

// RecommendInput defines the input schema for the recommend tool.
type RecommendInput struct {
	IncludeAccepted bool `json:"include_accepted,omitempty" jsonschema:"Do not exclude already-accepted link pairs"`
}

// NewRecommendHandler creates the recommend tool handler.
// Returns the top-ranked link suggestions for human review.
func NewRecommendHandler(deps *Dependencies) mcp.ToolHandlerFor[RecommendInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input RecommendInput) (
		*mcp.CallToolResult, any, error,
	) {
		vocab, err := deps.Store.ListVocabulary(ctx)
		if err != nil {
			deps.Logger.Error("recommend: load vocabulary failed", "error", err)
			return ErrorResult("Loading vocabulary failed", "Database may be unavailable"), nil, nil
		}
		if vocab.Len() == 0 {
			return TextResult("[]"), nil, nil
		}

		var existing []models.PairKey
		if !input.IncludeAccepted {
			existing, err = deps.Store.ListAcceptedPairs(ctx)
			if err != nil {
				deps.Logger.Error("recommend: load accepted links failed", "error", err)
				return ErrorResult("Loading accepted links failed", "Database may be unavailable"), nil, nil
			}
		}

		recs, err := deps.Linker.Recommend(ctx, vocab, existing)
		if err != nil {
			return ErrorResult("Recommendation failed", err.Error()), nil, nil
		}

		jsonBytes, _ := json.MarshalIndent(recs, "", "  ")
		deps.Logger.Info("recommend completed", "items", vocab.Len(), "recommendations", len(recs))
		return TextResult(string(jsonBytes)), nil, nil
	}
}
