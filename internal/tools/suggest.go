package tools

import (
	"context"
	"encoding/json"

	"github.com/modelcontextprotocol/go-sdk/mcp"

	"github.com/rvisser/bowlink/internal/service"
)

// SuggestLinksInput defines the input schema for the suggest_links tool.
type SuggestLinksInput struct {
	Threshold  float64  `json:"threshold,omitempty" jsonschema:"Minimum similarity score 0-1 (default 0.3)"`
	MaxPerItem int      `json:"max_per_item,omitempty" jsonschema:"Out-degree cap per source item (default 10)"`
	Methods    []string `json:"methods,omitempty" jsonschema:"Similarity methods: jaccard, cosine, string, embedding (default jaccard)"`
	SkipThemes bool     `json:"skip_themes,omitempty" jsonschema:"Skip the keyword-theme matcher"`
	SkipCausal bool     `json:"skip_causal,omitempty" jsonschema:"Skip the causal-pattern matcher"`
}

// NewSuggestLinksHandler creates the suggest_links tool handler.
// Runs the discovery pipeline over the stored vocabulary.
func NewSuggestLinksHandler(deps *Dependencies) mcp.ToolHandlerFor[SuggestLinksInput, any] {
	return func(ctx context.Context, req *mcp.CallToolRequest, input SuggestLinksInput) (
		*mcp.CallToolResult, any, error,
	) {
		if input.Threshold < 0 || input.Threshold > 1 {
			return ErrorResult("threshold must be between 0 and 1", "Adjust threshold value"), nil, nil
		}

		vocab, err := deps.Store.ListVocabulary(ctx)
		if err != nil {
			deps.Logger.Error("suggest_links: load vocabulary failed", "error", err)
			return ErrorResult("Loading vocabulary failed", "Database may be unavailable"), nil, nil
		}
		if vocab.Len() == 0 {
			return TextResult("[]"), nil, nil
		}

		opts := service.SuggestOptions{
			Threshold:    input.Threshold,
			MaxPerSource: input.MaxPerItem,
			Methods:      input.Methods,
			Themes:       !input.SkipThemes,
			Causal:       !input.SkipCausal,
		}
		linkSet, err := deps.Linker.SuggestLinks(ctx, vocab, opts)
		if err != nil {
			return ErrorResult(err.Error(), "Check methods are one of jaccard, cosine, string, embedding"), nil, nil
		}

		jsonBytes, _ := json.MarshalIndent(linkSet, "", "  ")
		deps.Logger.Info("suggest_links completed", "items", vocab.Len(), "links", len(linkSet))
		return TextResult(string(jsonBytes)), nil, nil
	}
}
