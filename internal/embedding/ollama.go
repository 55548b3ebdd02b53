package embedding

import (
	"context"
	"fmt"

	"github.com/tmc/langchaingo/embeddings"
	"github.com/tmc/langchaingo/llms/ollama"
)

// OllamaEmbedder wraps a langchaingo Ollama embedder with dimension
// validation.
type OllamaEmbedder struct {
	model     embeddings.Embedder
	modelName string
	dimension int
}

var _ Embedder = (*OllamaEmbedder)(nil)

// NewOllama creates an Ollama-backed embedder.
func NewOllama(host, model string, dimension int) (*OllamaEmbedder, error) {
	llm, err := ollama.New(
		ollama.WithModel(model),
		ollama.WithServerURL(host),
	)
	if err != nil {
		return nil, fmt.Errorf("create ollama client: %w", err)
	}

	embedder, err := embeddings.NewEmbedder(llm)
	if err != nil {
		return nil, fmt.Errorf("create ollama embedder: %w", err)
	}

	return &OllamaEmbedder{
		model:     embedder,
		modelName: model,
		dimension: dimension,
	}, nil
}

// Model returns the embedding model name.
func (e *OllamaEmbedder) Model() string {
	return e.modelName
}

// Dimension returns the expected embedding dimension.
func (e *OllamaEmbedder) Dimension() int {
	return e.dimension
}

// Embed generates an embedding vector for text.
func (e *OllamaEmbedder) Embed(ctx context.Context, text string) ([]float32, error) {
	vectors, err := e.model.EmbedDocuments(ctx, []string{text})
	if err != nil {
		return nil, fmt.Errorf("embed: %w", err)
	}
	if len(vectors) == 0 {
		return nil, fmt.Errorf("no embedding returned")
	}
	if len(vectors[0]) != e.dimension {
		return nil, fmt.Errorf("dimension mismatch: got %d, want %d", len(vectors[0]), e.dimension)
	}
	return vectors[0], nil
}

// EmbedBatch generates embeddings for multiple texts.
func (e *OllamaEmbedder) EmbedBatch(ctx context.Context, texts []string) ([][]float32, error) {
	if len(texts) == 0 {
		return [][]float32{}, nil
	}

	vectors, err := e.model.EmbedDocuments(ctx, texts)
	if err != nil {
		return nil, fmt.Errorf("embed batch: %w", err)
	}
	if len(vectors) != len(texts) {
		return nil, fmt.Errorf("count mismatch: got %d, want %d", len(vectors), len(texts))
	}
	for i, v := range vectors {
		if len(v) != e.dimension {
			return nil, fmt.Errorf("embedding %d dimension mismatch: got %d, want %d", i, len(v), e.dimension)
		}
	}
	return vectors, nil
}
