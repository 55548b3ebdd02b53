// Package embedding provides text embedding generation for the
// optional embedding similarity method.
package embedding

import "context"

// Embedder generates embedding vectors for vocabulary item names.
type Embedder interface {
	// Embed generates an embedding vector for a single text.
	Embed(ctx context.Context, text string) ([]float32, error)

	// EmbedBatch generates embeddings for multiple texts. More
	// efficient than repeated Embed calls for a full vocabulary.
	EmbedBatch(ctx context.Context, texts []string) ([][]float32, error)

	// Model returns the embedding model name.
	Model() string

	// Dimension returns the embedding vector dimension.
	Dimension() int
}
