package embedder

import "context"

// Embedder turns a batch of texts into vectors in one call. The result has
// the same length and order as the input.
type Embedder interface {
	Embed(ctx context.Context, texts []string) ([][]float32, error)
}
