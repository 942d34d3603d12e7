package contract

import "context"

// Embedder produces a fixed-dimension vector embedding for a piece of text.
// Implementations must be deterministic for identical input under a fixed
// model identity, and safe for concurrent use. Failure to embed must surface
// as an error; an Embedder never substitutes a zero vector for a failure.
type Embedder interface {
	Embed(ctx context.Context, text string) ([]float64, error)
}
