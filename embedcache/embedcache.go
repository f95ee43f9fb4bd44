package embedcache

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
)

// Cache stores document embeddings keyed by content. A key is derived from
// the document id and its content, so edited content never serves a stale
// vector. Lookups that miss return ok == false, not an error.
type Cache interface {
	Get(ctx context.Context, key string) ([]float32, bool, error)
	Put(ctx context.Context, key string, vector []float32) error
}

// Key derives the cache key for a document's current content.
func Key(id string, content string) string {
	sum := sha256.Sum256([]byte(id + "\x00" + content))
	return hex.EncodeToString(sum[:])
}
