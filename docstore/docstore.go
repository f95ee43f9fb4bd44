package docstore

import "context"

// Loader fetches the content of every catalog entry. The returned corpus
// preserves catalog order and always has the same length as the catalog,
// even when individual fetches fail.
type Loader interface {
	Load(ctx context.Context, catalog []CatalogEntry) []Document
}
