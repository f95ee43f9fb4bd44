package retriever

import (
	"context"

	"github.com/panoptisDev/panoptis-ai-app-chat/docstore"
	"github.com/panoptisDev/panoptis-ai-app-chat/embedcache"
	"github.com/panoptisDev/panoptis-ai-app-chat/embedder"
)

type Option func(*Options)

type Options struct {
	Documents []docstore.Document
	Embedder  embedder.Embedder
	Cache     embedcache.Cache
	MinScore  float64
	Context   context.Context
}

func WithDocuments(docs []docstore.Document) Option {
	return func(o *Options) {
		o.Documents = docs
	}
}

func WithEmbedder(embedder embedder.Embedder) Option {
	return func(o *Options) {
		o.Embedder = embedder
	}
}

func WithCache(cache embedcache.Cache) Option {
	return func(o *Options) {
		o.Cache = cache
	}
}

// WithMinScore sets the minimum-confidence threshold. A best match is only
// returned when its score is strictly greater than this value.
func WithMinScore(minScore float64) Option {
	return func(o *Options) {
		o.MinScore = minScore
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		MinScore: 0.05,
		Context:  context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
