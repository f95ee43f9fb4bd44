package corpus

import (
	"context"
	"errors"
	"log/slog"

	"github.com/panoptisDev/panoptis-ai-app-chat/embedcache"
	"github.com/panoptisDev/panoptis-ai-app-chat/retriever"
)

type corpusRetriever struct {
	options retriever.Options
}

// Retrieve embeds the corpus and the query in one batched call, with the
// query as the last element, and returns the best-scoring document above
// the minimum-confidence threshold. Embedding failures and sub-threshold
// scores both resolve to (nil, nil).
func (r *corpusRetriever) Retrieve(ctx context.Context, query string) (*retriever.Result, error) {
	docs := r.options.Documents
	if len(docs) == 0 {
		return nil, nil
	}

	docVecs := make([][]float32, len(docs))

	var missing []int
	for i, doc := range docs {
		if vec, ok := r.cached(ctx, embedcache.Key(doc.Id, doc.Content)); ok {
			docVecs[i] = vec
			continue
		}
		missing = append(missing, i)
	}

	texts := make([]string, 0, len(missing)+1)
	for _, i := range missing {
		texts = append(texts, docs[i].Content)
	}
	texts = append(texts, query)

	vecs, err := r.options.Embedder.Embed(ctx, texts)
	if err != nil {
		slog.WarnContext(ctx, "failed to embed corpus and query", "error", err)
		return nil, nil
	}

	if len(vecs) != len(texts) {
		slog.WarnContext(ctx, "embedder returned wrong arity", "want", len(texts), "got", len(vecs))
		return nil, nil
	}

	// the query embedding is always the last element
	queryVec := vecs[len(vecs)-1]

	for n, i := range missing {
		docVecs[i] = vecs[n]
		r.store(ctx, embedcache.Key(docs[i].Id, docs[i].Content), vecs[n])
	}

	idx, score := retriever.BestMatch(queryVec, docVecs)
	if idx == -1 || score <= r.options.MinScore {
		slog.DebugContext(ctx, "no matching document found", "score", score)
		return nil, nil
	}

	slog.DebugContext(ctx, "best match", "title", docs[idx].Title, "score", score)

	return &retriever.Result{
		Id:      docs[idx].Id,
		Title:   docs[idx].Title,
		Content: docs[idx].Content,
		Score:   score,
	}, nil
}

func (r *corpusRetriever) cached(ctx context.Context, key string) ([]float32, bool) {
	if r.options.Cache == nil {
		return nil, false
	}

	vec, ok, err := r.options.Cache.Get(ctx, key)
	if err != nil {
		slog.WarnContext(ctx, "embedding cache get failed", "error", err)
		return nil, false
	}

	return vec, ok
}

func (r *corpusRetriever) store(ctx context.Context, key string, vec []float32) {
	if r.options.Cache == nil {
		return
	}

	if err := r.options.Cache.Put(ctx, key, vec); err != nil {
		slog.WarnContext(ctx, "embedding cache put failed", "error", err)
	}
}

func NewRetriever(opts ...retriever.Option) retriever.Retriever {
	options := retriever.NewOptions(opts...)

	if options.Embedder == nil {
		panic(errors.New("embedder is required"))
	}

	r := &corpusRetriever{
		options: options,
	}

	return r
}
