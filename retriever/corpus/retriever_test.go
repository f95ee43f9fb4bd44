package corpus

import (
	"context"
	"errors"
	"testing"

	"github.com/panoptisDev/panoptis-ai-app-chat/docstore"
	memorycache "github.com/panoptisDev/panoptis-ai-app-chat/embedcache/memory"
	"github.com/panoptisDev/panoptis-ai-app-chat/retriever"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEmbedder answers any batch from a fixed text-to-vector table and
// records every batch it receives.
type fakeEmbedder struct {
	vectors  map[string][]float32
	batches  [][]string
	err      error
	truncate bool
}

func (f *fakeEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	f.batches = append(f.batches, append([]string(nil), texts...))

	if f.err != nil {
		return nil, f.err
	}

	out := make([][]float32, len(texts))
	for i, text := range texts {
		out[i] = f.vectors[text]
	}

	if f.truncate && len(out) > 0 {
		out = out[:len(out)-1]
	}

	return out, nil
}

func corpusDocs() []docstore.Document {
	return []docstore.Document{
		{Id: "features", Title: "App Features", Content: "feature text"},
		{Id: "pricing", Title: "Pricing Information", Content: "pricing text"},
	}
}

func TestRetrieve(t *testing.T) {
	t.Run("returns the best document above the threshold", func(t *testing.T) {
		emb := &fakeEmbedder{vectors: map[string][]float32{
			"feature text":   {1, 0},
			"pricing text":   {0, 1},
			"what can it do": {0.9, 0.1},
		}}

		re := NewRetriever(
			retriever.WithDocuments(corpusDocs()),
			retriever.WithEmbedder(emb),
		)

		result, err := re.Retrieve(context.Background(), "what can it do")

		require.NoError(t, err)
		require.NotNil(t, result)
		assert.Equal(t, "features", result.Id)
		assert.Equal(t, "App Features", result.Title)
		assert.Equal(t, "feature text", result.Content)
		assert.Greater(t, result.Score, 0.05)
	})

	t.Run("the query is the last element of the batch", func(t *testing.T) {
		emb := &fakeEmbedder{vectors: map[string][]float32{
			"feature text": {1, 0},
			"pricing text": {0, 1},
			"hello":        {1, 0},
		}}

		re := NewRetriever(
			retriever.WithDocuments(corpusDocs()),
			retriever.WithEmbedder(emb),
		)

		_, err := re.Retrieve(context.Background(), "hello")

		require.NoError(t, err)
		require.Len(t, emb.batches, 1)
		require.Equal(t, []string{"feature text", "pricing text", "hello"}, emb.batches[0])
	})

	t.Run("zero similarity resolves to no match", func(t *testing.T) {
		emb := &fakeEmbedder{vectors: map[string][]float32{
			"feature text": {1, 0},
			"pricing text": {1, 0},
			"orthogonal":   {0, 1},
		}}

		re := NewRetriever(
			retriever.WithDocuments(corpusDocs()),
			retriever.WithEmbedder(emb),
		)

		result, err := re.Retrieve(context.Background(), "orthogonal")

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("a score equal to the threshold is rejected", func(t *testing.T) {
		emb := &fakeEmbedder{vectors: map[string][]float32{
			"feature text": {2, 0},
			"pricing text": {0, 1},
			"exact":        {1, 0},
		}}

		re := NewRetriever(
			retriever.WithDocuments(corpusDocs()),
			retriever.WithEmbedder(emb),
			retriever.WithMinScore(1.0),
		)

		result, err := re.Retrieve(context.Background(), "exact")

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("an embedding failure resolves to no match", func(t *testing.T) {
		emb := &fakeEmbedder{err: errors.New("service unavailable")}

		re := NewRetriever(
			retriever.WithDocuments(corpusDocs()),
			retriever.WithEmbedder(emb),
		)

		result, err := re.Retrieve(context.Background(), "anything")

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("a malformed result resolves to no match", func(t *testing.T) {
		emb := &fakeEmbedder{
			vectors: map[string][]float32{
				"feature text": {1, 0},
				"pricing text": {0, 1},
				"short":        {1, 0},
			},
			truncate: true,
		}

		re := NewRetriever(
			retriever.WithDocuments(corpusDocs()),
			retriever.WithEmbedder(emb),
		)

		result, err := re.Retrieve(context.Background(), "short")

		require.NoError(t, err)
		assert.Nil(t, result)
	})

	t.Run("an empty corpus resolves to no match", func(t *testing.T) {
		emb := &fakeEmbedder{}

		re := NewRetriever(
			retriever.WithEmbedder(emb),
		)

		result, err := re.Retrieve(context.Background(), "anything")

		require.NoError(t, err)
		assert.Nil(t, result)
		assert.Empty(t, emb.batches)
	})

	t.Run("cached documents are not re-embedded", func(t *testing.T) {
		emb := &fakeEmbedder{vectors: map[string][]float32{
			"feature text": {1, 0},
			"pricing text": {0, 1},
			"first":        {0.9, 0.1},
			"second":       {0.1, 0.9},
		}}

		re := NewRetriever(
			retriever.WithDocuments(corpusDocs()),
			retriever.WithEmbedder(emb),
			retriever.WithCache(memorycache.NewCache()),
		)

		first, err := re.Retrieve(context.Background(), "first")
		require.NoError(t, err)
		require.NotNil(t, first)
		assert.Equal(t, "features", first.Id)
		require.Equal(t, []string{"feature text", "pricing text", "first"}, emb.batches[0])

		second, err := re.Retrieve(context.Background(), "second")
		require.NoError(t, err)
		require.NotNil(t, second)
		assert.Equal(t, "pricing", second.Id)
		require.Len(t, emb.batches, 2)
		require.Equal(t, []string{"second"}, emb.batches[1])
	})
}
