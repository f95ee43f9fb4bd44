package assistant

import (
	"context"

	"github.com/panoptisDev/panoptis-ai-app-chat/docstore"
	"github.com/panoptisDev/panoptis-ai-app-chat/embedcache"
	"github.com/panoptisDev/panoptis-ai-app-chat/embedder"
	"github.com/panoptisDev/panoptis-ai-app-chat/generator"
	"github.com/panoptisDev/panoptis-ai-app-chat/internal/service/chat"
	"github.com/panoptisDev/panoptis-ai-app-chat/override"
	"github.com/panoptisDev/panoptis-ai-app-chat/retriever"
	"github.com/panoptisDev/panoptis-ai-app-chat/retriever/corpus"
)

// Turn is one message in a conversation transcript.
type Turn = chat.Turn

var (
	ErrNotFound   = chat.ErrNotFound
	ErrEmptyInput = chat.ErrEmptyInput
	ErrBusy       = chat.ErrBusy
)

// Assistant answers questions grounded in the product documentation corpus.
type Assistant struct {
	chat *chat.Service
}

func (a *Assistant) NewConversation(ctx context.Context) string {
	return a.chat.NewConversation(ctx)
}

func (a *Assistant) Send(ctx context.Context, conversationId string, message string) (string, error) {
	return a.chat.Send(ctx, conversationId, message)
}

func (a *Assistant) Turns(ctx context.Context, conversationId string) ([]Turn, error) {
	return a.chat.Turns(ctx, conversationId)
}

func (a *Assistant) Documents(ctx context.Context) []docstore.Document {
	return a.chat.Documents(ctx)
}

// New loads the corpus once and wires the retrieval pipeline. The corpus is
// read-only for the life of the process.
func New(
	ctx context.Context,
	loader docstore.Loader,
	catalog []docstore.CatalogEntry,
	emb embedder.Embedder,
	gen generator.Generator,
	cache embedcache.Cache,
	persona string,
) *Assistant {
	documents := loader.Load(ctx, catalog)

	re := corpus.NewRetriever(
		retriever.WithDocuments(documents),
		retriever.WithEmbedder(emb),
		retriever.WithCache(cache),
	)

	service := chat.New(
		re,
		gen,
		override.NewResolver(),
		documents,
		persona,
	)

	return &Assistant{
		chat: service,
	}
}
