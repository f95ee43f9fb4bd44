package openai

import (
	"context"
	"errors"

	"github.com/panoptisDev/panoptis-ai-app-chat/embedder"
	"github.com/sashabaranov/go-openai"
)

type openAIEmbedder struct {
	options embedder.Options
	client  *openai.Client
}

func (e *openAIEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	rsp, err := e.client.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Input: texts,
		Model: openai.EmbeddingModel(e.options.Model),
	})
	if err != nil {
		return nil, err
	}

	if len(rsp.Data) != len(texts) {
		return nil, errors.New("no response from OpenAI")
	}

	vecs := make([][]float32, len(rsp.Data))
	for i, d := range rsp.Data {
		if len(d.Embedding) == 0 {
			return nil, errors.New("no response from OpenAI")
		}
		vecs[i] = d.Embedding
	}

	return vecs, nil
}

func NewEmbedder(opts ...embedder.Option) embedder.Embedder {
	options := embedder.NewOptions(opts...)

	e := &openAIEmbedder{
		options: options,
	}

	client := openai.NewClient(options.ApiKey)

	e.client = client

	return e
}
