package openai

import (
	"context"
	"errors"

	"github.com/panoptisDev/panoptis-ai-app-chat/generator"
	"github.com/sashabaranov/go-openai"
)

type openAIGenerator struct {
	options generator.Options
	client  *openai.Client
}

func (g *openAIGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	req := openai.CompletionRequest{
		Model:       g.options.Model,
		Prompt:      prompt,
		MaxTokens:   g.options.MaxTokens,
		Temperature: g.options.Temperature,
		Stop:        g.options.StopSequences,
	}

	rsp, err := g.client.CreateCompletion(ctx, req)
	if err != nil {
		return "", err
	}

	if len(rsp.Choices) == 0 || len(rsp.Choices[0].Text) == 0 {
		return "", errors.New("no response from OpenAI")
	}

	return rsp.Choices[0].Text, nil
}

func NewGenerator(opts ...generator.Option) generator.Generator {
	options := generator.NewOptions(opts...)

	g := &openAIGenerator{
		options: options,
	}

	client := openai.NewClient(options.ApiKey)

	g.client = client

	return g
}
