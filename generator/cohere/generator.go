package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/panoptisDev/panoptis-ai-app-chat/generator"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultLocation = "https://api.cohere.com"

type cohereGenerator struct {
	options generator.Options
	client  *http.Client
}

func (g *cohereGenerator) Generate(ctx context.Context, prompt string) (string, error) {
	payload := map[string]any{
		"model":       g.options.Model,
		"prompt":      prompt,
		"max_tokens":  g.options.MaxTokens,
		"temperature": g.options.Temperature,
		"k":           0,
	}
	if len(g.options.StopSequences) > 0 {
		payload["stop_sequences"] = g.options.StopSequences
	}

	bs, err := json.Marshal(payload)
	if err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("%s/v1/generate", g.options.Location),
		bytes.NewReader(bs),
	)
	if err != nil {
		return "", err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+g.options.ApiKey)

	rsp, err := g.client.Do(req)
	if err != nil {
		return "", err
	}
	defer rsp.Body.Close()

	if rsp.StatusCode >= 400 {
		return "", fmt.Errorf("status: %s", rsp.Status)
	}

	var res struct {
		Generations []struct {
			Text string `json:"text"`
		} `json:"generations"`
	}

	if err := json.NewDecoder(rsp.Body).Decode(&res); err != nil {
		return "", err
	}

	if len(res.Generations) == 0 {
		return "", errors.New("no response from Cohere")
	}

	return res.Generations[0].Text, nil
}

func NewGenerator(opts ...generator.Option) generator.Generator {
	options := generator.NewOptions(opts...)

	if len(options.Location) == 0 {
		options.Location = defaultLocation
	}

	if len(options.Model) == 0 {
		options.Model = "command"
	}

	g := &cohereGenerator{
		options: options,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	return g
}
