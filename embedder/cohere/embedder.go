package cohere

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"

	"github.com/panoptisDev/panoptis-ai-app-chat/embedder"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const defaultLocation = "https://api.cohere.com"

type cohereEmbedder struct {
	options embedder.Options
	client  *http.Client
}

func (e *cohereEmbedder) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	payload := map[string]any{
		"texts":      texts,
		"model":      e.options.Model,
		"input_type": e.options.InputType,
	}

	bs, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(
		ctx,
		http.MethodPost,
		fmt.Sprintf("%s/v1/embed", e.options.Location),
		bytes.NewReader(bs),
	)
	if err != nil {
		return nil, err
	}

	req.Header.Add("Content-Type", "application/json")
	req.Header.Add("Authorization", "Bearer "+e.options.ApiKey)

	rsp, err := e.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer rsp.Body.Close()

	if rsp.StatusCode >= 400 {
		return nil, fmt.Errorf("status: %s", rsp.Status)
	}

	var res struct {
		Embeddings [][]float32 `json:"embeddings"`
	}

	if err := json.NewDecoder(rsp.Body).Decode(&res); err != nil {
		return nil, err
	}

	if len(res.Embeddings) != len(texts) {
		return nil, errors.New("no valid embeddings returned from Cohere")
	}

	return res.Embeddings, nil
}

func NewEmbedder(opts ...embedder.Option) embedder.Embedder {
	options := embedder.NewOptions(opts...)

	if len(options.Location) == 0 {
		options.Location = defaultLocation
	}

	if len(options.Model) == 0 {
		options.Model = "embed-english-v3.0"
	}

	e := &cohereEmbedder{
		options: options,
		client: &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}

	return e
}
