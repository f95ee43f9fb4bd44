package cohere

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/panoptisDev/panoptis-ai-app-chat/generator"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerate(t *testing.T) {
	t.Run("sends the fixed parameters and returns the first generation", func(t *testing.T) {
		var body struct {
			Model         string   `json:"model"`
			Prompt        string   `json:"prompt"`
			MaxTokens     int      `json:"max_tokens"`
			Temperature   float32  `json:"temperature"`
			StopSequences []string `json:"stop_sequences"`
		}

		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/v1/generate", r.URL.Path)
			assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))

			require.NoError(t, json.NewDecoder(r.Body).Decode(&body))

			json.NewEncoder(w).Encode(map[string]any{
				"generations": []map[string]string{
					{"text": " the first reply "},
					{"text": "the second reply"},
				},
			})
		}))
		defer srv.Close()

		g := NewGenerator(
			generator.WithApiKey("test-key"),
			generator.WithLocation(srv.URL),
			generator.WithStopSequences("Human:", "İnsan:"),
		)

		text, err := g.Generate(context.Background(), "a prompt")

		require.NoError(t, err)
		assert.Equal(t, " the first reply ", text)

		assert.Equal(t, "command", body.Model)
		assert.Equal(t, "a prompt", body.Prompt)
		assert.Equal(t, 300, body.MaxTokens)
		assert.InDelta(t, 0.7, body.Temperature, 1e-6)
		assert.Equal(t, []string{"Human:", "İnsan:"}, body.StopSequences)
	})

	t.Run("no generations is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			json.NewEncoder(w).Encode(map[string]any{"generations": []map[string]string{}})
		}))
		defer srv.Close()

		g := NewGenerator(
			generator.WithApiKey("test-key"),
			generator.WithLocation(srv.URL),
		)

		_, err := g.Generate(context.Background(), "a prompt")

		assert.Error(t, err)
	})

	t.Run("a service error is an error", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			http.Error(w, "rate limited", http.StatusTooManyRequests)
		}))
		defer srv.Close()

		g := NewGenerator(
			generator.WithApiKey("test-key"),
			generator.WithLocation(srv.URL),
		)

		_, err := g.Generate(context.Background(), "a prompt")

		assert.Error(t, err)
	})
}
