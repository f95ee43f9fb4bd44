package web

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"

	"github.com/panoptisDev/panoptis-ai-app-chat/docstore"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

type webLoader struct {
	options docstore.Options
	client  *http.Client
}

// Load fetches every catalog entry concurrently. A failing fetch substitutes
// the sentinel content and never aborts the rest of the corpus.
func (l *webLoader) Load(ctx context.Context, catalog []docstore.CatalogEntry) []docstore.Document {
	docs := make([]docstore.Document, len(catalog))

	var wg sync.WaitGroup

	for i, entry := range catalog {
		wg.Add(1)
		go func(i int, entry docstore.CatalogEntry) {
			defer wg.Done()

			content, err := l.fetch(ctx, entry)
			if err != nil {
				slog.WarnContext(ctx, "failed to load document", "id", entry.Id, "path", entry.Path, "error", err)
				content = docstore.FallbackContent(entry.Title)
			}

			docs[i] = docstore.Document{
				Id:      entry.Id,
				Title:   entry.Title,
				Path:    entry.Path,
				Content: content,
			}
		}(i, entry)
	}

	wg.Wait()

	return docs
}

func (l *webLoader) fetch(ctx context.Context, entry docstore.CatalogEntry) (string, error) {
	location := entry.Path
	if !strings.HasPrefix(location, "http://") && !strings.HasPrefix(location, "https://") {
		location = l.options.Location + entry.Path
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, location, nil)
	if err != nil {
		return "", err
	}

	rsp, err := l.client.Do(req)
	if err != nil {
		return "", err
	}
	defer rsp.Body.Close()

	if rsp.StatusCode >= 300 {
		return "", fmt.Errorf("status: %s", rsp.Status)
	}

	bs, err := io.ReadAll(rsp.Body)
	if err != nil {
		return "", err
	}

	return string(bs), nil
}

func NewLoader(opts ...docstore.Option) docstore.Loader {
	options := docstore.NewOptions(opts...)

	l := &webLoader{
		options: options,
	}

	if options.Client != nil {
		l.client = options.Client
	} else {
		l.client = &http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		}
	}

	return l
}
