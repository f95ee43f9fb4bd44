package main

import (
	"context"
	"log"
	"log/slog"
	"os/signal"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/joho/godotenv"
	assistant "github.com/panoptisDev/panoptis-ai-app-chat"
	"github.com/panoptisDev/panoptis-ai-app-chat/docstore"
	"github.com/panoptisDev/panoptis-ai-app-chat/docstore/web"
	"github.com/panoptisDev/panoptis-ai-app-chat/embedcache"
	memorycache "github.com/panoptisDev/panoptis-ai-app-chat/embedcache/memory"
	postgrescache "github.com/panoptisDev/panoptis-ai-app-chat/embedcache/postgres"
	"github.com/panoptisDev/panoptis-ai-app-chat/embedder"
	cohereembedder "github.com/panoptisDev/panoptis-ai-app-chat/embedder/cohere"
	googleembedder "github.com/panoptisDev/panoptis-ai-app-chat/embedder/google"
	openaiembedder "github.com/panoptisDev/panoptis-ai-app-chat/embedder/openai"
	"github.com/panoptisDev/panoptis-ai-app-chat/generator"
	anthropicgenerator "github.com/panoptisDev/panoptis-ai-app-chat/generator/anthropic"
	coheregenerator "github.com/panoptisDev/panoptis-ai-app-chat/generator/cohere"
	openaigenerator "github.com/panoptisDev/panoptis-ai-app-chat/generator/openai"
	"github.com/panoptisDev/panoptis-ai-app-chat/server"
	httpserver "github.com/panoptisDev/panoptis-ai-app-chat/server/http"
)

var (
	cfg struct {
		// Server config
		Address string `help:"Address the API server listens on" default:":4000"`

		// Corpus config
		DocsLocation string `help:"Base address the catalog paths are fetched from" default:"http://localhost:3000"`

		// Embedder config
		EmbedderProvider string `help:"Embedding provider (cohere, openai, google)" default:"cohere"`
		Embedder         string `help:"Model identifier for embeddings" default:"embed-english-v3.0"`
		EmbedderKey      string `help:"API key for the embedder" env:"EMBEDDER_API_KEY" default:""`

		// Generator config
		GeneratorProvider string  `help:"Generation provider (cohere, openai, anthropic)" default:"cohere"`
		Generator         string  `help:"Model identifier for generation" default:"command"`
		GeneratorKey      string  `help:"API key for the generator" env:"GENERATOR_API_KEY" default:""`
		MaxTokens         int     `help:"Maximum tokens per reply" default:"300"`
		Temperature       float32 `help:"Sampling temperature" default:"0.7"`

		// Cache config
		CacheLocation string `help:"Postgres address for the embedding cache; in-memory when empty" default:""`

		// Assistant config
		Persona string `help:"Persona instruction for the assistant" default:""`
	}
)

func main() {
	_ = godotenv.Load()
	_ = kong.Parse(&cfg)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	a := assistant.New(
		ctx,
		web.NewLoader(docstore.WithLocation(cfg.DocsLocation)),
		docstore.DefaultCatalog(),
		newEmbedder(),
		newGenerator(),
		newCache(),
		cfg.Persona,
	)

	srv := httpserver.NewServer(
		a,
		server.WithAddress(cfg.Address),
	)

	go func() {
		if err := srv.Run(); err != nil {
			log.Fatalf("server error: %v", err)
		}
	}()

	<-ctx.Done()

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := srv.Stop(shutdownCtx); err != nil {
		slog.Error("failed to stop server", "error", err)
	}
}

func newEmbedder() embedder.Embedder {
	opts := []embedder.Option{
		embedder.WithApiKey(cfg.EmbedderKey),
		embedder.WithModel(cfg.Embedder),
		embedder.WithInputType("search_query"),
	}

	switch cfg.EmbedderProvider {
	case "openai":
		return openaiembedder.NewEmbedder(opts...)
	case "google":
		return googleembedder.NewEmbedder(opts...)
	default:
		return cohereembedder.NewEmbedder(opts...)
	}
}

func newGenerator() generator.Generator {
	opts := []generator.Option{
		generator.WithApiKey(cfg.GeneratorKey),
		generator.WithModel(cfg.Generator),
		generator.WithMaxTokens(cfg.MaxTokens),
		generator.WithTemperature(cfg.Temperature),
		generator.WithStopSequences("Human:", "İnsan:"),
	}

	switch cfg.GeneratorProvider {
	case "openai":
		return openaigenerator.NewGenerator(opts...)
	case "anthropic":
		return anthropicgenerator.NewGenerator(opts...)
	default:
		return coheregenerator.NewGenerator(opts...)
	}
}

func newCache() embedcache.Cache {
	if len(cfg.CacheLocation) == 0 {
		return memorycache.NewCache()
	}
	return postgrescache.NewCache(embedcache.WithLocation(cfg.CacheLocation))
}
