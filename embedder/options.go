package embedder

import "context"

type Option func(*Options)

type Options struct {
	ApiKey    string
	Model     string
	InputType string
	Location  string
	Context   context.Context
}

func WithApiKey(apiKey string) Option {
	return func(o *Options) {
		o.ApiKey = apiKey
	}
}

func WithModel(model string) Option {
	return func(o *Options) {
		o.Model = model
	}
}

// WithInputType sets the provider's input-type hint, e.g. "search_query".
// Providers without the concept ignore it.
func WithInputType(inputType string) Option {
	return func(o *Options) {
		o.InputType = inputType
	}
}

func WithLocation(loc string) Option {
	return func(o *Options) {
		o.Location = loc
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		InputType: "search_query",
		Context:   context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
