package generator

import "context"

type Option func(*Options)

type Options struct {
	ApiKey        string
	Model         string
	MaxTokens     int
	Temperature   float32
	StopSequences []string
	Location      string
	Context       context.Context
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

func WithMaxTokens(maxTokens int) Option {
	return func(o *Options) {
		o.MaxTokens = maxTokens
	}
}

func WithTemperature(temperature float32) Option {
	return func(o *Options) {
		o.Temperature = temperature
	}
}

func WithStopSequences(stops ...string) Option {
	return func(o *Options) {
		o.StopSequences = stops
	}
}

func WithLocation(loc string) Option {
	return func(o *Options) {
		o.Location = loc
	}
}

func NewOptions(opts ...Option) Options {
	options := Options{
		MaxTokens:   300,
		Temperature: 0.7,
		Context:     context.Background(),
	}
	for _, opt := range opts {
		opt(&options)
	}
	return options
}
