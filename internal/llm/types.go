package llm

import (
	"context"
)

type Provider interface {
	// Generate sends the content parts, in order, as one request and returns
	// the model's text.
	Generate(ctx context.Context, contents []string, opts ...Option) (*Response, error)
}

type Usage struct {
	PromptTokens     int64
	CompletionTokens int64
	TotalTokens      int64
}

type Option func(*Options)

type Options struct {
	Model       string
	MaxTokens   int64
	Temperature float64

	// ResponseSchema, when set, requests JSON output conforming to it.
	ResponseSchema     interface{}
	ResponseSchemaName string
}

func WithModel(model string) Option {
	return func(o *Options) { o.Model = model }
}

func WithResponseSchema(name string, schema interface{}) Option {
	return func(o *Options) {
		o.ResponseSchemaName = name
		o.ResponseSchema = schema
	}
}

type Response struct {
	Content string
	Model   string
	Usage   Usage
}
