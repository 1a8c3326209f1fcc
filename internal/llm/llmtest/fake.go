// Package llmtest provides an in-memory llm.Provider for tests.
package llmtest

import (
	"context"
	"sync"

	"github.com/sozercan/schema-helper/internal/llm"
)

// Provider returns Content (or Err) and records every call.
type Provider struct {
	Content string
	Err     error

	mu    sync.Mutex
	calls []Call
}

type Call struct {
	Contents []string
	Options  llm.Options
}

func (p *Provider) Generate(_ context.Context, contents []string, opts ...llm.Option) (*llm.Response, error) {
	var o llm.Options
	for _, opt := range opts {
		opt(&o)
	}

	p.mu.Lock()
	p.calls = append(p.calls, Call{Contents: contents, Options: o})
	p.mu.Unlock()

	if p.Err != nil {
		return nil, p.Err
	}
	return &llm.Response{
		Content: p.Content,
		Model:   o.Model,
		Usage:   llm.Usage{PromptTokens: 100, CompletionTokens: 20, TotalTokens: 120},
	}, nil
}

func (p *Provider) Calls() []Call {
	p.mu.Lock()
	defer p.mu.Unlock()
	return append([]Call(nil), p.calls...)
}
