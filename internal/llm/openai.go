package llm

import (
	"context"
	"errors"
	"log/slog"

	"github.com/openai/openai-go"
	"github.com/openai/openai-go/azure"
	"github.com/openai/openai-go/option"

	"github.com/sozercan/schema-helper/internal/config"
)

// OpenAI talks to any OpenAI-compatible chat completions endpoint. Gemini
// is reached through its compatibility layer.
type OpenAI struct {
	client *openai.Client
	cfg    *config.LLMConfig
}

func NewOpenAI(cfg *config.LLMConfig) (*OpenAI, error) {
	var client *openai.Client

	switch cfg.Provider {
	case config.ProviderAzure:
		client = openai.NewClient(
			azure.WithEndpoint(cfg.APIEndpoint, cfg.APIVersion),
			azure.WithAPIKey(cfg.APIKey),
			option.WithMaxRetries(0),
		)
	default: // gemini, openai
		client = openai.NewClient(
			option.WithAPIKey(cfg.APIKey),
			option.WithBaseURL(cfg.APIEndpoint),
			option.WithMaxRetries(0),
		)
	}

	slog.Info("created LLM client", "provider", cfg.Provider, "endpoint", cfg.APIEndpoint)
	return &OpenAI{
		client: client,
		cfg:    cfg,
	}, nil
}

func (o *OpenAI) Generate(ctx context.Context, contents []string, opts ...Option) (*Response, error) {
	options := &Options{
		Temperature: o.cfg.Temperature,
		MaxTokens:   o.cfg.MaxTokens,
	}
	for _, opt := range opts {
		opt(options)
	}
	if options.Model == "" {
		return nil, errors.New("no model selected")
	}

	messages := make([]openai.ChatCompletionMessageParamUnion, 0, len(contents))
	for _, c := range contents {
		messages = append(messages, openai.UserMessage(c))
	}

	params := openai.ChatCompletionNewParams{
		Model:    openai.F(options.Model),
		Messages: openai.F(messages),
	}
	if options.Temperature != 0 {
		params.Temperature = openai.F(options.Temperature)
	}
	if options.MaxTokens > 0 {
		params.MaxTokens = openai.F(options.MaxTokens)
	}
	if options.ResponseSchema != nil {
		params.ResponseFormat = openai.F[openai.ChatCompletionNewParamsResponseFormatUnion](
			openai.ResponseFormatJSONSchemaParam{
				Type: openai.F(openai.ResponseFormatJSONSchemaTypeJSONSchema),
				JSONSchema: openai.F(openai.ResponseFormatJSONSchemaJSONSchemaParam{
					Name:   openai.F(options.ResponseSchemaName),
					Schema: openai.F(options.ResponseSchema),
				}),
			},
		)
	}

	resp, err := o.client.Chat.Completions.New(ctx, params)
	if err != nil {
		return nil, err
	}

	response := &Response{
		Model: resp.Model,
		Usage: Usage{
			PromptTokens:     resp.Usage.PromptTokens,
			CompletionTokens: resp.Usage.CompletionTokens,
			TotalTokens:      resp.Usage.TotalTokens,
		},
	}
	if len(resp.Choices) == 0 {
		return nil, errors.New("response contained no choices")
	}
	response.Content = resp.Choices[0].Message.Content

	return response, nil
}
