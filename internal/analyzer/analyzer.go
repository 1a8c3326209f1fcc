package analyzer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"
	"unicode/utf8"

	"github.com/sozercan/schema-helper/apimodels"
	"github.com/sozercan/schema-helper/internal/config"
	"github.com/sozercan/schema-helper/internal/llm"
)

var (
	ErrSchemaTooShort    = errors.New("schema is too short to analyze")
	ErrUnknownModel      = errors.New("unknown model")
	ErrMalformedResponse = errors.New("malformed response")
)

type Analyzer struct {
	llmProvider llm.Provider
	cfg         config.AnalyzerConfig
}

// Analysis is the outcome of one request plus what was learned along the way.
type Analysis struct {
	Outcome   Outcome
	Schema    apimodels.SchemaInfo
	Model     string
	Datatypes bool
	Duration  time.Duration
	Usage     llm.Usage
}

func New(llmProvider llm.Provider, cfg config.AnalyzerConfig) *Analyzer {
	return &Analyzer{
		llmProvider: llmProvider,
		cfg:         cfg,
	}
}

// Accepts reports whether schema is long enough to be offered for analysis.
func (a *Analyzer) Accepts(schema string) bool {
	return utf8.RuneCountInString(schema) > a.cfg.MinSchemaLength
}

func (a *Analyzer) MinSchemaLength() int {
	return a.cfg.MinSchemaLength
}

// Datatypes reports whether datatype inference applies to req.
func (a *Analyzer) Datatypes(req apimodels.AnalysisRequest) bool {
	if req.Datatypes != nil {
		return *req.Datatypes
	}
	return a.cfg.Datatypes
}

func (a *Analyzer) DefaultDatatypes() bool {
	return a.cfg.Datatypes
}

func (a *Analyzer) Analyze(ctx context.Context, req apimodels.AnalysisRequest) (*Analysis, error) {
	if !a.Accepts(req.Schema) {
		return nil, fmt.Errorf("%w: need more than %d characters", ErrSchemaTooShort, a.cfg.MinSchemaLength)
	}
	model := req.Model
	if model == "" {
		model = DefaultModel
	}
	if !IsKnownModel(model) {
		return nil, fmt.Errorf("%w: %q", ErrUnknownModel, model)
	}
	datatypes := a.Datatypes(req)

	info := Inspect(req.Schema)
	slog.Info("Starting analysis", "model", model, "datatypes", datatypes,
		"title", info.Title, "properties", len(info.Properties))
	startTime := time.Now()

	prompt := BuildPrompt(req.Schema, datatypes)
	llmResp, err := a.llmProvider.Generate(ctx, prompt.Contents(),
		llm.WithModel(model),
		llm.WithResponseSchema(responseSchemaName, ResponseSchema(datatypes)),
	)
	if err != nil {
		slog.Error("LLM generation failed", "model", model, "error", err)
		return nil, err
	}
	slog.Debug("LLM response received", "content", truncateString(llmResp.Content, 2000))

	outcome, err := decodeOutcome(llmResp.Content)
	if err != nil {
		slog.Error("Could not decode LLM response", "error", err)
		return nil, err
	}

	switch o := outcome.(type) {
	case Structured:
		if info.ValidJSON && len(info.Properties) != len(o.Result.Fields) {
			slog.Warn("Field count differs from schema properties",
				"properties", len(info.Properties), "fields", len(o.Result.Fields))
		}
	case RawText:
		slog.Warn("LLM returned fenced JSON instead of structured output")
	}

	analysis := &Analysis{
		Outcome:   outcome,
		Schema:    info,
		Model:     model,
		Datatypes: datatypes,
		Duration:  time.Since(startTime),
		Usage:     llmResp.Usage,
	}
	slog.Info("Analysis completed", "model", model, "duration", analysis.Duration, "tokens", llmResp.Usage.TotalTokens)
	return analysis, nil
}

// Response converts an Analysis to its API form.
func (an *Analysis) Response() *apimodels.AnalysisResponse {
	resp := &apimodels.AnalysisResponse{
		Schema: an.Schema,
		Metadata: apimodels.AnalysisMetadata{
			Duration:   an.Duration.String(),
			Model:      an.Model,
			Datatypes:  an.Datatypes,
			TokensUsed: an.Usage.TotalTokens,
		},
	}
	switch o := an.Outcome.(type) {
	case Structured:
		result := o.Result
		resp.Kind = apimodels.KindStructured
		resp.Result = &result
	case RawText:
		resp.Kind = apimodels.KindRaw
		resp.Raw = o.Text
	}
	return resp
}

func truncateString(s string, maxLen int) string {
	if len(s) > maxLen {
		return s[:maxLen] + "\n[truncated]"
	}
	return s
}
