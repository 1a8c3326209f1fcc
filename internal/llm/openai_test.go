package llm

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tidwall/gjson"

	"github.com/sozercan/schema-helper/internal/config"
)

const completionBody = `{
  "id": "chatcmpl-1",
  "object": "chat.completion",
  "created": 1700000000,
  "model": "gemini-2.5-flash",
  "choices": [
    {
      "index": 0,
      "finish_reason": "stop",
      "message": {"role": "assistant", "content": "{\"schema_title\":\"T\",\"fields\":[]}"}
    }
  ],
  "usage": {"prompt_tokens": 10, "completion_tokens": 5, "total_tokens": 15}
}`

func newTestProvider(t *testing.T, handler http.HandlerFunc) *OpenAI {
	t.Helper()
	ts := httptest.NewServer(handler)
	t.Cleanup(ts.Close)

	p, err := NewOpenAI(&config.LLMConfig{
		Provider:    config.ProviderGemini,
		APIKey:      "test-key",
		APIEndpoint: ts.URL + "/",
	})
	require.NoError(t, err)
	return p
}

// text flattens message content, which is either a string or text parts.
func text(content gjson.Result) string {
	if !content.IsArray() {
		return content.String()
	}
	var sb strings.Builder
	for _, part := range content.Array() {
		sb.WriteString(part.Get("text").String())
	}
	return sb.String()
}

func TestGenerateSendsContentsAndSchema(t *testing.T) {
	var sent string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		body, err := io.ReadAll(r.Body)
		assert.NoError(t, err)
		sent = string(body)

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	})

	schema := map[string]interface{}{"type": "object"}
	resp, err := p.Generate(context.Background(), []string{"schema text", "instructions"},
		WithModel("gemini-2.5-flash"),
		WithResponseSchema("analysis_result", schema),
	)
	require.NoError(t, err)

	assert.Equal(t, `{"schema_title":"T","fields":[]}`, resp.Content)
	assert.Equal(t, "gemini-2.5-flash", resp.Model)
	assert.Equal(t, int64(15), resp.Usage.TotalTokens)

	assert.Equal(t, "gemini-2.5-flash", gjson.Get(sent, "model").String())
	msgs := gjson.Get(sent, "messages").Array()
	require.Len(t, msgs, 2)
	assert.Equal(t, "user", msgs[0].Get("role").String())
	assert.Equal(t, "schema text", text(msgs[0].Get("content")))
	assert.Equal(t, "instructions", text(msgs[1].Get("content")))

	assert.Equal(t, "json_schema", gjson.Get(sent, "response_format.type").String())
	assert.Equal(t, "analysis_result", gjson.Get(sent, "response_format.json_schema.name").String())
	assert.Equal(t, "object", gjson.Get(sent, "response_format.json_schema.schema.type").String())
	assert.False(t, gjson.Get(sent, "temperature").Exists(), "zero temperature means provider default")
}

func TestGenerateWithoutSchemaOmitsResponseFormat(t *testing.T) {
	var sent string
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		sent = string(body)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(completionBody))
	})

	_, err := p.Generate(context.Background(), []string{"x"}, WithModel("gemini-2.0-flash"))
	require.NoError(t, err)
	assert.False(t, gjson.Get(sent, "response_format").Exists())
}

func TestGenerateDoesNotRetry(t *testing.T) {
	var calls int32
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&calls, 1)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusTooManyRequests)
		_, _ = w.Write([]byte(`{"error":{"message":"quota exceeded","type":"rate_limit"}}`))
	})

	_, err := p.Generate(context.Background(), []string{"x"}, WithModel("gemini-2.0-flash"))
	require.Error(t, err)
	assert.Equal(t, int32(1), atomic.LoadInt32(&calls))
}

func TestGenerateRequiresModel(t *testing.T) {
	p := newTestProvider(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("no request expected")
	})

	_, err := p.Generate(context.Background(), []string{"x"})
	assert.Error(t, err)
}
