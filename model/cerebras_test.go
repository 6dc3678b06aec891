package model

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCerebrasProviderRequiresKey(t *testing.T) {
	_, err := NewCerebrasProvider(CerebrasConfig{})
	assert.Error(t, err)
}

func TestNewCerebrasProviderDefaults(t *testing.T) {
	p, err := NewCerebrasProvider(CerebrasConfig{APIKey: "csk-test"})
	require.NoError(t, err)
	assert.Equal(t, DefaultModel, p.ModelID())
}

func TestGenerateSendsSchemaConstrainedRequest(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer csk-test", r.Header.Get("Authorization"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		require.NoError(t, json.Unmarshal(body, &captured))

		w.Header().Set("Content-Type", "application/json")
		fmt.Fprint(w, `{
			"id": "chatcmpl-1",
			"object": "chat.completion",
			"model": "qwen-3-235b-a22b",
			"choices": [{"index": 0, "finish_reason": "stop",
				"message": {"role": "assistant", "content": "{\"topic\":\"Algebra\",\"questions\":[]}"}}],
			"usage": {"prompt_tokens": 100, "completion_tokens": 50, "total_tokens": 150}
		}`)
	}))
	defer srv.Close()

	p, err := NewCerebrasProvider(CerebrasConfig{APIKey: "csk-test", BaseURL: srv.URL})
	require.NoError(t, err)

	resp, err := p.Generate(context.Background(), Request{
		System:    "You set exam questions.",
		User:      "Generate the worksheet.",
		Schema:    DocumentSchema(5),
		MaxTokens: 40000,
	})
	require.NoError(t, err)

	assert.JSONEq(t, `{"topic":"Algebra","questions":[]}`, string(resp.Content))
	assert.Equal(t, 100, resp.Usage.InputTokens)
	assert.Equal(t, 150, resp.Usage.TotalTokens)

	messages := captured["messages"].([]any)
	require.Len(t, messages, 2)
	assert.Equal(t, "system", messages[0].(map[string]any)["role"])
	assert.Equal(t, "user", messages[1].(map[string]any)["role"])

	format := captured["response_format"].(map[string]any)
	assert.Equal(t, "json_schema", format["type"])
	schema := format["json_schema"].(map[string]any)
	assert.Equal(t, "dpp-document", schema["name"])
}

func TestGenerateTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	srv.Close()

	p, err := NewCerebrasProvider(CerebrasConfig{APIKey: "csk-test", BaseURL: srv.URL})
	require.NoError(t, err)

	_, err = p.Generate(context.Background(), Request{User: "hello"})
	assert.Error(t, err)
}

func TestDocumentSchemaAdvisoryCount(t *testing.T) {
	schema := DocumentSchema(7)

	props := schema.Definition["properties"].(map[string]any)
	questions := props["questions"].(map[string]any)
	assert.Equal(t, "A list of exactly 7 questions.", questions["description"])

	// The count is advisory only: no minItems/maxItems constraint.
	assert.NotContains(t, questions, "minItems")
	assert.NotContains(t, questions, "maxItems")
}
