package llm_test

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/udityamerit/portfolio-assistant/internal/adapters/llm"
	"github.com/udityamerit/portfolio-assistant/internal/domain"
)

func TestRelayTransportGenerate(t *testing.T) {
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, http.MethodPost, r.Method)
		require.Equal(t, "/api/chat", r.URL.Path)
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"relayed answer"}`))
	}))
	defer srv.Close()

	transport := llm.NewRelayTransport(srv.URL)
	history := []domain.HistoryTurn{
		{Role: domain.RoleUser, Content: "first question"},
		{Role: domain.RoleModel, Content: "first answer"},
	}

	reply, err := transport.Generate(context.Background(), "persona prompt", history, "second question")
	require.NoError(t, err)
	assert.Equal(t, "relayed answer", reply)

	assert.Equal(t, "second question", captured["userMessage"])
	assert.Equal(t, "persona prompt", captured["prompt"])

	wire, ok := captured["history"].([]any)
	require.True(t, ok)
	require.Len(t, wire, 2)
	first := wire[0].(map[string]any)
	assert.Equal(t, "user", first["role"])
	parts := first["parts"].([]any)
	assert.Equal(t, "first question", parts[0].(map[string]any)["text"])
}

func TestRelayTransportServerError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"upstream exploded"}`))
	}))
	defer srv.Close()

	transport := llm.NewRelayTransport(srv.URL)
	_, err := transport.Generate(context.Background(), "p", nil, "q")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "500")
}

func TestDirectTransportGenerate(t *testing.T) {
	var capturedKey string
	var captured map[string]any
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		capturedKey = r.URL.Query().Get("key")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"candidates":[{"content":{"parts":[{"text":"direct answer"}]}}]}`))
	}))
	defer srv.Close()

	transport := llm.NewDirectTransportWithBaseURL("secret-key", "gemini-2.5-flash", srv.URL)
	reply, err := transport.Generate(context.Background(), "persona", nil, "a question")
	require.NoError(t, err)

	assert.Equal(t, "direct answer", reply)
	assert.Equal(t, "secret-key", capturedKey)
	assert.Contains(t, captured, "generationConfig")
	assert.Contains(t, captured, "safetySettings")

	contents := captured["contents"].([]any)
	require.Len(t, contents, 1)
	text := contents[0].(map[string]any)["parts"].([]any)[0].(map[string]any)["text"].(string)
	assert.Contains(t, text, "persona")
	assert.Contains(t, text, "User Question: a question")
}

func TestDirectTransportErrors(t *testing.T) {
	t.Run("missing key", func(t *testing.T) {
		transport := llm.NewDirectTransportWithBaseURL("", "gemini-2.5-flash", "http://localhost:0")
		_, err := transport.Generate(context.Background(), "p", nil, "q")
		require.Error(t, err)
	})

	t.Run("provider 500", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusInternalServerError)
		}))
		defer srv.Close()

		transport := llm.NewDirectTransportWithBaseURL("k", "gemini-2.5-flash", srv.URL)
		_, err := transport.Generate(context.Background(), "p", nil, "q")
		require.Error(t, err)
	})

	t.Run("empty envelope", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			w.Write([]byte(`{"candidates":[]}`))
		}))
		defer srv.Close()

		transport := llm.NewDirectTransportWithBaseURL("k", "gemini-2.5-flash", srv.URL)
		_, err := transport.Generate(context.Background(), "p", nil, "q")
		require.Error(t, err)
	})
}
