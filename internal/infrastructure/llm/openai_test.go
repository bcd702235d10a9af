package llm

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/glowpage/backend/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOpenAIClient(t *testing.T) {
	client := NewOpenAIClient("test-api-key", "https://api.example.com/", "gpt-4o-mini", 10*time.Second)

	assert.NotNil(t, client)
	assert.Equal(t, "test-api-key", client.apiKey)
	assert.Equal(t, "https://api.example.com", client.baseURL, "trailing slash is trimmed")
	assert.Equal(t, "gpt-4o-mini", client.model)
	assert.NotNil(t, client.httpClient)
	assert.NotNil(t, client.rateLimiter)
	assert.False(t, client.debug)
}

func TestOpenAIClient_SetDebug(t *testing.T) {
	client := NewOpenAIClient("key", "https://api.example.com", "gpt-4o-mini", 0)

	assert.False(t, client.debug)
	client.SetDebug(true)
	assert.True(t, client.debug)
}

func TestOpenAIClient_Generate_Success(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/v1/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-api-key", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var req chatCompletionRequest
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "gpt-4o-mini", req.Model)
		require.Len(t, req.Messages, 2)
		assert.Equal(t, "system", req.Messages[0].Role)
		assert.Equal(t, "user", req.Messages[1].Role)
		assert.Equal(t, "rewrite this", req.Messages[1].Content)

		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"choices":[{"message":{"role":"assistant","content":"a rewritten answer"},"finish_reason":"stop"}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("test-api-key", server.URL, "gpt-4o-mini", 5*time.Second)

	got, err := client.Generate(context.Background(), domain.GenerationRequest{
		System:      "be careful",
		Prompt:      "rewrite this",
		Temperature: 0.2,
		MaxTokens:   256,
	})

	require.NoError(t, err)
	assert.Equal(t, "a rewritten answer", got)
}

func TestOpenAIClient_Generate_MissingAPIKey(t *testing.T) {
	client := NewOpenAIClient("", "https://api.example.com", "gpt-4o-mini", 0)

	_, err := client.Generate(context.Background(), domain.GenerationRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGenerationFailed))
}

func TestOpenAIClient_Generate_APIError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"error":{"message":"Incorrect API key provided","type":"invalid_request_error"}}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("bad-key", server.URL, "gpt-4o-mini", 5*time.Second)

	_, err := client.Generate(context.Background(), domain.GenerationRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrGenerationFailed))
	assert.Contains(t, err.Error(), "Incorrect API key provided")
}

func TestOpenAIClient_Generate_EmptyCompletion(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"no choices", `{"choices":[]}`},
		{"blank content", `{"choices":[{"message":{"role":"assistant","content":"   "}}]}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				w.Write([]byte(tt.body))
			}))
			defer server.Close()

			client := NewOpenAIClient("key", server.URL, "gpt-4o-mini", 5*time.Second)

			_, err := client.Generate(context.Background(), domain.GenerationRequest{Prompt: "hi"})

			require.Error(t, err)
			assert.True(t, errors.Is(err, domain.ErrEmptyCompletion))
		})
	}
}

func TestOpenAIClient_Generate_InvalidJSON(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	client := NewOpenAIClient("key", server.URL, "gpt-4o-mini", 5*time.Second)

	_, err := client.Generate(context.Background(), domain.GenerationRequest{Prompt: "hi"})

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to decode response")
}

func TestOpenAIClient_Generate_ContextCancelled(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		w.Write([]byte(`{"choices":[{"message":{"content":"late"}}]}`))
	}))
	defer server.Close()

	client := NewOpenAIClient("key", server.URL, "gpt-4o-mini", 5*time.Second)

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := client.Generate(ctx, domain.GenerationRequest{Prompt: "hi"})
	require.Error(t, err)
}
