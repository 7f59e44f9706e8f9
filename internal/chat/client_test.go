package chat

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/AhmedAbdoRH/perfume-ambassador-backend/internal/catalog"
)

func TestComplete(t *testing.T) {
	var gotReq completionRequest
	var gotAuth string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		require.Equal(t, "/chat/completions", r.URL.Path)
		gotAuth = r.Header.Get("Authorization")
		require.NoError(t, json.NewDecoder(r.Body).Decode(&gotReq))

		_ = json.NewEncoder(w).Encode(map[string]any{
			"choices": []map[string]any{
				{"message": map[string]any{"content": "  أهلاً يا فندم!  "}},
			},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL, Model: "openai/gpt-oss-20b"})
	reply, err := c.Complete(context.Background(), "انت مساعد المتجر", "عندكم سوفاج؟")
	require.NoError(t, err)

	assert.Equal(t, "أهلاً يا فندم!", reply, "reply should be trimmed")
	assert.Equal(t, "Bearer k", gotAuth)
	assert.Equal(t, "openai/gpt-oss-20b", gotReq.Model)
	assert.Equal(t, 0.7, gotReq.Temperature)
	assert.Equal(t, 1024, gotReq.MaxTokens)
	require.Len(t, gotReq.Messages, 2)
	assert.Equal(t, "system", gotReq.Messages[0].Role)
	assert.Equal(t, "user", gotReq.Messages[1].Role)
}

func TestCompleteUpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
		_ = json.NewEncoder(w).Encode(map[string]any{
			"error": map[string]any{"message": "rate limited"},
		})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), "s", "u")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "rate limited")
}

func TestCompleteMissingKey(t *testing.T) {
	c := NewClient(Config{})
	_, err := c.Complete(context.Background(), "s", "u")
	assert.True(t, errors.Is(err, ErrNotConfigured))
}

func TestCompleteEmptyChoices(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_ = json.NewEncoder(w).Encode(map[string]any{"choices": []any{}})
	}))
	defer srv.Close()

	c := NewClient(Config{APIKey: "k", BaseURL: srv.URL})
	_, err := c.Complete(context.Background(), "s", "u")
	require.Error(t, err)
}

func TestStorePrompt(t *testing.T) {
	prompt := StorePrompt(
		catalog.Settings{StoreName: "سفير العطور", WhatsAppNumber: "201027381559"},
		[]catalog.Service{{Title: "Sauvage", Price: "1200 ج"}},
	)
	assert.Contains(t, prompt, "سفير العطور")
	assert.Contains(t, prompt, "201027381559")
	assert.Contains(t, prompt, "Sauvage (1200 ج)")
}

func TestFallbackReply(t *testing.T) {
	assert.Contains(t, FallbackReply("201027381559"), "201027381559")
	assert.False(t, strings.Contains(FallbackReply(""), "%"), "no formatting leftovers")
}
