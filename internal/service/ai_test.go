package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmichals25/MindSync/internal/model"
)

func TestSendMessageSuccess(t *testing.T) {
	var captured openAIRequest

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/chat/completions", r.URL.Path)
		assert.Equal(t, "Bearer test-key", r.Header.Get("Authorization"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))

		json.NewEncoder(w).Encode(map[string]any{
			"id":    "chatcmpl-1",
			"model": "gpt-3.5-turbo",
			"choices": []map[string]any{
				{
					"index":         0,
					"message":       map[string]string{"role": "assistant", "content": "How does that make you feel?"},
					"finish_reason": "stop",
				},
			},
		})
	}))
	defer server.Close()

	svc := NewAIService("test-key", "gpt-3.5-turbo")
	svc.baseURL = server.URL

	reply, err := svc.SendMessage(context.Background(), []model.Message{
		{Role: model.RoleSystem, Content: "be kind"},
		{Role: model.RoleUser, Content: "I feel stuck"},
	})
	require.NoError(t, err)

	assert.Equal(t, "chatcmpl-1", reply.ID)
	assert.Equal(t, model.RoleAssistant, reply.Role)
	assert.Equal(t, "How does that make you feel?", reply.Content)
	assert.False(t, reply.Timestamp.IsZero())

	assert.Equal(t, "gpt-3.5-turbo", captured.Model)
	require.Len(t, captured.Messages, 2)
	assert.Equal(t, "system", captured.Messages[0].Role)
	assert.Equal(t, "user", captured.Messages[1].Role)
	assert.InDelta(t, defaultTemperature, captured.Temperature, 0.001)
	assert.Equal(t, defaultMaxTokens, captured.MaxTokens)
}

func TestSendMessageErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "rate limited", http.StatusTooManyRequests)
	}))
	defer server.Close()

	svc := NewAIService("test-key", "gpt-3.5-turbo")
	svc.baseURL = server.URL

	_, err := svc.SendMessage(context.Background(), []model.Message{
		{Role: model.RoleUser, Content: "hello"},
	})
	assert.Error(t, err)
}

func TestSendMessageEmptyChoices(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]any{"id": "chatcmpl-2", "choices": []any{}})
	}))
	defer server.Close()

	svc := NewAIService("test-key", "gpt-3.5-turbo")
	svc.baseURL = server.URL

	_, err := svc.SendMessage(context.Background(), []model.Message{
		{Role: model.RoleUser, Content: "hello"},
	})
	assert.Error(t, err)
}

func TestSetModelTakesEffect(t *testing.T) {
	var captured openAIRequest
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewDecoder(r.Body).Decode(&captured)
		json.NewEncoder(w).Encode(map[string]any{
			"id": "chatcmpl-3",
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer server.Close()

	svc := NewAIService("test-key", "gpt-3.5-turbo")
	svc.baseURL = server.URL
	svc.SetModel("gpt-4")

	_, err := svc.SendMessage(context.Background(), []model.Message{
		{Role: model.RoleUser, Content: "hi"},
	})
	require.NoError(t, err)
	assert.Equal(t, "gpt-4", captured.Model)
}

func TestSendMessageToProviderFallsThrough(t *testing.T) {
	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		json.NewEncoder(w).Encode(map[string]any{
			"id": "chatcmpl-4",
			"choices": []map[string]any{
				{"message": map[string]string{"role": "assistant", "content": "ok"}},
			},
		})
	}))
	defer server.Close()

	svc := NewAIService("test-key", "gpt-3.5-turbo")
	svc.baseURL = server.URL

	for _, provider := range []model.AIProvider{model.ProviderOpenAI, model.ProviderGemini, model.ProviderClaude} {
		_, err := svc.SendMessageToProvider(context.Background(), provider, []model.Message{
			{Role: model.RoleUser, Content: "hi"},
		})
		require.NoError(t, err)
	}
	assert.Equal(t, 3, calls)
}
