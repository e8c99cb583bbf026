package service

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetVoicesCachesAfterFirstFetch(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		assert.Equal(t, "/voices", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))
		json.NewEncoder(w).Encode(voicesResponse{Voices: []Voice{
			{VoiceID: "v1", Name: "Rachel"},
			{VoiceID: "v2", Name: "Adam"},
		}})
	}))
	defer server.Close()

	svc := NewTTSService("test-key")
	svc.baseURL = server.URL

	first, err := svc.GetVoices(context.Background())
	require.NoError(t, err)
	require.Len(t, first, 2)

	second, err := svc.GetVoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, fetches)
}

func TestGetVoicesEmptyResponseIsNotCached(t *testing.T) {
	fetches := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fetches++
		json.NewEncoder(w).Encode(voicesResponse{})
	}))
	defer server.Close()

	svc := NewTTSService("test-key")
	svc.baseURL = server.URL

	_, err := svc.GetVoices(context.Background())
	require.NoError(t, err)
	_, err = svc.GetVoices(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 2, fetches)
}

func TestSynthesize(t *testing.T) {
	var captured map[string]any
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/text-to-speech/v1", r.URL.Path)
		assert.Equal(t, "test-key", r.Header.Get("xi-api-key"))
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&captured))
		w.Write([]byte("audio-bytes"))
	}))
	defer server.Close()

	svc := NewTTSService("test-key")
	svc.baseURL = server.URL

	audio, err := svc.Synthesize(context.Background(), SynthesizeOptions{
		Text:    "breathe in, breathe out",
		VoiceID: "v1",
	})
	require.NoError(t, err)
	assert.Equal(t, []byte("audio-bytes"), audio)

	assert.Equal(t, "breathe in, breathe out", captured["text"])
	assert.Equal(t, defaultTTSModel, captured["model_id"])
	settings := captured["voice_settings"].(map[string]any)
	assert.InDelta(t, defaultStability, settings["stability"], 0.001)
	assert.InDelta(t, defaultSimilarityBoost, settings["similarity_boost"], 0.001)
}

func TestSynthesizeErrorStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad voice", http.StatusUnprocessableEntity)
	}))
	defer server.Close()

	svc := NewTTSService("test-key")
	svc.baseURL = server.URL

	_, err := svc.Synthesize(context.Background(), SynthesizeOptions{Text: "hi", VoiceID: "nope"})
	assert.Error(t, err)
}
