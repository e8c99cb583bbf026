package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bmichals25/MindSync/internal/apperr"
)

const elevenLabsBaseURL = "https://api.elevenlabs.io/v1"

const (
	defaultTTSModel        = "eleven_monolingual_v1"
	defaultStability       = 0.5
	defaultSimilarityBoost = 0.75
)

type Voice struct {
	VoiceID string `json:"voice_id"`
	Name    string `json:"name"`
}

type voicesResponse struct {
	Voices []Voice `json:"voices"`
}

// SynthesizeOptions configures one synthesis call. Zero-valued tuning
// fields fall back to the service defaults.
type SynthesizeOptions struct {
	Text            string
	VoiceID         string
	Model           string
	Stability       float64
	SimilarityBoost float64
}

// TTSService is the speech collaborator. The voice list is fetched once
// and cached for the life of the service; it is never re-fetched after a
// non-empty response.
type TTSService struct {
	client  *http.Client
	baseURL string

	mu     sync.Mutex
	apiKey string
	voices []Voice
}

func NewTTSService(apiKey string) *TTSService {
	return &TTSService{
		client:  &http.Client{Timeout: requestTimeout},
		baseURL: elevenLabsBaseURL,
		apiKey:  apiKey,
	}
}

func (s *TTSService) SetAPIKey(apiKey string) {
	s.mu.Lock()
	s.apiKey = apiKey
	s.mu.Unlock()
}

// GetVoices returns the available voices, from cache when possible.
func (s *TTSService) GetVoices(ctx context.Context) ([]Voice, error) {
	s.mu.Lock()
	if len(s.voices) > 0 {
		cached := append([]Voice(nil), s.voices...)
		s.mu.Unlock()
		return cached, nil
	}
	apiKey := s.apiKey
	s.mu.Unlock()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, s.baseURL+"/voices", nil)
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("xi-api-key", apiKey)

	resp, err := s.client.Do(req)
	if err != nil {
		log.Error().Err(err).Msg("voice list request error")
		return nil, apperr.External("voice list", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Msg("voice list request failed")
		return nil, apperr.External("voice list", fmt.Errorf("status %d", resp.StatusCode))
	}

	var parsed voicesResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&parsed); err != nil {
		return nil, apperr.External("voice list", fmt.Errorf("decode response: %w", err))
	}

	s.mu.Lock()
	s.voices = parsed.Voices
	cached := append([]Voice(nil), s.voices...)
	s.mu.Unlock()
	return cached, nil
}

// Synthesize converts text to speech and returns the raw audio bytes.
func (s *TTSService) Synthesize(ctx context.Context, opts SynthesizeOptions) ([]byte, error) {
	if opts.Model == "" {
		opts.Model = defaultTTSModel
	}
	if opts.Stability == 0 {
		opts.Stability = defaultStability
	}
	if opts.SimilarityBoost == 0 {
		opts.SimilarityBoost = defaultSimilarityBoost
	}

	payload := map[string]any{
		"text":     opts.Text,
		"model_id": opts.Model,
		"voice_settings": map[string]float64{
			"stability":        opts.Stability,
			"similarity_boost": opts.SimilarityBoost,
		},
	}
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	s.mu.Lock()
	apiKey := s.apiKey
	s.mu.Unlock()

	url := fmt.Sprintf("%s/text-to-speech/%s", s.baseURL, opts.VoiceID)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("xi-api-key", apiKey)

	start := time.Now()
	resp, err := s.client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("tts request error")
		return nil, apperr.External("text to speech", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Dur("elapsed", elapsed).
			Msg("tts request failed")
		return nil, apperr.External("text to speech", fmt.Errorf("status %d", resp.StatusCode))
	}

	audio, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, apperr.External("text to speech", fmt.Errorf("read audio: %w", err))
	}
	return audio, nil
}
