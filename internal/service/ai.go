package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/bmichals25/MindSync/internal/apperr"
	"github.com/bmichals25/MindSync/internal/model"
)

const (
	openAIBaseURL  = "https://api.openai.com/v1"
	requestTimeout = 30 * time.Second

	defaultTemperature = 0.7
	defaultMaxTokens   = 1000
)

type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

type openAIRequest struct {
	Model       string          `json:"model"`
	Messages    []openAIMessage `json:"messages"`
	Temperature float64         `json:"temperature,omitempty"`
	MaxTokens   int             `json:"max_tokens,omitempty"`
}

type openAIResponse struct {
	ID      string `json:"id"`
	Model   string `json:"model"`
	Choices []struct {
		Index        int           `json:"index"`
		Message      openAIMessage `json:"message"`
		FinishReason string        `json:"finish_reason"`
	} `json:"choices"`
}

// AIService is the chat-completion collaborator: it exchanges an ordered
// message log for a single assistant reply. Credentials and model are
// injected at construction and may be reconfigured explicitly.
type AIService struct {
	client  *http.Client
	baseURL string

	mu     sync.Mutex
	apiKey string
	model  string
}

func NewAIService(apiKey, modelID string) *AIService {
	return &AIService{
		client:  &http.Client{Timeout: requestTimeout},
		baseURL: openAIBaseURL,
		apiKey:  apiKey,
		model:   modelID,
	}
}

func (s *AIService) SetModel(modelID string) {
	s.mu.Lock()
	s.model = modelID
	s.mu.Unlock()
}

func (s *AIService) SetAPIKey(apiKey string) {
	s.mu.Lock()
	s.apiKey = apiKey
	s.mu.Unlock()
}

// SendMessage posts the conversation so far and returns the assistant's
// reply as a fresh message.
func (s *AIService) SendMessage(ctx context.Context, messages []model.Message) (*model.Message, error) {
	s.mu.Lock()
	apiKey, modelID := s.apiKey, s.model
	s.mu.Unlock()

	reqBody := openAIRequest{
		Model:       modelID,
		Temperature: defaultTemperature,
		MaxTokens:   defaultMaxTokens,
	}
	for _, m := range messages {
		reqBody.Messages = append(reqBody.Messages, openAIMessage{
			Role:    strings.ToLower(string(m.Role)),
			Content: m.Content,
		})
	}

	body, err := json.Marshal(reqBody)
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		s.baseURL+"/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)

	start := time.Now()
	resp, err := s.client.Do(req)
	elapsed := time.Since(start)

	if err != nil {
		log.Error().Err(err).Dur("elapsed", elapsed).Msg("chat completion request error")
		return nil, apperr.External("chat completion", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		log.Error().Int("status", resp.StatusCode).Dur("elapsed", elapsed).
			Msg("chat completion request failed")
		return nil, apperr.External("chat completion",
			fmt.Errorf("status %d", resp.StatusCode))
	}

	var parsed openAIResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, 1<<20)).Decode(&parsed); err != nil {
		return nil, apperr.External("chat completion", fmt.Errorf("decode response: %w", err))
	}
	if len(parsed.Choices) == 0 {
		return nil, apperr.External("chat completion", fmt.Errorf("empty choices"))
	}

	choice := parsed.Choices[0].Message
	role := model.RoleAssistant
	if choice.Role != string(model.RoleAssistant) {
		role = model.RoleUser
	}

	return &model.Message{
		ID:        parsed.ID,
		Role:      role,
		Content:   choice.Content,
		Timestamp: time.Now(),
	}, nil
}

// SendMessageToProvider dispatches on the configured provider. Only OpenAI
// has a dedicated path today; other providers fall through to it.
func (s *AIService) SendMessageToProvider(ctx context.Context, provider model.AIProvider, messages []model.Message) (*model.Message, error) {
	switch provider {
	case model.ProviderOpenAI:
		return s.SendMessage(ctx, messages)
	default:
		return s.SendMessage(ctx, messages)
	}
}
