package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/bmichals25/MindSync/internal/model"
	"github.com/bmichals25/MindSync/internal/store"
)

const systemPrompt = "You are a supportive AI therapist. Listen carefully, " +
	"respond with empathy, and gently guide the user toward reflecting on " +
	"their feelings. Keep replies short and conversational."

// Greeting opens every new session before the user says anything.
const Greeting = "Hi there! I'm your AI therapist. How are you feeling today?"

// ChatService runs the message exchange for a session: append the user's
// message, send the full history to the AI collaborator, append the reply.
type ChatService struct {
	sessions *store.SessionStore
	settings *store.SettingsStore
	ai       *AIService
}

func NewChatService(sessions *store.SessionStore, settings *store.SettingsStore, ai *AIService) *ChatService {
	return &ChatService{sessions: sessions, settings: settings, ai: ai}
}

// StartSession creates a session in the given mode and seeds it with the
// assistant greeting.
func (s *ChatService) StartSession(title string, mode model.SessionMode) model.Session {
	patch := model.SessionPatch{Mode: &mode}
	if title != "" {
		patch.Title = &title
	}
	session := s.sessions.Create(patch)

	s.sessions.AddMessage(session.ID, model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleAssistant,
		Content:   Greeting,
		Timestamp: time.Now(),
	})

	created := s.sessions.Get(session.ID)
	if created != nil {
		return *created
	}
	return session
}

// SendMessage appends the user's message and exchanges the session history
// for an assistant reply. On AI failure the user message is kept and the
// error is returned for the UI to surface; nothing is retried.
func (s *ChatService) SendMessage(ctx context.Context, sessionID, content string) (*model.Message, error) {
	session := s.sessions.Get(sessionID)
	if session == nil {
		return nil, fmt.Errorf("session %s not found", sessionID)
	}

	userMessage := model.Message{
		ID:        uuid.NewString(),
		Role:      model.RoleUser,
		Content:   content,
		Timestamp: time.Now(),
	}
	s.sessions.AddMessage(sessionID, userMessage)

	history := make([]model.Message, 0, len(session.Messages)+2)
	history = append(history, model.Message{
		Role:    model.RoleSystem,
		Content: systemPrompt,
	})
	history = append(history, session.Messages...)
	history = append(history, userMessage)

	settings := s.settings.State()
	reply, err := s.ai.SendMessageToProvider(ctx, settings.AIModel.Provider, history)
	if err != nil {
		return nil, err
	}

	if reply.ID == "" {
		reply.ID = uuid.NewString()
	}
	s.sessions.AddMessage(sessionID, *reply)
	return reply, nil
}
