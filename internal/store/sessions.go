package store

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/bmichals25/MindSync/internal/model"
)

// SessionStore manages the therapy-session aggregates. Lookups scan on id
// equality and misses are silent no-ops, matching the append-mostly,
// trust-the-caller contract of the rest of the state core.
type SessionStore struct {
	mu       sync.Mutex
	sessions []model.Session

	onChange func()
	clock    func() time.Time
}

func (s *SessionStore) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *SessionStore) indexOf(id string) int {
	for i := range s.sessions {
		if s.sessions[i].ID == id {
			return i
		}
	}
	return -1
}

// Create builds a session with a generated id, the current time as its
// date, empty collections and chat mode, then overlays the caller's patch.
// Caller-supplied fields win over the generated defaults, including ID and
// Date; that override is part of the store's contract.
func (s *SessionStore) Create(patch model.SessionPatch) model.Session {
	s.mu.Lock()
	session := model.Session{
		ID:          uuid.NewString(),
		Title:       "New Session",
		Date:        s.clock(),
		Duration:    0,
		Messages:    []model.Message{},
		ActionItems: []model.ActionItem{},
		Mode:        model.ModeChat,
	}
	applyPatch(&session, patch)
	s.sessions = append(s.sessions, session)
	s.mu.Unlock()
	s.notify()
	return session
}

func applyPatch(session *model.Session, patch model.SessionPatch) {
	if patch.ID != nil {
		session.ID = *patch.ID
	}
	if patch.Title != nil {
		session.Title = *patch.Title
	}
	if patch.Date != nil {
		session.Date = *patch.Date
	}
	if patch.Duration != nil {
		session.Duration = *patch.Duration
	}
	if patch.MoodBefore != nil {
		session.MoodBefore = patch.MoodBefore
	}
	if patch.MoodAfter != nil {
		session.MoodAfter = patch.MoodAfter
	}
	if patch.Summary != nil {
		session.Summary = *patch.Summary
	}
	if patch.Mode != nil {
		session.Mode = *patch.Mode
	}
}

// End finalizes a session: records the summary when provided and derives
// the duration as whole minutes between the session date and now, rounded
// to nearest. Resolves silently when the session is absent.
func (s *SessionStore) End(sessionID, summary string) {
	s.mu.Lock()
	if i := s.indexOf(sessionID); i >= 0 {
		session := &s.sessions[i]
		if summary != "" {
			session.Summary = summary
		}
		elapsed := s.clock().Sub(session.Date)
		session.Duration = int(elapsed.Round(time.Minute) / time.Minute)
	}
	s.mu.Unlock()
	s.notify()
}

// AddMessage appends to the session's ordered message log.
func (s *SessionStore) AddMessage(sessionID string, message model.Message) {
	s.mu.Lock()
	if i := s.indexOf(sessionID); i >= 0 {
		s.sessions[i].Messages = append(s.sessions[i].Messages, message)
	}
	s.mu.Unlock()
	s.notify()
}

// Update shallow-merges the patch into the located session.
func (s *SessionStore) Update(sessionID string, patch model.SessionPatch) {
	s.mu.Lock()
	if i := s.indexOf(sessionID); i >= 0 {
		applyPatch(&s.sessions[i], patch)
	}
	s.mu.Unlock()
	s.notify()
}

// AddActionItem appends a fresh, uncompleted action item to the session.
func (s *SessionStore) AddActionItem(sessionID, text string) {
	s.mu.Lock()
	if i := s.indexOf(sessionID); i >= 0 {
		item := model.ActionItem{
			ID:        uuid.NewString(),
			Text:      text,
			SessionID: sessionID,
			CreatedAt: s.clock(),
		}
		s.sessions[i].ActionItems = append(s.sessions[i].ActionItems, item)
	}
	s.mu.Unlock()
	s.notify()
}

// ToggleActionItem flips the completion flag of one action item.
func (s *SessionStore) ToggleActionItem(sessionID, actionItemID string) {
	s.mu.Lock()
	if i := s.indexOf(sessionID); i >= 0 {
		items := s.sessions[i].ActionItems
		for j := range items {
			if items[j].ID == actionItemID {
				items[j].IsCompleted = !items[j].IsCompleted
				break
			}
		}
	}
	s.mu.Unlock()
	s.notify()
}

// Delete removes the session and everything it owns.
func (s *SessionStore) Delete(sessionID string) {
	s.mu.Lock()
	if i := s.indexOf(sessionID); i >= 0 {
		s.sessions = append(s.sessions[:i], s.sessions[i+1:]...)
	}
	s.mu.Unlock()
	s.notify()
}

// Get returns a copy of the session, or nil when absent.
func (s *SessionStore) Get(sessionID string) *model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(sessionID)
	if i < 0 {
		return nil
	}
	session := copySession(s.sessions[i])
	return &session
}

// All returns copies of every session in insertion order.
func (s *SessionStore) All() []model.Session {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]model.Session, len(s.sessions))
	for i, session := range s.sessions {
		out[i] = copySession(session)
	}
	return out
}

func copySession(session model.Session) model.Session {
	session.Messages = append([]model.Message(nil), session.Messages...)
	session.ActionItems = append([]model.ActionItem(nil), session.ActionItems...)
	return session
}
