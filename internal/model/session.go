package model

import "time"

type Message struct {
	ID        string      `json:"id"`
	Role      MessageRole `json:"role"`
	Content   string      `json:"content"`
	Timestamp time.Time   `json:"timestamp"`
}

type ActionItem struct {
	ID          string    `json:"id"`
	Text        string    `json:"text"`
	IsCompleted bool      `json:"isCompleted"`
	SessionID   string    `json:"sessionId"`
	CreatedAt   time.Time `json:"createdAt"`
}

// Session is the aggregate root owning its messages and action items.
// Duration is in whole minutes and is recomputed only when the session ends.
type Session struct {
	ID          string       `json:"id"`
	Title       string       `json:"title"`
	Date        time.Time    `json:"date"`
	Duration    int          `json:"duration"`
	Messages    []Message    `json:"messages"`
	MoodBefore  *MoodEntry   `json:"moodBefore,omitempty"`
	MoodAfter   *MoodEntry   `json:"moodAfter,omitempty"`
	Summary     string       `json:"summary,omitempty"`
	ActionItems []ActionItem `json:"actionItems"`
	Mode        SessionMode  `json:"mode"`
}

// SessionPatch carries caller-supplied overrides for session creation and
// shallow updates. Nil fields are left untouched.
type SessionPatch struct {
	ID         *string      `json:"id,omitempty"`
	Title      *string      `json:"title,omitempty"`
	Date       *time.Time   `json:"date,omitempty"`
	Duration   *int         `json:"duration,omitempty"`
	MoodBefore *MoodEntry   `json:"moodBefore,omitempty"`
	MoodAfter  *MoodEntry   `json:"moodAfter,omitempty"`
	Summary    *string      `json:"summary,omitempty"`
	Mode       *SessionMode `json:"mode,omitempty"`
}
