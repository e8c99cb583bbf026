// Package store holds the normalized domain state: authentication,
// therapy sessions, mood entries, settings and transient UI state. Each
// slice is mutated through its own store; the persistence gateway observes
// transitions through the change hook and mirrors the whitelisted slices.
package store

import (
	"time"

	"github.com/bmichals25/MindSync/internal/identity"
	"github.com/bmichals25/MindSync/internal/kv"
	"github.com/bmichals25/MindSync/internal/model"
	"github.com/bmichals25/MindSync/internal/token"
)

// Collaborators are the external services the stores round-trip to.
type Collaborators struct {
	Identity identity.Service
	Tokens   *token.Minter
	KV       kv.Store
}

// Snapshot is the whitelisted subset of state mirrored to durable storage.
// The UI slice is deliberately absent.
type Snapshot struct {
	Auth     model.AuthState   `json:"auth"`
	Sessions []model.Session   `json:"sessions"`
	Moods    []model.MoodEntry `json:"moods"`
	Settings model.AppSettings `json:"settings"`
}

// Store bundles the five slice stores behind one root.
type Store struct {
	Auth     *AuthStore
	Sessions *SessionStore
	Moods    *MoodStore
	Settings *SettingsStore
	UI       *UIStore
}

func New(c Collaborators) *Store {
	return NewFromSnapshot(c, Snapshot{Settings: model.DefaultSettings()})
}

// NewFromSnapshot builds live stores seeded with rehydrated state. The UI
// store always starts from defaults.
func NewFromSnapshot(c Collaborators, snap Snapshot) *Store {
	return &Store{
		Auth: &AuthStore{
			state:    snap.Auth,
			identity: c.Identity,
			tokens:   c.Tokens,
			kv:       c.KV,
		},
		Sessions: &SessionStore{
			sessions: append([]model.Session(nil), snap.Sessions...),
			clock:    time.Now,
		},
		Moods: &MoodStore{
			entries: append([]model.MoodEntry(nil), snap.Moods...),
			clock:   time.Now,
		},
		Settings: &SettingsStore{state: snap.Settings},
		UI:       &UIStore{state: model.DefaultUIState()},
	}
}

// OnChange registers a hook fired after every transition in a whitelisted
// slice. The UI store never fires it.
func (s *Store) OnChange(fn func()) {
	s.Auth.onChange = fn
	s.Sessions.onChange = fn
	s.Moods.onChange = fn
	s.Settings.onChange = fn
}

// Snapshot copies the whitelisted slices for serialization.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		Auth:     s.Auth.State(),
		Sessions: s.Sessions.All(),
		Moods:    s.Moods.All(),
		Settings: s.Settings.State(),
	}
}
