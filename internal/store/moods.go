package store

import (
	"sync"
	"time"

	"github.com/bmichals25/MindSync/internal/model"
)

// MoodStore keeps mood entries in insertion order. The creation timestamp
// is the entry's natural key; lookups that miss are silent no-ops. Two
// adds within the same clock reading produce entries that alias each
// other under timestamp lookup; callers addressing entries must not rely
// on sub-tick uniqueness.
type MoodStore struct {
	mu      sync.Mutex
	entries []model.MoodEntry

	onChange func()
	clock    func() time.Time
}

func (s *MoodStore) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// Add appends a new entry stamped with the current time and returns it.
func (s *MoodStore) Add(value model.MoodType, intensity int, notes string) model.MoodEntry {
	s.mu.Lock()
	entry := model.MoodEntry{
		Value:     value,
		Intensity: intensity,
		Notes:     notes,
		Timestamp: s.clock(),
	}
	s.entries = append(s.entries, entry)
	s.mu.Unlock()
	s.notify()
	return entry
}

func (s *MoodStore) indexOf(timestamp time.Time) int {
	for i := range s.entries {
		if s.entries[i].Timestamp.Equal(timestamp) {
			return i
		}
	}
	return -1
}

// Update merges partial fields into the entry with the given timestamp.
func (s *MoodStore) Update(timestamp time.Time, patch model.MoodPatch) {
	s.mu.Lock()
	if i := s.indexOf(timestamp); i >= 0 {
		entry := &s.entries[i]
		if patch.Value != nil {
			entry.Value = *patch.Value
		}
		if patch.Intensity != nil {
			entry.Intensity = *patch.Intensity
		}
		if patch.Notes != nil {
			entry.Notes = *patch.Notes
		}
	}
	s.mu.Unlock()
	s.notify()
}

// Delete removes the entry with the given timestamp.
func (s *MoodStore) Delete(timestamp time.Time) {
	s.mu.Lock()
	if i := s.indexOf(timestamp); i >= 0 {
		s.entries = append(s.entries[:i], s.entries[i+1:]...)
	}
	s.mu.Unlock()
	s.notify()
}

// LinkToSession back-references an entry to a session as its before- or
// after-session reading.
func (s *MoodStore) LinkToSession(timestamp time.Time, sessionID string, isBefore bool) {
	s.mu.Lock()
	if i := s.indexOf(timestamp); i >= 0 {
		before := isBefore
		s.entries[i].SessionID = sessionID
		s.entries[i].IsMoodBefore = &before
	}
	s.mu.Unlock()
	s.notify()
}

// All returns the entries in insertion order.
func (s *MoodStore) All() []model.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]model.MoodEntry(nil), s.entries...)
}

// ByDateRange returns the entries whose timestamp falls within the
// inclusive range.
func (s *MoodStore) ByDateRange(start, end time.Time) []model.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	var out []model.MoodEntry
	for _, entry := range s.entries {
		if !entry.Timestamp.Before(start) && !entry.Timestamp.After(end) {
			out = append(out, entry)
		}
	}
	return out
}

// Latest returns the most recent entry by timestamp, or nil for an empty
// store.
func (s *MoodStore) Latest() *model.MoodEntry {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.entries) == 0 {
		return nil
	}
	latest := s.entries[0]
	for _, entry := range s.entries[1:] {
		if entry.Timestamp.After(latest.Timestamp) {
			latest = entry
		}
	}
	return &latest
}
