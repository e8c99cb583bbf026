package store

import (
	"sync"

	"github.com/bmichals25/MindSync/internal/model"
)

// SettingsStore owns the single AppSettings document. All mutators are
// synchronous point setters; Reset replaces the document wholesale.
type SettingsStore struct {
	mu    sync.Mutex
	state model.AppSettings

	onChange func()
}

func (s *SettingsStore) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

func (s *SettingsStore) set(mutate func(*model.AppSettings)) {
	s.mu.Lock()
	mutate(&s.state)
	s.mu.Unlock()
	s.notify()
}

// State returns a copy of the document.
func (s *SettingsStore) State() model.AppSettings {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *SettingsStore) SetTheme(theme model.Theme) {
	s.set(func(st *model.AppSettings) { st.Theme = theme })
}

func (s *SettingsStore) SetNotifications(enabled bool) {
	s.set(func(st *model.AppSettings) { st.Notifications = enabled })
}

func (s *SettingsStore) ToggleNotifications() {
	s.set(func(st *model.AppSettings) { st.Notifications = !st.Notifications })
}

func (s *SettingsStore) SetAIModel(m model.AIModel) {
	s.set(func(st *model.AppSettings) { st.AIModel = m })
}

func (s *SettingsStore) SetVoiceEnabled(enabled bool) {
	s.set(func(st *model.AppSettings) { st.Voice.Enabled = enabled })
}

func (s *SettingsStore) ToggleVoice() {
	s.set(func(st *model.AppSettings) { st.Voice.Enabled = !st.Voice.Enabled })
}

func (s *SettingsStore) SetVoiceID(voiceID string) {
	s.set(func(st *model.AppSettings) { st.Voice.VoiceID = voiceID })
}

func (s *SettingsStore) SetDataSharing(enabled bool) {
	s.set(func(st *model.AppSettings) { st.Privacy.DataSharingEnabled = enabled })
}

func (s *SettingsStore) ToggleDataSharing() {
	s.set(func(st *model.AppSettings) { st.Privacy.DataSharingEnabled = !st.Privacy.DataSharingEnabled })
}

func (s *SettingsStore) SetStorageEnabled(enabled bool) {
	s.set(func(st *model.AppSettings) { st.Privacy.StorageEnabled = enabled })
}

func (s *SettingsStore) ToggleStorageEnabled() {
	s.set(func(st *model.AppSettings) { st.Privacy.StorageEnabled = !st.Privacy.StorageEnabled })
}

// Reset restores the fixed default document regardless of prior mutations.
func (s *SettingsStore) Reset() {
	s.set(func(st *model.AppSettings) { *st = model.DefaultSettings() })
}
