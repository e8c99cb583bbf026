package store

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/bmichals25/MindSync/internal/model"
)

func newSettingsStore() *SettingsStore {
	return &SettingsStore{state: model.DefaultSettings()}
}

func TestSettingsDefaults(t *testing.T) {
	s := newSettingsStore()
	state := s.State()

	assert.Equal(t, model.ThemeSystem, state.Theme)
	assert.True(t, state.Notifications)
	assert.Equal(t, "gpt-3.5-turbo", state.AIModel.ID)
	assert.Equal(t, model.ProviderOpenAI, state.AIModel.Provider)
	assert.True(t, state.Voice.Enabled)
	assert.False(t, state.Privacy.DataSharingEnabled)
	assert.True(t, state.Privacy.StorageEnabled)
}

func TestSettingsSetters(t *testing.T) {
	s := newSettingsStore()

	s.SetTheme(model.ThemeDark)
	s.SetNotifications(false)
	s.SetAIModel(model.AIModel{ID: "gpt-4", Name: "GPT-4", Provider: model.ProviderOpenAI})
	s.SetVoiceEnabled(false)
	s.SetVoiceID("voice-9")
	s.SetDataSharing(true)
	s.SetStorageEnabled(false)

	state := s.State()
	assert.Equal(t, model.ThemeDark, state.Theme)
	assert.False(t, state.Notifications)
	assert.Equal(t, "gpt-4", state.AIModel.ID)
	assert.False(t, state.Voice.Enabled)
	assert.Equal(t, "voice-9", state.Voice.VoiceID)
	assert.True(t, state.Privacy.DataSharingEnabled)
	assert.False(t, state.Privacy.StorageEnabled)
}

func TestSettingsTogglers(t *testing.T) {
	s := newSettingsStore()

	s.ToggleNotifications()
	assert.False(t, s.State().Notifications)

	s.ToggleVoice()
	assert.False(t, s.State().Voice.Enabled)

	s.ToggleDataSharing()
	assert.True(t, s.State().Privacy.DataSharingEnabled)

	s.ToggleStorageEnabled()
	assert.False(t, s.State().Privacy.StorageEnabled)
}

func TestSettingsResetAlwaysYieldsDefaults(t *testing.T) {
	s := newSettingsStore()

	s.SetTheme(model.ThemeLight)
	s.SetVoiceID("voice-1")
	s.ToggleDataSharing()
	s.Reset()
	assert.Equal(t, model.DefaultSettings(), s.State())

	// Idempotent: resetting again changes nothing.
	s.Reset()
	assert.Equal(t, model.DefaultSettings(), s.State())
}
