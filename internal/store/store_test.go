package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmichals25/MindSync/internal/kv"
	"github.com/bmichals25/MindSync/internal/model"
	"github.com/bmichals25/MindSync/internal/token"
)

func newRootStore() *Store {
	return New(Collaborators{
		Identity: &stubIdentity{user: testUser()},
		Tokens:   token.NewMinter("test-secret"),
		KV:       kv.NewMemory(),
	})
}

func TestRootStoreStartsWithDefaults(t *testing.T) {
	s := newRootStore()

	snap := s.Snapshot()
	assert.Equal(t, model.DefaultSettings(), snap.Settings)
	assert.Empty(t, snap.Sessions)
	assert.Empty(t, snap.Moods)
	assert.False(t, snap.Auth.IsAuthenticated)
	assert.Equal(t, model.DefaultUIState(), s.UI.State())
}

func TestOnChangeFiresForWhitelistedSlices(t *testing.T) {
	s := newRootStore()
	fired := 0
	s.OnChange(func() { fired++ })

	s.Moods.Add(model.MoodHappy, 5, "")
	s.Sessions.Create(model.SessionPatch{})
	s.Settings.SetTheme(model.ThemeDark)
	require.Equal(t, 3, fired)

	// The UI slice is not whitelisted and never notifies.
	s.UI.SetLoading(true)
	s.UI.ShowToast("hi", model.ToastInfo)
	assert.Equal(t, 3, fired)
}

func TestSnapshotReflectsState(t *testing.T) {
	s := newRootStore()

	entry := s.Moods.Add(model.MoodCalm, 6, "steady")
	session := s.Sessions.Create(model.SessionPatch{})
	s.Moods.LinkToSession(entry.Timestamp, session.ID, true)

	snap := s.Snapshot()
	require.Len(t, snap.Moods, 1)
	require.Len(t, snap.Sessions, 1)
	assert.Equal(t, session.ID, snap.Moods[0].SessionID)
}
