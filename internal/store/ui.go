package store

import (
	"sync"

	"github.com/bmichals25/MindSync/internal/model"
)

// UIStore holds ephemeral view state. It is excluded from persistence and
// resets to defaults on every process start.
type UIStore struct {
	mu    sync.Mutex
	state model.UIState
}

// State returns a copy of the slice.
func (s *UIStore) State() model.UIState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *UIStore) SetLoading(loading bool) {
	s.mu.Lock()
	s.state.Loading = loading
	s.mu.Unlock()
}

// ShowModal displays the named modal. There is a single modal slot; a
// second show silently replaces the first.
func (s *UIStore) ShowModal(name string) {
	s.mu.Lock()
	s.state.ModalVisible = true
	s.state.CurrentModal = name
	s.mu.Unlock()
}

func (s *UIStore) HideModal() {
	s.mu.Lock()
	s.state.ModalVisible = false
	s.state.CurrentModal = ""
	s.mu.Unlock()
}

// ShowToast replaces whatever toast is on screen; last write wins, there
// is no queue.
func (s *UIStore) ShowToast(message string, severity model.ToastSeverity) {
	if severity == "" {
		severity = model.ToastInfo
	}
	s.mu.Lock()
	s.state.Toast = model.Toast{
		Visible:  true,
		Message:  message,
		Severity: severity,
	}
	s.mu.Unlock()
}

func (s *UIStore) HideToast() {
	s.mu.Lock()
	s.state.Toast.Visible = false
	s.mu.Unlock()
}

// Reset restores the defaults.
func (s *UIStore) Reset() {
	s.mu.Lock()
	s.state = model.DefaultUIState()
	s.mu.Unlock()
}
