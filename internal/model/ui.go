package model

// Toast holds at most one visible message. Showing a new toast overwrites
// the previous one; there is no queue.
type Toast struct {
	Visible  bool          `json:"visible"`
	Message  string        `json:"message"`
	Severity ToastSeverity `json:"severity"`
}

// UIState is ephemeral view state. It is never persisted and resets to
// defaults on process restart.
type UIState struct {
	Loading      bool   `json:"loading"`
	ModalVisible bool   `json:"modalVisible"`
	CurrentModal string `json:"currentModal,omitempty"`
	Toast        Toast  `json:"toast"`
}

func DefaultUIState() UIState {
	return UIState{
		Toast: Toast{Severity: ToastInfo},
	}
}
