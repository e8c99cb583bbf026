package model

import "time"

// MoodEntry is addressed by its timestamp; the store assigns it at creation
// and treats it as the entry's natural key.
type MoodEntry struct {
	Value        MoodType  `json:"value"`
	Intensity    int       `json:"intensity"`
	Notes        string    `json:"notes,omitempty"`
	Timestamp    time.Time `json:"timestamp"`
	SessionID    string    `json:"sessionId,omitempty"`
	IsMoodBefore *bool     `json:"isMoodBefore,omitempty"`
}

// MoodPatch carries partial updates for an existing entry.
type MoodPatch struct {
	Value     *MoodType `json:"value,omitempty"`
	Intensity *int      `json:"intensity,omitempty"`
	Notes     *string   `json:"notes,omitempty"`
}
