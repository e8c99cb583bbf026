package model

import "time"

type User struct {
	ID             string    `json:"id"`
	Email          string    `json:"email"`
	FirstName      string    `json:"firstName,omitempty"`
	LastName       string    `json:"lastName,omitempty"`
	ProfilePicture string    `json:"profilePicture,omitempty"`
	CreatedAt      time.Time `json:"createdAt"`
}

// UserPatch carries partial profile updates; nil fields are left alone.
type UserPatch struct {
	Email          *string `json:"email,omitempty"`
	FirstName      *string `json:"firstName,omitempty"`
	LastName       *string `json:"lastName,omitempty"`
	ProfilePicture *string `json:"profilePicture,omitempty"`
}

// AuthState is the authentication slice mirrored to durable storage.
// IsAuthenticated is true exactly when User is non-nil.
type AuthState struct {
	User            *User  `json:"user"`
	IsAuthenticated bool   `json:"isAuthenticated"`
	Loading         bool   `json:"loading"`
	Error           string `json:"error,omitempty"`
}
