package store

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"github.com/bmichals25/MindSync/internal/apperr"
	"github.com/bmichals25/MindSync/internal/identity"
	"github.com/bmichals25/MindSync/internal/kv"
	"github.com/bmichals25/MindSync/internal/model"
	"github.com/bmichals25/MindSync/internal/token"
)

// AuthStore owns the authentication slice. Each asynchronous operation
// independently cycles loading on, round-trips to a collaborator, and
// settles the slice; failures land in the error field, never in a return
// value.
type AuthStore struct {
	mu    sync.Mutex
	state model.AuthState

	identity identity.Service
	tokens   *token.Minter
	kv       kv.Store
	onChange func()
}

func (s *AuthStore) notify() {
	if s.onChange != nil {
		s.onChange()
	}
}

// State returns a copy of the slice.
func (s *AuthStore) State() model.AuthState {
	s.mu.Lock()
	defer s.mu.Unlock()

	state := s.state
	if state.User != nil {
		user := *state.User
		state.User = &user
	}
	return state
}

func (s *AuthStore) begin() {
	s.mu.Lock()
	s.state.Loading = true
	s.state.Error = ""
	s.mu.Unlock()
	s.notify()
}

func (s *AuthStore) reject(err error) {
	s.mu.Lock()
	s.state.Loading = false
	s.state.Error = apperr.Message(err)
	s.mu.Unlock()
	s.notify()
}

func (s *AuthStore) fulfill(user *model.User) {
	s.mu.Lock()
	s.state.User = user
	s.state.IsAuthenticated = user != nil
	s.state.Loading = false
	s.mu.Unlock()
	s.notify()
}

// Login authenticates against the identity collaborator and, on success,
// mints an auth token and mirrors it to durable storage under a fixed key.
func (s *AuthStore) Login(ctx context.Context, email, password string) {
	s.begin()

	user, err := s.identity.Authenticate(ctx, email, password)
	if err != nil {
		s.reject(err)
		return
	}

	if err := s.storeToken(ctx, user); err != nil {
		s.reject(err)
		return
	}

	s.fulfill(user)
}

// Register creates a fresh account and signs the new user in.
func (s *AuthStore) Register(ctx context.Context, email, password, firstName, lastName string) {
	s.begin()

	user, err := s.identity.CreateAccount(ctx, email, password, firstName, lastName)
	if err != nil {
		s.reject(err)
		return
	}

	if err := s.storeToken(ctx, user); err != nil {
		s.reject(err)
		return
	}

	s.fulfill(user)
}

func (s *AuthStore) storeToken(ctx context.Context, user *model.User) error {
	signed, err := s.tokens.Mint(user)
	if err != nil {
		return err
	}
	if err := s.kv.Set(ctx, token.StorageKey, []byte(signed)); err != nil {
		return apperr.Storage("set", err)
	}
	return nil
}

// Logout removes the stored token and clears the user. A storage failure
// leaves the slice untouched; the caller stays signed in.
func (s *AuthStore) Logout(ctx context.Context) {
	if err := s.kv.Remove(ctx, token.StorageKey); err != nil {
		log.Warn().Err(err).Msg("failed to remove auth token")
		return
	}

	s.mu.Lock()
	s.state.User = nil
	s.state.IsAuthenticated = false
	s.mu.Unlock()
	s.notify()
}

// CheckAuth restores the signed-in user from the stored token at startup.
// An absent token resolves to unauthenticated without an error; a token
// that fails to parse clears auth and records the failure.
func (s *AuthStore) CheckAuth(ctx context.Context) {
	s.mu.Lock()
	s.state.Loading = true
	s.mu.Unlock()
	s.notify()

	raw, err := s.kv.Get(ctx, token.StorageKey)
	if err != nil {
		s.rejectUnauthenticated(apperr.Storage("get", err))
		return
	}
	if raw == nil {
		s.fulfill(nil)
		return
	}

	user, err := s.tokens.Parse(string(raw))
	if err != nil {
		s.rejectUnauthenticated(err)
		return
	}

	s.fulfill(user)
}

func (s *AuthStore) rejectUnauthenticated(err error) {
	s.mu.Lock()
	s.state.User = nil
	s.state.IsAuthenticated = false
	s.state.Loading = false
	s.state.Error = apperr.Message(err)
	s.mu.Unlock()
	s.notify()
}

// ClearError drops a previously recorded failure message.
func (s *AuthStore) ClearError() {
	s.mu.Lock()
	s.state.Error = ""
	s.mu.Unlock()
	s.notify()
}

// UpdateUser shallow-merges profile fields into the current user; no-op
// when signed out.
func (s *AuthStore) UpdateUser(patch model.UserPatch) {
	s.mu.Lock()
	if s.state.User != nil {
		user := *s.state.User
		if patch.Email != nil {
			user.Email = *patch.Email
		}
		if patch.FirstName != nil {
			user.FirstName = *patch.FirstName
		}
		if patch.LastName != nil {
			user.LastName = *patch.LastName
		}
		if patch.ProfilePicture != nil {
			user.ProfilePicture = *patch.ProfilePicture
		}
		s.state.User = &user
	}
	s.mu.Unlock()
	s.notify()
}
