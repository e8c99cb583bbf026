// Package identity is the identity collaborator: account creation and
// credential checks. The in-memory implementation stands in for a real
// backend while keeping the same contract.
package identity

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/bmichals25/MindSync/internal/apperr"
	"github.com/bmichals25/MindSync/internal/model"
)

// Service is consumed by the auth store. Both operations either produce a
// user or fail; there is no partial outcome.
type Service interface {
	Authenticate(ctx context.Context, email, password string) (*model.User, error)
	CreateAccount(ctx context.Context, email, password, firstName, lastName string) (*model.User, error)
}

type account struct {
	user         model.User
	passwordHash []byte
}

// InMemory keeps accounts for the life of the process, bcrypt-hashed.
type InMemory struct {
	mu       sync.RWMutex
	accounts map[string]account
}

func NewInMemory() *InMemory {
	return &InMemory{accounts: make(map[string]account)}
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *InMemory) CreateAccount(_ context.Context, email, password, firstName, lastName string) (*model.User, error) {
	key := normalizeEmail(email)

	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.accounts[key]; exists {
		return nil, apperr.AlreadyExists("account")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, apperr.Wrap(apperr.CodeInternal, "hash password", err)
	}

	user := model.User{
		ID:        uuid.NewString(),
		Email:     key,
		FirstName: firstName,
		LastName:  lastName,
		CreatedAt: time.Now(),
	}
	s.accounts[key] = account{user: user, passwordHash: hash}

	out := user
	return &out, nil
}

func (s *InMemory) Authenticate(_ context.Context, email, password string) (*model.User, error) {
	key := normalizeEmail(email)

	s.mu.RLock()
	acc, exists := s.accounts[key]
	s.mu.RUnlock()

	if !exists {
		return nil, apperr.InvalidCredentials()
	}
	if err := bcrypt.CompareHashAndPassword(acc.passwordHash, []byte(password)); err != nil {
		return nil, apperr.InvalidCredentials()
	}

	out := acc.user
	return &out, nil
}
