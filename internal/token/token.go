// Package token mints and parses the opaque auth token the app keeps in
// durable storage between launches. The token is a signed claim of "who was
// logged in", not a credential validated against a backend.
package token

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/bmichals25/MindSync/internal/apperr"
	"github.com/bmichals25/MindSync/internal/model"
)

// StorageKey is the fixed durable key the auth token lives under.
const StorageKey = "auth_token"

type claims struct {
	Email     string `json:"email,omitempty"`
	FirstName string `json:"firstName,omitempty"`
	LastName  string `json:"lastName,omitempty"`
	jwt.RegisteredClaims
}

// Minter derives tokens from users and users back from tokens.
type Minter struct {
	secret []byte
}

func NewMinter(secret string) *Minter {
	return &Minter{secret: []byte(secret)}
}

func (m *Minter) Mint(user *model.User) (string, error) {
	now := time.Now()
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims{
		Email:     user.Email,
		FirstName: user.FirstName,
		LastName:  user.LastName,
		RegisteredClaims: jwt.RegisteredClaims{
			Subject:  user.ID,
			IssuedAt: jwt.NewNumericDate(now),
		},
	})
	signed, err := t.SignedString(m.secret)
	if err != nil {
		return "", apperr.Wrap(apperr.CodeInternal, "sign auth token", err)
	}
	return signed, nil
}

// Parse reconstructs a placeholder user from a stored token. The result
// carries whatever identity the token encodes; it is not revalidated
// against the identity service.
func (m *Minter) Parse(raw string) (*model.User, error) {
	var c claims
	_, err := jwt.ParseWithClaims(raw, &c, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, jwt.ErrSignatureInvalid
		}
		return m.secret, nil
	})
	if err != nil {
		return nil, apperr.InvalidToken(err)
	}

	user := &model.User{
		ID:        c.Subject,
		Email:     c.Email,
		FirstName: c.FirstName,
		LastName:  c.LastName,
	}
	if c.IssuedAt != nil {
		user.CreatedAt = c.IssuedAt.Time
	}
	return user, nil
}
