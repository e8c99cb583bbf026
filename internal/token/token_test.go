package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bmichals25/MindSync/internal/model"
)

func TestMintParseRoundTrip(t *testing.T) {
	m := NewMinter("secret")

	user := &model.User{
		ID:        "user-1",
		Email:     "a@b.com",
		FirstName: "Test",
		LastName:  "User",
		CreatedAt: time.Now(),
	}

	raw, err := m.Mint(user)
	require.NoError(t, err)
	require.NotEmpty(t, raw)

	parsed, err := m.Parse(raw)
	require.NoError(t, err)
	assert.Equal(t, "user-1", parsed.ID)
	assert.Equal(t, "a@b.com", parsed.Email)
	assert.Equal(t, "Test", parsed.FirstName)
	assert.Equal(t, "User", parsed.LastName)
}

func TestParseRejectsGarbage(t *testing.T) {
	m := NewMinter("secret")

	_, err := m.Parse("definitely-not-a-jwt")
	assert.Error(t, err)
}

func TestParseRejectsWrongSecret(t *testing.T) {
	raw, err := NewMinter("secret-a").Mint(&model.User{ID: "user-1"})
	require.NoError(t, err)

	_, err = NewMinter("secret-b").Parse(raw)
	assert.Error(t, err)
}
