package token

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestGenerateAndValidate(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	tok, err := m.Generate("user123", "alice@example.com")
	require.NoError(t, err)
	require.NotEmpty(t, tok)

	claims, err := m.Validate(tok)
	require.NoError(t, err)
	require.Equal(t, "user123", claims.UserID)
	require.Equal(t, "alice@example.com", claims.Email)
	require.Equal(t, "user123", claims.Subject)
}

func TestValidate_WrongSecret(t *testing.T) {
	m := NewManager("test-secret", time.Hour)
	other := NewManager("other-secret", time.Hour)

	tok, err := m.Generate("user123", "alice@example.com")
	require.NoError(t, err)

	_, err = other.Validate(tok)
	require.Error(t, err)
}

func TestValidate_Expired(t *testing.T) {
	m := NewManager("test-secret", -time.Hour)

	tok, err := m.Generate("user123", "alice@example.com")
	require.NoError(t, err)

	_, err = m.Validate(tok)
	require.Error(t, err)
}

func TestValidate_Malformed(t *testing.T) {
	m := NewManager("test-secret", time.Hour)

	_, err := m.Validate("not-a-token")
	require.Error(t, err)

	_, err = m.Validate("")
	require.Error(t, err)
}
