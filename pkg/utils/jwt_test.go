package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTokenIssuer_RoundTrip(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", 30*time.Minute)

	token, claims, err := issuer.CreateToken("acc-1", "admin@ecoquest.id", "admin")
	require.NoError(t, err)
	require.NotEmpty(t, token)
	assert.NotEmpty(t, claims.ID)

	parsed, err := issuer.ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, "acc-1", parsed.AccountID)
	assert.Equal(t, "admin@ecoquest.id", parsed.Email)
	assert.Equal(t, "admin", parsed.Role)
	assert.Equal(t, claims.ID, parsed.ID)
}

func TestTokenIssuer_UniqueTokenIDs(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Minute)

	_, a, err := issuer.CreateToken("acc-1", "a@b.c", "admin")
	require.NoError(t, err)
	_, b, err := issuer.CreateToken("acc-1", "a@b.c", "admin")
	require.NoError(t, err)

	assert.NotEqual(t, a.ID, b.ID)
}

func TestTokenIssuer_RejectsExpired(t *testing.T) {
	issuer := NewTokenIssuer("test-secret", time.Minute)
	issued := time.Date(2025, 1, 1, 10, 0, 0, 0, time.UTC)
	issuer.now = func() time.Time { return issued }

	token, _, err := issuer.CreateToken("acc-1", "a@b.c", "admin")
	require.NoError(t, err)

	issuer.now = func() time.Time { return issued.Add(2 * time.Minute) }
	_, err = issuer.ValidateToken(token)
	assert.Error(t, err)
}

func TestTokenIssuer_RejectsForeignSignature(t *testing.T) {
	token, _, err := NewTokenIssuer("one", time.Minute).CreateToken("acc-1", "a@b.c", "admin")
	require.NoError(t, err)

	_, err = NewTokenIssuer("two", time.Minute).ValidateToken(token)
	assert.Error(t, err)
}

func TestHashPassword(t *testing.T) {
	hash, err := HashPassword("rahasia123")
	require.NoError(t, err)

	assert.NotEqual(t, "rahasia123", hash)
	assert.NoError(t, ComparePasswords(hash, "rahasia123"))
	assert.Error(t, ComparePasswords(hash, "salah"))
}
