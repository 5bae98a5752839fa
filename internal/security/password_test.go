package security

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashAndVerifyPassword(t *testing.T) {
	t.Parallel()

	hash, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotContains(t, string(hash), "secret1")

	require.True(t, VerifyPassword("secret1", hash))
	require.False(t, VerifyPassword("wrong", hash))
}

func TestHashPasswordSalted(t *testing.T) {
	t.Parallel()

	first, err := HashPassword("secret1")
	require.NoError(t, err)
	second, err := HashPassword("secret1")
	require.NoError(t, err)
	require.NotEqual(t, first, second)
}

func TestVerifyPasswordNoHash(t *testing.T) {
	t.Parallel()

	// Google users carry no hash and must never match any candidate.
	require.False(t, VerifyPassword("anything", nil))
	require.False(t, VerifyPassword("", nil))
}

func TestVerifyPasswordGarbageHash(t *testing.T) {
	t.Parallel()

	require.False(t, VerifyPassword("secret1", []byte("not-an-encoded-hash")))
}
