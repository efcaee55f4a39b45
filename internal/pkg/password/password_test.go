package password

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestHashNeverStoresPlaintext(t *testing.T) {
	hashed, err := Hash("secret1", 10)
	require.NoError(t, err)
	require.NotEqual(t, "secret1", hashed)
	require.NotEmpty(t, hashed)
}

func TestVerify(t *testing.T) {
	hashed, err := Hash("secret1", 10)
	require.NoError(t, err)

	require.True(t, Verify(hashed, "secret1"))
	require.False(t, Verify(hashed, "wrong"))
	require.False(t, Verify(hashed, ""))
}

func TestHash_CostFallback(t *testing.T) {
	// Out-of-range costs fall back to the bcrypt default instead of failing.
	hashed, err := Hash("secret1", 0)
	require.NoError(t, err)
	require.True(t, Verify(hashed, "secret1"))

	hashed, err = Hash("secret1", 99)
	require.NoError(t, err)
	require.True(t, Verify(hashed, "secret1"))
}

func TestHash_SaltIsRandomized(t *testing.T) {
	a, err := Hash("secret1", 10)
	require.NoError(t, err)
	b, err := Hash("secret1", 10)
	require.NoError(t, err)
	require.NotEqual(t, a, b)
}
