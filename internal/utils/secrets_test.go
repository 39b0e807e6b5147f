package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAdminSecrets(t *testing.T) {
	hashes, err := HashAdminSecrets([]string{"admin", "", "admin123"})
	require.NoError(t, err)
	require.Len(t, hashes, 2)
	assert.NotContains(t, hashes, "admin")

	assert.True(t, MatchesAdminSecret("admin", hashes))
	assert.True(t, MatchesAdminSecret("admin123", hashes))
	assert.False(t, MatchesAdminSecret("Admin", hashes))
	assert.False(t, MatchesAdminSecret("", hashes))
	assert.False(t, MatchesAdminSecret("admin", nil))
}

func TestRandomSigningKey(t *testing.T) {
	a, err := RandomSigningKey(32)
	require.NoError(t, err)
	assert.Len(t, a, 64)

	b, err := RandomSigningKey(32)
	require.NoError(t, err)
	assert.NotEqual(t, a, b)

	_, err = RandomSigningKey(0)
	assert.Error(t, err)
}
