package hash

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashPassword(t *testing.T) {
	h, err := HashPassword("secret")
	require.NoError(t, err)

	assert.NotEqual(t, "secret", h)
	assert.True(t, IsHash(h))
	assert.True(t, CheckPassword(h, "secret"))
	assert.False(t, CheckPassword(h, "Secret"))
}

func TestIsHash(t *testing.T) {
	assert.False(t, IsHash(""))
	assert.False(t, IsHash("secret"))
}
