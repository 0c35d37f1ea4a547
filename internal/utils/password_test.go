package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestVerifyAdmin(t *testing.T) {
	hash, err := HashPassword("s3cret", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, VerifyAdmin("admin", hash, "admin", "s3cret"))
	assert.False(t, VerifyAdmin("admin", hash, "admin", "wrong"))
	assert.False(t, VerifyAdmin("admin", hash, "root", "s3cret"))
}
