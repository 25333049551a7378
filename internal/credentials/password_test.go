package credentials_test

import (
	"testing"

	"movieapi/internal/credentials"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestHashAndVerify(t *testing.T) {
	digest, err := credentials.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, "secret1", digest)

	cost, err := bcrypt.Cost([]byte(digest))
	require.NoError(t, err)
	assert.Equal(t, credentials.Cost, cost)

	ok, err := credentials.Verify("secret1", digest)
	assert.NoError(t, err)
	assert.True(t, ok)

	for _, wrong := range []string{"", "secret", "secret12", "Secret1"} {
		ok, err := credentials.Verify(wrong, digest)
		assert.NoError(t, err, wrong)
		assert.False(t, ok, wrong)
	}
}

func TestHashIsSalted(t *testing.T) {
	first, err := credentials.Hash("secret1")
	require.NoError(t, err)
	second, err := credentials.Hash("secret1")
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestVerifyMalformedDigest(t *testing.T) {
	ok, err := credentials.Verify("secret1", "not-a-bcrypt-hash")
	assert.Error(t, err)
	assert.False(t, ok)
}
