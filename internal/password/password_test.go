package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndVerify(t *testing.T) {
	hasher := NewArgon2Hasher("test-pepper")

	digest, err := hasher.Hash("correct horse battery")
	require.NoError(t, err)
	require.NotEmpty(t, digest)
	assert.True(t, strings.HasPrefix(digest, "$argon2id$"), "digest should use PHC argon2id format")
	assert.NotContains(t, digest, "correct horse battery")

	ok, err := hasher.Verify("correct horse battery", digest)
	require.NoError(t, err)
	assert.True(t, ok, "correct password should verify")

	ok, err = hasher.Verify("wrong password", digest)
	require.NoError(t, err)
	assert.False(t, ok, "wrong password should not verify")
}

func TestHashIsSalted(t *testing.T) {
	hasher := NewArgon2Hasher("test-pepper")

	first, err := hasher.Hash("samepassword")
	require.NoError(t, err)
	second, err := hasher.Hash("samepassword")
	require.NoError(t, err)

	assert.NotEqual(t, first, second, "same password should produce distinct digests")
}

func TestVerifyPepperMismatch(t *testing.T) {
	digest, err := NewArgon2Hasher("pepper-a").Hash("secret1")
	require.NoError(t, err)

	ok, err := NewArgon2Hasher("pepper-b").Verify("secret1", digest)
	require.NoError(t, err)
	assert.False(t, ok, "digest must be bound to the pepper")
}

func TestVerifyMalformedDigest(t *testing.T) {
	hasher := NewArgon2Hasher("test-pepper")

	for _, digest := range []string{
		"",
		"not-a-digest",
		"$bcrypt$v=19$m=65536,t=3,p=2$c2FsdA$a2V5",
		"$argon2id$v=19$m=65536,t=3,p=2$not!base64$a2V5",
		"$argon2id$v=19$garbage$c2FsdA$a2V5",
	} {
		ok, err := hasher.Verify("secret1", digest)
		assert.ErrorIs(t, err, ErrMalformedDigest, "digest %q", digest)
		assert.False(t, ok)
	}
}
