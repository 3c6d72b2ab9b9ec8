package token

import (
	"testing"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account-server/internal/models"
)

func testAccount() *models.Account {
	email := "alice@example.com"
	return &models.Account{
		ID:    uuid.New(),
		Name:  "alice",
		Email: &email,
	}
}

func TestSignAndVerify(t *testing.T) {
	signer := NewSigner("unit-test-secret", 0)
	account := testAccount()

	tokenString, err := signer.Sign(account)
	require.NoError(t, err)
	require.NotEmpty(t, tokenString)

	claims, err := signer.Verify(tokenString)
	require.NoError(t, err)
	assert.Equal(t, account.ID.String(), claims.AccountID)
	assert.Equal(t, account.Name, claims.Name)
	require.NotNil(t, claims.Email)
	assert.Equal(t, *account.Email, *claims.Email)
	require.NotNil(t, claims.IssuedAt)
	assert.Nil(t, claims.ExpiresAt, "zero ttl should issue non-expiring tokens")
}

func TestSignWithoutEmail(t *testing.T) {
	signer := NewSigner("unit-test-secret", 0)
	account := testAccount()
	account.Email = nil

	tokenString, err := signer.Sign(account)
	require.NoError(t, err)

	claims, err := signer.Verify(tokenString)
	require.NoError(t, err)
	assert.Nil(t, claims.Email)
}

func TestVerifyTamperedToken(t *testing.T) {
	signer := NewSigner("unit-test-secret", 0)

	tokenString, err := signer.Sign(testAccount())
	require.NoError(t, err)

	// Flip a byte in the signature segment.
	tampered := []byte(tokenString)
	tampered[len(tampered)-1] ^= 0x01
	_, err = signer.Verify(string(tampered))
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestVerifyWrongSecret(t *testing.T) {
	tokenString, err := NewSigner("secret-a", 0).Sign(testAccount())
	require.NoError(t, err)

	_, err = NewSigner("secret-b", 0).Verify(tokenString)
	assert.ErrorIs(t, err, models.ErrTokenInvalid)
}

func TestVerifyMalformedToken(t *testing.T) {
	signer := NewSigner("unit-test-secret", 0)

	for _, tokenString := range []string{"", "garbage", "a.b", "a.b.c"} {
		_, err := signer.Verify(tokenString)
		assert.ErrorIs(t, err, models.ErrTokenMalformed, "token %q", tokenString)
	}
}

func TestVerifyExpiredToken(t *testing.T) {
	signer := NewSigner("unit-test-secret", time.Hour)
	account := testAccount()

	expired := jwt.NewWithClaims(jwt.SigningMethodHS256, &models.Claims{
		AccountID: account.ID.String(),
		Name:      account.Name,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(time.Now().Add(-2 * time.Hour)),
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(-time.Hour)),
		},
	})
	tokenString, err := expired.SignedString([]byte("unit-test-secret"))
	require.NoError(t, err)

	_, err = signer.Verify(tokenString)
	assert.ErrorIs(t, err, models.ErrTokenExpired)
}

func TestVerifyWithTTLSetsExpiry(t *testing.T) {
	signer := NewSigner("unit-test-secret", time.Hour)

	tokenString, err := signer.Sign(testAccount())
	require.NoError(t, err)

	claims, err := signer.Verify(tokenString)
	require.NoError(t, err)
	require.NotNil(t, claims.ExpiresAt)
	assert.WithinDuration(t, time.Now().Add(time.Hour), claims.ExpiresAt.Time, time.Minute)
}
