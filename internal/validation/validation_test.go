package validation

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"account-server/internal/models"
)

func strPtr(s string) *string { return &s }

func TestNewAccount(t *testing.T) {
	tests := []struct {
		name     string
		inName   string
		password string
		email    *string
		wantCode string
	}{
		{"valid without email", "alice", "secret1", nil, ""},
		{"valid with email", "alice", "secret1", strPtr("alice@example.com"), ""},
		{"both missing", "", "", nil, models.ErrCodeNameAndPasswordRequired},
		{"name missing", "", "secret1", nil, models.ErrCodeNameRequired},
		{"password missing", "alice", "", nil, models.ErrCodePasswordRequired},
		{"name too short", "a", "secret1", nil, models.ErrCodeNameMinLength},
		{"name too long", strings.Repeat("a", 19), "secret1", nil, models.ErrCodeNameMaxLength},
		{"name starts with digit", "1alice", "secret1", nil, models.ErrCodeNameInvalidCharacters},
		{"name with space", "ali ce", "secret1", nil, models.ErrCodeNameInvalidCharacters},
		{"name with dash", "ali-ce", "secret1", nil, models.ErrCodeNameInvalidCharacters},
		{"underscore allowed", "ali_ce", "secret1", nil, ""},
		{"password too short", "alice", "short", nil, models.ErrCodePasswordMinLength},
		{"password too long", "alice", strings.Repeat("p", 129), nil, models.ErrCodePasswordMaxLength},
		{"password at max length", "alice", strings.Repeat("p", 128), nil, ""},
		{"invalid email", "alice", "secret1", strPtr("not-an-email"), models.ErrCodeEmailInvalidFormat},
		{"email missing domain dot", "alice", "secret1", strPtr("a@b"), models.ErrCodeEmailInvalidFormat},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := NewAccount(tc.inName, tc.password, tc.email)
			if tc.wantCode == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tc.wantCode, err.Code)
			assert.NotEmpty(t, err.Message)
		})
	}
}

// Name failures must win over password failures, and password over email.
func TestNewAccountOrdering(t *testing.T) {
	err := NewAccount("a", "short", strPtr("bad"))
	require.NotNil(t, err)
	assert.Equal(t, models.ErrCodeNameMinLength, err.Code)

	err = NewAccount("alice", "short", strPtr("bad"))
	require.NotNil(t, err)
	assert.Equal(t, models.ErrCodePasswordMinLength, err.Code)

	err = NewAccount("", "", strPtr("bad"))
	require.NotNil(t, err)
	assert.Equal(t, models.ErrCodeNameAndPasswordRequired, err.Code)
}

func TestAccountUpdate(t *testing.T) {
	tests := []struct {
		name     string
		inName   *string
		password *string
		email    models.OptionalString
		wantCode string
	}{
		{"no fields", nil, nil, models.OptionalString{}, models.ErrCodeInvalidBody},
		{"name only", strPtr("bob"), nil, models.OptionalString{}, ""},
		{"password only", nil, strPtr("secret1"), models.OptionalString{}, ""},
		{"email only", nil, nil, models.OptionalString{Set: true, Value: strPtr("bob@example.com")}, ""},
		{"email cleared with null", nil, nil, models.OptionalString{Set: true, Value: nil}, ""},
		{"invalid name", strPtr("b"), nil, models.OptionalString{}, models.ErrCodeNameMinLength},
		{"invalid password", nil, strPtr("short"), models.OptionalString{}, models.ErrCodePasswordMinLength},
		{"invalid email", nil, nil, models.OptionalString{Set: true, Value: strPtr("nope")}, models.ErrCodeEmailInvalidFormat},
		{"name checked before password", strPtr(""), strPtr("x"), models.OptionalString{}, models.ErrCodeNameMinLength},
		{"password checked before email", strPtr("bob"), strPtr("x"), models.OptionalString{Set: true, Value: strPtr("nope")}, models.ErrCodePasswordMinLength},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			err := AccountUpdate(tc.inName, tc.password, tc.email)
			if tc.wantCode == "" {
				assert.Nil(t, err)
				return
			}
			require.NotNil(t, err)
			assert.Equal(t, tc.wantCode, err.Code)
		})
	}
}
