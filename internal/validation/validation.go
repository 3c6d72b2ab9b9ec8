// Package validation holds the pure field validators applied before any store
// access. Check ordering is part of the contract: presence before length and
// format, name before password before email. Clients assert on the first
// failing code.
package validation

import (
	"regexp"

	"account-server/internal/models"
)

const (
	minNameLength     = 2
	maxNameLength     = 18
	minPasswordLength = 6
	maxPasswordLength = 128
)

var (
	// First character must be a letter, the rest letters, digits or underscore.
	nameRegex  = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9_]*$`)
	emailRegex = regexp.MustCompile(`\S+@\S+\.\S+`)
)

// Error describes a single failed validation rule.
type Error struct {
	Code    string
	Message string
}

func (e *Error) Error() string { return e.Message }

// Name validates a non-empty account name against length and character rules.
func Name(name string) *Error {
	if len(name) < minNameLength {
		return &Error{Code: models.ErrCodeNameMinLength, Message: "Name must be at least 2 characters"}
	}
	if len(name) > maxNameLength {
		return &Error{Code: models.ErrCodeNameMaxLength, Message: "Name must be at most 18 characters"}
	}
	if !nameRegex.MatchString(name) {
		return &Error{Code: models.ErrCodeNameInvalidCharacters, Message: "Name must start with a letter and may only contain letters, numbers and underscores"}
	}
	return nil
}

// Password validates a non-empty plaintext password against length rules.
func Password(password string) *Error {
	if len(password) < minPasswordLength {
		return &Error{Code: models.ErrCodePasswordMinLength, Message: "Password must be at least 6 characters"}
	}
	if len(password) > maxPasswordLength {
		return &Error{Code: models.ErrCodePasswordMaxLength, Message: "Password must be at most 128 characters"}
	}
	return nil
}

// Email validates an email address format.
func Email(email string) *Error {
	if !emailRegex.MatchString(email) {
		return &Error{Code: models.ErrCodeEmailInvalidFormat, Message: "Invalid email format"}
	}
	return nil
}

// NewAccount validates a registration input. Presence checks run first, then
// per-field rules in name, password, email order.
func NewAccount(name, password string, email *string) *Error {
	if name == "" && password == "" {
		return &Error{Code: models.ErrCodeNameAndPasswordRequired, Message: "Name and password required"}
	}
	if name == "" {
		return &Error{Code: models.ErrCodeNameRequired, Message: "Name required"}
	}
	if password == "" {
		return &Error{Code: models.ErrCodePasswordRequired, Message: "Password required"}
	}
	if err := Name(name); err != nil {
		return err
	}
	if err := Password(password); err != nil {
		return err
	}
	if email != nil {
		if err := Email(*email); err != nil {
			return err
		}
	}
	return nil
}

// AccountUpdate validates a partial update. An update carrying no recognized
// field is rejected outright; rules apply only to fields that are present.
// An explicit null email is a valid request to clear the stored value.
func AccountUpdate(name, password *string, email models.OptionalString) *Error {
	if name == nil && password == nil && !email.Set {
		return &Error{Code: models.ErrCodeInvalidBody, Message: "Invalid input"}
	}
	if name != nil {
		if err := Name(*name); err != nil {
			return err
		}
	}
	if password != nil {
		if err := Password(*password); err != nil {
			return err
		}
	}
	if email.Set && email.Value != nil {
		if err := Email(*email.Value); err != nil {
			return err
		}
	}
	return nil
}
