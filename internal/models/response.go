package models

// Error codes returned in ErrorResponse bodies. Clients match on the code,
// the message is informational only.
const (
	ErrCodeBasicAuthRequired = "BASIC_AUTH_REQUIRED"
	ErrCodeInvalidBody       = "INVALID_BODY"
	ErrCodeTokenRequired     = "JWT_REQUIRED"
	ErrCodeTokenInvalid      = "JWT_INVALID"
	ErrCodeUnauthorized      = "UNAUTHORIZED"
	ErrCodeUnexpected        = "UNEXPECTED_ERROR"
	ErrCodeInternal          = "INTERNAL_SERVER_ERROR"

	ErrCodeNameAndPasswordRequired = "USER_NAME_AND_PASSWORD_REQUIRED"
	ErrCodeNameRequired            = "USER_NAME_REQUIRED"
	ErrCodeNameMinLength           = "USER_NAME_MINIMUM_2_CHARACTERS"
	ErrCodeNameMaxLength           = "USER_NAME_MAXIMUM_18_CHARACTERS"
	ErrCodeNameInvalidCharacters   = "USER_NAME_CONTAINS_INVALID_CHARACTERS"
	ErrCodeNameTaken               = "USER_NAME_TAKEN"
	ErrCodePasswordRequired        = "USER_PASSWORD_REQUIRED"
	ErrCodePasswordMinLength       = "USER_PASSWORD_MINIMUM_6_CHARACTERS"
	ErrCodePasswordMaxLength       = "USER_PASSWORD_MAXIMUM_128_CHARACTERS"
	ErrCodeEmailInvalidFormat      = "USER_EMAIL_INVALID_FORMAT"
	ErrCodeEmailTaken              = "USER_EMAIL_TAKEN"
)

// ErrorResponse is the standard JSON error envelope.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}
