package models

import "errors"

// Application-wide standard errors
var (
	// Account & Credential Errors
	ErrAccountNotFound    = errors.New("account not found")
	ErrNameTaken          = errors.New("account with this name already exists")
	ErrEmailTaken         = errors.New("account with this email already exists")
	ErrInvalidCredentials = errors.New("invalid name or password")

	// Token Errors
	ErrTokenInvalid   = errors.New("token is invalid")
	ErrTokenMalformed = errors.New("token is malformed")
	ErrTokenExpired   = errors.New("token has expired")

	// General Request/Server Errors
	ErrInvalidInput   = errors.New("invalid input data")
	ErrInternalServer = errors.New("internal server error")
)
