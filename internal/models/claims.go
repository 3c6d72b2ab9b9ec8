package models

import "github.com/golang-jwt/jwt/v5"

// Claims is the payload embedded in signed account tokens. The account
// identifier travels in the custom "id" field; RegisteredClaims carries the
// standard issued-at and expiry fields.
type Claims struct {
	AccountID string  `json:"id"`
	Name      string  `json:"name"`
	Email     *string `json:"email"`
	jwt.RegisteredClaims
}
