package models

import (
	"time"

	"github.com/google/uuid"
)

// Account represents a registered account in the system.
type Account struct {
	ID             uuid.UUID `db:"id" json:"id"`
	Name           string    `db:"name" json:"name"`
	PasswordDigest string    `db:"password" json:"-"`
	Email          *string   `db:"email" json:"email"`
	Created        time.Time `db:"created" json:"created"`
}

// Projection is the subset of Account fields safe to return to a client.
type Projection struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
}

// Project returns the client-safe view of the account.
func (a *Account) Project() Projection {
	return Projection{
		ID:    a.ID.String(),
		Name:  a.Name,
		Email: a.Email,
	}
}
