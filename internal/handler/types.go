package handler

import "account-server/internal/models"

type createAccountRequest struct {
	Name     string  `json:"name"`
	Password string  `json:"password"`
	Email    *string `json:"email"`
}

type updateAccountRequest struct {
	Name     *string               `json:"name"`
	Password *string               `json:"password"`
	Email    models.OptionalString `json:"email"`
}

// accountResponse is the canonical authenticated response: the client-safe
// projection plus a freshly signed token over the same fields.
type accountResponse struct {
	ID    string  `json:"id"`
	Name  string  `json:"name"`
	Email *string `json:"email"`
	Token string  `json:"token"`
}

func newAccountResponse(account *models.Account, token string) accountResponse {
	return accountResponse{
		ID:    account.ID.String(),
		Name:  account.Name,
		Email: account.Email,
		Token: token,
	}
}
