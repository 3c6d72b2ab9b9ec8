package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"account-server/internal/models"
	"account-server/internal/service"
	"account-server/internal/validation"
)

// createAccount registers a new account. No authentication required.
func (h *AccountHandler) createAccount(c *gin.Context) {
	var req createAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    models.ErrCodeInvalidBody,
			Message: "Invalid request body",
		})
		return
	}

	if verr := validation.NewAccount(req.Name, req.Password, req.Email); verr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Code: verr.Code, Message: verr.Message})
		return
	}

	account, err := h.accountService.Register(c.Request.Context(), req.Name, req.Password, req.Email)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	signed, err := h.signer.Sign(account)
	if err != nil {
		zap.L().Error("Failed to sign token for new account", zap.String("accountID", account.ID.String()), zap.Error(err))
		handleServiceError(c, err)
		return
	}

	registrationsTotal.Inc()
	c.JSON(http.StatusCreated, newAccountResponse(account, signed))
}

// readAccount returns the authenticated account. Identity was established by
// the Basic auth middleware; this is the one endpoint that exchanges
// credentials for a token.
func (h *AccountHandler) readAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		zap.L().Error("Account id missing from context in readAccount")
		handleServiceError(c, models.ErrInternalServer)
		return
	}

	account, err := h.accountService.GetByID(c.Request.Context(), id)
	if err != nil {
		handleServiceError(c, err)
		return
	}

	signed, err := h.signer.Sign(account)
	if err != nil {
		zap.L().Error("Failed to sign token for account", zap.String("accountID", account.ID.String()), zap.Error(err))
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAccountResponse(account, signed))
}

// updateAccount applies a partial update to the authenticated account and
// returns the post-update projection with a token re-signed over it.
func (h *AccountHandler) updateAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		zap.L().Error("Account id missing from context in updateAccount")
		handleServiceError(c, models.ErrInternalServer)
		return
	}

	var req updateAccountRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{
			Code:    models.ErrCodeInvalidBody,
			Message: "Invalid request body",
		})
		return
	}

	if verr := validation.AccountUpdate(req.Name, req.Password, req.Email); verr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, models.ErrorResponse{Code: verr.Code, Message: verr.Message})
		return
	}

	account, err := h.accountService.Update(c.Request.Context(), id, service.UpdateInput{
		Name:     req.Name,
		Password: req.Password,
		Email:    req.Email,
	})
	if err != nil {
		handleServiceError(c, err)
		return
	}

	signed, err := h.signer.Sign(account)
	if err != nil {
		zap.L().Error("Failed to sign token after update", zap.String("accountID", account.ID.String()), zap.Error(err))
		handleServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, newAccountResponse(account, signed))
}

// deleteAccount removes the authenticated account. The response is 204 even
// when the account was already gone.
func (h *AccountHandler) deleteAccount(c *gin.Context) {
	id, ok := accountID(c)
	if !ok {
		zap.L().Error("Account id missing from context in deleteAccount")
		handleServiceError(c, models.ErrInternalServer)
		return
	}

	if err := h.accountService.Delete(c.Request.Context(), id); err != nil {
		handleServiceError(c, err)
		return
	}

	deletionsTotal.Inc()
	c.Status(http.StatusNoContent)
}
