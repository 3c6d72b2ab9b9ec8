package handler

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"account-server/internal/models"
)

// accountIDKey is the single piece of request-scoped state set by the auth
// middlewares: the resolved account id consumed by downstream handlers.
const accountIDKey = "account_id"

// accountID returns the resolved account id set by an auth middleware.
func accountID(c *gin.Context) (uuid.UUID, bool) {
	raw, exists := c.Get(accountIDKey)
	if !exists {
		return uuid.Nil, false
	}
	id, ok := raw.(uuid.UUID)
	return id, ok
}

// TokenMiddleware authenticates requests carrying a signed bearer token.
// Verification is stateless; the store is never consulted here.
func (h *AccountHandler) TokenMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			authenticationsTotal.WithLabelValues("bearer", "failure").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Code:    models.ErrCodeTokenRequired,
				Message: "Token required",
			})
			return
		}

		tokenString := strings.TrimPrefix(authHeader, "Bearer ")
		claims, err := h.signer.Verify(tokenString)
		if err != nil {
			zap.L().Warn("Token verification failed", zap.Error(err))
			authenticationsTotal.WithLabelValues("bearer", "failure").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Code:    models.ErrCodeTokenInvalid,
				Message: "Token is invalid",
			})
			return
		}

		id, err := uuid.Parse(claims.AccountID)
		if err != nil {
			// The signature checked out but the claim shape did not; a
			// correct signer never produces this.
			zap.L().Error("Verified token carries a malformed account id", zap.String("id", claims.AccountID), zap.Error(err))
			authenticationsTotal.WithLabelValues("bearer", "failure").Inc()
			c.AbortWithStatusJSON(http.StatusInternalServerError, models.ErrorResponse{
				Code:    models.ErrCodeUnexpected,
				Message: "Unexpected error",
			})
			return
		}

		authenticationsTotal.WithLabelValues("bearer", "success").Inc()
		c.Set(accountIDKey, id)
		c.Next()
	}
}

// BasicAuthMiddleware authenticates requests carrying HTTP Basic credentials
// and resolves them against the store. Wrong password and unknown name are
// deliberately indistinguishable.
func (h *AccountHandler) BasicAuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		name, pass, ok := c.Request.BasicAuth()
		if !ok || (name == "" && pass == "") {
			authenticationsTotal.WithLabelValues("basic", "failure").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Code:    models.ErrCodeBasicAuthRequired,
				Message: "Basic authentication required",
			})
			return
		}
		if name == "" {
			authenticationsTotal.WithLabelValues("basic", "failure").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Code:    models.ErrCodeBasicAuthRequired,
				Message: "Basic authentication name required",
			})
			return
		}
		if pass == "" {
			authenticationsTotal.WithLabelValues("basic", "failure").Inc()
			c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
				Code:    models.ErrCodeBasicAuthRequired,
				Message: "Basic authentication password required",
			})
			return
		}

		account, err := h.accountService.Authenticate(c.Request.Context(), name, pass)
		if err != nil {
			authenticationsTotal.WithLabelValues("basic", "failure").Inc()
			handleServiceError(c, err)
			return
		}

		authenticationsTotal.WithLabelValues("basic", "success").Inc()
		c.Set(accountIDKey, account.ID)
		c.Next()
	}
}
