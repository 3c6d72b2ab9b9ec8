// Package handler exposes the HTTP surface of the account service: the
// registration and account endpoints, the two authentication middlewares and
// the error mapping between service errors and HTTP responses.
package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"account-server/internal/models"
	"account-server/internal/service"
	"account-server/internal/token"
)

// AccountHandler handles HTTP requests for account management.
type AccountHandler struct {
	accountService service.AccountService
	signer         *token.Signer
}

// NewAccountHandler creates an AccountHandler.
func NewAccountHandler(accountService service.AccountService, signer *token.Signer) *AccountHandler {
	return &AccountHandler{
		accountService: accountService,
		signer:         signer,
	}
}

// RegisterRoutes mounts the API on the router. Anything outside the mounted
// routes is denied with 401 rather than 404: an unmatched route is treated
// exactly like absent credentials.
func (h *AccountHandler) RegisterRoutes(router *gin.Engine) {
	v1 := router.Group("/api/v1")
	{
		v1.GET("", h.banner)
		v1.POST("/user", h.createAccount)
		v1.GET("/user", h.BasicAuthMiddleware(), h.readAccount)
		v1.POST("/user/update", h.TokenMiddleware(), h.updateAccount)
		v1.POST("/user/delete", h.TokenMiddleware(), h.deleteAccount)
	}

	router.NoRoute(defaultDeny)
	router.NoMethod(defaultDeny)
}

func (h *AccountHandler) banner(c *gin.Context) {
	c.String(http.StatusOK, "Auth API")
}

func defaultDeny(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusUnauthorized, models.ErrorResponse{
		Code:    models.ErrCodeUnauthorized,
		Message: "Unauthorized",
	})
}
