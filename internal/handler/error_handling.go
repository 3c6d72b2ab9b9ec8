package handler

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"account-server/internal/models"
)

// handleServiceError translates service and store errors into the HTTP
// contract. Anything unrecognized collapses to an opaque 500; driver detail
// never reaches the client.
func handleServiceError(c *gin.Context, err error) {
	var statusCode int
	var errResp models.ErrorResponse

	switch {
	case errors.Is(err, models.ErrInvalidCredentials):
		statusCode = http.StatusUnauthorized
		errResp = models.ErrorResponse{Code: models.ErrCodeUnauthorized, Message: "Unauthorized"}
	case errors.Is(err, models.ErrAccountNotFound):
		// Identity lookup failure is indistinguishable from wrong credentials.
		statusCode = http.StatusUnauthorized
		errResp = models.ErrorResponse{Code: models.ErrCodeUnauthorized, Message: "Not authenticated"}
	case errors.Is(err, models.ErrNameTaken):
		statusCode = http.StatusConflict
		errResp = models.ErrorResponse{Code: models.ErrCodeNameTaken, Message: "Name taken"}
	case errors.Is(err, models.ErrEmailTaken):
		statusCode = http.StatusConflict
		errResp = models.ErrorResponse{Code: models.ErrCodeEmailTaken, Message: "Email taken"}
	case errors.Is(err, models.ErrTokenInvalid), errors.Is(err, models.ErrTokenMalformed), errors.Is(err, models.ErrTokenExpired):
		statusCode = http.StatusUnauthorized
		errResp = models.ErrorResponse{Code: models.ErrCodeTokenInvalid, Message: "Token is invalid"}
	case errors.Is(err, models.ErrInvalidInput):
		statusCode = http.StatusBadRequest
		errResp = models.ErrorResponse{Code: models.ErrCodeInvalidBody, Message: "Invalid input"}
	default:
		zap.L().Error("Unhandled internal error in handleServiceError", zap.Error(err))
		statusCode = http.StatusInternalServerError
		errResp = models.ErrorResponse{Code: models.ErrCodeInternal, Message: "Internal server error"}
	}

	c.AbortWithStatusJSON(statusCode, errResp)
}
