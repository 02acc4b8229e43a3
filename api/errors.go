package api

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"foodexpress/pkg/models"
)

type errorResponse struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

func errorBody(status int, message string) errorResponse {
	return errorResponse{Status: status, Message: message}
}

// statusFor maps service errors to HTTP codes. Keeping the taxonomy explicit
// lets a client tell "not yours" from "gone" from "try again later".
func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrOrderNotFound):
		return http.StatusNotFound
	case errors.Is(err, models.ErrForbidden):
		return http.StatusForbidden
	case errors.Is(err, models.ErrNoDriverAvailable):
		return http.StatusConflict
	case errors.Is(err, models.ErrDuplicateRequest):
		return http.StatusConflict
	case errors.Is(err, models.ErrExternalService):
		return http.StatusBadGateway
	case errors.Is(err, models.ErrUnauthorized):
		return http.StatusUnauthorized
	default:
		return http.StatusInternalServerError
	}
}

func abortWithError(c *gin.Context, err error) {
	status := statusFor(err)
	c.AbortWithStatusJSON(status, errorBody(status, err.Error()))
}
