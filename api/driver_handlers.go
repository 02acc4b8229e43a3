package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"foodexpress/pkg/logger"
)

func (h *handler) becomeDriver(c *gin.Context) {
	userID := currentUserID(c)

	driver, err := h.svc.Driver().Register(c.Request.Context(), userID)
	if err != nil {
		h.log.Error("driver registration failed", logger.Int64("user_id", userID), logger.Error(err))
		abortWithError(c, err)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"driver": driver})
}

func (h *handler) changeDriverStatus(status string) gin.HandlerFunc {
	return func(c *gin.Context) {
		newStatus, err := h.svc.Driver().ChangeStatus(c.Request.Context(), status, currentUserID(c))
		if err != nil {
			abortWithError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{"status": newStatus})
	}
}
