package api

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"foodexpress/pkg/logger"
)

const userIDKey = "userID"

// requestID tags every request so log lines of one request can be tied
// together.
func requestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader("X-Request-ID")
		if id == "" {
			id = uuid.NewString()
		}
		c.Writer.Header().Set("X-Request-ID", id)
		c.Next()
	}
}

// authenticated resolves the bearer token to a user id and stores it on the
// context. Token issuing belongs to the auth subsystem; here we only look
// tokens up.
func (h *handler) authenticated() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(authHeader, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "missing bearer token"))
			return
		}

		userID, err := h.auth.GetUserIDByToken(c.Request.Context(), token)
		if err != nil {
			h.log.Warning("token lookup failed", logger.Error(err))
			c.AbortWithStatusJSON(http.StatusUnauthorized, errorBody(http.StatusUnauthorized, "invalid or expired token"))
			return
		}

		c.Set(userIDKey, userID)
		c.Next()
	}
}

func currentUserID(c *gin.Context) int64 {
	return c.GetInt64(userIDKey)
}
