package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// setupTestRouter builds a minimal gin engine for handler tests
func setupTestRouter() *gin.Engine {
	gin.SetMode(gin.TestMode)
	return gin.New()
}

// authAs simulates the auth middleware by injecting the user ID into the
// request context
func authAs(userID uuid.UUID) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Next()
	}
}
