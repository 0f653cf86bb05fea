package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/intervia/testbank/internal/dto"
	"github.com/intervia/testbank/internal/rbac"
	"github.com/intervia/testbank/internal/service"
)

const (
	ctxUserID = "auth.user_id"
	ctxRole   = "auth.role"
)

// Authenticate validates the bearer token and attaches the caller's id and
// role to the request context.
func Authenticate(tokens service.TokenService) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		const prefix = "Bearer "
		if !strings.HasPrefix(header, prefix) {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Could not validate credentials"})
			return
		}
		claims, err := tokens.Parse(strings.TrimPrefix(header, prefix))
		if err != nil {
			c.AbortWithStatusJSON(http.StatusUnauthorized, dto.ErrorResponse{Error: "Could not validate credentials"})
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// Require rejects callers whose role does not grant the action. Must run
// after Authenticate.
func Require(action rbac.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		role, ok := rbac.Parse(c.GetString(ctxRole))
		if !ok || !rbac.Can(role, action) {
			c.AbortWithStatusJSON(http.StatusForbidden, dto.ErrorResponse{Error: "You do not have permission to perform this action"})
			return
		}
		c.Next()
	}
}

// UserID returns the authenticated caller's user id.
func UserID(c *gin.Context) uint {
	if v, ok := c.Get(ctxUserID); ok {
		if id, ok := v.(uint); ok {
			return id
		}
	}
	return 0
}
