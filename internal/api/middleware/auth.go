package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/d60-Lab/peerpath/internal/model"
	"github.com/d60-Lab/peerpath/pkg/auth"
	"github.com/d60-Lab/peerpath/pkg/response"
)

const (
	ctxUserID = "user_id"
	ctxRole   = "role"
)

// JWTAuth 校验 Authorization: Bearer <token>，并把用户信息写入上下文
func JWTAuth(tm *auth.TokenManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			response.Unauthorized(c, "missing bearer token")
			c.Abort()
			return
		}
		claims, err := tm.Parse(strings.TrimSpace(token))
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}
		c.Set(ctxUserID, claims.UserID)
		c.Set(ctxRole, claims.Role)
		c.Next()
	}
}

// UserID returns the authenticated user id, empty outside JWTAuth.
func UserID(c *gin.Context) string {
	return c.GetString(ctxUserID)
}

// Role returns the role claimed by the token.
func Role(c *gin.Context) model.Role {
	return model.Role(c.GetString(ctxRole))
}
