package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"room-manager/internal/domain/models"
	"room-manager/internal/domain/services"
	"room-manager/internal/error/code"
	"room-manager/internal/error/response"
)

// SessionCookie is the name of the cookie carrying the session token
const SessionCookie = "session"

// 上下文键
const (
	ContextUserID = "userID"
	ContextRole   = "role"
	ContextClaims = "claims"
)

var authService services.InterfaceAuthService

// InitAuthMiddleware 初始化认证中间件
func InitAuthMiddleware(auth services.InterfaceAuthService) {
	authService = auth
}

// extractToken 从cookie或授权头中提取token
func extractToken(c *gin.Context) string {
	if cookie, err := c.Cookie(SessionCookie); err == nil && cookie != "" {
		return cookie
	}
	authHeader := c.GetHeader("Authorization")
	if len(authHeader) > 7 && strings.HasPrefix(authHeader, "Bearer ") {
		return authHeader[7:]
	}
	return ""
}

// setClaims 存储claims到上下文
func setClaims(c *gin.Context, claims *services.SessionClaims) {
	c.Set(ContextUserID, claims.UserID)
	c.Set(ContextRole, claims.Role)
	c.Set(ContextClaims, claims)
}

// Authentication requires a valid session
func Authentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		token := extractToken(c)
		if token == "" {
			response.FailWithMessage(c, code.ErrTokenInvalid, "not authenticated", nil)
			c.Abort()
			return
		}

		claims, err := authService.ParseSession(c.Request.Context(), token)
		if err != nil {
			response.Error(c, err)
			c.Abort()
			return
		}

		setClaims(c, claims)
		c.Next()
	}
}

// OptionalAuthentication stores the claims when a valid session is present
// and lets the request through either way
func OptionalAuthentication() gin.HandlerFunc {
	return func(c *gin.Context) {
		if token := extractToken(c); token != "" {
			if claims, err := authService.ParseSession(c.Request.Context(), token); err == nil {
				setClaims(c, claims)
			}
		}
		c.Next()
	}
}

// RequireAdmin 验证系统管理员权限. Must run after Authentication.
func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		if role, _ := c.Get(ContextRole); role != models.UserRoleAdmin {
			response.FailWithMessage(c, code.ErrForbidden, "requires admin role", nil)
			c.Abort()
			return
		}
		c.Next()
	}
}

// ClaimsFrom returns the session claims stored by the authentication middleware
func ClaimsFrom(c *gin.Context) (*services.SessionClaims, bool) {
	v, ok := c.Get(ContextClaims)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*services.SessionClaims)
	return claims, ok
}
