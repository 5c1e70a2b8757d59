package middleware

import (
	"strings"

	"github.com/gin-gonic/gin"

	"club-backend/internal/shared/response"
	"club-backend/pkg/jwt"
)

// Context keys được set bởi AuthMiddleware
const (
	ContextKeyEditorEmail = "editor_email"
	ContextKeyEditorName  = "editor_name"
)

// AuthMiddleware - Middleware xác thực JWT token cho admin routes
// Mọi lỗi token (missing, malformed, expired, sai chữ ký) đều trả 401,
// không bao giờ 500
func AuthMiddleware(jwtManager *jwt.Manager) gin.HandlerFunc {
	return func(c *gin.Context) {
		// 1. Lấy token từ Authorization header
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			response.Unauthorized(c, "missing authorization header")
			c.Abort()
			return
		}

		// 2. Extract token từ "Bearer <token>"
		parts := strings.Split(authHeader, " ")
		if len(parts) != 2 || parts[0] != "Bearer" {
			response.Unauthorized(c, "invalid authorization header format")
			c.Abort()
			return
		}

		// 3. Verify và parse JWT
		claims, err := jwtManager.ValidateToken(parts[1])
		if err != nil {
			response.Unauthorized(c, "invalid or expired token")
			c.Abort()
			return
		}

		// 4. Set editor identity vào context cho handlers
		c.Set(ContextKeyEditorEmail, claims.Email)
		c.Set(ContextKeyEditorName, claims.Name)

		c.Next()
	}
}

// GetEditorEmail lấy email của editor đã authenticate từ context
func GetEditorEmail(c *gin.Context) string {
	return c.GetString(ContextKeyEditorEmail)
}

// GetEditorName lấy display name của editor đã authenticate từ context
func GetEditorName(c *gin.Context) string {
	return c.GetString(ContextKeyEditorName)
}
