package middleware

import (
	"strings"

	"Nova_Community/internal/pkg"

	"github.com/gin-gonic/gin"
)

const ContextUserIDKey = "user_id"

// AuthMiddleware 凭证只认 Authorization: Bearer 头。
// 校验失败直接拒绝，handler 不会执行。
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" {
			pkg.Fail(c, pkg.NotSignedIn())
			c.Abort()
			return
		}

		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || parts[0] != "Bearer" {
			pkg.Fail(c, pkg.NotSignedIn())
			c.Abort()
			return
		}

		claims, err := pkg.ParseAccess(parts[1])
		if err != nil {
			pkg.Fail(c, pkg.NotSignedIn())
			c.Abort()
			return
		}

		// 注入 user_id
		c.Set(ContextUserIDKey, claims.UserID)
		c.Next()
	}
}

// UserIDFromCtx 取中间件注入的用户 id
func UserIDFromCtx(c *gin.Context) string {
	if v, ok := c.Get(ContextUserIDKey); ok {
		if id, ok2 := v.(string); ok2 {
			return id
		}
	}
	return ""
}
