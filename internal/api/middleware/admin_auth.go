package middleware

import (
	"context"
	"net/http"
	"strings"

	"github.com/Kapi0622/Kapi-gallery/internal/api/config"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/consts"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/redis"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/response"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/security"

	"github.com/gin-gonic/gin"
)

// RevocationChecker 查询 Token 签名是否已被拉黑
type RevocationChecker func(ctx context.Context, signature string) (bool, error)

// RedisRevocationChecker 基于 Redis 黑名单的默认实现
func RedisRevocationChecker(ctx context.Context, signature string) (bool, error) {
	value, err := redis.GetValue(ctx, consts.SessionBlacklistKey+signature)
	if err != nil {
		return false, err
	}
	return value != "", nil
}

// AdminAuthMiddleware 管理区路由守卫：校验会话 Cookie，
// 浏览器页面请求被重定向到登录页，API 请求返回 401。
// 全站唯一的访问控制点，管理操作内部不再做per-action鉴权。
func AdminAuthMiddleware(revoked RevocationChecker) gin.HandlerFunc {
	return func(c *gin.Context) {
		token, err := c.Cookie(consts.SessionCookieName)
		if err != nil || token == "" {
			rejectUnauthenticated(c, "会话缺失，请先登录")
			return
		}

		signature, err := security.ExtractSignature(token)
		if err != nil {
			rejectUnauthenticated(c, "会话无效或已过期")
			return
		}

		isRevoked, err := revoked(c.Request.Context(), signature)
		if err != nil {
			response.Fail(c, response.InternalServerError, "未知错误")
			c.Abort()
			return
		}
		if isRevoked {
			rejectUnauthenticated(c, "会话无效或已过期")
			return
		}

		claims, err := security.ValidateToken(token)
		if err != nil {
			rejectUnauthenticated(c, "会话无效或已过期")
			return
		}

		if !hasRole(claims.Roles, consts.RoleAdmin) {
			response.Fail(c, response.Forbidden, "权限不足：无权访问该资源")
			c.Abort()
			return
		}

		c.Set("admin_email", claims.Email)
		c.Set("roles", claims.Roles)
		c.Next()
	}
}

// rejectUnauthenticated 页面请求 302 跳登录页，其余返回 401 封装
func rejectUnauthenticated(c *gin.Context, message string) {
	if acceptsHTML(c) {
		c.Redirect(http.StatusFound, config.Cfg.Site.LoginPath)
		c.Abort()
		return
	}
	response.Fail(c, response.Unauthorized, message)
	c.Abort()
}

func acceptsHTML(c *gin.Context) bool {
	return strings.Contains(c.GetHeader("Accept"), "text/html")
}

func hasRole(roles []string, required string) bool {
	for _, role := range roles {
		if role == required {
			return true
		}
	}
	return false
}
