package handler

import (
	"github.com/Kapi0622/Kapi-gallery/internal/api/config"
	"github.com/Kapi0622/Kapi-gallery/internal/api/dto"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/consts"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/response"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/security"
	"github.com/Kapi0622/Kapi-gallery/internal/service"

	"github.com/gin-gonic/gin"
)

type AuthHandler struct {
	authSvc service.AuthService
}

func NewAuthHandler(authSvc service.AuthService) *AuthHandler {
	return &AuthHandler{
		authSvc: authSvc,
	}
}

// Login 登录成功后写入 HttpOnly 会话 Cookie
func (s *AuthHandler) Login(c *gin.Context) {
	var credential dto.CredentialDTO
	if err := c.ShouldBindJSON(&credential); err != nil {
		response.Error(c, err)
		return
	}

	token, err := s.authSvc.Login(c.Request.Context(), &credential)
	if err != nil {
		response.Error(c, err)
		return
	}

	maxAge := config.Cfg.Auth.SessionHours * 3600
	c.SetCookie(consts.SessionCookieName, token, maxAge, "/", "", false, true)
	response.Success(c, nil)
}

// Logout 拉黑当前会话并清除 Cookie
func (s *AuthHandler) Logout(c *gin.Context) {
	token, err := c.Cookie(consts.SessionCookieName)
	if err == nil && token != "" {
		if lErr := s.authSvc.Logout(c.Request.Context(), token); lErr != nil {
			response.Error(c, lErr)
			return
		}
	}

	c.SetCookie(consts.SessionCookieName, "", -1, "/", "", false, true)
	response.Success(c, nil)
}

// Session 页头据此决定是否展示管理入口
func (s *AuthHandler) Session(c *gin.Context) {
	token, err := c.Cookie(consts.SessionCookieName)
	if err != nil || token == "" {
		response.Fail(c, response.Unauthorized, "未登录")
		return
	}

	claims, err := security.ValidateToken(token)
	if err != nil {
		response.Fail(c, response.Unauthorized, "会话无效或已过期")
		return
	}

	response.Success(c, dto.SessionDTO{
		Email: claims.Email,
		Roles: claims.Roles,
	})
}
