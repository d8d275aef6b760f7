package service

import (
	"context"
	"time"

	"github.com/Kapi0622/Kapi-gallery/internal/api/config"
	"github.com/Kapi0622/Kapi-gallery/internal/api/dto"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/consts"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/redis"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/security"
)

type AuthService interface {
	Login(ctx context.Context, credential *dto.CredentialDTO) (string, error)
	Logout(ctx context.Context, token string) error
}

type authServiceImpl struct{}

func NewAuthService() AuthService {
	return &authServiceImpl{}
}

// Login 核对配置中的管理员凭据，签发会话 Token
func (s *authServiceImpl) Login(ctx context.Context, credential *dto.CredentialDTO) (string, error) {
	cfg := config.Cfg.Auth

	if credential.Email != cfg.AdminEmail {
		return "", ErrCredentialMismatch
	}
	if err := security.CheckPasswordHash(credential.Password, cfg.AdminPasswordHash); err != nil {
		return "", ErrCredentialMismatch
	}

	token, err := security.GenerateToken(credential.Email, []string{consts.RoleAdmin})
	if err != nil {
		return "", err
	}
	return token, nil
}

// Logout 将 Token 签名拉黑至会话自然过期
func (s *authServiceImpl) Logout(ctx context.Context, token string) error {
	signature, err := security.ExtractSignature(token)
	if err != nil {
		return err
	}

	ttl := time.Duration(config.Cfg.Auth.SessionHours) * time.Hour
	return redis.SetWithExpiration(ctx, consts.SessionBlacklistKey+signature, true, ttl)
}
