package service_test

import (
	"context"
	"testing"

	"github.com/Kapi0622/Kapi-gallery/internal/api/config"
	"github.com/Kapi0622/Kapi-gallery/internal/api/dto"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/consts"
	"github.com/Kapi0622/Kapi-gallery/internal/pkg/security"
	"github.com/Kapi0622/Kapi-gallery/internal/service"

	"github.com/stretchr/testify/require"
)

func setLoginConfig(t *testing.T, password string) {
	t.Helper()

	hash, err := security.HashPassword(password)
	require.NoError(t, err)

	old := config.Cfg
	config.Cfg = &config.Config{
		Auth: config.AuthConfig{
			AdminEmail:        "admin@example.com",
			AdminPasswordHash: hash,
			JWTSecret:         "unit-test-secret",
			SessionHours:      1,
		},
	}
	t.Cleanup(func() { config.Cfg = old })
}

func TestAuthService_Login(t *testing.T) {
	ctx := context.Background()
	svc := service.NewAuthService()

	t.Run("success issues admin token", func(t *testing.T) {
		setLoginConfig(t, "s3cret!")

		token, err := svc.Login(ctx, &dto.CredentialDTO{
			Email:    "admin@example.com",
			Password: "s3cret!",
		})
		require.NoError(t, err)

		claims, err := security.ValidateToken(token)
		require.NoError(t, err)
		require.Equal(t, "admin@example.com", claims.Email)
		require.Contains(t, claims.Roles, consts.RoleAdmin)
	})

	t.Run("wrong email", func(t *testing.T) {
		setLoginConfig(t, "s3cret!")

		_, err := svc.Login(ctx, &dto.CredentialDTO{
			Email:    "stranger@example.com",
			Password: "s3cret!",
		})
		require.ErrorIs(t, err, service.ErrCredentialMismatch)
	})

	t.Run("wrong password", func(t *testing.T) {
		setLoginConfig(t, "s3cret!")

		_, err := svc.Login(ctx, &dto.CredentialDTO{
			Email:    "admin@example.com",
			Password: "guess",
		})
		require.ErrorIs(t, err, service.ErrCredentialMismatch)
	})
}
