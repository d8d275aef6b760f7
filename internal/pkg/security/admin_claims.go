package security

import (
	"github.com/golang-jwt/jwt/v5"
)

// AdminClaims 会话 Token 中携带的业务信息
type AdminClaims struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
	jwt.RegisteredClaims
}
