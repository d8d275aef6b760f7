package dto

// CredentialDTO 管理员登录表单
type CredentialDTO struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// SessionDTO 会话状态
type SessionDTO struct {
	Email string   `json:"email"`
	Roles []string `json:"roles"`
}
