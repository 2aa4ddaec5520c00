package models

import "strings"

// AuthMode выбирает конечную точку upstream: регистрация или вход.
type AuthMode string

const (
	ModeSignUp AuthMode = "signup"
	ModeSignIn AuthMode = "signin"
)

// ParseAuthMode приводит значение к нижнему регистру, пустое значение означает регистрацию.
func ParseAuthMode(s string) AuthMode {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" {
		return ModeSignUp
	}
	return AuthMode(s)
}

// Role роль пользователя в форме входа.
type Role string

const (
	RoleAdmin Role = "ADMIN"
	RoleUser  Role = "USER"
)

// ParseRole приводит значение к верхнему регистру, пустое значение означает USER.
func ParseRole(s string) Role {
	s = strings.ToUpper(strings.TrimSpace(s))
	if s == "" {
		return RoleUser
	}
	return Role(s)
}

// Credentials — данные формы аутентификации.
type Credentials struct {
	Email    string   `json:"email" validate:"required,email"`
	Password string   `json:"password" validate:"required"`
	AdminKey string   `json:"adminKey,omitempty"`
	Mode     AuthMode `json:"mode" validate:"required,oneof=signup signin"`
	Role     Role     `json:"role" validate:"required,oneof=ADMIN USER"`
}

// IsAdmin сообщает, выбрана ли роль администратора.
func (c Credentials) IsAdmin() bool {
	return c.Role == RoleAdmin
}

// AuthPayload — тело запроса к /auth/signup и /auth/signin.
type AuthPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	AdminKey string `json:"adminKey,omitempty"`
}

// Payload формирует тело запроса. Ключ администратора передается только
// для роли ADMIN и только если он заполнен.
func (c Credentials) Payload() AuthPayload {
	p := AuthPayload{
		Email:    c.Email,
		Password: c.Password,
	}
	if c.IsAdmin() && c.AdminKey != "" {
		p.AdminKey = c.AdminKey
	}
	return p
}
