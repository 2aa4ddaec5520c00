package models

import "time"

// Session — серверная сессия браузера после входа администратора.
// В cookie хранится только идентификатор, токен остается в redis.
type Session struct {
	AccessToken string    `json:"access_token"`
	Email       string    `json:"email"`
	Role        Role      `json:"role"`
	ExpiresAt   time.Time `json:"expires_at"`
}

// Expired сообщает, истек ли срок действия сессии.
func (s Session) Expired(now time.Time) bool {
	return !s.ExpiresAt.IsZero() && !now.Before(s.ExpiresAt)
}
