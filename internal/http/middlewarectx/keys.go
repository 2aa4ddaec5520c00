// Package middlewarectx содержит HTTP middleware консоли и ключи контекста запроса.
package middlewarectx

import (
	"context"

	"github.com/magabrotheeeer/voucher-console/internal/models"
)

// Key тип для ключей контекста HTTP-запроса.
type Key string

const (
	// SessionKey — ключ серверной сессии браузера в контексте
	SessionKey Key = "session"
	// SessionIDKey — ключ идентификатора сессии в контексте
	SessionIDKey Key = "session_id"
	// TokenKey — ключ bearer-токена JSON API в контексте
	TokenKey Key = "token"
)

// SessionFrom возвращает сессию, положенную SessionRequired.
func SessionFrom(ctx context.Context) (*models.Session, bool) {
	sess, ok := ctx.Value(SessionKey).(*models.Session)
	return sess, ok && sess != nil
}

// SessionIDFrom возвращает идентификатор сессии, положенный SessionRequired.
func SessionIDFrom(ctx context.Context) string {
	id, _ := ctx.Value(SessionIDKey).(string)
	return id
}

// TokenFrom возвращает bearer-токен, положенный BearerToken.
func TokenFrom(ctx context.Context) string {
	token, _ := ctx.Value(TokenKey).(string)
	return token
}
