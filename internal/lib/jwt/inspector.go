// Package jwt читает claims из токенов доступа, выданных upstream.
//
// Консоль не выпускает токены сама. Если известен секрет upstream, подпись проверяется,
// иначе токен разбирается без проверки подписи только ради срока действия и роли:
// окончательную проверку все равно делает upstream при каждом запросе.
// Без секрета токен, который не является JWT, считается непрозрачным и принимается.
package jwt

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// ErrExpired токен просрочен.
var ErrExpired = errors.New("token expired")

// Claims данные токена, нужные консоли.
type Claims struct {
	Email string `json:"email,omitempty"`
	Role  string `json:"role,omitempty"`
	jwt.RegisteredClaims
}

// ExpiresIn возвращает оставшееся время жизни токена и false, если exp не задан.
func (c *Claims) ExpiresIn(now time.Time) (time.Duration, bool) {
	if c.ExpiresAt == nil {
		return 0, false
	}
	return c.ExpiresAt.Sub(now), true
}

// Inspector разбирает токены доступа.
type Inspector struct {
	secretKey string
	now       func() time.Time
}

// NewInspector создаёт Inspector. Пустой secretKey отключает проверку подписи.
func NewInspector(secretKey string) *Inspector {
	return &Inspector{secretKey: secretKey, now: time.Now}
}

// Inspect разбирает токен и проверяет срок действия.
func (i *Inspector) Inspect(tokenStr string) (*Claims, error) {
	const op = "jwt.Inspect"

	tokenStr = strings.TrimSpace(tokenStr)
	if tokenStr == "" {
		return nil, fmt.Errorf("%s: empty token", op)
	}

	claims := &Claims{}
	if i.secretKey != "" {
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(_ *jwt.Token) (any, error) {
			return []byte(i.secretKey), nil
		}, jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}), jwt.WithTimeFunc(i.now))
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				return nil, fmt.Errorf("%s: %w", op, ErrExpired)
			}
			return nil, fmt.Errorf("%s: %w", op, err)
		}
		if !token.Valid {
			return nil, fmt.Errorf("%s: invalid token", op)
		}
		return claims, nil
	}

	if _, _, err := jwt.NewParser().ParseUnverified(tokenStr, claims); err != nil {
		// не JWT: непрозрачный токен без claims, срок сессии берется из конфига
		if errors.Is(err, jwt.ErrTokenMalformed) {
			return &Claims{}, nil
		}
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if left, ok := claims.ExpiresIn(i.now()); ok && left <= 0 {
		return nil, fmt.Errorf("%s: %w", op, ErrExpired)
	}
	return claims, nil
}
