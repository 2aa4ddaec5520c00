// Package services содержит логику отправки формы аутентификации в upstream.
package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/magabrotheeeer/voucher-console/internal/lib/jwt"
	"github.com/magabrotheeeer/voucher-console/internal/models"
	"github.com/magabrotheeeer/voucher-console/internal/upstream"
)

// ErrNoAccessToken успешный вход администратора без токена доступа в ответе.
var ErrNoAccessToken = errors.New("upstream returned no access token")

// Upstream описывает вызов upstream для регистрации и входа.
type Upstream interface {
	Authenticate(ctx context.Context, mode models.AuthMode, payload models.AuthPayload) (*upstream.AuthResponse, error)
}

// SessionStore сохраняет сессии браузера.
type SessionStore interface {
	Create(ctx context.Context, sess models.Session, ttl time.Duration) (string, error)
}

// TokenInspector читает срок действия и роль из токена доступа.
type TokenInspector interface {
	Inspect(token string) (*jwt.Claims, error)
}

// Result итог отправки формы.
type Result struct {
	// NavigateToVoucher true только для успешного входа администратора.
	NavigateToVoucher bool
	SessionID         string
	SessionTTL        time.Duration
	Body              map[string]any
}

// AuthService отправляет данные формы и открывает сессию после входа администратора.
type AuthService struct {
	upstream  Upstream
	sessions  SessionStore
	inspector TokenInspector
	maxTTL    time.Duration
	now       func() time.Time
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(up Upstream, sessions SessionStore, inspector TokenInspector, maxTTL time.Duration) *AuthService {
	return &AuthService{
		upstream:  up,
		sessions:  sessions,
		inspector: inspector,
		maxTTL:    maxTTL,
		now:       time.Now,
	}
}

// Authenticate отправляет учетные данные в upstream и возвращает тело ответа.
// Сессия не создается: клиент JSON API сам хранит полученный токен.
func (s *AuthService) Authenticate(ctx context.Context, creds models.Credentials) (map[string]any, error) {
	const op = "services.auth.Authenticate"

	resp, err := s.upstream.Authenticate(ctx, creds.Mode, creds.Payload())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return resp.Body, nil
}

// Submit отправляет форму на /auth/<mode>.
// Переход к ваучерам (и сессия) возможен только для role=ADMIN и mode=signin.
func (s *AuthService) Submit(ctx context.Context, creds models.Credentials) (*Result, error) {
	const op = "services.auth.Submit"

	resp, err := s.upstream.Authenticate(ctx, creds.Mode, creds.Payload())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res := &Result{Body: resp.Body}
	if !creds.IsAdmin() || creds.Mode != models.ModeSignIn {
		return res, nil
	}

	if resp.AccessToken == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrNoAccessToken)
	}

	id, ttl, err := s.openSession(ctx, creds, resp.AccessToken)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	res.NavigateToVoucher = true
	res.SessionID = id
	res.SessionTTL = ttl
	return res, nil
}

func (s *AuthService) openSession(ctx context.Context, creds models.Credentials, token string) (string, time.Duration, error) {
	claims, err := s.inspector.Inspect(token)
	if err != nil {
		return "", 0, err
	}

	now := s.now()
	ttl := s.maxTTL
	if left, ok := claims.ExpiresIn(now); ok && left < ttl {
		ttl = left
	}

	sess := models.Session{
		AccessToken: token,
		Email:       creds.Email,
		Role:        creds.Role,
		ExpiresAt:   now.Add(ttl),
	}
	id, err := s.sessions.Create(ctx, sess, ttl)
	if err != nil {
		return "", 0, err
	}
	return id, ttl, nil
}
