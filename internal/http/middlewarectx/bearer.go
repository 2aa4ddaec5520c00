package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/voucher-console/internal/http/response"
	"github.com/magabrotheeeer/voucher-console/internal/lib/jwt"
	"github.com/magabrotheeeer/voucher-console/internal/lib/sl"
)

// TokenInspector описывает разбор токена доступа.
type TokenInspector interface {
	Inspect(token string) (*jwt.Claims, error)
}

// BearerToken возвращает HTTP middleware, который проверяет JWT в заголовке Authorization.
//
// Токен не выпускается консолью: он лишь разбирается, чтобы отсеять пустые и просроченные,
// и кладется в контекст для пересылки в upstream.
func BearerToken(inspector TokenInspector, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			authHeader := r.Header.Get("Authorization")
			const op = "middlewarectx.BearerToken"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			if !strings.HasPrefix(authHeader, "Bearer ") {
				log.Error("missing or invalid authorization header")
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("missing or invalid authorization header"))
				return
			}
			tokenStr := strings.TrimSpace(strings.TrimPrefix(authHeader, "Bearer "))

			if _, err := inspector.Inspect(tokenStr); err != nil {
				log.Error("invalid or expired token", sl.Err(err))
				render.Status(r, http.StatusUnauthorized)
				render.JSON(w, r, response.Error("invalid or expired token"))
				return
			}

			ctx := context.WithValue(r.Context(), TokenKey, tokenStr)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
