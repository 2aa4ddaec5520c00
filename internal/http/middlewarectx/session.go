package middlewarectx

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/voucher-console/internal/lib/sl"
	"github.com/magabrotheeeer/voucher-console/internal/models"
)

// SessionStore описывает чтение сессии по идентификатору.
type SessionStore interface {
	Get(ctx context.Context, id string) (*models.Session, error)
}

// SessionRequired пропускает к страницам ваучеров только запросы с живой сессией.
// Без сессии браузер перенаправляется на форму входа, а cookie удаляется.
func SessionRequired(store SessionStore, cookie SessionCookie, log *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			const op = "middlewarectx.SessionRequired"

			log := log.With(
				slog.String("op", op),
				slog.String("request_id", middleware.GetReqID(r.Context())),
			)

			id, ok := cookie.Read(r)
			if !ok {
				log.Info("no session cookie, redirecting to sign in")
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			sess, err := store.Get(r.Context(), id)
			if err != nil {
				log.Info("session lookup failed, redirecting to sign in", sl.Err(err))
				cookie.Clear(w)
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}
			if sess.Expired(time.Now()) {
				log.Info("session expired, redirecting to sign in")
				cookie.Clear(w)
				http.Redirect(w, r, "/", http.StatusSeeOther)
				return
			}

			ctx := context.WithValue(r.Context(), SessionKey, sess)
			ctx = context.WithValue(ctx, SessionIDKey, id)
			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}
