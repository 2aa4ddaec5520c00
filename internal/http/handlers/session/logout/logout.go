// Package logout завершает сессию браузера: POST /logout.
package logout

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/voucher-console/internal/http/middlewarectx"
	"github.com/magabrotheeeer/voucher-console/internal/lib/sl"
)

// SessionStore описывает удаление сессии.
type SessionStore interface {
	Delete(ctx context.Context, id string) error
}

// Handler удаляет сессию и cookie, затем возвращает на форму входа.
type Handler struct {
	log    *slog.Logger
	store  SessionStore
	cookie middlewarectx.SessionCookie
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, store SessionStore, cookie middlewarectx.SessionCookie) *Handler {
	return &Handler{
		log:    log,
		store:  store,
		cookie: cookie,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.session.logout"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if id, ok := h.cookie.Read(r); ok {
		if err := h.store.Delete(r.Context(), id); err != nil {
			// cookie все равно удаляем, запись в redis истечет по TTL
			log.Error("failed to delete session", sl.Err(err))
		} else {
			log.Info("session deleted")
		}
	}

	h.cookie.Clear(w)
	http.Redirect(w, r, "/", http.StatusSeeOther)
}
