// Package dashboard выводит страницу, на которую браузер попадает после создания ваучера.
package dashboard

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/voucher-console/internal/http/middlewarectx"
	"github.com/magabrotheeeer/voucher-console/internal/http/pages"
	"github.com/magabrotheeeer/voucher-console/internal/lib/sl"
)

// Renderer описывает вывод HTML-страницы.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// Handler обрабатывает GET /dashboard. Требует SessionRequired.
type Handler struct {
	log   *slog.Logger
	pages Renderer
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, pages Renderer) *Handler {
	return &Handler{
		log:   log,
		pages: pages,
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.voucher.dashboard"

	page := pages.DashboardPage{Created: r.URL.Query().Get("created")}
	if sess, ok := middlewarectx.SessionFrom(r.Context()); ok {
		page.Email = sess.Email
	}

	if err := h.pages.Render(w, http.StatusOK, pages.Dashboard, page); err != nil {
		h.log.Error("failed to render page",
			slog.String("op", op),
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
