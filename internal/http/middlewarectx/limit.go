package middlewarectx

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/voucher-console/internal/http/response"
)

// RateLimitMiddleware ограничивает частоту отправки форм и запросов JSON API.
// Браузеру отвечает текстом, остальным клиентам — JSON.
func RateLimitMiddleware(log *slog.Logger, limiter *rate.Limiter) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			if !limiter.Allow() {
				log.Warn("too many requests", slog.String("path", r.URL.Path))
				if render.GetAcceptedContentType(r) == render.ContentTypeHTML {
					http.Error(w, "too many requests, try again later", http.StatusTooManyRequests)
					return
				}
				render.Status(r, http.StatusTooManyRequests)
				render.JSON(w, r, response.Error("too many requests"))
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
