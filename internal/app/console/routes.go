package console

import (
	"log/slog"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	httpSwagger "github.com/swaggo/http-swagger"
	"golang.org/x/time/rate"

	// swagger-описание JSON API
	_ "github.com/magabrotheeeer/voucher-console/docs"
	"github.com/magabrotheeeer/voucher-console/internal/http/handlers/auth/authapi"
	"github.com/magabrotheeeer/voucher-console/internal/http/handlers/auth/authform"
	"github.com/magabrotheeeer/voucher-console/internal/http/handlers/health"
	"github.com/magabrotheeeer/voucher-console/internal/http/handlers/session/logout"
	"github.com/magabrotheeeer/voucher-console/internal/http/handlers/voucher/dashboard"
	"github.com/magabrotheeeer/voucher-console/internal/http/handlers/voucher/voucherapi"
	"github.com/magabrotheeeer/voucher-console/internal/http/handlers/voucher/voucherform"
	"github.com/magabrotheeeer/voucher-console/internal/http/middlewarectx"
	"github.com/magabrotheeeer/voucher-console/internal/http/pages"
	"github.com/magabrotheeeer/voucher-console/internal/lib/jwt"
	authservice "github.com/magabrotheeeer/voucher-console/internal/services/auth"
	voucherservice "github.com/magabrotheeeer/voucher-console/internal/services/voucher"
	"github.com/magabrotheeeer/voucher-console/internal/session"
)

// Deps зависимости обработчиков.
type Deps struct {
	Pages          *pages.Renderer
	AuthService    *authservice.AuthService
	VoucherService *voucherservice.VoucherService
	Sessions       *session.Store
	Inspector      *jwt.Inspector
	Cookie         middlewarectx.SessionCookie
	Limiter        *rate.Limiter
}

// RegisterRoutes регистрирует все маршруты приложения.
func RegisterRoutes(r chi.Router, logger *slog.Logger, d Deps) {
	// Глобальные middleware
	r.Use(
		middleware.RequestID,
		middleware.Logger,
		middleware.Recoverer,
	)

	limit := middlewarectx.RateLimitMiddleware(logger, d.Limiter)

	authForm := authform.New(logger, d.AuthService, d.Pages, d.Cookie)
	voucherForm := voucherform.New(logger, d.VoucherService, d.Pages)

	// HTML-страницы
	r.Get("/", authForm.Show)
	r.With(limit).Post("/auth", authForm.ServeHTTP)
	r.Post("/logout", logout.New(logger, d.Sessions, d.Cookie).ServeHTTP)

	// Страницы администратора, только с живой сессией
	r.Group(func(r chi.Router) {
		r.Use(middlewarectx.SessionRequired(d.Sessions, d.Cookie, logger))
		r.Get("/voucher", voucherForm.Show)
		r.With(limit).Post("/voucher", voucherForm.ServeHTTP)
		r.Get("/dashboard", dashboard.New(logger, d.Pages).ServeHTTP)
	})

	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.URLFormat, limit)

		// Открытые конечные точки
		r.Post("/auth/{mode}", authapi.New(logger, d.AuthService).ServeHTTP)

		// Группа с bearer-токеном upstream
		r.Group(func(r chi.Router) {
			r.Use(middlewarectx.BearerToken(d.Inspector, logger))
			r.Post("/voucher", voucherapi.New(logger, d.VoucherService).ServeHTTP)
		})
	})

	r.Get("/health", health.New(logger).ServeHTTP)
	r.Handle("/metrics", promhttp.Handler())
	// Swagger docs endpoint
	r.Get("/docs/*", httpSwagger.WrapHandler)
}
