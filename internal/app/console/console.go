// Package console собирает HTTP-приложение консоли ваучеров.
package console

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi"
	"golang.org/x/net/http2"
	"golang.org/x/net/http2/h2c"
	"golang.org/x/time/rate"

	"github.com/magabrotheeeer/voucher-console/internal/config"
	"github.com/magabrotheeeer/voucher-console/internal/http/middlewarectx"
	"github.com/magabrotheeeer/voucher-console/internal/http/pages"
	"github.com/magabrotheeeer/voucher-console/internal/lib/jwt"
	"github.com/magabrotheeeer/voucher-console/internal/lib/sl"
	authservice "github.com/magabrotheeeer/voucher-console/internal/services/auth"
	voucherservice "github.com/magabrotheeeer/voucher-console/internal/services/voucher"
	"github.com/magabrotheeeer/voucher-console/internal/session"
	"github.com/magabrotheeeer/voucher-console/internal/upstream"
)

const shutdownTimeout = 15 * time.Second

// App HTTP-сервер консоли и его ресурсы.
type App struct {
	server   *http.Server
	logger   *slog.Logger
	sessions *session.Store
}

// New подключается к redis, собирает сервисы и маршруты.
func New(ctx context.Context, cfg *config.Config, logger *slog.Logger) (*App, error) {
	const op = "app.console.New"

	sessions, err := session.InitServer(ctx, cfg.RedisConnection)
	if err != nil {
		return nil, err
	}

	renderer, err := pages.New()
	if err != nil {
		_ = sessions.Close()
		return nil, err
	}

	inspector := jwt.NewInspector(cfg.JWTSecretKey)
	client := upstream.NewClient(cfg.BaseURL, cfg.TimeoutUpstream)

	router := chi.NewRouter()
	RegisterRoutes(router, logger, Deps{
		Pages:          renderer,
		AuthService:    authservice.NewAuthService(client, sessions, inspector, cfg.SessionTTL),
		VoucherService: voucherservice.NewVoucherService(client),
		Sessions:       sessions,
		Inspector:      inspector,
		Cookie:         middlewarectx.SessionCookie{Name: cfg.CookieName, Secure: cfg.CookieSecure},
		Limiter:        rate.NewLimiter(rate.Limit(cfg.RPS), cfg.Burst),
	})

	var handler http.Handler = router
	if cfg.EnableH2C {
		handler = h2c.NewHandler(router, &http2.Server{IdleTimeout: cfg.IdleTimeout})
	}

	srv := &http.Server{
		Addr:         cfg.AddressHTTP,
		Handler:      handler,
		ReadTimeout:  cfg.TimeoutHTTP,
		WriteTimeout: cfg.TimeoutHTTP,
		IdleTimeout:  cfg.IdleTimeout,
	}

	logger.Info("app initialized",
		slog.String("op", op),
		slog.String("upstream", cfg.BaseURL),
		slog.Bool("h2c", cfg.EnableH2C),
	)

	return &App{
		server:   srv,
		logger:   logger,
		sessions: sessions,
	}, nil
}

// Run обслуживает запросы до отмены ctx, затем плавно останавливает сервер.
func (a *App) Run(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("HTTP server starting on", slog.String("address", a.server.Addr))
		err := a.server.ListenAndServe()
		if errors.Is(err, http.ErrServerClosed) {
			errCh <- nil
		} else {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		a.closeSessions()
		return err
	case <-ctx.Done():
		timeoutCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		a.logger.Info("shutting down HTTP server gracefully")
		err := a.server.Shutdown(timeoutCtx)
		a.closeSessions()
		return err
	}
}

func (a *App) closeSessions() {
	if err := a.sessions.Close(); err != nil {
		a.logger.Error("failed to close redis", sl.Err(err))
	}
}
