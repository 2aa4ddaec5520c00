// Package authform обслуживает HTML-форму регистрации и входа.
//
// GET / показывает пустую форму, POST /auth отправляет её в upstream на
// /auth/signup или /auth/signin. Успешный вход администратора открывает
// сессию и переводит браузер на страницу создания ваучера, остальные
// успешные отправки возвращают очищенную форму с уведомлением.
package authform

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/middleware"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/voucher-console/internal/http/middlewarectx"
	"github.com/magabrotheeeer/voucher-console/internal/http/pages"
	"github.com/magabrotheeeer/voucher-console/internal/lib/fielderr"
	"github.com/magabrotheeeer/voucher-console/internal/lib/sl"
	"github.com/magabrotheeeer/voucher-console/internal/metrics"
	"github.com/magabrotheeeer/voucher-console/internal/models"
	services "github.com/magabrotheeeer/voucher-console/internal/services/auth"
	"github.com/magabrotheeeer/voucher-console/internal/upstream"
)

const form = "auth"

// Service описывает отправку формы аутентификации.
type Service interface {
	Submit(ctx context.Context, creds models.Credentials) (*services.Result, error)
}

// Renderer описывает вывод HTML-страницы.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// Handler обрабатывает форму аутентификации.
type Handler struct {
	log      *slog.Logger
	svc      Service
	pages    Renderer
	cookie   middlewarectx.SessionCookie
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, svc Service, pages Renderer, cookie middlewarectx.SessionCookie) *Handler {
	return &Handler{
		log:      log,
		svc:      svc,
		pages:    pages,
		cookie:   cookie,
		validate: fielderr.NewValidator(),
	}
}

// Show выводит пустую форму: регистрация, роль USER.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, http.StatusOK, pages.AuthPage{
		Mode: string(models.ModeSignUp),
		Role: string(models.RoleUser),
	})
}

// ServeHTTP принимает POST /auth.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.authform"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		metrics.CountSubmission(form, metrics.ResultInvalid)
		h.render(w, r, http.StatusBadRequest, pages.AuthPage{
			Mode:  string(models.ModeSignUp),
			Role:  string(models.RoleUser),
			Error: "invalid form submission",
		})
		return
	}

	creds := models.Credentials{
		Email:    strings.TrimSpace(r.PostFormValue("email")),
		Password: r.PostFormValue("password"),
		AdminKey: strings.TrimSpace(r.PostFormValue("adminKey")),
		Mode:     models.ParseAuthMode(r.PostFormValue("mode")),
		Role:     models.ParseRole(r.PostFormValue("role")),
	}
	page := pages.AuthPage{
		Mode:  string(creds.Mode),
		Role:  string(creds.Role),
		Email: creds.Email,
	}

	if err := fielderr.Check(h.validate, creds); err != nil {
		log.Error("validation failed", sl.Err(err))
		metrics.CountSubmission(form, metrics.ResultInvalid)
		var fields fielderr.Errors
		if errors.As(err, &fields) {
			page.FieldErrors = fields
		}
		page.Error = "Please correct the highlighted fields."
		h.render(w, r, http.StatusUnprocessableEntity, page)
		return
	}
	log.Info("all fields are validated", slog.String("mode", string(creds.Mode)), slog.String("role", string(creds.Role)))

	res, err := h.svc.Submit(r.Context(), creds)
	if err != nil {
		log.Error("authentication failed", sl.Err(err))
		metrics.CountSubmission(form, metrics.ResultFailed)
		page.Error = failureMessage(err)
		h.render(w, r, http.StatusBadGateway, page)
		return
	}

	log.Info("authentication succeeded", slog.Any("response", upstream.Redacted(res.Body)))
	metrics.CountSubmission(form, metrics.ResultSuccess)

	if res.NavigateToVoucher {
		h.cookie.Set(w, res.SessionID, res.SessionTTL)
		http.Redirect(w, r, "/voucher", http.StatusSeeOther)
		return
	}

	notice := "Sign up successful."
	if creds.Mode == models.ModeSignIn {
		notice = "Sign in successful."
	}
	h.render(w, r, http.StatusOK, pages.AuthPage{
		Mode:   string(models.ModeSignUp),
		Role:   string(models.RoleUser),
		Notice: notice,
	})
}

func failureMessage(err error) string {
	var upErr *upstream.Error
	switch {
	case errors.As(err, &upErr):
		return upErr.Message
	case errors.Is(err, services.ErrNoAccessToken):
		return "Sign in succeeded but no access token was returned."
	default:
		return "Authentication failed, please try again."
	}
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page pages.AuthPage) {
	if err := h.pages.Render(w, status, pages.Auth, page); err != nil {
		h.log.Error("failed to render page",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
