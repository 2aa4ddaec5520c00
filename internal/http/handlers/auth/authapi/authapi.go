// Package authapi реализует JSON-вариант формы аутентификации: POST /api/v1/auth/{mode}.
package authapi

import (
	"context"
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi"
	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"
	"github.com/go-playground/validator"

	"github.com/magabrotheeeer/voucher-console/internal/http/response"
	"github.com/magabrotheeeer/voucher-console/internal/lib/fielderr"
	"github.com/magabrotheeeer/voucher-console/internal/lib/sl"
	"github.com/magabrotheeeer/voucher-console/internal/metrics"
	"github.com/magabrotheeeer/voucher-console/internal/models"
	"github.com/magabrotheeeer/voucher-console/internal/upstream"
)

const form = "auth_api"

// Request — тело запроса. Режим берется из пути.
type Request struct {
	Email    string `json:"email" example:"admin@shop.io"`
	Password string `json:"password" example:"secret"`
	AdminKey string `json:"adminKey,omitempty" example:"master"`
	Role     string `json:"role,omitempty" example:"ADMIN"`
}

// Service описывает вызов upstream без открытия сессии.
type Service interface {
	Authenticate(ctx context.Context, creds models.Credentials) (map[string]any, error)
}

// Handler обрабатывает HTTP-запросы регистрации и входа.
type Handler struct {
	log      *slog.Logger
	svc      Service
	validate *validator.Validate
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, svc Service) *Handler {
	return &Handler{
		log:      log,
		svc:      svc,
		validate: fielderr.NewValidator(),
	}
}

// ServeHTTP godoc
// @Summary Регистрация или вход
// @Description Пересылает учетные данные в upstream на /auth/signup или /auth/signin и возвращает его ответ. Ключ администратора передается только для роли ADMIN.
// @Tags Auth
// @Accept  json
// @Produce  json
// @Param mode path string true "Режим" Enums(signup, signin)
// @Param request body Request true "Учетные данные"
// @Success 200 {object} response.Response "Ответ upstream в поле data"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Upstream отклонил учетные данные"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Upstream недоступен"
// @Router /auth/{mode} [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.auth.authapi"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req Request
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		metrics.CountSubmission(form, metrics.ResultInvalid)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}

	creds := models.Credentials{
		Email:    strings.TrimSpace(req.Email),
		Password: req.Password,
		AdminKey: strings.TrimSpace(req.AdminKey),
		Mode:     models.ParseAuthMode(chi.URLParam(r, "mode")),
		Role:     models.ParseRole(req.Role),
	}
	log.Info("request body decoded", sl.Masked("email", creds.Email), slog.String("mode", string(creds.Mode)))

	if err := fielderr.Check(h.validate, creds); err != nil {
		log.Error("validation failed", sl.Err(err))
		metrics.CountSubmission(form, metrics.ResultInvalid)
		render.Status(r, http.StatusUnprocessableEntity)
		if fields, ok := err.(fielderr.Errors); ok {
			render.JSON(w, r, response.ValidationError(fields))
			return
		}
		render.JSON(w, r, response.Error("invalid request"))
		return
	}

	body, err := h.svc.Authenticate(r.Context(), creds)
	if err != nil {
		log.Error("authentication failed", sl.Err(err))
		metrics.CountSubmission(form, metrics.ResultFailed)
		status, resp := response.FromUpstream(err)
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("authentication succeeded", slog.Any("response", upstream.Redacted(body)))
	metrics.CountSubmission(form, metrics.ResultSuccess)
	render.JSON(w, r, response.OKWithData(body))
}
