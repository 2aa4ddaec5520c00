// Package voucherapi реализует JSON-вариант создания ваучера: POST /api/v1/voucher.
package voucherapi

import (
	"context"
	"errors"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/middleware"
	"github.com/go-chi/render"

	"github.com/magabrotheeeer/voucher-console/internal/http/middlewarectx"
	"github.com/magabrotheeeer/voucher-console/internal/http/response"
	"github.com/magabrotheeeer/voucher-console/internal/lib/fielderr"
	"github.com/magabrotheeeer/voucher-console/internal/lib/sl"
	"github.com/magabrotheeeer/voucher-console/internal/metrics"
	"github.com/magabrotheeeer/voucher-console/internal/models"
	voucherservice "github.com/magabrotheeeer/voucher-console/internal/services/voucher"
)

const form = "voucher_api"

// Service описывает создание ваучера из готового запроса.
type Service interface {
	Create(ctx context.Context, token string, payload models.VoucherPayload) (*voucherservice.Created, error)
}

// Handler обрабатывает HTTP-запросы на создание ваучера. Требует BearerToken.
type Handler struct {
	log *slog.Logger
	svc Service
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, svc Service) *Handler {
	return &Handler{
		log: log,
		svc: svc,
	}
}

// ServeHTTP godoc
// @Summary Создание ваучера
// @Description Проверяет ваучер и пересылает его в upstream с тем же bearer-токеном. Поля скидки, не относящиеся к типу, отбрасываются.
// @Tags Voucher
// @Accept  json
// @Produce  json
// @Security BearerAuth
// @Param request body models.VoucherPayload true "Ваучер"
// @Success 201 {object} response.Response "Ответ upstream в поле data"
// @Failure 400 {object} response.ErrorResponse "Некорректный JSON"
// @Failure 401 {object} response.ErrorResponse "Нет токена или он просрочен"
// @Failure 422 {object} response.ErrorResponse "Ошибка валидации"
// @Failure 502 {object} response.ErrorResponse "Upstream недоступен"
// @Router /voucher [post]
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.voucher.voucherapi"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	var req models.VoucherPayload
	if err := render.DecodeJSON(r.Body, &req); err != nil {
		log.Error("failed to decode request body", sl.Err(err))
		metrics.CountSubmission(form, metrics.ResultInvalid)
		render.Status(r, http.StatusBadRequest)
		render.JSON(w, r, response.Error("invalid request body"))
		return
	}
	log.Info("request body decoded", slog.String("code", req.Code), slog.String("type", string(req.Type)))

	created, err := h.svc.Create(r.Context(), middlewarectx.TokenFrom(r.Context()), req)
	if err != nil {
		var fields fielderr.Errors
		if errors.As(err, &fields) {
			log.Error("validation failed", sl.Err(err))
			metrics.CountSubmission(form, metrics.ResultInvalid)
			render.Status(r, http.StatusUnprocessableEntity)
			render.JSON(w, r, response.ValidationError(fields))
			return
		}

		log.Error("failed to create voucher", sl.Err(err))
		metrics.CountSubmission(form, metrics.ResultFailed)
		status, resp := response.FromUpstream(err)
		render.Status(r, status)
		render.JSON(w, r, resp)
		return
	}

	log.Info("voucher created", slog.String("code", created.Code), slog.Any("response", created.Body))
	metrics.CountSubmission(form, metrics.ResultSuccess)
	render.Status(r, http.StatusCreated)
	render.JSON(w, r, response.OKWithData(created.Body))
}
