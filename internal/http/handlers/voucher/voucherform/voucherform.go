// Package voucherform обслуживает HTML-форму создания ваучера.
//
// GET /voucher?type=<t> показывает только поля, относящиеся к типу скидки,
// POST /voucher приводит значения к числам и отправляет ваучер в upstream
// с токеном доступа из сессии.
package voucherform

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/go-chi/chi/middleware"

	"github.com/magabrotheeeer/voucher-console/internal/http/middlewarectx"
	"github.com/magabrotheeeer/voucher-console/internal/http/pages"
	"github.com/magabrotheeeer/voucher-console/internal/lib/fielderr"
	"github.com/magabrotheeeer/voucher-console/internal/lib/sl"
	"github.com/magabrotheeeer/voucher-console/internal/metrics"
	"github.com/magabrotheeeer/voucher-console/internal/models"
	voucherservice "github.com/magabrotheeeer/voucher-console/internal/services/voucher"
	"github.com/magabrotheeeer/voucher-console/internal/upstream"
)

const form = "voucher"

// Service описывает создание ваучера из значений формы.
type Service interface {
	CreateFromDraft(ctx context.Context, token string, draft models.VoucherDraft) (*voucherservice.Created, error)
}

// Renderer описывает вывод HTML-страницы.
type Renderer interface {
	Render(w http.ResponseWriter, status int, name string, data any) error
}

// Handler обрабатывает форму создания ваучера. Требует SessionRequired.
type Handler struct {
	log   *slog.Logger
	svc   Service
	pages Renderer
}

// New создает новый экземпляр Handler.
func New(log *slog.Logger, svc Service, pages Renderer) *Handler {
	return &Handler{
		log:   log,
		svc:   svc,
		pages: pages,
	}
}

// Show выводит форму для типа скидки из ?type=. Смена типа в форме отправляет
// её методом GET, поэтому уже введенные значения приходят в query и сохраняются.
func (h *Handler) Show(w http.ResponseWriter, r *http.Request) {
	sess, _ := middlewarectx.SessionFrom(r.Context())
	draft := draftFromForm(r.URL.Query())
	h.render(w, r, http.StatusOK, pages.NewVoucherPage(sessionEmail(sess), draft))
}

// ServeHTTP принимает POST /voucher.
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	const op = "handlers.voucher.voucherform"

	log := h.log.With(
		slog.String("op", op),
		slog.String("request_id", middleware.GetReqID(r.Context())),
	)

	sess, ok := middlewarectx.SessionFrom(r.Context())
	if !ok {
		log.Error("no session in context")
		http.Redirect(w, r, "/", http.StatusSeeOther)
		return
	}

	if err := r.ParseForm(); err != nil {
		log.Error("failed to parse form", sl.Err(err))
		metrics.CountSubmission(form, metrics.ResultInvalid)
		page := pages.NewVoucherPage(sess.Email, models.VoucherDraft{})
		page.Error = "invalid form submission"
		h.render(w, r, http.StatusBadRequest, page)
		return
	}

	draft := draftFromForm(r.PostForm)
	log.Info("form decoded", slog.String("code", draft.Code), slog.String("type", draft.Type))

	created, err := h.svc.CreateFromDraft(r.Context(), sess.AccessToken, draft)
	if err != nil {
		page := pages.NewVoucherPage(sess.Email, draft)

		var fields fielderr.Errors
		if errors.As(err, &fields) {
			log.Error("validation failed", sl.Err(err))
			metrics.CountSubmission(form, metrics.ResultInvalid)
			page.FieldErrors = fields
			page.Error = "Please correct the highlighted fields."
			h.render(w, r, http.StatusUnprocessableEntity, page)
			return
		}

		log.Error("failed to create voucher", sl.Err(err))
		metrics.CountSubmission(form, metrics.ResultFailed)
		page.Error = "Failed to create voucher."
		var upErr *upstream.Error
		if errors.As(err, &upErr) {
			page.Error = upErr.Message
		}
		h.render(w, r, http.StatusBadGateway, page)
		return
	}

	log.Info("voucher created", slog.String("code", created.Code), slog.Any("response", created.Body))
	metrics.CountSubmission(form, metrics.ResultSuccess)
	http.Redirect(w, r, "/dashboard?created="+url.QueryEscape(created.Code), http.StatusSeeOther)
}

func draftFromForm(v url.Values) models.VoucherDraft {
	return models.VoucherDraft{
		Code:               v.Get("code"),
		Type:               v.Get("type"),
		Target:             v.Get("target"),
		PercentageDiscount: v.Get("percentageDiscount"),
		FixedDiscount:      v.Get("fixedDiscount"),
		MaxDiscountAmount:  v.Get("maxDiscountAmount"),
		MinCartValue:       v.Get("minCartValue"),
		MaxUses:            v.Get("maxUses"),
		MaxUsesPerUser:     v.Get("maxUsesPerUser"),
		StartDate:          v.Get("startDate"),
		EndDate:            v.Get("endDate"),
		ApplicableProducts: v.Get("applicableProducts"),
		AllowedUsers:       v.Get("allowedUsers"),
		RedeemableDays:     v.Get("redeemableDays"),
	}
}

func sessionEmail(sess *models.Session) string {
	if sess == nil {
		return ""
	}
	return sess.Email
}

func (h *Handler) render(w http.ResponseWriter, r *http.Request, status int, page pages.VoucherPage) {
	if err := h.pages.Render(w, status, pages.Voucher, page); err != nil {
		h.log.Error("failed to render page",
			slog.String("request_id", middleware.GetReqID(r.Context())),
			sl.Err(err),
		)
		http.Error(w, http.StatusText(http.StatusInternalServerError), http.StatusInternalServerError)
	}
}
