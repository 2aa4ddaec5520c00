// Package voucherservice отправляет ваучеры в upstream.
package voucherservice

import (
	"context"
	"fmt"

	"github.com/magabrotheeeer/voucher-console/internal/models"
	"github.com/magabrotheeeer/voucher-console/internal/upstream"
	"github.com/magabrotheeeer/voucher-console/internal/voucher"
)

// Upstream описывает вызов создания ваучера.
type Upstream interface {
	CreateVoucher(ctx context.Context, token string, payload models.VoucherPayload) (*upstream.VoucherResponse, error)
}

// Created итог создания ваучера.
type Created struct {
	Code string
	Body map[string]any
}

// VoucherService создает ваучеры от имени владельца токена.
type VoucherService struct {
	upstream Upstream
}

// NewVoucherService создает новый экземпляр VoucherService.
func NewVoucherService(up Upstream) *VoucherService {
	return &VoucherService{upstream: up}
}

// CreateFromDraft приводит значения формы к запросу и создает ваучер.
// Ошибки проверки возвращаются как fielderr.Errors без обращения к upstream.
func (s *VoucherService) CreateFromDraft(ctx context.Context, token string, draft models.VoucherDraft) (*Created, error) {
	const op = "services.voucher.CreateFromDraft"

	payload, err := voucher.BuildPayload(draft)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.send(ctx, op, token, payload)
}

// Create проверяет готовый запрос и создает ваучер.
func (s *VoucherService) Create(ctx context.Context, token string, payload models.VoucherPayload) (*Created, error) {
	const op = "services.voucher.Create"

	if err := voucher.Normalize(&payload); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return s.send(ctx, op, token, payload)
}

func (s *VoucherService) send(ctx context.Context, op, token string, payload models.VoucherPayload) (*Created, error) {
	resp, err := s.upstream.CreateVoucher(ctx, token, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &Created{Code: payload.Code, Body: resp.Body}, nil
}
