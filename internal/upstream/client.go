// Package upstream — HTTP-клиент внешнего API аутентификации и ваучеров.
//
// Каждая операция — один POST без повторов. Ответы не 2xx превращаются в *Error
// с сообщением из поля message тела ответа.
package upstream

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/magabrotheeeer/voucher-console/internal/metrics"
	"github.com/magabrotheeeer/voucher-console/internal/models"
)

// ErrEmptyToken возвращается, если CreateVoucher вызван без токена.
var ErrEmptyToken = errors.New("empty bearer token")

// Client клиент upstream API.
type Client struct {
	http *resty.Client
}

// NewClient создаёт клиент с базовым адресом и таймаутом на запрос.
func NewClient(baseURL string, timeout time.Duration) *Client {
	c := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(timeout).
		SetHeader("Accept", "application/json").
		SetHeader("Content-Type", "application/json")

	return &Client{http: c}
}

// Authenticate отправляет данные формы на /auth/signup или /auth/signin.
func (c *Client) Authenticate(ctx context.Context, mode models.AuthMode, payload models.AuthPayload) (*AuthResponse, error) {
	const op = "upstream.Authenticate"

	body, err := c.post(ctx, "/auth/"+string(mode), "", payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &AuthResponse{AccessToken: accessToken(body), Body: body}, nil
}

// CreateVoucher отправляет ваучер на /voucher с заголовком Authorization: Bearer.
func (c *Client) CreateVoucher(ctx context.Context, token string, payload models.VoucherPayload) (*VoucherResponse, error) {
	const op = "upstream.CreateVoucher"

	if token == "" {
		return nil, fmt.Errorf("%s: %w", op, ErrEmptyToken)
	}
	body, err := c.post(ctx, "/voucher", token, payload)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return &VoucherResponse{Body: body}, nil
}

func (c *Client) post(ctx context.Context, path, token string, payload any) (map[string]any, error) {
	req := c.http.R().
		SetContext(ctx).
		SetBody(payload).
		SetError(&errorBody{}).
		ExpectContentType("application/json")
	if token != "" {
		req.SetAuthToken(token)
	}

	start := time.Now()
	resp, err := req.Post(path)
	if err != nil {
		metrics.ObserveUpstream(path, "error", time.Since(start))
		return nil, err
	}
	metrics.ObserveUpstream(path, strconv.Itoa(resp.StatusCode()), time.Since(start))

	if resp.StatusCode() >= 300 {
		eb, _ := resp.Error().(*errorBody)
		return nil, newError(resp.StatusCode(), eb)
	}

	body := map[string]any{}
	raw := resp.Body()
	if len(raw) == 0 {
		return body, nil
	}
	var decoded any
	if err := json.Unmarshal(raw, &decoded); err != nil {
		return nil, fmt.Errorf("decode response: %w", err)
	}
	if m, ok := decoded.(map[string]any); ok {
		return m, nil
	}
	body["data"] = decoded
	return body, nil
}
