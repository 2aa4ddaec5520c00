package upstream

import (
	"fmt"
	"net/http"
	"strings"
)

// Error ответ upstream со статусом не 2xx.
type Error struct {
	StatusCode int
	Message    string
}

func (e *Error) Error() string {
	return fmt.Sprintf("upstream responded %d: %s", e.StatusCode, e.Message)
}

// errorBody тело ошибки upstream. message бывает строкой или списком строк.
type errorBody struct {
	Message any `json:"message"`
	Error   any `json:"error"`
}

func (b *errorBody) text() string {
	if b == nil {
		return ""
	}
	for _, v := range []any{b.Message, b.Error} {
		switch m := v.(type) {
		case string:
			if m != "" {
				return m
			}
		case []any:
			parts := make([]string, 0, len(m))
			for _, p := range m {
				parts = append(parts, fmt.Sprint(p))
			}
			if len(parts) > 0 {
				return strings.Join(parts, "; ")
			}
		}
	}
	return ""
}

func newError(status int, body *errorBody) *Error {
	msg := body.text()
	if msg == "" {
		msg = http.StatusText(status)
	}
	return &Error{StatusCode: status, Message: msg}
}

// AuthResponse ответ upstream на регистрацию или вход.
type AuthResponse struct {
	AccessToken string
	Body        map[string]any
}

// tokenKeys ключи, под которыми upstream может вернуть токен доступа.
var tokenKeys = []string{"access_token", "accessToken", "token"}

func accessToken(body map[string]any) string {
	for _, k := range tokenKeys {
		if s, ok := body[k].(string); ok && s != "" {
			return s
		}
	}
	return ""
}

// VoucherResponse ответ upstream на создание ваучера.
type VoucherResponse struct {
	Body map[string]any
}

// Redacted возвращает копию тела ответа, пригодную для логов: токены доступа замаскированы.
func Redacted(body map[string]any) map[string]any {
	out := make(map[string]any, len(body))
	for k, v := range body {
		out[k] = v
	}
	for _, k := range tokenKeys {
		if _, ok := out[k]; ok {
			out[k] = "****"
		}
	}
	return out
}
