package response

import (
	"errors"
	"net/http"

	"github.com/magabrotheeeer/voucher-console/internal/upstream"
)

// FromUpstream подбирает HTTP-статус и ответ для ошибки вызова upstream.
// Ошибки клиента (4xx) upstream передаются как есть, остальное становится 502.
func FromUpstream(err error) (int, Response) {
	var upErr *upstream.Error
	if errors.As(err, &upErr) {
		status := http.StatusBadGateway
		if upErr.StatusCode >= 400 && upErr.StatusCode < 500 {
			status = upErr.StatusCode
		}
		return status, Error(upErr.Message)
	}
	return http.StatusBadGateway, Error("upstream request failed")
}
