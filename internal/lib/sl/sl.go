// Package sl содержит вспомогательные функции для работы с логгером slog.
package sl

import "log/slog"

// Err возвращает slog.Attr с ключом "error" и текстом ошибки.
//
// Пример:
//
//	log.Error("upstream request failed", sl.Err(err))
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "<nil>")
	}
	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Masked возвращает атрибут, у которого видны только первые символы значения.
// Используется для токенов и ключей, которые нельзя писать в лог целиком.
func Masked(key, value string) slog.Attr {
	const visible = 4
	if len(value) <= visible {
		return slog.String(key, "****")
	}
	return slog.String(key, value[:visible]+"****")
}
