package api

import "fmt"

// Error представляет ошибку уровня приложения, возвращенную сервером.
// Транспортные ошибки (timeout, DNS, обрыв соединения) до этого типа
// не доходят, клиент возвращает их как обычные обернутые ошибки,
// поэтому errors.As по *api.Error отличает отказ сервера от недоступности сети.
type Error struct {
	Message    string
	StatusCode int
	Upgrade    bool
}

// Error implements the error interface.
func (e *Error) Error() string {
	return fmt.Sprintf("server error (%d): %s", e.StatusCode, e.Message)
}

// Retryable reports whether the rejection is likely transient.
// Validation failures and quota rejections will fail identically on every
// retry; timeouts, rate limits and server errors may succeed later.
// 401 тоже считается преходящей: после повторного login запись уйдет.
func (e *Error) Retryable() bool {
	switch e.StatusCode {
	case 401, 408, 429:
		return true
	}
	return e.StatusCode >= 500
}
