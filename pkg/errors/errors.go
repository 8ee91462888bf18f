package errors

import (
	"fmt"
	"net/http"
)

// HttpError — ошибка прикладного уровня, несущая HTTP-статус.
// Message и Details предназначены для клиента, Err — только для логов.
type HttpError struct {
	Code    int
	Message string
	Details map[string]string
	Err     error
}

func (e *HttpError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%s: %v", e.Message, e.Err)
	}
	return e.Message
}

func (e *HttpError) Unwrap() error {
	return e.Err
}

func NewHttpError(code int, message string, err error, details map[string]string) *HttpError {
	return &HttpError{
		Code:    code,
		Message: message,
		Details: details,
		Err:     err,
	}
}

func NewBadRequestError(message string) *HttpError {
	return NewHttpError(http.StatusBadRequest, message, nil, nil)
}

func NewNotFoundError(message string) *HttpError {
	return NewHttpError(http.StatusNotFound, message, nil, nil)
}

func NewUnauthorizedError(message string) *HttpError {
	return NewHttpError(http.StatusUnauthorized, message, nil, nil)
}

// NewValidationError собирает ошибки валидации в карту "поле → сообщение".
func NewValidationError(details map[string]string) *HttpError {
	return NewHttpError(http.StatusBadRequest, "Ошибка валидации", nil, details)
}

// NewUpstreamError — сбой внешнего сервиса (хранилище, брокер, геокодер).
// Клиент получает общий статус без технических подробностей подключения.
func NewUpstreamError(message string, err error) *HttpError {
	return NewHttpError(http.StatusBadGateway, message, err, nil)
}
