package usecase

import (
	"errors"
	"fmt"
	"net/http"
)

// handlerでそのままレスポンスにする
type HTTPError struct {
	Status  int
	Message string
	//項目ごとのエラー（400のとき）
	Fields map[string][]string
	//ログ用の元エラー
	Err error
}

func (e *HTTPError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("%d: %s: %v", e.Status, e.Message, e.Err)
	}
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func (e *HTTPError) Unwrap() error {
	return e.Err
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func NewValidationError(fields map[string][]string) error {
	return &HTTPError{
		Status:  http.StatusBadRequest,
		Message: "validation error",
		Fields:  fields,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}

func fieldError(field string, message string) error {
	return NewValidationError(map[string][]string{field: {message}})
}

func notFound() error {
	return NewHTTPError(http.StatusNotFound, "not found")
}

func unauthorized() error {
	return NewHTTPError(http.StatusUnauthorized, "unauthorized")
}

// 500。原因はErrに残す
func dbError(err error) error {
	return &HTTPError{
		Status:  http.StatusInternalServerError,
		Message: "db error",
		Err:     err,
	}
}
