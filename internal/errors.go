package internal

import "fmt"

// AppError is the error value surfaced across component boundaries and to API
// clients. Store and remote failures are wrapped into one of these one level
// up; nothing in the data path panics across a boundary.
type AppError struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func NewAppError(code int, message string) *AppError {
	return &AppError{Code: code, Message: message}
}

func (e *AppError) Error() string {
	return fmt.Sprintf("%d: %s", e.Code, e.Message)
}
