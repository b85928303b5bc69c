package dto

import "fmt"

// InsufficientStockError is returned when an "out" transaction would drive
// an item's stock below zero. The item is left untouched.
type InsufficientStockError struct {
	ItemName  string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, available %d",
		e.ItemName, e.Requested, e.Available)
}

// StatusError lets the service layer pick the HTTP status without importing
// fiber. The app error handler unwraps it.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	return e.Message
}

func NotFound(message string) error {
	return &StatusError{Code: 404, Message: message}
}

func BadRequest(message string) error {
	return &StatusError{Code: 400, Message: message}
}

func Conflict(message string) error {
	return &StatusError{Code: 409, Message: message}
}

func Unauthorized(message string) error {
	return &StatusError{Code: 401, Message: message}
}
