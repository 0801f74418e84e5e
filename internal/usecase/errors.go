package usecase

import (
	"errors"
	"fmt"
)

// Usecases surface failures as HTTP-mapped errors: 400 bad input, 403
// missing role/ownership, 404 unknown id, 409 illegal state transition or
// lost race, 413 oversized receipt.
type HTTPError struct {
	Status  int
	Message string
}

func (e *HTTPError) Error() string {
	return fmt.Sprintf("%d: %s", e.Status, e.Message)
}

func NewHTTPError(status int, message string) error {
	return &HTTPError{
		Status:  status,
		Message: message,
	}
}

func AsHTTPError(err error) (*HTTPError, bool) {
	var he *HTTPError
	ok := errors.As(err, &he)
	return he, ok
}
