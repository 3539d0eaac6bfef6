package domain

import (
	"errors"
	"fmt"
)

// BusinessError marks failures caused by the request itself (bad input,
// unknown entity) as opposed to infrastructure faults. Controllers map it
// to 4xx responses.
type BusinessError struct {
	Err error
}

func (e *BusinessError) Error() string {
	return e.Err.Error()
}

func (e *BusinessError) Unwrap() error {
	return e.Err
}

func NewBusinessError(msg string) error {
	return &BusinessError{Err: errors.New(msg)}
}

func WrapBusinessError(err error) error {
	if err == nil {
		return nil
	}
	return &BusinessError{Err: err}
}

func BusinessErrorf(format string, args ...any) error {
	return &BusinessError{Err: fmt.Errorf(format, args...)}
}

func IsBusinessError(err error) bool {
	var be *BusinessError
	return errors.As(err, &be)
}

var (
	ErrReadingNotFound  = NewBusinessError("reading not found")
	ErrInvalidBirthDate = NewBusinessError("invalid birth date")
	ErrEmptyName        = NewBusinessError("name must not be empty")
	ErrPlaceNotFound    = NewBusinessError("birth place could not be resolved")
)
