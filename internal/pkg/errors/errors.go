package errors

import "errors"

var (
	ErrInvalid     = errors.New("invalid")
	ErrNotFound    = errors.New("not found")
	ErrTooMany     = errors.New("too many requests")
	ErrUnavailable = errors.New("backend unavailable")
	ErrInternal    = errors.New("internal")
)

func IsNotFound(err error) bool {
	return errors.Is(err, ErrNotFound)
}

func IsUnavailable(err error) bool {
	return errors.Is(err, ErrUnavailable)
}
