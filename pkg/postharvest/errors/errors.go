package errors

import (
	"errors"
	"fmt"
)

var ErrAlreadyExists = fmt.Errorf("already exists")
var ErrForbidden = fmt.Errorf("forbidden")
var ErrInternal = fmt.Errorf("internal error")
var ErrInvalidArgument = fmt.Errorf("invalid argument")
var ErrNotFound = fmt.Errorf("not found")
var ErrUnauthorized = fmt.Errorf("unauthorized")

type myError struct {
	msg    string
	target error
	cause  error
}

func (m myError) Error() string        { return m.msg }
func (m myError) Is(target error) bool { return target == m.target }
func (m myError) Unwrap() error        { return m.cause }

func NewAlreadyExistsError(msg string) error {
	return &myError{msg: msg, target: ErrAlreadyExists}
}

func NewForbiddenError(msg string) error {
	return &myError{msg: msg, target: ErrForbidden}
}

func NewInternalError(msg string, cause error) error {
	return &myError{msg: msg, target: ErrInternal, cause: cause}
}

func NewInvalidArgumentError(msg string) error {
	return &myError{msg: msg, target: ErrInvalidArgument}
}

func NewNotFoundError(msg string) error {
	return &myError{msg: msg, target: ErrNotFound}
}

func NewUnauthorizedError(msg string) error {
	return &myError{msg: msg, target: ErrUnauthorized}
}

// Wrap returns an error that matches target with errors.Is while keeping
// cause reachable through errors.Unwrap and errors.As.
func Wrap(target error, msg string, cause error) error {
	return &myError{msg: msg, target: target, cause: cause}
}

// Kind reports which sentinel, if any, err matches.
func Kind(err error) error {
	for _, sentinel := range []error{
		ErrInvalidArgument, ErrNotFound, ErrUnauthorized, ErrForbidden, ErrAlreadyExists, ErrInternal,
	} {
		if errors.Is(err, sentinel) {
			return sentinel
		}
	}
	return nil
}
