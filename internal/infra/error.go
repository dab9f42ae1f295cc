package infra

import (
	"errors"

	"compras-service/internal/pkg/errs"
)

// Kind classifies infrastructure failures (store and upstream gateways) so
// usecases can map them to the error taxonomy without inspecting drivers.
type Kind string

const (
	KindNotFound     Kind = "NOT_FOUND"
	KindConflict     Kind = "CONFLICT"
	KindDuplicateKey Kind = "DUPLICATE_KEY"
	KindUnavailable  Kind = "UNAVAILABLE"
	KindFailure      Kind = "FAILURE"
)

type Error struct {
	Kind Kind
	msg  string
	err  error // wrapped low-level error
}

func (e Error) Error() string {
	if e.err != nil {
		return string(e.Kind) + ": " + e.msg + ": " + e.err.Error()
	}
	return string(e.Kind) + ": " + e.msg
}

func (e Error) Unwrap() error {
	return e.err
}

func WrapErr(kind Kind, msg string, err error) error {
	if err != nil {
		err = errs.Wrap(err, msg)
	}
	return Error{Kind: kind, msg: msg, err: err}
}

func IsKind(err error, kind Kind) bool {
	var e Error
	if errors.As(err, &e) {
		return e.Kind == kind
	}
	return false
}
