package storage

import (
	"errors"
	"os"
	"strings"
)

var (
	ErrNotFound   = errors.New("storage: not found")
	ErrClosed     = errors.New("storage: closed")
	ErrCorrupted  = errors.New("storage: corrupted")
	ErrExist      = errors.New("storage: database exists")
	ErrNotExist   = errors.New("storage: database does not exist")
	ErrBadOptions = errors.New("storage: bad options")
)

// WrapKVError tags err with kind, one of the package sentinels. The engine
// error stays reachable through errors.Is and errors.As.
func WrapKVError(kind, err error) error {
	if err == nil || errors.Is(err, kind) {
		return err
	}
	return &kvError{kind: kind, err: err}
}

// NormalizeKVError maps engine errors onto the package sentinels by their
// message, keeping the engine message. Engines that expose typed errors map
// them first and fall back to it. Unknown errors are returned unchanged.
func NormalizeKVError(err error) error {
	if err == nil {
		return nil
	}
	for _, sentinel := range []error{ErrNotFound, ErrClosed, ErrCorrupted, ErrExist, ErrNotExist, ErrBadOptions} {
		if errors.Is(err, sentinel) {
			return err
		}
	}

	msg := strings.ToLower(err.Error())
	switch {
	case errors.Is(err, os.ErrExist):
		return &kvError{kind: ErrExist, err: err}
	case errors.Is(err, os.ErrNotExist):
		return &kvError{kind: ErrNotExist, err: err}
	case strings.Contains(msg, "not found"):
		return &kvError{kind: ErrNotFound, err: err}
	case strings.Contains(msg, "corrupt"):
		return &kvError{kind: ErrCorrupted, err: err}
	case strings.Contains(msg, "closed"), strings.Contains(msg, "released"):
		return &kvError{kind: ErrClosed, err: err}
	case strings.Contains(msg, "file exist"), strings.Contains(msg, "already exist"):
		return &kvError{kind: ErrExist, err: err}
	case strings.Contains(msg, "does not exist"), strings.Contains(msg, "no such file"):
		return &kvError{kind: ErrNotExist, err: err}
	}
	return err
}

type kvError struct {
	kind error
	err  error
}

func (e *kvError) Error() string {
	return e.kind.Error() + ": " + e.err.Error()
}

func (e *kvError) Is(target error) bool {
	return target == e.kind
}

func (e *kvError) Unwrap() error {
	return e.err
}
