// Package errors attaches process exit codes to errors returned by commands.
package errors

import (
	"github.com/twitter/capsched/scheduler/domain"
)

type ExitCodeError struct {
	code ExitCode
	error
}

func NewError(err error, exitCode ExitCode) *ExitCodeError {
	if err == nil {
		return nil
	}
	return &ExitCodeError{exitCode, err}
}

// FromSchedulingError picks the exit code from the kind of scheduling error err carries.
func FromSchedulingError(err error) *ExitCodeError {
	if err == nil {
		return nil
	}
	return NewError(err, ExitCodeForKind(domain.KindOf(err)))
}

func (e *ExitCodeError) GetExitCode() ExitCode {
	if e == nil {
		return 0
	}
	return e.code
}

// Cause returns the wrapped error, for github.com/pkg/errors.Cause.
func (e *ExitCodeError) Cause() error {
	return e.error
}
