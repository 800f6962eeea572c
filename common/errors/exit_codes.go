package errors

import (
	"github.com/twitter/capsched/scheduler/domain"
)

type ExitCode int

const (
	// Bad flags or config, nothing was scheduled.
	UsageExitCode ExitCode = 2

	// Registration or batch input rejected.
	InvalidInputExitCode ExitCode = 64

	// The pool could not hold the batch.
	NoCapacityExitCode ExitCode = 70

	// A failure could not be recovered from.
	UnknownWorkerExitCode        ExitCode = 80
	NoWorkersRemainingExitCode   ExitCode = 81
	RedistributionFailedExitCode ExitCode = 82

	GenericFailureExitCode ExitCode = 1
)

// ExitCodeForKind maps the kind of a scheduling error to the exit code of the command that hit it.
func ExitCodeForKind(kind domain.ErrorKind) ExitCode {
	switch kind {
	case domain.InvalidCapacity, domain.DuplicateIdentity, domain.InvalidTaskLoad, domain.DuplicateTask:
		return InvalidInputExitCode
	case domain.NoWorkersRegistered, domain.NoCapacityAvailable:
		return NoCapacityExitCode
	case domain.UnknownWorker:
		return UnknownWorkerExitCode
	case domain.NoWorkersRemaining:
		return NoWorkersRemainingExitCode
	case domain.RedistributionFailed:
		return RedistributionFailedExitCode
	default:
		return GenericFailureExitCode
	}
}
