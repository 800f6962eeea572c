package domain

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorKind classifies a SchedulingError.
type ErrorKind int

const (
	// Not a SchedulingError.
	UnknownKind ErrorKind = iota

	// Registration time caller errors, never retried.
	InvalidCapacity
	DuplicateIdentity

	// Malformed batch input, rejected before any state changes.
	InvalidTaskLoad
	DuplicateTask

	// Runtime conditions reflecting the current pool.
	NoWorkersRegistered
	NoCapacityAvailable
	UnknownWorker
	NoWorkersRemaining

	// Recovery of a failed worker could not place every task; the pool was rolled back.
	RedistributionFailed
)

var kindNames = map[ErrorKind]string{
	UnknownKind:          "Unknown",
	InvalidCapacity:      "InvalidCapacity",
	DuplicateIdentity:    "DuplicateIdentity",
	InvalidTaskLoad:      "InvalidTaskLoad",
	DuplicateTask:        "DuplicateTask",
	NoWorkersRegistered:  "NoWorkersRegistered",
	NoCapacityAvailable:  "NoCapacityAvailable",
	UnknownWorker:        "UnknownWorker",
	NoWorkersRemaining:   "NoWorkersRemaining",
	RedistributionFailed: "RedistributionFailed",
}

func (k ErrorKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("ErrorKind(%d)", int(k))
}

// SchedulingError is returned by every scheduler operation that fails.
// WorkerId, TaskId and Load are set when the kind names them.
type SchedulingError struct {
	Kind     ErrorKind
	WorkerId string
	TaskId   string
	Load     int
	Cause    error
	errMsg   string
}

func (e *SchedulingError) Error() string {
	if e.Cause != nil {
		return fmt.Sprintf("%s: %s", e.errMsg, e.Cause.Error())
	}
	return e.errMsg
}

// Unwrap exposes the inner error of a RedistributionFailed.
func (e *SchedulingError) Unwrap() error {
	return e.Cause
}

func NewInvalidCapacity(workerId string, capacity int) error {
	return &SchedulingError{
		Kind:     InvalidCapacity,
		WorkerId: workerId,
		Load:     capacity,
		errMsg:   fmt.Sprintf("worker %s capacity must be positive, got %d", workerId, capacity),
	}
}

func NewDuplicateIdentity(workerId string) error {
	return &SchedulingError{
		Kind:     DuplicateIdentity,
		WorkerId: workerId,
		errMsg:   fmt.Sprintf("worker %s already exists", workerId),
	}
}

func NewInvalidTaskLoad(t Task) error {
	return &SchedulingError{
		Kind:   InvalidTaskLoad,
		TaskId: t.Id,
		Load:   t.Load,
		errMsg: fmt.Sprintf("task load must be positive: %s (load %d)", t.Id, t.Load),
	}
}

func NewDuplicateTask(t Task) error {
	return &SchedulingError{
		Kind:   DuplicateTask,
		TaskId: t.Id,
		Load:   t.Load,
		errMsg: fmt.Sprintf("task %s appears more than once in batch", t.Id),
	}
}

func NewNoWorkersRegistered() error {
	return &SchedulingError{
		Kind:   NoWorkersRegistered,
		errMsg: "no workers available for task distribution",
	}
}

func NewNoCapacityAvailable(t Task) error {
	return &SchedulingError{
		Kind:   NoCapacityAvailable,
		TaskId: t.Id,
		Load:   t.Load,
		errMsg: fmt.Sprintf("no worker can accommodate task %s of size %d", t.Id, t.Load),
	}
}

func NewUnknownWorker(workerId string) error {
	return &SchedulingError{
		Kind:     UnknownWorker,
		WorkerId: workerId,
		errMsg:   fmt.Sprintf("worker %s not found", workerId),
	}
}

func NewNoWorkersRemaining(workerId string) error {
	return &SchedulingError{
		Kind:     NoWorkersRemaining,
		WorkerId: workerId,
		errMsg:   fmt.Sprintf("no remaining workers available to absorb tasks of failed worker %s", workerId),
	}
}

// NewRedistributionFailed wraps the error that stopped recovery of workerId.
// TaskId and Load are copied from the cause when it names the task that could not be placed.
func NewRedistributionFailed(workerId string, cause error) error {
	e := &SchedulingError{
		Kind:     RedistributionFailed,
		WorkerId: workerId,
		Cause:    cause,
		errMsg:   fmt.Sprintf("failed to redistribute tasks of worker %s", workerId),
	}
	var inner *SchedulingError
	if errors.As(cause, &inner) {
		e.TaskId = inner.TaskId
		e.Load = inner.Load
	}
	return e
}

// KindOf returns the kind of the SchedulingError found in err's chain, or UnknownKind.
// Errors wrapped with github.com/pkg/errors are unwrapped via Cause first.
func KindOf(err error) ErrorKind {
	if err == nil {
		return UnknownKind
	}
	var se *SchedulingError
	if errors.As(pkgerrors.Cause(err), &se) || errors.As(err, &se) {
		return se.Kind
	}
	return UnknownKind
}

// IsKind reports whether err carries a SchedulingError of the given kind.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
