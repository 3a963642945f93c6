package ledger

import (
	"errors"
	"fmt"
)

var (
	ErrUnauthenticated        = errors.New("unauthenticated")
	ErrNotFound               = errors.New("not found")
	ErrForbidden              = errors.New("forbidden")
	ErrInvalidTransactionKind = errors.New("invalid transaction kind")
	ErrInvalidOperation       = errors.New("invalid reconcile operation")
	ErrInvalidAmount          = errors.New("invalid amount")
	ErrInvalidRecurrence      = errors.New("invalid recurrence")
	ErrInvalidInput           = errors.New("invalid input")

	// ErrStorageFailure matches every *StorageError.
	ErrStorageFailure         = errors.New("storage failure")
	ErrTransactionFetchFailed = errors.New("transaction fetch failed")
	ErrCommitFailed           = errors.New("commit failed")
)

// Stage names the step of an atomic unit that hit a storage error.
type Stage string

const (
	StageBegin  Stage = "begin"
	StageFetch  Stage = "fetch"
	StageApply  Stage = "apply"
	StageCommit Stage = "commit"
)

// StorageError reports that an atomic unit could not be fetched, applied or committed.
// The unit has been rolled back by the time a caller sees it.
type StorageError struct {
	Stage Stage
	Err   error
}

func (e *StorageError) Error() string {
	return fmt.Sprintf("storage failure during %s: %v", e.Stage, e.Err)
}

func (e *StorageError) Unwrap() error {
	return e.Err
}

func (e *StorageError) Is(target error) bool {
	switch target {
	case ErrStorageFailure:
		return true
	case ErrTransactionFetchFailed:
		return e.Stage == StageFetch
	case ErrCommitFailed:
		return e.Stage == StageCommit
	}
	return false
}

// WrapStorage turns an infrastructure error into a *StorageError for the given
// stage. Domain errors and errors that are already storage errors pass through.
func WrapStorage(stage Stage, err error) error {
	if err == nil {
		return nil
	}
	if IsDomainError(err) {
		return err
	}
	var se *StorageError
	if errors.As(err, &se) {
		return err
	}
	return &StorageError{Stage: stage, Err: err}
}

// IsDomainError reports whether err is one of the caller-facing domain failures.
func IsDomainError(err error) bool {
	for _, target := range []error{
		ErrUnauthenticated,
		ErrNotFound,
		ErrForbidden,
		ErrInvalidTransactionKind,
		ErrInvalidOperation,
		ErrInvalidAmount,
		ErrInvalidRecurrence,
		ErrInvalidInput,
	} {
		if errors.Is(err, target) {
			return true
		}
	}
	return false
}
