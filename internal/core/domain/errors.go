// internal/core/domain/errors.go
package domain

import "errors"

// Sentinel errors returned by the registry and the ledger. Messages are the
// ones shown to operators by the command processor.
var (
	ErrCapacityExceeded  = errors.New("too many vaccines")
	ErrInvalidName       = errors.New("invalid name")
	ErrInvalidBatchID    = errors.New("invalid batch")
	ErrDuplicateBatchID  = errors.New("duplicate batch number")
	ErrInvalidDate       = errors.New("invalid date")
	ErrInvalidQuantity   = errors.New("invalid quantity")
	ErrBatchNotFound     = errors.New("no such batch")
	ErrExpiredBatch      = errors.New("batch expired")
	ErrNoDosesAvailable  = errors.New("no doses available")
	ErrInvalidUser       = errors.New("invalid user")
	ErrInconsistentState = errors.New("inconsistent state")
)

// ErrorKind is a coarse-grained categorization for rejections.
type ErrorKind string

const (
	KindNone             ErrorKind = ""
	KindCapacityExceeded ErrorKind = "capacity_exceeded"
	KindInvalidName      ErrorKind = "invalid_name"
	KindInvalidBatchID   ErrorKind = "invalid_batch_id"
	KindDuplicateBatchID ErrorKind = "duplicate_batch_id"
	KindInvalidDate      ErrorKind = "invalid_date"
	KindInvalidQuantity  ErrorKind = "invalid_quantity"
	KindBatchNotFound    ErrorKind = "batch_not_found"
	KindExpiredBatch     ErrorKind = "expired_batch"
	KindNoDosesAvailable ErrorKind = "no_doses_available"
	KindInvalidUser      ErrorKind = "invalid_user"
	KindInternal         ErrorKind = "internal"
)

var kinds = []struct {
	err  error
	kind ErrorKind
}{
	{ErrCapacityExceeded, KindCapacityExceeded},
	{ErrInvalidName, KindInvalidName},
	{ErrInvalidBatchID, KindInvalidBatchID},
	{ErrDuplicateBatchID, KindDuplicateBatchID},
	{ErrInvalidDate, KindInvalidDate},
	{ErrInvalidQuantity, KindInvalidQuantity},
	{ErrBatchNotFound, KindBatchNotFound},
	{ErrExpiredBatch, KindExpiredBatch},
	{ErrNoDosesAvailable, KindNoDosesAvailable},
	{ErrInvalidUser, KindInvalidUser},
}

// KindOf classifies err. Errors outside the taxonomy map to KindInternal,
// a nil error to KindNone.
func KindOf(err error) ErrorKind {
	if err == nil {
		return KindNone
	}
	for _, k := range kinds {
		if errors.Is(err, k.err) {
			return k.kind
		}
	}
	return KindInternal
}

// IsKind helps callers classify errors without depending on the services package.
func IsKind(err error, kind ErrorKind) bool {
	return KindOf(err) == kind
}
