package database

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"
)

// ErrorKind identifies a class of store failure so callers can match on it
// instead of probing driver error codes at every call site.
type ErrorKind int

const (
	KindUnknown ErrorKind = iota
	KindNotFound
	KindUniqueViolation
	KindForeignKeyViolation
)

func (k ErrorKind) String() string {
	switch k {
	case KindNotFound:
		return "not found"
	case KindUniqueViolation:
		return "unique violation"
	case KindForeignKeyViolation:
		return "foreign key violation"
	default:
		return "unknown"
	}
}

type StoreError struct {
	Kind ErrorKind
	Err  error
}

func (e *StoreError) Error() string {
	return fmt.Sprintf("store error (%s): %v", e.Kind, e.Err)
}

func (e *StoreError) Unwrap() error {
	return e.Err
}

// ClassifyError wraps a raw database error in a StoreError with the matching
// kind. A nil error stays nil; an already-classified error passes through.
func ClassifyError(err error) error {
	if err == nil {
		return nil
	}

	var storeErr *StoreError
	if errors.As(err, &storeErr) {
		return err
	}

	if errors.Is(err, sql.ErrNoRows) {
		return &StoreError{Kind: KindNotFound, Err: err}
	}

	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		switch pqErr.Code {
		case "23505":
			return &StoreError{Kind: KindUniqueViolation, Err: err}
		case "23503":
			return &StoreError{Kind: KindForeignKeyViolation, Err: err}
		}
	}

	return &StoreError{Kind: KindUnknown, Err: err}
}

func isKind(err error, kind ErrorKind) bool {
	var storeErr *StoreError
	return errors.As(err, &storeErr) && storeErr.Kind == kind
}

func IsNotFound(err error) bool {
	return isKind(err, KindNotFound)
}

func IsUniqueViolation(err error) bool {
	return isKind(err, KindUniqueViolation)
}

func IsForeignKeyViolation(err error) bool {
	return isKind(err, KindForeignKeyViolation)
}
