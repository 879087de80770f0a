package repository

import (
	"errors"

	"github.com/lib/pq"
)

// PostgreSQL error codes the workflow reacts to.
const (
	codeUniqueViolation      = "23505"
	codeForeignKeyViolation  = "23503"
	codeSerializationFailure = "40001"
	codeDeadlockDetected     = "40P01"
)

// ActiveRequestIndex is the partial unique index guarding one active request per document.
const ActiveRequestIndex = "uq_review_requests_active_document"

func pqCode(err error) pq.ErrorCode {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) {
		return pqErr.Code
	}
	return ""
}

// IsUniqueViolation checks if the error is a PostgreSQL unique constraint violation.
func IsUniqueViolation(err error) bool {
	return pqCode(err) == codeUniqueViolation
}

// IsActiveRequestViolation checks if the error comes from the single-active-request index.
func IsActiveRequestViolation(err error) bool {
	var pqErr *pq.Error
	if !IsUniqueViolation(err) || !errors.As(err, &pqErr) {
		return false
	}
	return pqErr.Constraint == ActiveRequestIndex
}

// IsForeignKeyViolation checks if the error is a PostgreSQL foreign key violation.
func IsForeignKeyViolation(err error) bool {
	return pqCode(err) == codeForeignKeyViolation
}

// IsRetryable reports serialization failures and deadlocks; the caller may rerun the transaction.
func IsRetryable(err error) bool {
	code := pqCode(err)
	return code == codeSerializationFailure || code == codeDeadlockDetected
}
