package domain

import (
	"database/sql/driver"
	"fmt"

	"github.com/google/uuid"
)

// DocStatus is the slice of the document lifecycle the review workflow touches.
type DocStatus string

// Document status constants.
const (
	DocAIVerified    DocStatus = "AI_VERIFIED"
	DocPendingReview DocStatus = "PENDING_REVIEW"
	DocReviewing     DocStatus = "REVIEWING"
	DocVerified      DocStatus = "VERIFIED"
	DocRejected      DocStatus = "REJECTED"
	DocActive        DocStatus = "ACTIVE"
	DocDeleted       DocStatus = "DELETED"
)

// NewDocStatus creates a new DocStatus with validation.
func NewDocStatus(s string) (DocStatus, error) {
	status := DocStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid document status: %s", s)
	}
	return status, nil
}

// IsValid checks if the status is valid.
func (s DocStatus) IsValid() bool {
	switch s {
	case DocAIVerified, DocPendingReview, DocReviewing, DocVerified, DocRejected, DocActive, DocDeleted:
		return true
	}
	return false
}

// IsAssignable reports whether a reviewer may be assigned to a document in this status.
func (s DocStatus) IsAssignable() bool {
	return s == DocAIVerified || s == DocPendingReview
}

// Scan implements sql.Scanner.
func (s *DocStatus) Scan(value any) error {
	str, err := scanString(value, "DocStatus")
	if err != nil {
		return err
	}
	status, err := NewDocStatus(str)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Value implements driver.Valuer.
func (s DocStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid DocStatus value: %s", s)
	}
	return string(s), nil
}

// StatusForDecision maps an approved review decision to the document's final status.
func StatusForDecision(d Decision) DocStatus {
	if d == DecisionRejected {
		return DocRejected
	}
	return DocVerified
}

// Document is the part of a document the review workflow needs to read.
type Document struct {
	ID        uuid.UUID `json:"id" db:"id"`
	Title     string    `json:"title" db:"title"`
	IsPremium bool      `json:"is_premium" db:"is_premium"`
	Status    DocStatus `json:"status" db:"status"`
}
