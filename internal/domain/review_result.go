package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Decision is the reviewer's verdict on the document content.
type Decision string

// Decision constants.
const (
	DecisionApproved Decision = "APPROVED"
	DecisionRejected Decision = "REJECTED"
)

// NewDecision creates a new Decision with validation.
func NewDecision(s string) (Decision, error) {
	d := Decision(s)
	if !d.IsValid() {
		return "", fmt.Errorf("invalid decision: %s (must be one of: %s, %s)", s, DecisionApproved, DecisionRejected)
	}
	return d, nil
}

// IsValid checks if the decision is valid.
func (d Decision) IsValid() bool {
	return d == DecisionApproved || d == DecisionRejected
}

// Scan implements sql.Scanner.
func (d *Decision) Scan(value any) error {
	str, err := scanString(value, "Decision")
	if err != nil {
		return err
	}
	decision, err := NewDecision(str)
	if err != nil {
		return err
	}
	*d = decision
	return nil
}

// Value implements driver.Valuer.
func (d Decision) Value() (driver.Value, error) {
	if !d.IsValid() {
		return nil, fmt.Errorf("invalid Decision value: %s", d)
	}
	return string(d), nil
}

// ResultStatus is the business admin's verdict on a submission.
type ResultStatus string

// Review result status constants.
const (
	ResultPending  ResultStatus = "PENDING"
	ResultApproved ResultStatus = "APPROVED"
	ResultRejected ResultStatus = "REJECTED"
)

// UnresolvedResultStatuses block a new submission for the same request.
var UnresolvedResultStatuses = []ResultStatus{ResultPending, ResultApproved}

// NewResultStatus creates a new ResultStatus with validation.
func NewResultStatus(s string) (ResultStatus, error) {
	status := ResultStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid review result status: %s", s)
	}
	return status, nil
}

// IsValid checks if the status is valid.
func (s ResultStatus) IsValid() bool {
	return s == ResultPending || s == ResultApproved || s == ResultRejected
}

// Scan implements sql.Scanner.
func (s *ResultStatus) Scan(value any) error {
	str, err := scanString(value, "ResultStatus")
	if err != nil {
		return err
	}
	status, err := NewResultStatus(str)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Value implements driver.Valuer.
func (s ResultStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid ResultStatus value: %s", s)
	}
	return string(s), nil
}

// ReviewResult is one submitted report against a review request.
// Results are append-only: a BA rejection leaves the row in place and the
// reviewer submits a new one.
type ReviewResult struct {
	ID              uuid.UUID    `json:"id" db:"id"`
	ReviewRequestID uuid.UUID    `json:"review_request_id" db:"review_request_id"`
	DocumentID      uuid.UUID    `json:"document_id" db:"document_id"`
	ReviewerID      uuid.UUID    `json:"reviewer_id" db:"reviewer_id"`
	Comment         string       `json:"comment" db:"comment"`
	ReportFilePath  string       `json:"report_file_path" db:"report_file_path"`
	Decision        Decision     `json:"decision" db:"decision"`
	Status          ResultStatus `json:"status" db:"status"`
	SubmittedAt     time.Time    `json:"submitted_at" db:"submitted_at"`
	ApprovedByID    *uuid.UUID   `json:"approved_by,omitempty" db:"approved_by"`
	ApprovedAt      *time.Time   `json:"approved_at,omitempty" db:"approved_at"`
	RejectionReason string       `json:"rejection_reason,omitempty" db:"rejection_reason"`
}

// IsUnresolved reports whether the result blocks another submission.
func (r *ReviewResult) IsUnresolved() bool {
	return r.Status == ResultPending || r.Status == ResultApproved
}
