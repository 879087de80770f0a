package domain

import (
	"database/sql/driver"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// RequestStatus represents the lifecycle state of a review request.
type RequestStatus string

// Review request status constants.
const (
	RequestPending   RequestStatus = "PENDING"
	RequestAccepted  RequestStatus = "ACCEPTED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestExpired   RequestStatus = "EXPIRED"
	RequestCompleted RequestStatus = "COMPLETED"
)

// ActiveRequestStatuses are the only non-terminal states of a review request.
var ActiveRequestStatuses = []RequestStatus{RequestPending, RequestAccepted}

// NewRequestStatus creates a new RequestStatus with validation.
func NewRequestStatus(s string) (RequestStatus, error) {
	status := RequestStatus(s)
	if !status.IsValid() {
		return "", fmt.Errorf("invalid review request status: %s", s)
	}
	return status, nil
}

// IsValid checks if the status is valid.
func (s RequestStatus) IsValid() bool {
	switch s {
	case RequestPending, RequestAccepted, RequestRejected, RequestExpired, RequestCompleted:
		return true
	}
	return false
}

// IsActive reports whether the request still occupies its document.
func (s RequestStatus) IsActive() bool {
	return s == RequestPending || s == RequestAccepted
}

// IsTerminal reports whether no further transition is allowed.
func (s RequestStatus) IsTerminal() bool {
	return s.IsValid() && !s.IsActive()
}

// Scan implements sql.Scanner interface for automatic validation when reading from database.
func (s *RequestStatus) Scan(value any) error {
	str, err := scanString(value, "RequestStatus")
	if err != nil {
		return err
	}

	status, err := NewRequestStatus(str)
	if err != nil {
		return err
	}
	*s = status
	return nil
}

// Value implements driver.Valuer interface for writing to database.
func (s RequestStatus) Value() (driver.Value, error) {
	if !s.IsValid() {
		return nil, fmt.Errorf("invalid RequestStatus value: %s", s)
	}
	return string(s), nil
}

// ReviewRequest is one reviewer's assignment to review one document.
type ReviewRequest struct {
	ID               uuid.UUID     `json:"id" db:"id"`
	DocumentID       uuid.UUID     `json:"document_id" db:"document_id"`
	ReviewerID       uuid.UUID     `json:"reviewer_id" db:"reviewer_id"`
	AssignedByID     uuid.UUID     `json:"assigned_by" db:"assigned_by"`
	Status           RequestStatus `json:"status" db:"status"`
	ResponseDeadline time.Time     `json:"response_deadline" db:"response_deadline"`
	ReviewDeadline   *time.Time    `json:"review_deadline,omitempty" db:"review_deadline"`
	RespondedAt      *time.Time    `json:"responded_at,omitempty" db:"responded_at"`
	RejectionReason  string        `json:"rejection_reason,omitempty" db:"rejection_reason"`
	Note             string        `json:"note,omitempty" db:"note"`
	CreatedAt        time.Time     `json:"created_at" db:"created_at"`
	UpdatedAt        time.Time     `json:"updated_at" db:"updated_at"`
}

// BelongsTo reports whether the request is assigned to the given reviewer.
func (r *ReviewRequest) BelongsTo(reviewerID uuid.UUID) bool {
	return r.ReviewerID == reviewerID
}

// ResponseOverdue reports whether the response window closed before now.
func (r *ReviewRequest) ResponseOverdue(now time.Time) bool {
	return !now.Before(r.ResponseDeadline)
}

// ReviewOverdue reports whether the review deadline has passed at now.
// A request without a review deadline is never overdue.
func (r *ReviewRequest) ReviewOverdue(now time.Time) bool {
	return r.ReviewDeadline != nil && now.After(*r.ReviewDeadline)
}
