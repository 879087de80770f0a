// Package notify delivers workflow events to reviewers and business admins
// without blocking the workflow.
package notify

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// EventType names a workflow event.
type EventType string

const (
	EventAssigned       EventType = "review_request.assigned"
	EventExpired        EventType = "review_request.expired"
	EventSubmitted      EventType = "review_result.submitted"
	EventResultApproved EventType = "review_result.approved"
	EventResultRejected EventType = "review_result.rejected"
)

// Event is the message handed to a Sink.
type Event struct {
	Type       EventType  `json:"event"`
	RequestID  uuid.UUID  `json:"review_request_id"`
	ResultID   *uuid.UUID `json:"review_result_id,omitempty"`
	DocumentID uuid.UUID  `json:"document_id"`
	ReviewerID uuid.UUID  `json:"reviewer_id"`
	Status     string     `json:"status"`
	Reason     string     `json:"reason,omitempty"`
	OccurredAt time.Time  `json:"occurred_at"`
}

// Sink delivers a single event.
type Sink interface {
	Send(ctx context.Context, e Event) error
}
