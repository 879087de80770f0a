package service

//go:generate mockgen -source=deps.go -destination=mocks/deps_mock.go -package=mocks

import (
	"context"
	"log"
	"time"

	"github.com/google/uuid"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/store"
)

// Policy holds the workflow's time rules.
type Policy struct {
	ResponseDeadlineDays int
	ReviewDeadlineDays   int
	Location             *time.Location
	// ResetDocumentOnPendingExpiry makes the pending sweep return a REVIEWING
	// document to PENDING_REVIEW, as the accepted sweep does.
	ResetDocumentOnPendingExpiry bool
}

// DefaultPolicy returns one day to respond and three days to review, in local time.
func DefaultPolicy() Policy {
	return Policy{
		ResponseDeadlineDays: 1,
		ReviewDeadlineDays:   3,
		Location:             time.Local,
	}
}

func (p Policy) location() *time.Location {
	if p.Location == nil {
		return time.Local
	}
	return p.Location
}

// ResponseDeadline is the deadline for accepting or rejecting a request assigned at t.
func (p Policy) ResponseDeadline(t time.Time) time.Time {
	return domain.DeadlineAfter(t, p.ResponseDeadlineDays, p.location())
}

// ReviewDeadline is the deadline for submitting a review accepted at t.
func (p Policy) ReviewDeadline(t time.Time) time.Time {
	return domain.DeadlineAfter(t, p.ReviewDeadlineDays, p.location())
}

// EligibilityChecker decides whether a reviewer may review a document's domain.
type EligibilityChecker interface {
	IsEligible(ctx context.Context, reviewerID, documentID uuid.UUID) (bool, error)
}

// AllowAll accepts every reviewer.
type AllowAll struct{}

// IsEligible always returns true.
func (AllowAll) IsEligible(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return true, nil
}

// Notifier receives workflow events after their transaction commits.
// Implementations must not block the caller.
type Notifier interface {
	NotifyAssigned(ctx context.Context, req domain.ReviewRequest)
	NotifyExpired(ctx context.Context, req domain.ReviewRequest)
	NotifySubmitted(ctx context.Context, res domain.ReviewResult)
	NotifyResultApproved(ctx context.Context, res domain.ReviewResult)
	NotifyResultRejected(ctx context.Context, res domain.ReviewResult)
}

// Deps bundles the collaborators shared by the workflow services.
type Deps struct {
	Store       store.Store
	Eligibility EligibilityChecker
	Notifier    Notifier
	Policy      Policy
	Now         func() time.Time
	Logger      *log.Logger
}

func (d Deps) withDefaults() Deps {
	if d.Eligibility == nil {
		d.Eligibility = AllowAll{}
	}
	if d.Notifier == nil {
		d.Notifier = discard{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}
	if d.Logger == nil {
		d.Logger = log.Default()
	}
	if d.Policy.ResponseDeadlineDays == 0 && d.Policy.ReviewDeadlineDays == 0 {
		loc := d.Policy.Location
		reset := d.Policy.ResetDocumentOnPendingExpiry
		d.Policy = DefaultPolicy()
		d.Policy.ResetDocumentOnPendingExpiry = reset
		if loc != nil {
			d.Policy.Location = loc
		}
	}
	return d
}

type discard struct{}

func (discard) NotifyAssigned(context.Context, domain.ReviewRequest)      {}
func (discard) NotifyExpired(context.Context, domain.ReviewRequest)       {}
func (discard) NotifySubmitted(context.Context, domain.ReviewResult)      {}
func (discard) NotifyResultApproved(context.Context, domain.ReviewResult) {}
func (discard) NotifyResultRejected(context.Context, domain.ReviewResult) {}
