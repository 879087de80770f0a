// Package store defines the transactional persistence contract of the review workflow.
package store

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"

	"github.com/mishasvintus/document_review_service/internal/domain"
)

// ErrNotFound is returned by lookups that match no row.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateActive is returned when an insert or update would leave two active
// review requests on the same document.
var ErrDuplicateActive = errors.New("document already has an active review request")

// Page bounds a list query.
type Page struct {
	Limit  int
	Offset int
}

// Default and maximum page sizes.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Normalize clamps the page to sane bounds.
func (p Page) Normalize() Page {
	if p.Limit <= 0 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	if p.Offset < 0 {
		p.Offset = 0
	}
	return p
}

// RequestFilter selects review requests. Zero fields match everything.
type RequestFilter struct {
	DocumentID uuid.UUID
	ReviewerID uuid.UUID
	Statuses   []domain.RequestStatus
}

// ResultFilter selects review results. Zero fields match everything.
type ResultFilter struct {
	ReviewRequestID uuid.UUID
	ReviewerID      uuid.UUID
	DocumentID      uuid.UUID
	Statuses        []domain.ResultStatus
}

// Requests accesses review requests inside a transaction.
type Requests interface {
	Create(ctx context.Context, r *domain.ReviewRequest) error
	Get(ctx context.Context, id uuid.UUID) (*domain.ReviewRequest, error)
	// GetForUpdate reads the request and holds it against concurrent writers
	// until the transaction ends.
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.ReviewRequest, error)
	Update(ctx context.Context, r *domain.ReviewRequest) error
	ExistsActiveForDocument(ctx context.Context, documentID uuid.UUID) (bool, error)
	ExistsActiveForReviewer(ctx context.Context, documentID, reviewerID uuid.UUID) (bool, error)
	// ListNewestFirst returns matching requests ordered by creation time, newest first.
	ListNewestFirst(ctx context.Context, f RequestFilter, p Page) ([]domain.ReviewRequest, error)
	// ListOverdue returns ids of requests in status whose deadline column is before now.
	// PENDING requests are matched on response_deadline, ACCEPTED on review_deadline.
	ListOverdue(ctx context.Context, status domain.RequestStatus, now time.Time) ([]uuid.UUID, error)
}

// Results accesses review results inside a transaction.
type Results interface {
	Create(ctx context.Context, r *domain.ReviewResult) error
	Get(ctx context.Context, id uuid.UUID) (*domain.ReviewResult, error)
	GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.ReviewResult, error)
	Update(ctx context.Context, r *domain.ReviewResult) error
	ExistsUnresolved(ctx context.Context, requestID uuid.UUID) (bool, error)
	// List returns matching results ordered by submission time; oldest first
	// unless newestFirst is set.
	List(ctx context.Context, f ResultFilter, newestFirst bool, p Page) ([]domain.ReviewResult, error)
}

// Documents is the document status gateway.
type Documents interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.Document, error)
	GetStatus(ctx context.Context, id uuid.UUID) (domain.DocStatus, error)
	SetStatus(ctx context.Context, id uuid.UUID, status domain.DocStatus) error
	// Lock holds the document row so that assignments to it serialize.
	Lock(ctx context.Context, id uuid.UUID) error
}

// Users resolves accounts referenced by the workflow.
type Users interface {
	Get(ctx context.Context, id uuid.UUID) (*domain.User, error)
}

// Tx is the unit of work handed to service code.
type Tx interface {
	Requests() Requests
	Results() Results
	Documents() Documents
	Users() Users
}

// Store runs work atomically. fn's changes commit when it returns nil and are
// discarded otherwise.
type Store interface {
	WithinTx(ctx context.Context, fn func(tx Tx) error) error
}
