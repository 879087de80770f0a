// Package postgres adapts the repository query packages to store.Store.
package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/repository"
	"github.com/mishasvintus/document_review_service/internal/repository/document"
	"github.com/mishasvintus/document_review_service/internal/repository/request"
	"github.com/mishasvintus/document_review_service/internal/repository/result"
	"github.com/mishasvintus/document_review_service/internal/repository/user"
	"github.com/mishasvintus/document_review_service/internal/store"
)

// Store runs workflow transactions on PostgreSQL.
type Store struct {
	db *sql.DB
}

var _ store.Store = (*Store)(nil)

// NewStore creates a new PostgreSQL-backed store.
func NewStore(db *sql.DB) *Store {
	return &Store{db: db}
}

// maxAttempts bounds reruns of a transaction aborted by a deadlock or serialization failure.
const maxAttempts = 3

// WithinTx runs fn in a READ COMMITTED transaction. Services lock the rows they
// mutate with GetForUpdate, so preconditions are rechecked under the lock.
// fn may run more than once when PostgreSQL aborts the transaction as retryable.
func (s *Store) WithinTx(ctx context.Context, fn func(tx store.Tx) error) error {
	var err error
	for attempt := 1; attempt <= maxAttempts; attempt++ {
		err = s.runTx(ctx, fn)
		if err == nil || !repository.IsRetryable(err) || ctx.Err() != nil {
			return err
		}
	}
	return err
}

func (s *Store) runTx(ctx context.Context, fn func(tx store.Tx) error) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if err := fn(&txAdapter{exec: tx}); err != nil {
		return err
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}

	return nil
}

// Seed inserts users and documents that are not present yet.
func (s *Store) Seed(ctx context.Context, users []domain.User, docs []domain.Document) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	for i := range users {
		if err := user.Create(ctx, tx, &users[i]); err != nil {
			return err
		}
	}
	for i := range docs {
		if err := document.Create(ctx, tx, &docs[i]); err != nil {
			return err
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit seed: %w", err)
	}
	return nil
}

type txAdapter struct {
	exec repository.DBTX
}

func (t *txAdapter) Requests() store.Requests   { return requests{t.exec} }
func (t *txAdapter) Results() store.Results     { return results{t.exec} }
func (t *txAdapter) Documents() store.Documents { return documents{t.exec} }
func (t *txAdapter) Users() store.Users         { return users{t.exec} }

// translate maps driver-level outcomes onto the store's sentinel errors.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, sql.ErrNoRows):
		return store.ErrNotFound
	case repository.IsActiveRequestViolation(err):
		return fmt.Errorf("%w: %v", store.ErrDuplicateActive, err)
	case repository.IsForeignKeyViolation(err):
		return fmt.Errorf("%w: %v", store.ErrNotFound, err)
	default:
		return err
	}
}

type requests struct{ exec repository.DBTX }

func (r requests) Create(ctx context.Context, req *domain.ReviewRequest) error {
	return translate(request.Create(ctx, r.exec, req))
}

func (r requests) Get(ctx context.Context, id uuid.UUID) (*domain.ReviewRequest, error) {
	req, err := request.Get(ctx, r.exec, id)
	return req, translate(err)
}

func (r requests) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.ReviewRequest, error) {
	req, err := request.GetForUpdate(ctx, r.exec, id)
	return req, translate(err)
}

func (r requests) Update(ctx context.Context, req *domain.ReviewRequest) error {
	return translate(request.Update(ctx, r.exec, req))
}

func (r requests) ExistsActiveForDocument(ctx context.Context, documentID uuid.UUID) (bool, error) {
	return request.ExistsActiveForDocument(ctx, r.exec, documentID)
}

func (r requests) ExistsActiveForReviewer(ctx context.Context, documentID, reviewerID uuid.UUID) (bool, error) {
	return request.ExistsActiveForReviewer(ctx, r.exec, documentID, reviewerID)
}

func (r requests) ListNewestFirst(ctx context.Context, f store.RequestFilter, p store.Page) ([]domain.ReviewRequest, error) {
	p = p.Normalize()
	return request.ListNewestFirst(ctx, r.exec, request.Filter{
		DocumentID: f.DocumentID,
		ReviewerID: f.ReviewerID,
		Statuses:   f.Statuses,
	}, p.Limit, p.Offset)
}

func (r requests) ListOverdue(ctx context.Context, status domain.RequestStatus, now time.Time) ([]uuid.UUID, error) {
	switch status {
	case domain.RequestPending:
		return request.ListOverduePending(ctx, r.exec, now)
	case domain.RequestAccepted:
		return request.ListOverdueAccepted(ctx, r.exec, now)
	default:
		return nil, fmt.Errorf("no deadline applies to status %s", status)
	}
}

type results struct{ exec repository.DBTX }

func (r results) Create(ctx context.Context, res *domain.ReviewResult) error {
	return translate(result.Create(ctx, r.exec, res))
}

func (r results) Get(ctx context.Context, id uuid.UUID) (*domain.ReviewResult, error) {
	res, err := result.Get(ctx, r.exec, id)
	return res, translate(err)
}

func (r results) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.ReviewResult, error) {
	res, err := result.GetForUpdate(ctx, r.exec, id)
	return res, translate(err)
}

func (r results) Update(ctx context.Context, res *domain.ReviewResult) error {
	return translate(result.UpdateVerdict(ctx, r.exec, res))
}

func (r results) ExistsUnresolved(ctx context.Context, requestID uuid.UUID) (bool, error) {
	return result.ExistsUnresolved(ctx, r.exec, requestID)
}

func (r results) List(ctx context.Context, f store.ResultFilter, newestFirst bool, p store.Page) ([]domain.ReviewResult, error) {
	p = p.Normalize()
	return result.List(ctx, r.exec, result.Filter{
		ReviewRequestID: f.ReviewRequestID,
		ReviewerID:      f.ReviewerID,
		DocumentID:      f.DocumentID,
		Statuses:        f.Statuses,
	}, newestFirst, p.Limit, p.Offset)
}

type documents struct{ exec repository.DBTX }

func (d documents) Get(ctx context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, err := document.Get(ctx, d.exec, id)
	return doc, translate(err)
}

func (d documents) GetStatus(ctx context.Context, id uuid.UUID) (domain.DocStatus, error) {
	status, err := document.GetStatus(ctx, d.exec, id)
	return status, translate(err)
}

func (d documents) SetStatus(ctx context.Context, id uuid.UUID, status domain.DocStatus) error {
	return translate(document.SetStatus(ctx, d.exec, id, status))
}

func (d documents) Lock(ctx context.Context, id uuid.UUID) error {
	return translate(document.Lock(ctx, d.exec, id))
}

type users struct{ exec repository.DBTX }

func (u users) Get(ctx context.Context, id uuid.UUID) (*domain.User, error) {
	usr, err := user.Get(ctx, u.exec, id)
	return usr, translate(err)
}
