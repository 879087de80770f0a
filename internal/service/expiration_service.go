package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/store"
)

// Transition records one request moved by a sweep.
type Transition struct {
	RequestID     uuid.UUID            `json:"request_id"`
	DocumentID    uuid.UUID            `json:"document_id"`
	From          domain.RequestStatus `json:"from"`
	To            domain.RequestStatus `json:"to"`
	DocumentReset bool                 `json:"document_reset"`
}

// SweepReport is the outcome of running both sweeps.
type SweepReport struct {
	Pending  []Transition `json:"pending"`
	Accepted []Transition `json:"accepted"`
}

// ExpirationService expires requests whose deadlines have passed.
type ExpirationService struct {
	deps Deps
}

// NewExpirationService creates a new expiration service.
func NewExpirationService(deps Deps) *ExpirationService {
	return &ExpirationService{deps: deps.withDefaults()}
}

// ExpirePending expires PENDING requests whose response deadline is before now.
func (s *ExpirationService) ExpirePending(ctx context.Context, now time.Time) ([]Transition, error) {
	return s.sweep(ctx, domain.RequestPending, now)
}

// ExpireAccepted expires ACCEPTED requests whose review deadline is before now
// and returns their documents to PENDING_REVIEW.
func (s *ExpirationService) ExpireAccepted(ctx context.Context, now time.Time) ([]Transition, error) {
	return s.sweep(ctx, domain.RequestAccepted, now)
}

// RunManual runs both sweeps on behalf of an operator.
func (s *ExpirationService) RunManual(ctx context.Context, operatorID uuid.UUID, now time.Time) (*SweepReport, error) {
	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		return requireOperator(ctx, tx, operatorID)
	})
	if err != nil {
		return nil, err
	}

	report, err := s.RunAll(ctx, now)
	if err != nil {
		return nil, err
	}
	s.deps.Logger.Printf("manual expiration by %s: pending=%d accepted=%d",
		operatorID, len(report.Pending), len(report.Accepted))
	return report, nil
}

// RunAll runs both sweeps concurrently.
func (s *ExpirationService) RunAll(ctx context.Context, now time.Time) (*SweepReport, error) {
	report := &SweepReport{}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		var err error
		report.Pending, err = s.ExpirePending(gctx, now)
		return err
	})
	g.Go(func() error {
		var err error
		report.Accepted, err = s.ExpireAccepted(gctx, now)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	return report, nil
}

// sweep lists candidates once, then expires each in its own transaction so a
// failing row does not hold back the rest.
func (s *ExpirationService) sweep(ctx context.Context, status domain.RequestStatus, now time.Time) ([]Transition, error) {
	var ids []uuid.UUID
	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		var err error
		ids, err = tx.Requests().ListOverdue(ctx, status, now)
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue %s review requests: %w", status, err)
	}

	transitions := make([]Transition, 0, len(ids))
	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return transitions, err
		}

		t, err := s.expireOne(ctx, id, status, now)
		if err != nil {
			s.deps.Logger.Printf("expiration sweep: failed to expire review request %s: %v", id, err)
			continue
		}
		if t == nil {
			continue
		}

		transitions = append(transitions, *t)
	}

	if len(transitions) > 0 {
		s.deps.Logger.Printf("expiration sweep: expired %d %s review request(s)", len(transitions), status)
	}

	return transitions, nil
}

// expireOne returns nil when the request moved on since it was listed.
func (s *ExpirationService) expireOne(ctx context.Context, id uuid.UUID, from domain.RequestStatus, now time.Time) (*Transition, error) {
	var (
		t       *Transition
		expired domain.ReviewRequest
	)

	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		req, err := tx.Requests().GetForUpdate(ctx, id)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return nil
			}
			return err
		}
		if req.Status != from || !overdue(req, now) {
			return nil
		}

		req.Status = domain.RequestExpired
		req.UpdatedAt = now
		if err := tx.Requests().Update(ctx, req); err != nil {
			return err
		}

		reset := false
		if from == domain.RequestAccepted || s.deps.Policy.ResetDocumentOnPendingExpiry {
			reset, err = resetDocument(ctx, tx, req.DocumentID)
			if err != nil {
				return err
			}
		}

		t = &Transition{
			RequestID:     req.ID,
			DocumentID:    req.DocumentID,
			From:          from,
			To:            domain.RequestExpired,
			DocumentReset: reset,
		}
		expired = *req
		return nil
	})
	if err != nil {
		return nil, err
	}

	if t != nil {
		s.deps.Notifier.NotifyExpired(ctx, expired)
	}
	return t, nil
}

func overdue(req *domain.ReviewRequest, now time.Time) bool {
	switch req.Status {
	case domain.RequestPending:
		return req.ResponseDeadline.Before(now)
	case domain.RequestAccepted:
		return req.ReviewOverdue(now)
	default:
		return false
	}
}
