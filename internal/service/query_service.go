package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/store"
)

// QueryService serves read-only views of requests and results.
type QueryService struct {
	deps Deps
}

// NewQueryService creates a new query service.
func NewQueryService(deps Deps) *QueryService {
	return &QueryService{deps: deps.withDefaults()}
}

// ListReviewerRequests returns a reviewer's requests, newest first.
// An empty status set returns all of them.
func (s *QueryService) ListReviewerRequests(ctx context.Context, reviewerID uuid.UUID, statuses []domain.RequestStatus, page store.Page) ([]domain.ReviewRequest, error) {
	return s.listRequests(ctx, store.RequestFilter{ReviewerID: reviewerID, Statuses: statuses}, page)
}

// ListDocumentRequests returns every request ever made for a document, newest first.
func (s *QueryService) ListDocumentRequests(ctx context.Context, baID, documentID uuid.UUID, page store.Page) ([]domain.ReviewRequest, error) {
	var out []domain.ReviewRequest
	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		if err := requireBusinessAdmin(ctx, tx, baID); err != nil {
			return err
		}
		if _, err := tx.Documents().Get(ctx, documentID); err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFound("document", documentID)
			}
			return fmt.Errorf("failed to get document: %w", err)
		}
		var err error
		out, err = tx.Requests().ListNewestFirst(ctx, store.RequestFilter{DocumentID: documentID}, page.Normalize())
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListRequests returns all requests, optionally restricted to statuses.
func (s *QueryService) ListRequests(ctx context.Context, baID uuid.UUID, statuses []domain.RequestStatus, page store.Page) ([]domain.ReviewRequest, error) {
	var out []domain.ReviewRequest
	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		if err := requireBusinessAdmin(ctx, tx, baID); err != nil {
			return err
		}
		var err error
		out, err = tx.Requests().ListNewestFirst(ctx, store.RequestFilter{Statuses: statuses}, page.Normalize())
		if err != nil {
			return fmt.Errorf("failed to list review requests: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (s *QueryService) listRequests(ctx context.Context, f store.RequestFilter, page store.Page) ([]domain.ReviewRequest, error) {
	var out []domain.ReviewRequest
	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		var err error
		out, err = tx.Requests().ListNewestFirst(ctx, f, page.Normalize())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list review requests: %w", err)
	}
	return out, nil
}

// ListRequestResults returns a page of a reviewer's submissions for one of
// their requests in submission order.
func (s *QueryService) ListRequestResults(ctx context.Context, reviewerID, requestID uuid.UUID, page store.Page) ([]domain.ReviewResult, error) {
	var out []domain.ReviewResult
	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		req, err := tx.Requests().Get(ctx, requestID)
		if err != nil {
			if errors.Is(err, store.ErrNotFound) {
				return notFound("review request", requestID)
			}
			return fmt.Errorf("failed to get review request: %w", err)
		}
		if !req.BelongsTo(reviewerID) {
			return notFound("review request", requestID)
		}

		out, err = tx.Results().List(ctx, store.ResultFilter{ReviewRequestID: requestID}, false, page.Normalize())
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListResultsByStatus is the business admin queue, oldest submission first.
func (s *QueryService) ListResultsByStatus(ctx context.Context, baID uuid.UUID, statuses []domain.ResultStatus, page store.Page) ([]domain.ReviewResult, error) {
	var out []domain.ReviewResult
	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		if err := requireBusinessAdmin(ctx, tx, baID); err != nil {
			return err
		}
		var err error
		out, err = tx.Results().List(ctx, store.ResultFilter{Statuses: statuses}, false, page.Normalize())
		if err != nil {
			return fmt.Errorf("failed to list review results: %w", err)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ListReviewerResults returns a reviewer's submissions, newest first.
func (s *QueryService) ListReviewerResults(ctx context.Context, reviewerID uuid.UUID, statuses []domain.ResultStatus, page store.Page) ([]domain.ReviewResult, error) {
	var out []domain.ReviewResult
	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		var err error
		out, err = tx.Results().List(ctx, store.ResultFilter{ReviewerID: reviewerID, Statuses: statuses}, true, page.Normalize())
		return err
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list review results: %w", err)
	}
	return out, nil
}

// GetResult returns a single result to a business admin.
func (s *QueryService) GetResult(ctx context.Context, baID, resultID uuid.UUID) (*domain.ReviewResult, error) {
	var out *domain.ReviewResult
	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		if err := requireBusinessAdmin(ctx, tx, baID); err != nil {
			return err
		}
		var err error
		out, err = tx.Results().Get(ctx, resultID)
		if errors.Is(err, store.ErrNotFound) {
			return notFound("review result", resultID)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}
