package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/store"
)

// ResponseService handles a reviewer accepting or declining an assignment.
type ResponseService struct {
	deps Deps
}

// NewResponseService creates a new response service.
func NewResponseService(deps Deps) *ResponseService {
	return &ResponseService{deps: deps.withDefaults()}
}

// Respond accepts or rejects a PENDING request before its response deadline.
//
// A response that arrives at or after the deadline expires the request in the
// same transaction and fails with a StateError.
func (s *ResponseService) Respond(ctx context.Context, reviewerID, requestID uuid.UUID, accept bool, reason string) (*domain.ReviewRequest, error) {
	now := s.deps.Now()
	var (
		updated *domain.ReviewRequest
		late    bool
	)

	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		req, err := lockOwnRequest(ctx, tx, reviewerID, requestID)
		if err != nil {
			return err
		}
		if req.Status != domain.RequestPending {
			return invalidState("review request %s has already been responded to (status %s)", requestID, req.Status)
		}

		if req.ResponseOverdue(now) {
			req.Status = domain.RequestExpired
			req.UpdatedAt = now
			if err := tx.Requests().Update(ctx, req); err != nil {
				return fmt.Errorf("failed to expire review request: %w", err)
			}
			updated = req
			late = true
			return nil
		}

		req.RespondedAt = &now
		req.UpdatedAt = now

		if accept {
			deadline := s.deps.Policy.ReviewDeadline(now)
			req.Status = domain.RequestAccepted
			req.ReviewDeadline = &deadline
		} else {
			req.Status = domain.RequestRejected
			req.RejectionReason = strings.TrimSpace(reason)
			if _, err := resetDocument(ctx, tx, req.DocumentID); err != nil {
				return err
			}
		}

		if err := tx.Requests().Update(ctx, req); err != nil {
			return fmt.Errorf("failed to update review request: %w", err)
		}

		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	if late {
		s.deps.Logger.Printf("review request %s expired on late response by reviewer %s", requestID, reviewerID)
		s.deps.Notifier.NotifyExpired(ctx, *updated)
		return nil, invalidState("the response deadline for review request %s has passed; the request has expired", requestID)
	}

	s.deps.Logger.Printf("reviewer %s responded to review request %s: status=%s", reviewerID, requestID, updated.Status)
	return updated, nil
}

// resetDocument returns a REVIEWING document to PENDING_REVIEW so it can be reassigned.
func resetDocument(ctx context.Context, tx store.Tx, documentID uuid.UUID) (bool, error) {
	status, err := tx.Documents().GetStatus(ctx, documentID)
	if err != nil {
		return false, fmt.Errorf("failed to get document status: %w", err)
	}
	if status != domain.DocReviewing {
		return false, nil
	}
	if err := tx.Documents().SetStatus(ctx, documentID, domain.DocPendingReview); err != nil {
		return false, fmt.Errorf("failed to reset document status: %w", err)
	}
	return true, nil
}
