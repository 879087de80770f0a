package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/store"
)

// ApprovalService handles business admins approving or rejecting submitted results.
type ApprovalService struct {
	deps Deps
}

// NewApprovalService creates a new approval service.
func NewApprovalService(deps Deps) *ApprovalService {
	return &ApprovalService{deps: deps.withDefaults()}
}

// Approve finalizes a PENDING result: the result becomes APPROVED, its request
// COMPLETED, and the document takes the status matching the reviewer's decision.
func (s *ApprovalService) Approve(ctx context.Context, baID, resultID uuid.UUID) (*domain.ReviewResult, error) {
	now := s.deps.Now()
	var approved *domain.ReviewResult

	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		if err := requireBusinessAdmin(ctx, tx, baID); err != nil {
			return err
		}

		res, req, err := lockPendingResult(ctx, tx, resultID)
		if err != nil {
			return err
		}

		res.Status = domain.ResultApproved
		res.ApprovedByID = &baID
		res.ApprovedAt = &now
		if err := tx.Results().Update(ctx, res); err != nil {
			return fmt.Errorf("failed to approve review result: %w", err)
		}

		req.Status = domain.RequestCompleted
		req.UpdatedAt = now
		if err := tx.Requests().Update(ctx, req); err != nil {
			return fmt.Errorf("failed to complete review request: %w", err)
		}

		if err := tx.Documents().SetStatus(ctx, req.DocumentID, domain.StatusForDecision(res.Decision)); err != nil {
			return fmt.Errorf("failed to update document status: %w", err)
		}

		approved = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Printf("review result %s approved by %s: document %s is now %s",
		resultID, baID, approved.DocumentID, domain.StatusForDecision(approved.Decision))
	s.deps.Notifier.NotifyResultApproved(ctx, *approved)

	return approved, nil
}

// Reject sends a PENDING result back to its reviewer. The request stays
// ACCEPTED so the reviewer can submit again.
func (s *ApprovalService) Reject(ctx context.Context, baID, resultID uuid.UUID, reason string) (*domain.ReviewResult, error) {
	reason = strings.TrimSpace(reason)
	if reason == "" {
		return nil, invalid("reason", "rejection reason is required")
	}

	now := s.deps.Now()
	var rejected *domain.ReviewResult

	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		if err := requireBusinessAdmin(ctx, tx, baID); err != nil {
			return err
		}

		res, _, err := lockPendingResult(ctx, tx, resultID)
		if err != nil {
			return err
		}

		res.Status = domain.ResultRejected
		res.RejectionReason = reason
		res.ApprovedByID = &baID
		res.ApprovedAt = &now
		if err := tx.Results().Update(ctx, res); err != nil {
			return fmt.Errorf("failed to reject review result: %w", err)
		}

		rejected = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Printf("review result %s rejected by %s", resultID, baID)
	s.deps.Notifier.NotifyResultRejected(ctx, *rejected)

	return rejected, nil
}

// lockPendingResult locks a result's request and then the result itself.
// Requests are always locked before results.
func lockPendingResult(ctx context.Context, tx store.Tx, resultID uuid.UUID) (*domain.ReviewResult, *domain.ReviewRequest, error) {
	peek, err := tx.Results().Get(ctx, resultID)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, nil, notFound("review result", resultID)
		}
		return nil, nil, fmt.Errorf("failed to get review result: %w", err)
	}

	req, err := lockRequest(ctx, tx, peek.ReviewRequestID)
	if err != nil {
		return nil, nil, err
	}

	res, err := tx.Results().GetForUpdate(ctx, resultID)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to lock review result: %w", err)
	}
	if res.Status != domain.ResultPending {
		return nil, nil, notFound("pending review result", resultID)
	}
	if req.Status != domain.RequestAccepted {
		return nil, nil, invalidState("review request %s is %s; only results of accepted requests can be decided", req.ID, req.Status)
	}
	return res, req, nil
}
