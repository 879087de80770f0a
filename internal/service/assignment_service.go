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

// AssignmentService handles business-admin assignment of reviewers to documents.
type AssignmentService struct {
	deps Deps
}

// NewAssignmentService creates a new assignment service.
func NewAssignmentService(deps Deps) *AssignmentService {
	return &AssignmentService{deps: deps.withDefaults()}
}

// Assign creates a PENDING review request for the reviewer and marks the document REVIEWING.
func (s *AssignmentService) Assign(ctx context.Context, baID, documentID, reviewerID uuid.UUID, note string) (*domain.ReviewRequest, error) {
	if err := s.checkEligible(ctx, reviewerID, documentID); err != nil {
		return nil, err
	}

	now := s.deps.Now()
	var created *domain.ReviewRequest

	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		if err := requireBusinessAdmin(ctx, tx, baID); err != nil {
			return err
		}

		doc, err := lockDocument(ctx, tx, documentID)
		if err != nil {
			return err
		}
		if !doc.IsPremium {
			return invalid("document_id", "only premium documents can be assigned for review")
		}

		if err := requireActiveReviewer(ctx, tx, reviewerID); err != nil {
			return err
		}

		if err := checkNoActiveRequest(ctx, tx, documentID, reviewerID); err != nil {
			return err
		}

		if !doc.Status.IsAssignable() {
			return invalidState("document %s is %s and cannot be assigned for review", documentID, doc.Status)
		}

		req := &domain.ReviewRequest{
			ID:               uuid.New(),
			DocumentID:       documentID,
			ReviewerID:       reviewerID,
			AssignedByID:     baID,
			Status:           domain.RequestPending,
			ResponseDeadline: s.deps.Policy.ResponseDeadline(now),
			Note:             strings.TrimSpace(note),
			CreatedAt:        now,
			UpdatedAt:        now,
		}
		if err := tx.Requests().Create(ctx, req); err != nil {
			if errors.Is(err, store.ErrDuplicateActive) {
				return conflict("document %s already has an active review request", documentID)
			}
			return fmt.Errorf("failed to create review request: %w", err)
		}

		if err := tx.Documents().SetStatus(ctx, documentID, domain.DocReviewing); err != nil {
			return fmt.Errorf("failed to mark document as reviewing: %w", err)
		}

		created = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Printf("review request %s assigned: document=%s reviewer=%s response_deadline=%s",
		created.ID, documentID, reviewerID, created.ResponseDeadline.Format("2006-01-02 15:04:05"))
	s.deps.Notifier.NotifyAssigned(ctx, *created)

	return created, nil
}

// ChangeReviewer hands a still-PENDING request to another reviewer and restarts its response window.
func (s *AssignmentService) ChangeReviewer(ctx context.Context, baID, documentID, requestID, newReviewerID uuid.UUID, note *string) (*domain.ReviewRequest, error) {
	if err := s.checkEligible(ctx, newReviewerID, documentID); err != nil {
		return nil, err
	}

	now := s.deps.Now()
	var updated *domain.ReviewRequest

	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		if err := requireBusinessAdmin(ctx, tx, baID); err != nil {
			return err
		}

		req, err := lockRequest(ctx, tx, requestID)
		if err != nil {
			return err
		}
		if req.DocumentID != documentID {
			return notFound("review request", requestID)
		}

		if _, err := lockDocument(ctx, tx, documentID); err != nil {
			return err
		}
		if req.Status != domain.RequestPending {
			return invalidState("review request %s is %s; only PENDING requests can change reviewer", requestID, req.Status)
		}
		if req.ReviewerID == newReviewerID {
			return invalid("reviewer_id", "the new reviewer is the same as the current reviewer")
		}

		if err := requireActiveReviewer(ctx, tx, newReviewerID); err != nil {
			return err
		}
		busy, err := tx.Requests().ExistsActiveForReviewer(ctx, documentID, newReviewerID)
		if err != nil {
			return err
		}
		if busy {
			return conflict("reviewer %s already has an active review request for document %s", newReviewerID, documentID)
		}

		req.ReviewerID = newReviewerID
		req.AssignedByID = baID
		req.ResponseDeadline = s.deps.Policy.ResponseDeadline(now)
		req.RespondedAt = nil
		req.UpdatedAt = now
		if note != nil {
			req.Note = strings.TrimSpace(*note)
		}

		if err := tx.Requests().Update(ctx, req); err != nil {
			return fmt.Errorf("failed to change reviewer: %w", err)
		}

		updated = req
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Printf("review request %s reassigned to reviewer %s", updated.ID, newReviewerID)
	s.deps.Notifier.NotifyAssigned(ctx, *updated)

	return updated, nil
}

func (s *AssignmentService) checkEligible(ctx context.Context, reviewerID, documentID uuid.UUID) error {
	ok, err := s.deps.Eligibility.IsEligible(ctx, reviewerID, documentID)
	if err != nil {
		return fmt.Errorf("failed to check reviewer eligibility: %w", err)
	}
	if !ok {
		return invalid("reviewer_id", "reviewer is not eligible for this document")
	}
	return nil
}

// checkNoActiveRequest enforces one active request per (document, reviewer) and per document.
func checkNoActiveRequest(ctx context.Context, tx store.Tx, documentID, reviewerID uuid.UUID) error {
	busy, err := tx.Requests().ExistsActiveForReviewer(ctx, documentID, reviewerID)
	if err != nil {
		return err
	}
	if busy {
		return conflict("reviewer %s already has an active review request for document %s", reviewerID, documentID)
	}

	busy, err = tx.Requests().ExistsActiveForDocument(ctx, documentID)
	if err != nil {
		return err
	}
	if busy {
		return conflict("document %s already has an active review request", documentID)
	}
	return nil
}
