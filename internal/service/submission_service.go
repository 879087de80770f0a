package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/google/uuid"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/store"
)

// SubmitInput is a reviewer's report.
type SubmitInput struct {
	Comment        string
	ReportFilePath string
	Decision       domain.Decision
}

func (in SubmitInput) validate() error {
	if strings.TrimSpace(in.Comment) == "" {
		return invalid("comment", "comment is required")
	}
	if strings.TrimSpace(in.ReportFilePath) == "" {
		return invalid("report_file_path", "review report file is required")
	}
	if !in.Decision.IsValid() {
		return invalid("decision", fmt.Sprintf("decision must be %s or %s", domain.DecisionApproved, domain.DecisionRejected))
	}
	return nil
}

// SubmissionService handles reviewers submitting review reports.
type SubmissionService struct {
	deps Deps
}

// NewSubmissionService creates a new submission service.
func NewSubmissionService(deps Deps) *SubmissionService {
	return &SubmissionService{deps: deps.withDefaults()}
}

// Submit records a PENDING review result against an ACCEPTED request.
// The request itself stays ACCEPTED until a business admin approves a result.
func (s *SubmissionService) Submit(ctx context.Context, reviewerID, requestID uuid.UUID, in SubmitInput) (*domain.ReviewResult, error) {
	if err := in.validate(); err != nil {
		return nil, err
	}

	now := s.deps.Now()
	var created *domain.ReviewResult

	err := s.deps.Store.WithinTx(ctx, func(tx store.Tx) error {
		req, err := lockOwnRequest(ctx, tx, reviewerID, requestID)
		if err != nil {
			return err
		}
		if req.Status != domain.RequestAccepted {
			return invalidState("can only submit a review for an accepted request (status %s)", req.Status)
		}
		if req.ReviewOverdue(now) {
			return invalidState("the review deadline for review request %s has passed", requestID)
		}

		unresolved, err := tx.Results().ExistsUnresolved(ctx, requestID)
		if err != nil {
			return err
		}
		if unresolved {
			return conflict("review request %s already has a submission awaiting or holding approval", requestID)
		}

		res := &domain.ReviewResult{
			ID:              uuid.New(),
			ReviewRequestID: req.ID,
			DocumentID:      req.DocumentID,
			ReviewerID:      reviewerID,
			Comment:         strings.TrimSpace(in.Comment),
			ReportFilePath:  strings.TrimSpace(in.ReportFilePath),
			Decision:        in.Decision,
			Status:          domain.ResultPending,
			SubmittedAt:     now,
		}
		if err := tx.Results().Create(ctx, res); err != nil {
			return fmt.Errorf("failed to create review result: %w", err)
		}

		created = res
		return nil
	})
	if err != nil {
		return nil, err
	}

	s.deps.Logger.Printf("review result %s submitted for request %s: decision=%s", created.ID, requestID, created.Decision)
	s.deps.Notifier.NotifySubmitted(ctx, *created)

	return created, nil
}
