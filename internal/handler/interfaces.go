package handler

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/service"
	"github.com/mishasvintus/document_review_service/internal/store"
)

// AssignmentServiceInterface defines the interface for assigning reviewers.
type AssignmentServiceInterface interface {
	Assign(ctx context.Context, baID, documentID, reviewerID uuid.UUID, note string) (*domain.ReviewRequest, error)
	ChangeReviewer(ctx context.Context, baID, documentID, requestID, newReviewerID uuid.UUID, note *string) (*domain.ReviewRequest, error)
}

// ResponseServiceInterface defines the interface for reviewer responses.
type ResponseServiceInterface interface {
	Respond(ctx context.Context, reviewerID, requestID uuid.UUID, accept bool, reason string) (*domain.ReviewRequest, error)
}

// SubmissionServiceInterface defines the interface for submitting review reports.
type SubmissionServiceInterface interface {
	Submit(ctx context.Context, reviewerID, requestID uuid.UUID, in service.SubmitInput) (*domain.ReviewResult, error)
}

// ApprovalServiceInterface defines the interface for deciding on submitted results.
type ApprovalServiceInterface interface {
	Approve(ctx context.Context, baID, resultID uuid.UUID) (*domain.ReviewResult, error)
	Reject(ctx context.Context, baID, resultID uuid.UUID, reason string) (*domain.ReviewResult, error)
}

// ExpirationServiceInterface defines the interface for the manual sweep re-run.
type ExpirationServiceInterface interface {
	RunManual(ctx context.Context, operatorID uuid.UUID, now time.Time) (*service.SweepReport, error)
}

// QueryServiceInterface defines the interface for read-only views.
type QueryServiceInterface interface {
	ListReviewerRequests(ctx context.Context, reviewerID uuid.UUID, statuses []domain.RequestStatus, page store.Page) ([]domain.ReviewRequest, error)
	ListDocumentRequests(ctx context.Context, baID, documentID uuid.UUID, page store.Page) ([]domain.ReviewRequest, error)
	ListRequests(ctx context.Context, baID uuid.UUID, statuses []domain.RequestStatus, page store.Page) ([]domain.ReviewRequest, error)
	ListRequestResults(ctx context.Context, reviewerID, requestID uuid.UUID, page store.Page) ([]domain.ReviewResult, error)
	ListResultsByStatus(ctx context.Context, baID uuid.UUID, statuses []domain.ResultStatus, page store.Page) ([]domain.ReviewResult, error)
	ListReviewerResults(ctx context.Context, reviewerID uuid.UUID, statuses []domain.ResultStatus, page store.Page) ([]domain.ReviewResult, error)
	GetResult(ctx context.Context, baID, resultID uuid.UUID) (*domain.ReviewResult, error)
}
