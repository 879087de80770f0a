package request

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/repository"
)

const columns = `id, document_id, reviewer_id, assigned_by, status, response_deadline,
	review_deadline, responded_at, rejection_reason, note, created_at, updated_at`

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*domain.ReviewRequest, error) {
	var r domain.ReviewRequest
	err := row.Scan(
		&r.ID,
		&r.DocumentID,
		&r.ReviewerID,
		&r.AssignedByID,
		&r.Status,
		&r.ResponseDeadline,
		&r.ReviewDeadline,
		&r.RespondedAt,
		&r.RejectionReason,
		&r.Note,
		&r.CreatedAt,
		&r.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &r, nil
}

// Create inserts a new review request.
func Create(ctx context.Context, exec repository.DBTX, r *domain.ReviewRequest) error {
	query := `
		INSERT INTO review_requests (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := exec.ExecContext(ctx, query,
		r.ID, r.DocumentID, r.ReviewerID, r.AssignedByID, r.Status, r.ResponseDeadline,
		r.ReviewDeadline, r.RespondedAt, r.RejectionReason, r.Note, r.CreatedAt, r.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create review request: %w", err)
	}
	return nil
}

// Get retrieves a review request by ID.
func Get(ctx context.Context, exec repository.DBTX, id uuid.UUID) (*domain.ReviewRequest, error) {
	query := `SELECT ` + columns + ` FROM review_requests WHERE id = $1`
	r, err := scan(exec.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get review request: %w", err)
	}
	return r, nil
}

// GetForUpdate retrieves a review request and locks its row until the transaction ends.
func GetForUpdate(ctx context.Context, exec repository.DBTX, id uuid.UUID) (*domain.ReviewRequest, error) {
	query := `SELECT ` + columns + ` FROM review_requests WHERE id = $1 FOR UPDATE`
	r, err := scan(exec.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to lock review request: %w", err)
	}
	return r, nil
}

// Update writes every mutable column of a review request.
// Returns sql.ErrNoRows if the request doesn't exist.
func Update(ctx context.Context, exec repository.DBTX, r *domain.ReviewRequest) error {
	query := `
		UPDATE review_requests
		SET reviewer_id = $1, assigned_by = $2, status = $3, response_deadline = $4,
			review_deadline = $5, responded_at = $6, rejection_reason = $7, note = $8,
			updated_at = $9
		WHERE id = $10
	`
	result, err := exec.ExecContext(ctx, query,
		r.ReviewerID, r.AssignedByID, r.Status, r.ResponseDeadline,
		r.ReviewDeadline, r.RespondedAt, r.RejectionReason, r.Note,
		r.UpdatedAt, r.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update review request: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return sql.ErrNoRows
	}

	return nil
}

// ExistsActiveForDocument checks if the document has a PENDING or ACCEPTED request.
func ExistsActiveForDocument(ctx context.Context, exec repository.DBTX, documentID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM review_requests WHERE document_id = $1 AND status = ANY($2))`
	err := exec.QueryRowContext(ctx, query, documentID, pq.Array(statusStrings(domain.ActiveRequestStatuses))).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check active review request: %w", err)
	}
	return exists, nil
}

// ExistsActiveForReviewer checks if the reviewer already holds an active request for the document.
func ExistsActiveForReviewer(ctx context.Context, exec repository.DBTX, documentID, reviewerID uuid.UUID) (bool, error) {
	var exists bool
	query := `
		SELECT EXISTS(
			SELECT 1 FROM review_requests
			WHERE document_id = $1 AND reviewer_id = $2 AND status = ANY($3)
		)
	`
	err := exec.QueryRowContext(ctx, query, documentID, reviewerID, pq.Array(statusStrings(domain.ActiveRequestStatuses))).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check reviewer assignment: %w", err)
	}
	return exists, nil
}

// Filter selects review requests; zero fields are ignored.
type Filter struct {
	DocumentID uuid.UUID
	ReviewerID uuid.UUID
	Statuses   []domain.RequestStatus
}

// ListNewestFirst returns requests matching f, newest first.
func ListNewestFirst(ctx context.Context, exec repository.DBTX, f Filter, limit, offset int) ([]domain.ReviewRequest, error) {
	var where repository.Where
	if f.DocumentID != uuid.Nil {
		where.Add("document_id = ?", f.DocumentID)
	}
	if f.ReviewerID != uuid.Nil {
		where.Add("reviewer_id = ?", f.ReviewerID)
	}
	if len(f.Statuses) > 0 {
		where.Add("status = ANY(?)", pq.Array(statusStrings(f.Statuses)))
	}

	query := `SELECT ` + columns + ` FROM review_requests ` + where.SQL() +
		` ORDER BY created_at DESC, id LIMIT ` + where.Next(limit) + ` OFFSET ` + where.Next(offset)

	rows, err := exec.QueryContext(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list review requests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	requests := make([]domain.ReviewRequest, 0)
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review request: %w", err)
		}
		requests = append(requests, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return requests, nil
}

// ListOverduePending returns ids of PENDING requests whose response deadline is before now.
func ListOverduePending(ctx context.Context, exec repository.DBTX, now time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM review_requests
		WHERE status = $1 AND response_deadline < $2
		ORDER BY response_deadline
	`
	return listIDs(ctx, exec, query, domain.RequestPending, now)
}

// ListOverdueAccepted returns ids of ACCEPTED requests whose review deadline is before now.
func ListOverdueAccepted(ctx context.Context, exec repository.DBTX, now time.Time) ([]uuid.UUID, error) {
	query := `
		SELECT id FROM review_requests
		WHERE status = $1 AND review_deadline IS NOT NULL AND review_deadline < $2
		ORDER BY review_deadline
	`
	return listIDs(ctx, exec, query, domain.RequestAccepted, now)
}

func listIDs(ctx context.Context, exec repository.DBTX, query string, args ...any) ([]uuid.UUID, error) {
	rows, err := exec.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list overdue review requests: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var ids []uuid.UUID
	for rows.Next() {
		var id uuid.UUID
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("failed to scan review request id: %w", err)
		}
		ids = append(ids, id)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return ids, nil
}

func statusStrings(statuses []domain.RequestStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
