package result

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/repository"
)

const columns = `id, review_request_id, document_id, reviewer_id, comment, report_file_path,
	decision, status, submitted_at, approved_by, approved_at, rejection_reason`

type scanner interface {
	Scan(dest ...any) error
}

func scan(row scanner) (*domain.ReviewResult, error) {
	var (
		r          domain.ReviewResult
		approvedBy uuid.NullUUID
	)
	err := row.Scan(
		&r.ID,
		&r.ReviewRequestID,
		&r.DocumentID,
		&r.ReviewerID,
		&r.Comment,
		&r.ReportFilePath,
		&r.Decision,
		&r.Status,
		&r.SubmittedAt,
		&approvedBy,
		&r.ApprovedAt,
		&r.RejectionReason,
	)
	if err != nil {
		return nil, err
	}
	if approvedBy.Valid {
		id := approvedBy.UUID
		r.ApprovedByID = &id
	}
	return &r, nil
}

func nullUUID(id *uuid.UUID) uuid.NullUUID {
	if id == nil {
		return uuid.NullUUID{}
	}
	return uuid.NullUUID{UUID: *id, Valid: true}
}

// Create inserts a new review result.
func Create(ctx context.Context, exec repository.DBTX, r *domain.ReviewResult) error {
	query := `
		INSERT INTO review_results (` + columns + `)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12)
	`
	_, err := exec.ExecContext(ctx, query,
		r.ID, r.ReviewRequestID, r.DocumentID, r.ReviewerID, r.Comment, r.ReportFilePath,
		r.Decision, r.Status, r.SubmittedAt, nullUUID(r.ApprovedByID), r.ApprovedAt, r.RejectionReason,
	)
	if err != nil {
		return fmt.Errorf("failed to create review result: %w", err)
	}
	return nil
}

// Get retrieves a review result by ID.
func Get(ctx context.Context, exec repository.DBTX, id uuid.UUID) (*domain.ReviewResult, error) {
	query := `SELECT ` + columns + ` FROM review_results WHERE id = $1`
	r, err := scan(exec.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get review result: %w", err)
	}
	return r, nil
}

// GetForUpdate retrieves a review result and locks its row.
func GetForUpdate(ctx context.Context, exec repository.DBTX, id uuid.UUID) (*domain.ReviewResult, error) {
	query := `SELECT ` + columns + ` FROM review_results WHERE id = $1 FOR UPDATE`
	r, err := scan(exec.QueryRowContext(ctx, query, id))
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to lock review result: %w", err)
	}
	return r, nil
}

// UpdateVerdict records the business admin's verdict on a result.
// submitted_at and the reviewer's content are never rewritten.
func UpdateVerdict(ctx context.Context, exec repository.DBTX, r *domain.ReviewResult) error {
	query := `
		UPDATE review_results
		SET status = $1, approved_by = $2, approved_at = $3, rejection_reason = $4
		WHERE id = $5
	`
	result, err := exec.ExecContext(ctx, query, r.Status, nullUUID(r.ApprovedByID), r.ApprovedAt, r.RejectionReason, r.ID)
	if err != nil {
		return fmt.Errorf("failed to update review result: %w", err)
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

// ExistsUnresolved checks if the request has a result that is PENDING or APPROVED.
func ExistsUnresolved(ctx context.Context, exec repository.DBTX, requestID uuid.UUID) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM review_results WHERE review_request_id = $1 AND status = ANY($2))`
	err := exec.QueryRowContext(ctx, query, requestID, pq.Array(statusStrings(domain.UnresolvedResultStatuses))).Scan(&exists)
	if err != nil {
		return false, fmt.Errorf("failed to check unresolved review result: %w", err)
	}
	return exists, nil
}

// Filter selects review results; zero fields are ignored.
type Filter struct {
	ReviewRequestID uuid.UUID
	ReviewerID      uuid.UUID
	DocumentID      uuid.UUID
	Statuses        []domain.ResultStatus
}

// List returns results matching f ordered by submission time.
func List(ctx context.Context, exec repository.DBTX, f Filter, newestFirst bool, limit, offset int) ([]domain.ReviewResult, error) {
	var where repository.Where
	if f.ReviewRequestID != uuid.Nil {
		where.Add("review_request_id = ?", f.ReviewRequestID)
	}
	if f.ReviewerID != uuid.Nil {
		where.Add("reviewer_id = ?", f.ReviewerID)
	}
	if f.DocumentID != uuid.Nil {
		where.Add("document_id = ?", f.DocumentID)
	}
	if len(f.Statuses) > 0 {
		where.Add("status = ANY(?)", pq.Array(statusStrings(f.Statuses)))
	}

	order := "ASC"
	if newestFirst {
		order = "DESC"
	}

	query := `SELECT ` + columns + ` FROM review_results ` + where.SQL() +
		` ORDER BY submitted_at ` + order + `, id LIMIT ` + where.Next(limit) + ` OFFSET ` + where.Next(offset)

	rows, err := exec.QueryContext(ctx, query, where.Args()...)
	if err != nil {
		return nil, fmt.Errorf("failed to list review results: %w", err)
	}
	defer func() { _ = rows.Close() }()

	results := make([]domain.ReviewResult, 0)
	for rows.Next() {
		r, err := scan(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan review result: %w", err)
		}
		results = append(results, *r)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("rows iteration error: %w", err)
	}

	return results, nil
}

func statusStrings(statuses []domain.ResultStatus) []string {
	out := make([]string, len(statuses))
	for i, s := range statuses {
		out[i] = string(s)
	}
	return out
}
