package document

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/repository"
)

// Create inserts a document row unless one with the same id exists.
// Documents are owned by the document service; this is used for seeding.
func Create(ctx context.Context, exec repository.DBTX, d *domain.Document) error {
	query := `
		INSERT INTO documents (id, title, is_premium, status)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := exec.ExecContext(ctx, query, d.ID, d.Title, d.IsPremium, d.Status)
	if err != nil {
		return fmt.Errorf("failed to create document: %w", err)
	}
	return nil
}

// Get retrieves the review-relevant slice of a document.
func Get(ctx context.Context, exec repository.DBTX, id uuid.UUID) (*domain.Document, error) {
	query := `SELECT id, title, is_premium, status FROM documents WHERE id = $1`
	var d domain.Document
	err := exec.QueryRowContext(ctx, query, id).Scan(&d.ID, &d.Title, &d.IsPremium, &d.Status)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return &d, nil
}

// GetStatus returns the status of a document.
func GetStatus(ctx context.Context, exec repository.DBTX, id uuid.UUID) (domain.DocStatus, error) {
	var status domain.DocStatus
	query := `SELECT status FROM documents WHERE id = $1`
	err := exec.QueryRowContext(ctx, query, id).Scan(&status)
	if err != nil {
		if err == sql.ErrNoRows {
			return "", err
		}
		return "", fmt.Errorf("failed to get document status: %w", err)
	}
	return status, nil
}

// SetStatus updates the status of a document.
// Returns sql.ErrNoRows if the document doesn't exist.
func SetStatus(ctx context.Context, exec repository.DBTX, id uuid.UUID, status domain.DocStatus) error {
	query := `UPDATE documents SET status = $1 WHERE id = $2`
	result, err := exec.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update document status: %w", err)
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

// Lock takes a row lock on the document for the rest of the transaction.
func Lock(ctx context.Context, exec repository.DBTX, id uuid.UUID) error {
	var locked uuid.UUID
	query := `SELECT id FROM documents WHERE id = $1 FOR UPDATE`
	err := exec.QueryRowContext(ctx, query, id).Scan(&locked)
	if err != nil {
		if err == sql.ErrNoRows {
			return err
		}
		return fmt.Errorf("failed to lock document: %w", err)
	}
	return nil
}
