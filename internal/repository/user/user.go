package user

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/repository"
)

// Create inserts a new user. An existing row with the same id is left as is.
func Create(ctx context.Context, exec repository.DBTX, u *domain.User) error {
	query := `
		INSERT INTO users (id, full_name, email, role, status)
		VALUES ($1, $2, $3, $4, $5)
		ON CONFLICT (id) DO NOTHING
	`
	_, err := exec.ExecContext(ctx, query, u.ID, u.FullName, u.Email, u.Role, u.Status)
	if err != nil {
		return fmt.Errorf("failed to create user: %w", err)
	}
	return nil
}

// Get retrieves a user by ID.
func Get(ctx context.Context, exec repository.DBTX, id uuid.UUID) (*domain.User, error) {
	query := `
		SELECT id, full_name, email, role, status
		FROM users
		WHERE id = $1
	`
	var u domain.User
	err := exec.QueryRowContext(ctx, query, id).Scan(
		&u.ID,
		&u.FullName,
		&u.Email,
		&u.Role,
		&u.Status,
	)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, err
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}
	return &u, nil
}
