package service

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/store"
)

func requireBusinessAdmin(ctx context.Context, tx store.Tx, id uuid.UUID) error {
	u, err := tx.Users().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("business admin", id)
		}
		return fmt.Errorf("failed to get business admin: %w", err)
	}
	if !u.IsBusinessAdmin() {
		return invalid("business_admin_id", "user is not an active business admin")
	}
	return nil
}

func requireOperator(ctx context.Context, tx store.Tx, id uuid.UUID) error {
	u, err := tx.Users().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("operator", id)
		}
		return fmt.Errorf("failed to get operator: %w", err)
	}
	if !u.IsOperator() {
		return invalid("operator_id", "user is not an active business or system admin")
	}
	return nil
}

func requireActiveReviewer(ctx context.Context, tx store.Tx, id uuid.UUID) error {
	u, err := tx.Users().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return notFound("reviewer", id)
		}
		return fmt.Errorf("failed to get reviewer: %w", err)
	}
	if !u.IsActiveReviewer() {
		return invalid("reviewer_id", "user is not an active reviewer")
	}
	return nil
}

func lockDocument(ctx context.Context, tx store.Tx, id uuid.UUID) (*domain.Document, error) {
	if err := tx.Documents().Lock(ctx, id); err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("document", id)
		}
		return nil, fmt.Errorf("failed to lock document: %w", err)
	}
	doc, err := tx.Documents().Get(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get document: %w", err)
	}
	return doc, nil
}

func lockRequest(ctx context.Context, tx store.Tx, id uuid.UUID) (*domain.ReviewRequest, error) {
	req, err := tx.Requests().GetForUpdate(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, notFound("review request", id)
		}
		return nil, fmt.Errorf("failed to get review request: %w", err)
	}
	return req, nil
}

// lockOwnRequest locks a request and hides it from anyone but its reviewer.
func lockOwnRequest(ctx context.Context, tx store.Tx, reviewerID, id uuid.UUID) (*domain.ReviewRequest, error) {
	req, err := lockRequest(ctx, tx, id)
	if err != nil {
		return nil, err
	}
	if !req.BelongsTo(reviewerID) {
		return nil, notFound("review request", id)
	}
	return req, nil
}
