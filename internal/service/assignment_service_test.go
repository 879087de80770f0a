package service_test

import (
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/service"
	"github.com/mishasvintus/document_review_service/internal/service/mocks"
)

func TestAssignmentService_Assign(t *testing.T) {
	t.Run("success - creates pending request and marks document reviewing", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mocks.NewMockNotifier(ctrl)
		f := newFixture(t, withNotifier(notifier))

		notifier.EXPECT().NotifyAssigned(gomock.Any(), gomock.Any()).Do(
			func(_ any, req domain.ReviewRequest) {
				assert.Equal(t, f.reviewer, req.ReviewerID)
				assert.Equal(t, domain.RequestPending, req.Status)
			})

		req, err := f.assignment.Assign(f.ctx, f.admin, f.document, f.reviewer, "  note  ")
		require.NoError(t, err)

		assert.Equal(t, domain.RequestPending, req.Status)
		assert.Equal(t, f.document, req.DocumentID)
		assert.Equal(t, f.admin, req.AssignedByID)
		assert.Equal(t, "note", req.Note)
		assert.True(t, midnight(2024, 3, 17).Equal(req.ResponseDeadline))
		assert.Nil(t, req.ReviewDeadline)
		assert.Nil(t, req.RespondedAt)
		assert.Equal(t, domain.DocReviewing, f.docStatus(t, f.document))
	})

	t.Run("error - second assignment on the same document conflicts", func(t *testing.T) {
		f := newFixture(t)
		f.assign(t)

		_, err := f.assignment.Assign(f.ctx, f.admin, f.document, f.reviewer2, "")
		assert.True(t, service.IsConflict(err), err)

		_, err = f.assignment.Assign(f.ctx, f.admin, f.document, f.reviewer, "")
		assert.True(t, service.IsConflict(err), err)
	})

	t.Run("error - validation and lookup failures", func(t *testing.T) {
		f := newFixture(t)
		plain := f.addDocument(domain.DocAIVerified, false)
		verified := f.addDocument(domain.DocVerified, true)
		inactive := f.addUser(domain.RoleReviewer, domain.UserInactive)
		reader := f.addUser(domain.RoleReader, domain.UserActive)

		tests := []struct {
			name     string
			ba       uuid.UUID
			document uuid.UUID
			reviewer uuid.UUID
			check    func(error) bool
		}{
			{"unknown business admin", uuid.New(), f.document, f.reviewer, service.IsNotFound},
			{"caller is not a business admin", f.reviewer2, f.document, f.reviewer, service.IsValidation},
			{"unknown document", f.admin, uuid.New(), f.reviewer, service.IsNotFound},
			{"document is not premium", f.admin, plain, f.reviewer, service.IsValidation},
			{"unknown reviewer", f.admin, f.document, uuid.New(), service.IsNotFound},
			{"reviewer is inactive", f.admin, f.document, inactive, service.IsValidation},
			{"user is not a reviewer", f.admin, f.document, reader, service.IsValidation},
			{"document already verified", f.admin, verified, f.reviewer, service.IsState},
		}

		for _, tt := range tests {
			t.Run(tt.name, func(t *testing.T) {
				_, err := f.assignment.Assign(f.ctx, tt.ba, tt.document, tt.reviewer, "")
				require.Error(t, err)
				assert.True(t, tt.check(err), err)
			})
		}

		assert.Equal(t, domain.DocAIVerified, f.docStatus(t, f.document))
	})

	t.Run("error - reviewer not eligible", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		eligibility := mocks.NewMockEligibilityChecker(ctrl)
		f := newFixture(t, withEligibility(eligibility))

		eligibility.EXPECT().IsEligible(gomock.Any(), f.reviewer, f.document).Return(false, nil)

		_, err := f.assignment.Assign(f.ctx, f.admin, f.document, f.reviewer, "")
		assert.True(t, service.IsValidation(err), err)
		assert.Equal(t, domain.DocAIVerified, f.docStatus(t, f.document))
	})

	t.Run("error - eligibility check fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		eligibility := mocks.NewMockEligibilityChecker(ctrl)
		f := newFixture(t, withEligibility(eligibility))

		eligibility.EXPECT().IsEligible(gomock.Any(), f.reviewer, f.document).Return(false, assert.AnError)

		_, err := f.assignment.Assign(f.ctx, f.admin, f.document, f.reviewer, "")
		assert.ErrorIs(t, err, assert.AnError)
	})

	t.Run("concurrent assignments - exactly one wins", func(t *testing.T) {
		f := newFixture(t)

		const workers = 10
		reviewers := make([]uuid.UUID, workers)
		for i := range reviewers {
			reviewers[i] = f.addUser(domain.RoleReviewer, domain.UserActive)
		}

		var (
			wg        sync.WaitGroup
			mu        sync.Mutex
			successes int
			conflicts int
		)
		for _, reviewer := range reviewers {
			wg.Add(1)
			go func(reviewer uuid.UUID) {
				defer wg.Done()
				_, err := f.assignment.Assign(f.ctx, f.admin, f.document, reviewer, "")
				mu.Lock()
				defer mu.Unlock()
				switch {
				case err == nil:
					successes++
				case service.IsConflict(err):
					conflicts++
				default:
					t.Errorf("unexpected error: %v", err)
				}
			}(reviewer)
		}
		wg.Wait()

		assert.Equal(t, 1, successes)
		assert.Equal(t, workers-1, conflicts)

		active, err := f.queries.ListDocumentRequests(f.ctx, f.admin, f.document, storePageAll)
		require.NoError(t, err)
		assert.Len(t, active, 1)
	})
}

func TestAssignmentService_ChangeReviewer(t *testing.T) {
	t.Run("success - hands request to new reviewer and restarts response window", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mocks.NewMockNotifier(ctrl)
		f := newFixture(t, withNotifier(notifier))

		notifier.EXPECT().NotifyAssigned(gomock.Any(), gomock.Any()).Times(2)

		req := f.assign(t)
		f.clock.Set(start.Add(20 * time.Hour)) // Saturday 06:00

		note := "take over please"
		updated, err := f.assignment.ChangeReviewer(f.ctx, f.admin, f.document, req.ID, f.reviewer2, &note)
		require.NoError(t, err)

		assert.Equal(t, req.ID, updated.ID)
		assert.Equal(t, f.reviewer2, updated.ReviewerID)
		assert.Equal(t, domain.RequestPending, updated.Status)
		assert.Equal(t, note, updated.Note)
		assert.True(t, midnight(2024, 3, 18).Equal(updated.ResponseDeadline))

		_, err = f.response.Respond(f.ctx, f.reviewer, req.ID, true, "")
		assert.True(t, service.IsNotFound(err), "previous reviewer must no longer see the request")
	})

	t.Run("error - same reviewer", func(t *testing.T) {
		f := newFixture(t)
		req := f.assign(t)

		_, err := f.assignment.ChangeReviewer(f.ctx, f.admin, f.document, req.ID, f.reviewer, nil)
		assert.True(t, service.IsValidation(err), err)
	})

	t.Run("error - request already accepted", func(t *testing.T) {
		f := newFixture(t)
		req := f.accept(t, f.assign(t))

		_, err := f.assignment.ChangeReviewer(f.ctx, f.admin, f.document, req.ID, f.reviewer2, nil)
		assert.True(t, service.IsState(err), err)
	})

	t.Run("error - request belongs to another document", func(t *testing.T) {
		f := newFixture(t)
		req := f.assign(t)
		other := f.addDocument(domain.DocAIVerified, true)

		_, err := f.assignment.ChangeReviewer(f.ctx, f.admin, other, req.ID, f.reviewer2, nil)
		assert.True(t, service.IsNotFound(err), err)
	})

	t.Run("error - unknown request", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.assignment.ChangeReviewer(f.ctx, f.admin, f.document, uuid.New(), f.reviewer2, nil)
		assert.True(t, service.IsNotFound(err), err)
	})
}
