package service_test

import (
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

func TestResponseService_Respond(t *testing.T) {
	t.Run("accept - sets review deadline from acceptance time", func(t *testing.T) {
		f := newFixture(t)
		req := f.assign(t)

		acceptedAt := time.Date(2024, 3, 15, 23, 50, 0, 0, time.UTC)
		f.clock.Set(acceptedAt)

		accepted, err := f.response.Respond(f.ctx, f.reviewer, req.ID, true, "")
		require.NoError(t, err)

		assert.Equal(t, domain.RequestAccepted, accepted.Status)
		require.NotNil(t, accepted.RespondedAt)
		assert.True(t, acceptedAt.Equal(*accepted.RespondedAt))
		require.NotNil(t, accepted.ReviewDeadline)
		assert.True(t, midnight(2024, 3, 19).Equal(*accepted.ReviewDeadline))
		assert.Equal(t, domain.DocReviewing, f.docStatus(t, f.document))
	})

	t.Run("reject - frees the document for another assignment", func(t *testing.T) {
		f := newFixture(t)
		req := f.assign(t)

		rejected, err := f.response.Respond(f.ctx, f.reviewer, req.ID, false, " conflict of interest ")
		require.NoError(t, err)

		assert.Equal(t, domain.RequestRejected, rejected.Status)
		assert.Equal(t, "conflict of interest", rejected.RejectionReason)
		assert.Nil(t, rejected.ReviewDeadline)
		assert.Equal(t, domain.DocPendingReview, f.docStatus(t, f.document))

		_, err = f.assignment.Assign(f.ctx, f.admin, f.document, f.reviewer2, "")
		assert.NoError(t, err)
	})

	t.Run("late response - expires the request and fails", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mocks.NewMockNotifier(ctrl)
		f := newFixture(t, withNotifier(notifier))

		notifier.EXPECT().NotifyAssigned(gomock.Any(), gomock.Any())
		notifier.EXPECT().NotifyExpired(gomock.Any(), gomock.Any()).Do(
			func(_ any, req domain.ReviewRequest) {
				assert.Equal(t, domain.RequestExpired, req.Status)
			})

		req := f.assign(t)
		f.clock.Set(req.ResponseDeadline)

		_, err := f.response.Respond(f.ctx, f.reviewer, req.ID, true, "")
		assert.True(t, service.IsState(err), err)

		assert.Equal(t, domain.RequestExpired, f.request(t, req.ID).Status)
		assert.Equal(t, domain.DocReviewing, f.docStatus(t, f.document))
	})

	t.Run("error - request of another reviewer is not found", func(t *testing.T) {
		f := newFixture(t)
		req := f.assign(t)

		_, err := f.response.Respond(f.ctx, f.reviewer2, req.ID, true, "")
		assert.True(t, service.IsNotFound(err), err)
		assert.Equal(t, domain.RequestPending, f.request(t, req.ID).Status)
	})

	t.Run("error - unknown request", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.response.Respond(f.ctx, f.reviewer, uuid.New(), true, "")
		assert.True(t, service.IsNotFound(err), err)
	})

	t.Run("error - responding twice", func(t *testing.T) {
		f := newFixture(t)
		req := f.accept(t, f.assign(t))

		_, err := f.response.Respond(f.ctx, f.reviewer, req.ID, false, "changed my mind")
		assert.True(t, service.IsState(err), err)
		assert.Equal(t, domain.RequestAccepted, f.request(t, req.ID).Status)
	})
}
