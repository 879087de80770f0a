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

func TestApprovalService_Approve(t *testing.T) {
	t.Run("full lifecycle - approved result verifies the document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mocks.NewMockNotifier(ctrl)
		f := newFixture(t, withNotifier(notifier))

		gomock.InOrder(
			notifier.EXPECT().NotifyAssigned(gomock.Any(), gomock.Any()),
			notifier.EXPECT().NotifySubmitted(gomock.Any(), gomock.Any()),
			notifier.EXPECT().NotifyResultApproved(gomock.Any(), gomock.Any()),
		)

		req := f.assign(t)

		t1 := start.Add(2 * time.Hour)
		f.clock.Set(t1)
		req = f.accept(t, req)
		assert.True(t, midnight(2024, 3, 19).Equal(*req.ReviewDeadline))

		f.clock.Set(t1.Add(24 * time.Hour))
		res := f.submit(t, req, domain.DecisionApproved)

		approvedAt := t1.Add(26 * time.Hour)
		f.clock.Set(approvedAt)
		approved, err := f.approval.Approve(f.ctx, f.admin, res.ID)
		require.NoError(t, err)

		assert.Equal(t, domain.ResultApproved, approved.Status)
		require.NotNil(t, approved.ApprovedByID)
		assert.Equal(t, f.admin, *approved.ApprovedByID)
		require.NotNil(t, approved.ApprovedAt)
		assert.True(t, approvedAt.Equal(*approved.ApprovedAt))

		assert.Equal(t, domain.RequestCompleted, f.request(t, req.ID).Status)
		assert.Equal(t, domain.ResultApproved, f.result(t, res.ID).Status)
		assert.Equal(t, domain.DocVerified, f.docStatus(t, f.document))
	})

	t.Run("resubmission after rejection - second result completes the request", func(t *testing.T) {
		f := newFixture(t)
		req := f.accept(t, f.assign(t))

		f.clock.Set(start.Add(time.Hour))
		first := f.submit(t, req, domain.DecisionApproved)

		f.clock.Set(start.Add(2 * time.Hour))
		_, err := f.approval.Reject(f.ctx, f.admin, first.ID, "insufficient detail")
		require.NoError(t, err)

		f.clock.Set(start.Add(3 * time.Hour))
		second := f.submit(t, req, domain.DecisionApproved)

		f.clock.Set(start.Add(4 * time.Hour))
		_, err = f.approval.Approve(f.ctx, f.admin, second.ID)
		require.NoError(t, err)

		history, err := f.queries.ListRequestResults(f.ctx, f.reviewer, req.ID, storePageAll)
		require.NoError(t, err)
		require.Len(t, history, 2)
		assert.Equal(t, first.ID, history[0].ID)
		assert.Equal(t, domain.ResultRejected, history[0].Status)
		assert.Equal(t, "insufficient detail", history[0].RejectionReason)
		assert.Equal(t, second.ID, history[1].ID)
		assert.Equal(t, domain.ResultApproved, history[1].Status)

		assert.Equal(t, domain.RequestCompleted, f.request(t, req.ID).Status)
		assert.Equal(t, domain.DocVerified, f.docStatus(t, f.document))
	})

	t.Run("rejecting decision - document becomes rejected", func(t *testing.T) {
		f := newFixture(t)
		req := f.accept(t, f.assign(t))
		res := f.submit(t, req, domain.DecisionRejected)

		_, err := f.approval.Approve(f.ctx, f.admin, res.ID)
		require.NoError(t, err)

		assert.Equal(t, domain.DocRejected, f.docStatus(t, f.document))
	})

	t.Run("error - result already decided", func(t *testing.T) {
		f := newFixture(t)
		req := f.accept(t, f.assign(t))
		res := f.submit(t, req, domain.DecisionApproved)
		_, err := f.approval.Approve(f.ctx, f.admin, res.ID)
		require.NoError(t, err)

		_, err = f.approval.Approve(f.ctx, f.admin, res.ID)
		assert.True(t, service.IsNotFound(err), err)

		_, err = f.approval.Reject(f.ctx, f.admin, res.ID, "too late")
		assert.True(t, service.IsNotFound(err), err)
	})

	t.Run("error - request expired before approval", func(t *testing.T) {
		f := newFixture(t)
		req := f.accept(t, f.assign(t))
		res := f.submit(t, req, domain.DecisionApproved)

		_, err := f.expiration.ExpireAccepted(f.ctx, req.ReviewDeadline.Add(time.Minute))
		require.NoError(t, err)

		_, err = f.approval.Approve(f.ctx, f.admin, res.ID)
		assert.True(t, service.IsState(err), err)
		assert.Equal(t, domain.ResultPending, f.result(t, res.ID).Status)
	})

	t.Run("error - caller is not a business admin", func(t *testing.T) {
		f := newFixture(t)
		req := f.accept(t, f.assign(t))
		res := f.submit(t, req, domain.DecisionApproved)

		_, err := f.approval.Approve(f.ctx, f.reviewer, res.ID)
		assert.True(t, service.IsValidation(err), err)
	})

	t.Run("error - unknown result", func(t *testing.T) {
		f := newFixture(t)

		_, err := f.approval.Approve(f.ctx, f.admin, uuid.New())
		assert.True(t, service.IsNotFound(err), err)
	})
}

func TestApprovalService_Reject(t *testing.T) {
	t.Run("success - request stays accepted", func(t *testing.T) {
		f := newFixture(t)
		req := f.accept(t, f.assign(t))
		res := f.submit(t, req, domain.DecisionApproved)

		rejected, err := f.approval.Reject(f.ctx, f.admin, res.ID, "weak argument")
		require.NoError(t, err)

		assert.Equal(t, domain.ResultRejected, rejected.Status)
		assert.Equal(t, "weak argument", rejected.RejectionReason)
		require.NotNil(t, rejected.ApprovedByID)
		assert.Equal(t, f.admin, *rejected.ApprovedByID)

		stored := f.request(t, req.ID)
		assert.Equal(t, domain.RequestAccepted, stored.Status)
		assert.True(t, req.ReviewDeadline.Equal(*stored.ReviewDeadline), "rejection must not extend the review deadline")
		assert.Equal(t, domain.DocReviewing, f.docStatus(t, f.document))
	})

	t.Run("error - reason required", func(t *testing.T) {
		f := newFixture(t)
		req := f.accept(t, f.assign(t))
		res := f.submit(t, req, domain.DecisionApproved)

		_, err := f.approval.Reject(f.ctx, f.admin, res.ID, "   ")
		assert.True(t, service.IsValidation(err), err)
		assert.Equal(t, domain.ResultPending, f.result(t, res.ID).Status)
	})
}
