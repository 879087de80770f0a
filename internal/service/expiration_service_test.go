package service_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/service"
	"github.com/mishasvintus/document_review_service/internal/service/mocks"
)

func TestExpirationService_ExpirePending(t *testing.T) {
	t.Run("expires unanswered request and leaves document untouched", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		notifier := mocks.NewMockNotifier(ctrl)
		f := newFixture(t, withNotifier(notifier))

		notifier.EXPECT().NotifyAssigned(gomock.Any(), gomock.Any())
		notifier.EXPECT().NotifyExpired(gomock.Any(), gomock.Any()).Times(1)

		req := f.assign(t)
		assert.True(t, midnight(2024, 3, 17).Equal(req.ResponseDeadline))

		transitions, err := f.expiration.ExpirePending(f.ctx, req.ResponseDeadline.Add(time.Second))
		require.NoError(t, err)
		require.Len(t, transitions, 1)
		assert.Equal(t, service.Transition{
			RequestID:  req.ID,
			DocumentID: f.document,
			From:       domain.RequestPending,
			To:         domain.RequestExpired,
		}, transitions[0])

		assert.Equal(t, domain.RequestExpired, f.request(t, req.ID).Status)
		assert.Equal(t, domain.DocReviewing, f.docStatus(t, f.document))
	})

	t.Run("policy flag resets the document", func(t *testing.T) {
		f := newFixture(t, withPendingReset())
		req := f.assign(t)

		transitions, err := f.expiration.ExpirePending(f.ctx, req.ResponseDeadline.Add(time.Second))
		require.NoError(t, err)
		require.Len(t, transitions, 1)
		assert.True(t, transitions[0].DocumentReset)
		assert.Equal(t, domain.DocPendingReview, f.docStatus(t, f.document))
	})

	t.Run("deadline equal to now is not yet swept", func(t *testing.T) {
		f := newFixture(t)
		req := f.assign(t)

		transitions, err := f.expiration.ExpirePending(f.ctx, req.ResponseDeadline)
		require.NoError(t, err)
		assert.Empty(t, transitions)
		assert.Equal(t, domain.RequestPending, f.request(t, req.ID).Status)
	})

	t.Run("accepted requests are not touched", func(t *testing.T) {
		f := newFixture(t)
		req := f.accept(t, f.assign(t))

		transitions, err := f.expiration.ExpirePending(f.ctx, req.ResponseDeadline.Add(time.Hour))
		require.NoError(t, err)
		assert.Empty(t, transitions)
		assert.Equal(t, domain.RequestAccepted, f.request(t, req.ID).Status)
	})
}

func TestExpirationService_ExpireAccepted(t *testing.T) {
	t.Run("expires overdue review and frees the document", func(t *testing.T) {
		f := newFixture(t)
		req := f.accept(t, f.assign(t))
		now := req.ReviewDeadline.Add(time.Second)

		transitions, err := f.expiration.ExpireAccepted(f.ctx, now)
		require.NoError(t, err)
		require.Len(t, transitions, 1)
		assert.True(t, transitions[0].DocumentReset)
		assert.Equal(t, domain.RequestAccepted, transitions[0].From)

		assert.Equal(t, domain.RequestExpired, f.request(t, req.ID).Status)
		assert.Equal(t, domain.DocPendingReview, f.docStatus(t, f.document))

		_, err = f.assignment.Assign(f.ctx, f.admin, f.document, f.reviewer2, "")
		assert.NoError(t, err)
	})

	t.Run("idempotent - second run changes nothing", func(t *testing.T) {
		f := newFixture(t)
		req := f.accept(t, f.assign(t))
		now := req.ReviewDeadline.Add(time.Second)

		first, err := f.expiration.ExpireAccepted(f.ctx, now)
		require.NoError(t, err)
		assert.Len(t, first, 1)
		afterFirst := *f.request(t, req.ID)
		docAfterFirst := f.docStatus(t, f.document)

		second, err := f.expiration.ExpireAccepted(f.ctx, now)
		require.NoError(t, err)
		assert.Empty(t, second)
		assert.Equal(t, afterFirst, *f.request(t, req.ID))
		assert.Equal(t, docAfterFirst, f.docStatus(t, f.document))
	})

	t.Run("completed request is left alone", func(t *testing.T) {
		f := newFixture(t)
		req := f.accept(t, f.assign(t))
		res := f.submit(t, req, domain.DecisionApproved)
		_, err := f.approval.Approve(f.ctx, f.admin, res.ID)
		require.NoError(t, err)

		transitions, err := f.expiration.ExpireAccepted(f.ctx, req.ReviewDeadline.Add(time.Hour))
		require.NoError(t, err)
		assert.Empty(t, transitions)
		assert.Equal(t, domain.DocVerified, f.docStatus(t, f.document))
	})
}

func TestExpirationService_RunAll(t *testing.T) {
	f := newFixture(t)

	pending := f.assign(t)

	otherDoc := f.addDocument(domain.DocPendingReview, true)
	accepted, err := f.assignment.Assign(f.ctx, f.admin, otherDoc, f.reviewer2, "")
	require.NoError(t, err)
	accepted = f.accept(t, accepted)

	report, err := f.expiration.RunAll(f.ctx, accepted.ReviewDeadline.Add(time.Second))
	require.NoError(t, err)

	require.Len(t, report.Pending, 1)
	assert.Equal(t, pending.ID, report.Pending[0].RequestID)
	require.Len(t, report.Accepted, 1)
	assert.Equal(t, accepted.ID, report.Accepted[0].RequestID)

	assert.Equal(t, domain.DocReviewing, f.docStatus(t, f.document))
	assert.Equal(t, domain.DocPendingReview, f.docStatus(t, otherDoc))
}

func TestExpirationService_RunManual(t *testing.T) {
	t.Run("success - operator runs both sweeps", func(t *testing.T) {
		f := newFixture(t)
		pending := f.assign(t)
		operator := f.addUser(domain.RoleSystemAdmin, domain.UserActive)

		report, err := f.expiration.RunManual(f.ctx, operator, pending.ResponseDeadline.Add(time.Second))
		require.NoError(t, err)

		require.Len(t, report.Pending, 1)
		assert.Equal(t, pending.ID, report.Pending[0].RequestID)
		assert.Empty(t, report.Accepted)
	})

	t.Run("error - reviewer cannot trigger a run", func(t *testing.T) {
		f := newFixture(t)
		pending := f.assign(t)

		_, err := f.expiration.RunManual(f.ctx, f.reviewer, pending.ResponseDeadline.Add(time.Second))
		assert.True(t, service.IsValidation(err), err)
		assert.Equal(t, domain.RequestPending, f.request(t, pending.ID).Status)
	})
}

// Terminal requests reject every further operation.
func TestTerminalStatesAreFinal(t *testing.T) {
	terminal := map[string]func(t *testing.T, f *fixture) *domain.ReviewRequest{
		"rejected": func(t *testing.T, f *fixture) *domain.ReviewRequest {
			req := f.assign(t)
			_, err := f.response.Respond(f.ctx, f.reviewer, req.ID, false, "no")
			require.NoError(t, err)
			return req
		},
		"expired": func(t *testing.T, f *fixture) *domain.ReviewRequest {
			req := f.assign(t)
			_, err := f.expiration.ExpirePending(f.ctx, req.ResponseDeadline.Add(time.Second))
			require.NoError(t, err)
			return req
		},
		"completed": func(t *testing.T, f *fixture) *domain.ReviewRequest {
			req := f.accept(t, f.assign(t))
			res := f.submit(t, req, domain.DecisionApproved)
			_, err := f.approval.Approve(f.ctx, f.admin, res.ID)
			require.NoError(t, err)
			return req
		},
	}

	for name, setup := range terminal {
		t.Run(name, func(t *testing.T) {
			f := newFixture(t)
			req := setup(t, f)
			before := *f.request(t, req.ID)

			ops := map[string]func() error{
				"accept": func() error {
					_, err := f.response.Respond(f.ctx, f.reviewer, req.ID, true, "")
					return err
				},
				"reject": func() error {
					_, err := f.response.Respond(f.ctx, f.reviewer, req.ID, false, "x")
					return err
				},
				"submit": func() error {
					_, err := f.submission.Submit(f.ctx, f.reviewer, req.ID, service.SubmitInput{
						Comment: "c", ReportFilePath: "r.pdf", Decision: domain.DecisionApproved,
					})
					return err
				},
				"change reviewer": func() error {
					_, err := f.assignment.ChangeReviewer(f.ctx, f.admin, f.document, req.ID, f.reviewer2, nil)
					return err
				},
				"sweep": func() error {
					_, err := f.expiration.RunAll(f.ctx, start.Add(30*24*time.Hour))
					return err
				},
			}

			for opName, op := range ops {
				err := op()
				if opName == "sweep" {
					assert.NoError(t, err)
					continue
				}
				require.Error(t, err, opName)
				assert.True(t, service.IsState(err) || service.IsNotFound(err), "%s: %v", opName, err)
			}

			assert.Equal(t, before, *f.request(t, req.ID))
		})
	}
}
