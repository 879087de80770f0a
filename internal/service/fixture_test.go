package service_test

import (
	"context"
	"io"
	"log"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/service"
	"github.com/mishasvintus/document_review_service/internal/store"
	"github.com/mishasvintus/document_review_service/internal/store/memory"
)

// start is a Friday morning; deadlines are computed in UTC.
var start = time.Date(2024, 3, 15, 10, 0, 0, 0, time.UTC)

type clock struct {
	mu  sync.Mutex
	now time.Time
}

func (c *clock) Now() time.Time {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.now
}

func (c *clock) Set(t time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.now = t
}

type fixture struct {
	ctx   context.Context
	store *memory.Store
	clock *clock

	admin     uuid.UUID
	reviewer  uuid.UUID
	reviewer2 uuid.UUID
	document  uuid.UUID

	assignment *service.AssignmentService
	response   *service.ResponseService
	submission *service.SubmissionService
	approval   *service.ApprovalService
	expiration *service.ExpirationService
	queries    *service.QueryService
}

type option func(*service.Deps)

func withNotifier(n service.Notifier) option {
	return func(d *service.Deps) { d.Notifier = n }
}

func withEligibility(e service.EligibilityChecker) option {
	return func(d *service.Deps) { d.Eligibility = e }
}

func withPendingReset() option {
	return func(d *service.Deps) { d.Policy.ResetDocumentOnPendingExpiry = true }
}

func newFixture(t *testing.T, opts ...option) *fixture {
	t.Helper()

	f := &fixture{
		ctx:   context.Background(),
		store: memory.New(),
		clock: &clock{now: start},
	}

	f.admin = f.addUser(domain.RoleBusinessAdmin, domain.UserActive)
	f.reviewer = f.addUser(domain.RoleReviewer, domain.UserActive)
	f.reviewer2 = f.addUser(domain.RoleReviewer, domain.UserActive)
	f.document = f.addDocument(domain.DocAIVerified, true)

	policy := service.DefaultPolicy()
	policy.Location = time.UTC

	deps := service.Deps{
		Store:  f.store,
		Policy: policy,
		Now:    f.clock.Now,
		Logger: log.New(io.Discard, "", 0),
	}
	for _, opt := range opts {
		opt(&deps)
	}

	f.assignment = service.NewAssignmentService(deps)
	f.response = service.NewResponseService(deps)
	f.submission = service.NewSubmissionService(deps)
	f.approval = service.NewApprovalService(deps)
	f.expiration = service.NewExpirationService(deps)
	f.queries = service.NewQueryService(deps)

	return f
}

func (f *fixture) addUser(role domain.Role, status domain.UserStatus) uuid.UUID {
	id := uuid.New()
	f.store.PutUser(domain.User{
		ID:       id,
		FullName: string(role) + " " + id.String()[:8],
		Email:    id.String()[:8] + "@example.com",
		Role:     role,
		Status:   status,
	})
	return id
}

func (f *fixture) addDocument(status domain.DocStatus, premium bool) uuid.UUID {
	id := uuid.New()
	f.store.PutDocument(domain.Document{
		ID:        id,
		Title:     "Document " + id.String()[:8],
		IsPremium: premium,
		Status:    status,
	})
	return id
}

func (f *fixture) assign(t *testing.T) *domain.ReviewRequest {
	t.Helper()
	req, err := f.assignment.Assign(f.ctx, f.admin, f.document, f.reviewer, "please check citations")
	require.NoError(t, err)
	return req
}

func (f *fixture) accept(t *testing.T, req *domain.ReviewRequest) *domain.ReviewRequest {
	t.Helper()
	accepted, err := f.response.Respond(f.ctx, req.ReviewerID, req.ID, true, "")
	require.NoError(t, err)
	return accepted
}

func (f *fixture) submit(t *testing.T, req *domain.ReviewRequest, decision domain.Decision) *domain.ReviewResult {
	t.Helper()
	res, err := f.submission.Submit(f.ctx, req.ReviewerID, req.ID, service.SubmitInput{
		Comment:        "looks good overall",
		ReportFilePath: "reports/" + req.ID.String() + ".pdf",
		Decision:       decision,
	})
	require.NoError(t, err)
	return res
}

func (f *fixture) request(t *testing.T, id uuid.UUID) *domain.ReviewRequest {
	t.Helper()
	var out *domain.ReviewRequest
	require.NoError(t, f.store.WithinTx(f.ctx, func(tx store.Tx) error {
		var err error
		out, err = tx.Requests().Get(f.ctx, id)
		return err
	}))
	return out
}

func (f *fixture) result(t *testing.T, id uuid.UUID) *domain.ReviewResult {
	t.Helper()
	var out *domain.ReviewResult
	require.NoError(t, f.store.WithinTx(f.ctx, func(tx store.Tx) error {
		var err error
		out, err = tx.Results().Get(f.ctx, id)
		return err
	}))
	return out
}

func (f *fixture) docStatus(t *testing.T, id uuid.UUID) domain.DocStatus {
	t.Helper()
	var out domain.DocStatus
	require.NoError(t, f.store.WithinTx(f.ctx, func(tx store.Tx) error {
		var err error
		out, err = tx.Documents().GetStatus(f.ctx, id)
		return err
	}))
	return out
}

func midnight(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

var storePageAll = store.Page{Limit: store.MaxPageLimit}
