package domain_test

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/document_review_service/internal/domain"
)

func TestRequestStatus(t *testing.T) {
	t.Run("active and terminal sets are disjoint", func(t *testing.T) {
		all := []domain.RequestStatus{
			domain.RequestPending,
			domain.RequestAccepted,
			domain.RequestRejected,
			domain.RequestExpired,
			domain.RequestCompleted,
		}
		for _, s := range all {
			assert.True(t, s.IsValid(), s)
			assert.NotEqual(t, s.IsActive(), s.IsTerminal(), s)
		}
		assert.ElementsMatch(t, []domain.RequestStatus{domain.RequestPending, domain.RequestAccepted}, domain.ActiveRequestStatuses)
	})

	t.Run("rejects unknown values", func(t *testing.T) {
		_, err := domain.NewRequestStatus("CANCELLED")
		assert.Error(t, err)

		var s domain.RequestStatus
		assert.Error(t, s.Scan("CANCELLED"))
		assert.Error(t, s.Scan(42))
	})

	t.Run("scans bytes and strings", func(t *testing.T) {
		var s domain.RequestStatus
		require.NoError(t, s.Scan([]byte("ACCEPTED")))
		assert.Equal(t, domain.RequestAccepted, s)

		require.NoError(t, s.Scan("EXPIRED"))
		assert.Equal(t, domain.RequestExpired, s)

		v, err := s.Value()
		require.NoError(t, err)
		assert.Equal(t, "EXPIRED", v)
	})
}

func TestReviewRequest_Deadlines(t *testing.T) {
	deadline := time.Date(2024, 3, 17, 0, 0, 0, 0, time.UTC)
	req := domain.ReviewRequest{ResponseDeadline: deadline}

	assert.False(t, req.ResponseOverdue(deadline.Add(-time.Second)))
	assert.True(t, req.ResponseOverdue(deadline))
	assert.True(t, req.ResponseOverdue(deadline.Add(time.Second)))

	assert.False(t, req.ReviewOverdue(deadline.Add(24*time.Hour)), "no review deadline before acceptance")

	req.ReviewDeadline = &deadline
	assert.False(t, req.ReviewOverdue(deadline))
	assert.True(t, req.ReviewOverdue(deadline.Add(time.Nanosecond)))
}

func TestReviewRequest_BelongsTo(t *testing.T) {
	reviewer := uuid.New()
	req := domain.ReviewRequest{ReviewerID: reviewer}

	assert.True(t, req.BelongsTo(reviewer))
	assert.False(t, req.BelongsTo(uuid.New()))
}

func TestReviewResult_IsUnresolved(t *testing.T) {
	tests := []struct {
		status   domain.ResultStatus
		expected bool
	}{
		{domain.ResultPending, true},
		{domain.ResultApproved, true},
		{domain.ResultRejected, false},
	}

	for _, tt := range tests {
		t.Run(string(tt.status), func(t *testing.T) {
			res := domain.ReviewResult{Status: tt.status}
			assert.Equal(t, tt.expected, res.IsUnresolved())
		})
	}
}

func TestDocStatus(t *testing.T) {
	assert.True(t, domain.DocAIVerified.IsAssignable())
	assert.True(t, domain.DocPendingReview.IsAssignable())
	assert.False(t, domain.DocReviewing.IsAssignable())
	assert.False(t, domain.DocVerified.IsAssignable())

	assert.Equal(t, domain.DocVerified, domain.StatusForDecision(domain.DecisionApproved))
	assert.Equal(t, domain.DocRejected, domain.StatusForDecision(domain.DecisionRejected))

	_, err := domain.NewDocStatus("ARCHIVED")
	assert.Error(t, err)
}

func TestUser_Roles(t *testing.T) {
	tests := []struct {
		name     string
		user     domain.User
		reviewer bool
		admin    bool
	}{
		{"active reviewer", domain.User{Role: domain.RoleReviewer, Status: domain.UserActive}, true, false},
		{"inactive reviewer", domain.User{Role: domain.RoleReviewer, Status: domain.UserInactive}, false, false},
		{"pending reviewer", domain.User{Role: domain.RoleReviewer, Status: domain.UserPendingApproval}, false, false},
		{"business admin", domain.User{Role: domain.RoleBusinessAdmin, Status: domain.UserActive}, false, true},
		{"reader", domain.User{Role: domain.RoleReader, Status: domain.UserActive}, false, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.reviewer, tt.user.IsActiveReviewer())
			assert.Equal(t, tt.admin, tt.user.IsBusinessAdmin())
		})
	}
}
