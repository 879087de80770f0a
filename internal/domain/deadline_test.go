package domain_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/mishasvintus/document_review_service/internal/domain"
)

func TestDeadlineAfter(t *testing.T) {
	loc := time.FixedZone("UTC+7", 7*60*60)

	tests := []struct {
		name     string
		from     time.Time
		days     int
		expected time.Time
	}{
		{
			name:     "late evening rounds to midnight after next day",
			from:     time.Date(2024, 3, 15, 23, 50, 0, 0, loc),
			days:     1,
			expected: time.Date(2024, 3, 17, 0, 0, 0, 0, loc),
		},
		{
			name:     "just after midnight rounds to midnight after next day",
			from:     time.Date(2024, 3, 15, 0, 5, 0, 0, loc),
			days:     1,
			expected: time.Date(2024, 3, 17, 0, 0, 0, 0, loc),
		},
		{
			name:     "exact midnight still rounds to the following midnight",
			from:     time.Date(2024, 3, 15, 0, 0, 0, 0, loc),
			days:     1,
			expected: time.Date(2024, 3, 17, 0, 0, 0, 0, loc),
		},
		{
			name:     "review window of three days",
			from:     time.Date(2024, 3, 15, 14, 30, 0, 0, loc),
			days:     3,
			expected: time.Date(2024, 3, 19, 0, 0, 0, 0, loc),
		},
		{
			name:     "crosses month end",
			from:     time.Date(2024, 2, 28, 9, 0, 0, 0, loc),
			days:     3,
			expected: time.Date(2024, 3, 3, 0, 0, 0, 0, loc),
		},
		{
			name:     "instant in another zone is read in the policy zone",
			from:     time.Date(2024, 3, 15, 18, 0, 0, 0, time.UTC), // 01:00 on the 16th in UTC+7
			days:     1,
			expected: time.Date(2024, 3, 18, 0, 0, 0, 0, loc),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := domain.DeadlineAfter(tt.from, tt.days, loc)
			assert.True(t, tt.expected.Equal(got), "expected %s, got %s", tt.expected, got)
		})
	}
}
