package scheduler_test

import (
	"bytes"
	"context"
	"log"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mishasvintus/document_review_service/internal/scheduler"
	"github.com/mishasvintus/document_review_service/internal/service"
)

type countingSweeper struct {
	pending  atomic.Int32
	accepted atomic.Int32
}

func (s *countingSweeper) ExpirePending(context.Context, time.Time) ([]service.Transition, error) {
	s.pending.Add(1)
	return nil, nil
}

func (s *countingSweeper) ExpireAccepted(context.Context, time.Time) ([]service.Transition, error) {
	s.accepted.Add(1)
	return nil, assert.AnError
}

func TestScheduler_RunsBothSweeps(t *testing.T) {
	sweeper := &countingSweeper{}
	var logs bytes.Buffer

	s, err := scheduler.New(scheduler.Config{
		PendingSpec:  "* * * * * *",
		AcceptedSpec: "* * * * * *",
		Location:     time.UTC,
	}, sweeper, log.New(&logs, "", 0))
	require.NoError(t, err)

	s.Start()
	require.Eventually(t, func() bool {
		return sweeper.pending.Load() > 0 && sweeper.accepted.Load() > 0
	}, 3*time.Second, 50*time.Millisecond)
	s.Stop()
}

func TestScheduler_InvalidSpec(t *testing.T) {
	tests := []struct {
		name string
		cfg  scheduler.Config
	}{
		{"bad pending spec", scheduler.Config{PendingSpec: "every day", AcceptedSpec: "0 0 0 * * *"}},
		{"bad accepted spec", scheduler.Config{PendingSpec: "0 0 0 * * *", AcceptedSpec: "61 0 0 * * *"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := scheduler.New(tt.cfg, &countingSweeper{}, nil)
			assert.Error(t, err)
		})
	}
}
