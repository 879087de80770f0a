package notify

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/mishasvintus/document_review_service/internal/domain"
)

const (
	defaultQueueSize   = 256
	defaultSendTimeout = 10 * time.Second
)

// Dispatcher queues events and sends them from a background worker.
// When the queue is full the event is dropped and logged.
type Dispatcher struct {
	sink    Sink
	logger  *log.Logger
	now     func() time.Time
	timeout time.Duration

	queue chan Event
	wg    sync.WaitGroup

	mu     sync.RWMutex
	closed bool
}

// NewDispatcher starts a dispatcher that forwards events to sink.
func NewDispatcher(sink Sink, logger *log.Logger, queueSize int) *Dispatcher {
	if logger == nil {
		logger = log.Default()
	}
	if queueSize <= 0 {
		queueSize = defaultQueueSize
	}

	d := &Dispatcher{
		sink:    sink,
		logger:  logger,
		now:     time.Now,
		timeout: defaultSendTimeout,
		queue:   make(chan Event, queueSize),
	}

	d.wg.Add(1)
	go d.run()

	return d
}

func (d *Dispatcher) run() {
	defer d.wg.Done()

	for e := range d.queue {
		ctx, cancel := context.WithTimeout(context.Background(), d.timeout)
		if err := d.sink.Send(ctx, e); err != nil {
			d.logger.Printf("notify: failed to send %s for review request %s: %v", e.Type, e.RequestID, err)
		}
		cancel()
	}
}

// Close stops accepting events and waits for queued ones to be sent.
func (d *Dispatcher) Close() {
	d.mu.Lock()
	if d.closed {
		d.mu.Unlock()
		return
	}
	d.closed = true
	close(d.queue)
	d.mu.Unlock()

	d.wg.Wait()
}

func (d *Dispatcher) enqueue(e Event) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		d.logger.Printf("notify: dispatcher closed, dropping %s for review request %s", e.Type, e.RequestID)
		return
	}

	select {
	case d.queue <- e:
	default:
		d.logger.Printf("notify: queue full, dropping %s for review request %s", e.Type, e.RequestID)
	}
}

// NotifyAssigned tells a reviewer about a new assignment.
func (d *Dispatcher) NotifyAssigned(_ context.Context, req domain.ReviewRequest) {
	d.enqueue(requestEvent(EventAssigned, req, d.now()))
}

// NotifyExpired reports a request that ran past its deadline.
func (d *Dispatcher) NotifyExpired(_ context.Context, req domain.ReviewRequest) {
	d.enqueue(requestEvent(EventExpired, req, d.now()))
}

// NotifySubmitted tells business admins a result awaits approval.
func (d *Dispatcher) NotifySubmitted(_ context.Context, res domain.ReviewResult) {
	d.enqueue(resultEvent(EventSubmitted, res, d.now()))
}

// NotifyResultApproved tells the reviewer their result was accepted.
func (d *Dispatcher) NotifyResultApproved(_ context.Context, res domain.ReviewResult) {
	d.enqueue(resultEvent(EventResultApproved, res, d.now()))
}

// NotifyResultRejected tells the reviewer to revise and resubmit.
func (d *Dispatcher) NotifyResultRejected(_ context.Context, res domain.ReviewResult) {
	d.enqueue(resultEvent(EventResultRejected, res, d.now()))
}

func requestEvent(t EventType, req domain.ReviewRequest, now time.Time) Event {
	return Event{
		Type:       t,
		RequestID:  req.ID,
		DocumentID: req.DocumentID,
		ReviewerID: req.ReviewerID,
		Status:     string(req.Status),
		Reason:     req.RejectionReason,
		OccurredAt: now,
	}
}

func resultEvent(t EventType, res domain.ReviewResult, now time.Time) Event {
	id := res.ID
	return Event{
		Type:       t,
		RequestID:  res.ReviewRequestID,
		ResultID:   &id,
		DocumentID: res.DocumentID,
		ReviewerID: res.ReviewerID,
		Status:     string(res.Status),
		Reason:     res.RejectionReason,
		OccurredAt: now,
	}
}
