// Package memory implements store.Store in process memory.
//
// Every transaction works on a private copy of the data and swaps it in on
// commit while holding the store lock, so transactions are serializable.
package memory

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/mishasvintus/document_review_service/internal/domain"
	"github.com/mishasvintus/document_review_service/internal/store"
)

type requestRow struct {
	seq int64
	domain.ReviewRequest
}

type resultRow struct {
	seq int64
	domain.ReviewResult
}

type state struct {
	seq       int64
	requests  map[uuid.UUID]requestRow
	results   map[uuid.UUID]resultRow
	documents map[uuid.UUID]domain.Document
	users     map[uuid.UUID]domain.User
}

func newState() *state {
	return &state{
		requests:  make(map[uuid.UUID]requestRow),
		results:   make(map[uuid.UUID]resultRow),
		documents: make(map[uuid.UUID]domain.Document),
		users:     make(map[uuid.UUID]domain.User),
	}
}

func (s *state) clone() *state {
	c := &state{
		seq:       s.seq,
		requests:  make(map[uuid.UUID]requestRow, len(s.requests)),
		results:   make(map[uuid.UUID]resultRow, len(s.results)),
		documents: make(map[uuid.UUID]domain.Document, len(s.documents)),
		users:     make(map[uuid.UUID]domain.User, len(s.users)),
	}
	for k, v := range s.requests {
		c.requests[k] = v
	}
	for k, v := range s.results {
		c.results[k] = v
	}
	for k, v := range s.documents {
		c.documents[k] = v
	}
	for k, v := range s.users {
		c.users[k] = v
	}
	return c
}

// Store is an in-memory store.Store.
type Store struct {
	mu   sync.Mutex
	data *state
}

var _ store.Store = (*Store)(nil)

// New creates an empty store.
func New() *Store {
	return &Store{data: newState()}
}

// WithinTx runs fn against a snapshot and commits it when fn returns nil.
func (s *Store) WithinTx(ctx context.Context, fn func(tx store.Tx) error) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	working := s.data.clone()
	if err := fn(&tx{st: working}); err != nil {
		return err
	}
	s.data = working
	return nil
}

// PutDocument inserts or replaces a document.
func (s *Store) PutDocument(d domain.Document) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.documents[d.ID] = d
}

// PutUser inserts or replaces a user.
func (s *Store) PutUser(u domain.User) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.data.users[u.ID] = u
}

type tx struct {
	st *state
}

func (t *tx) Requests() store.Requests   { return requests{t.st} }
func (t *tx) Results() store.Results     { return results{t.st} }
func (t *tx) Documents() store.Documents { return documents{t.st} }
func (t *tx) Users() store.Users         { return users{t.st} }

type requests struct{ st *state }

func (r requests) Create(_ context.Context, req *domain.ReviewRequest) error {
	if _, ok := r.st.requests[req.ID]; ok {
		return fmt.Errorf("review request %s already exists", req.ID)
	}
	if req.Status.IsActive() && r.activeOnDocument(req.DocumentID, req.ID) {
		return store.ErrDuplicateActive
	}
	r.st.seq++
	r.st.requests[req.ID] = requestRow{seq: r.st.seq, ReviewRequest: *req}
	return nil
}

func (r requests) Get(_ context.Context, id uuid.UUID) (*domain.ReviewRequest, error) {
	row, ok := r.st.requests[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	req := row.ReviewRequest
	return &req, nil
}

func (r requests) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.ReviewRequest, error) {
	return r.Get(ctx, id)
}

func (r requests) Update(_ context.Context, req *domain.ReviewRequest) error {
	row, ok := r.st.requests[req.ID]
	if !ok {
		return store.ErrNotFound
	}
	if req.Status.IsActive() && r.activeOnDocument(req.DocumentID, req.ID) {
		return store.ErrDuplicateActive
	}
	row.ReviewRequest = *req
	r.st.requests[req.ID] = row
	return nil
}

func (r requests) activeOnDocument(documentID, except uuid.UUID) bool {
	for id, row := range r.st.requests {
		if id != except && row.DocumentID == documentID && row.Status.IsActive() {
			return true
		}
	}
	return false
}

func (r requests) ExistsActiveForDocument(_ context.Context, documentID uuid.UUID) (bool, error) {
	return r.activeOnDocument(documentID, uuid.Nil), nil
}

func (r requests) ExistsActiveForReviewer(_ context.Context, documentID, reviewerID uuid.UUID) (bool, error) {
	for _, row := range r.st.requests {
		if row.DocumentID == documentID && row.ReviewerID == reviewerID && row.Status.IsActive() {
			return true, nil
		}
	}
	return false, nil
}

func (r requests) ListNewestFirst(_ context.Context, f store.RequestFilter, p store.Page) ([]domain.ReviewRequest, error) {
	rows := make([]requestRow, 0)
	for _, row := range r.st.requests {
		if f.DocumentID != uuid.Nil && row.DocumentID != f.DocumentID {
			continue
		}
		if f.ReviewerID != uuid.Nil && row.ReviewerID != f.ReviewerID {
			continue
		}
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, row.Status) {
			continue
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b requestRow) int {
		if c := b.CreatedAt.Compare(a.CreatedAt); c != 0 {
			return c
		}
		return int(b.seq - a.seq)
	})

	out := make([]domain.ReviewRequest, 0, len(rows))
	for _, row := range paginate(rows, p) {
		out = append(out, row.ReviewRequest)
	}
	return out, nil
}

func (r requests) ListOverdue(_ context.Context, status domain.RequestStatus, now time.Time) ([]uuid.UUID, error) {
	rows := make([]requestRow, 0)
	for _, row := range r.st.requests {
		if row.Status != status {
			continue
		}
		var deadline *time.Time
		switch status {
		case domain.RequestPending:
			deadline = &row.ResponseDeadline
		case domain.RequestAccepted:
			deadline = row.ReviewDeadline
		}
		if deadline != nil && deadline.Before(now) {
			rows = append(rows, row)
		}
	}
	slices.SortFunc(rows, func(a, b requestRow) int { return int(a.seq - b.seq) })

	ids := make([]uuid.UUID, len(rows))
	for i, row := range rows {
		ids[i] = row.ID
	}
	return ids, nil
}

type results struct{ st *state }

func (r results) Create(_ context.Context, res *domain.ReviewResult) error {
	r.st.seq++
	r.st.results[res.ID] = resultRow{seq: r.st.seq, ReviewResult: *res}
	return nil
}

func (r results) Get(_ context.Context, id uuid.UUID) (*domain.ReviewResult, error) {
	row, ok := r.st.results[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	res := row.ReviewResult
	return &res, nil
}

func (r results) GetForUpdate(ctx context.Context, id uuid.UUID) (*domain.ReviewResult, error) {
	return r.Get(ctx, id)
}

func (r results) Update(_ context.Context, res *domain.ReviewResult) error {
	row, ok := r.st.results[res.ID]
	if !ok {
		return store.ErrNotFound
	}
	row.ReviewResult = *res
	r.st.results[res.ID] = row
	return nil
}

func (r results) ExistsUnresolved(_ context.Context, requestID uuid.UUID) (bool, error) {
	for _, row := range r.st.results {
		if row.ReviewRequestID == requestID && row.IsUnresolved() {
			return true, nil
		}
	}
	return false, nil
}

func (r results) List(_ context.Context, f store.ResultFilter, newestFirst bool, p store.Page) ([]domain.ReviewResult, error) {
	rows := make([]resultRow, 0)
	for _, row := range r.st.results {
		if f.ReviewRequestID != uuid.Nil && row.ReviewRequestID != f.ReviewRequestID {
			continue
		}
		if f.ReviewerID != uuid.Nil && row.ReviewerID != f.ReviewerID {
			continue
		}
		if f.DocumentID != uuid.Nil && row.DocumentID != f.DocumentID {
			continue
		}
		if len(f.Statuses) > 0 && !slices.Contains(f.Statuses, row.Status) {
			continue
		}
		rows = append(rows, row)
	}
	slices.SortFunc(rows, func(a, b resultRow) int {
		c := a.SubmittedAt.Compare(b.SubmittedAt)
		if c == 0 {
			c = int(a.seq - b.seq)
		}
		if newestFirst {
			return -c
		}
		return c
	})

	out := make([]domain.ReviewResult, 0, len(rows))
	for _, row := range paginate(rows, p) {
		out = append(out, row.ReviewResult)
	}
	return out, nil
}

type documents struct{ st *state }

func (d documents) Get(_ context.Context, id uuid.UUID) (*domain.Document, error) {
	doc, ok := d.st.documents[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &doc, nil
}

func (d documents) GetStatus(_ context.Context, id uuid.UUID) (domain.DocStatus, error) {
	doc, ok := d.st.documents[id]
	if !ok {
		return "", store.ErrNotFound
	}
	return doc.Status, nil
}

func (d documents) SetStatus(_ context.Context, id uuid.UUID, status domain.DocStatus) error {
	doc, ok := d.st.documents[id]
	if !ok {
		return store.ErrNotFound
	}
	doc.Status = status
	d.st.documents[id] = doc
	return nil
}

func (d documents) Lock(_ context.Context, id uuid.UUID) error {
	if _, ok := d.st.documents[id]; !ok {
		return store.ErrNotFound
	}
	return nil
}

type users struct{ st *state }

func (u users) Get(_ context.Context, id uuid.UUID) (*domain.User, error) {
	user, ok := u.st.users[id]
	if !ok {
		return nil, store.ErrNotFound
	}
	return &user, nil
}

func paginate[T any](rows []T, p store.Page) []T {
	p = p.Normalize()
	if p.Offset >= len(rows) {
		return nil
	}
	end := min(p.Offset+p.Limit, len(rows))
	return rows[p.Offset:end]
}
