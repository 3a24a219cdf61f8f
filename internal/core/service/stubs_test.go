package service

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"github.com/sysadmin/sysadmin-api/internal/core/domain"
)

var discardLogger = zerolog.Nop()

// ---------------------------------------------------------------------------
// In-memory user repository
// ---------------------------------------------------------------------------

type stubUserRepo struct {
	mu      sync.Mutex
	nextID  int64
	rows    map[int64]domain.User
	findErr error
	touched map[int64]time.Time
}

func newStubUserRepo() *stubUserRepo {
	return &stubUserRepo{rows: make(map[int64]domain.User), touched: make(map[int64]time.Time)}
}

func (r *stubUserRepo) List(_ context.Context) ([]domain.UserSummary, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	out := make([]domain.UserSummary, 0, len(r.rows))
	for _, u := range r.rows {
		out = append(out, u.Summary())
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out, nil
}

func (r *stubUserRepo) FindByID(_ context.Context, id int64) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	u, ok := r.rows[id]
	if !ok {
		return nil, nil
	}
	return &u, nil
}

func (r *stubUserRepo) FindByUsername(_ context.Context, username string) (*domain.User, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.findErr != nil {
		return nil, r.findErr
	}
	for _, u := range r.rows {
		if u.Username == username {
			clone := u
			return &clone, nil
		}
	}
	return nil, nil
}

func (r *stubUserRepo) Create(_ context.Context, u domain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, existing := range r.rows {
		if existing.Username == u.Username {
			return 0, domain.ErrUsernameTaken
		}
	}
	r.nextID++
	r.rows[r.nextID] = u.WithID(r.nextID)
	return r.nextID, nil
}

func (r *stubUserRepo) Update(_ context.Context, u domain.User) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	existing, ok := r.rows[u.ID]
	if !ok {
		return 0, domain.ErrRecordNotFound
	}
	r.rows[u.ID] = u.WithCreatedAt(existing.CreatedAt)
	return 1, nil
}

func (r *stubUserRepo) Delete(_ context.Context, id int64) (int64, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.rows[id]; !ok {
		return 0, nil
	}
	delete(r.rows, id)
	return 1, nil
}

func (r *stubUserRepo) TouchLastLogin(_ context.Context, id int64, at time.Time) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.touched[id] = at
	if u, ok := r.rows[id]; ok {
		r.rows[id] = u.WithLastLogin(at)
	}
	return nil
}

// ---------------------------------------------------------------------------
// In-memory session store
// ---------------------------------------------------------------------------

type stubSessionStore struct {
	mu       sync.Mutex
	sessions map[string]domain.Session
	saveErr  error
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{sessions: make(map[string]domain.Session)}
}

func (s *stubSessionStore) Save(_ context.Context, session domain.Session) error {
	if s.saveErr != nil {
		return s.saveErr
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sessions[session.ID] = session
	return nil
}

func (s *stubSessionStore) Get(_ context.Context, id string) (*domain.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	session, ok := s.sessions[id]
	if !ok {
		return nil, nil
	}
	return &session, nil
}

func (s *stubSessionStore) Delete(_ context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, id)
	return nil
}
