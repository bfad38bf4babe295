package service

import (
	"context"
	"sync"
	"time"

	"todo_backend/internal/models"
	"todo_backend/internal/repository"
)

// mockAuthRepo is a lightweight in-test mock for repository.Authorization.
type mockAuthRepo struct {
	CreateFn     func(u models.User) error
	GetByEmailFn func(email string) (*models.User, error)
	GetByIDFn    func(id string) (*models.User, error)

	created  []models.User
	getCalls []string
}

func (m *mockAuthRepo) Create(ctx context.Context, u models.User) error {
	m.created = append(m.created, u)
	return m.CreateFn(u)
}

func (m *mockAuthRepo) GetByEmail(ctx context.Context, email string) (*models.User, error) {
	m.getCalls = append(m.getCalls, email)
	return m.GetByEmailFn(email)
}

func (m *mockAuthRepo) GetByID(ctx context.Context, id string) (*models.User, error) {
	return m.GetByIDFn(id)
}

// mockTodoRepo records calls and returns canned results.
type mockTodoRepo struct {
	createErr error
	updateRes models.Todo
	updateErr error
	deleteErr error
	listRes   []models.Todo
	listErr   error
	stats     models.TodoStats
	statsErr  error

	created     []models.Todo
	lastUserID  string
	lastID      string
	lastPatch   repository.TodoPatch
	updateCalls int
	deleteCalls int
}

func (m *mockTodoRepo) Create(ctx context.Context, t models.Todo) error {
	m.created = append(m.created, t)
	return m.createErr
}

func (m *mockTodoRepo) Update(ctx context.Context, userID, id string, p repository.TodoPatch) (models.Todo, error) {
	m.updateCalls++
	m.lastUserID, m.lastID, m.lastPatch = userID, id, p
	return m.updateRes, m.updateErr
}

func (m *mockTodoRepo) Delete(ctx context.Context, userID, id string) error {
	m.deleteCalls++
	m.lastUserID, m.lastID = userID, id
	return m.deleteErr
}

func (m *mockTodoRepo) ListByUser(ctx context.Context, userID string) ([]models.Todo, error) {
	m.lastUserID = userID
	return m.listRes, m.listErr
}

func (m *mockTodoRepo) Stats(ctx context.Context, userID string) (models.TodoStats, error) {
	m.lastUserID = userID
	return m.stats, m.statsErr
}

// fakeEventRepo satisfies repository.EventRepo and captures inputs.
type fakeEventRepo struct {
	mu sync.Mutex

	gotUserID string
	gotFrom   time.Time
	gotTo     time.Time
	gotType   string

	events    []models.ActivityEvent
	err       error
	appendErr error
	deleted   int64
	deleteErr error

	appended []models.ActivityEvent
	cutoffs  []time.Time
	calls    int
}

func (f *fakeEventRepo) Append(ctx context.Context, e models.ActivityEvent) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.appended = append(f.appended, e)
	return f.appendErr
}

func (f *fakeEventRepo) List(ctx context.Context, userID string, from, to time.Time, typ string) ([]models.ActivityEvent, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls++
	f.gotUserID = userID
	f.gotFrom = from
	f.gotTo = to
	f.gotType = typ
	return f.events, f.err
}

func (f *fakeEventRepo) DeleteBefore(ctx context.Context, cutoff time.Time) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.cutoffs = append(f.cutoffs, cutoff)
	return f.deleted, f.deleteErr
}

func (f *fakeEventRepo) appendedTypes() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]string, 0, len(f.appended))
	for _, e := range f.appended {
		out = append(out, e.Type)
	}
	return out
}

func (f *fakeEventRepo) cutoffCount() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.cutoffs)
}
