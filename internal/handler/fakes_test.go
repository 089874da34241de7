package handler

// In-memory store fakes backing the handler tests.  They implement the same
// store interfaces the repositories do, with just enough behavior to
// exercise the workflows: unique-key checks, the single-use code guard and
// refresh-token bookkeeping.

import (
	"context"
	"database/sql"
	"strings"
	"sync"
	"time"

	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/model"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/queue"
	"github.com/sendistephen/dfcu-bank-hr-management-system/internal/repository"
)

type fakeUserStore struct {
	mu    sync.Mutex
	users map[uint64]*model.User
}

func newFakeUserStore(users ...*model.User) *fakeUserStore {
	f := &fakeUserStore{users: map[uint64]*model.User{}}
	for _, u := range users {
		f.users[u.ID] = u
	}
	return f
}

func (f *fakeUserStore) GetByEmail(_ context.Context, email string) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, u := range f.users {
		if u.Email == strings.ToLower(strings.TrimSpace(email)) {
			return *u, nil
		}
	}
	return model.User{}, sql.ErrNoRows
}

func (f *fakeUserStore) GetByID(_ context.Context, id uint64) (model.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		return *u, nil
	}
	return model.User{}, sql.ErrNoRows
}

func (f *fakeUserStore) SetRefreshToken(_ context.Context, id uint64, token string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if u, ok := f.users[id]; ok {
		u.RefreshToken = token
	}
	return nil
}

func (f *fakeUserStore) ClearRefreshToken(_ context.Context, token string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var n int64
	for _, u := range f.users {
		if u.RefreshToken != "" && u.RefreshToken == token {
			u.RefreshToken = ""
			n++
		}
	}
	return n, nil
}

type fakeCodeStore struct {
	mu     sync.Mutex
	nextID uint64
	codes  map[string]*model.StaffCode
}

func newFakeCodeStore() *fakeCodeStore {
	return &fakeCodeStore{codes: map[string]*model.StaffCode{}}
}

func (f *fakeCodeStore) Exists(_ context.Context, code string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.codes[code]
	return ok, nil
}

func (f *fakeCodeStore) Create(_ context.Context, code string, expiresAt time.Time) (model.StaffCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.codes[code]; ok {
		return model.StaffCode{}, repository.ErrDuplicate
	}
	f.nextID++
	c := &model.StaffCode{ID: f.nextID, Code: code, CreatedAt: time.Now().UTC(), ExpiresAt: expiresAt}
	f.codes[code] = c
	return *c, nil
}

func (f *fakeCodeStore) GetByCode(_ context.Context, code string) (model.StaffCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if c, ok := f.codes[code]; ok {
		return *c, nil
	}
	return model.StaffCode{}, sql.ErrNoRows
}

func (f *fakeCodeStore) ListAll(_ context.Context) ([]model.StaffCode, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.StaffCode, 0, len(f.codes))
	for _, c := range f.codes {
		out = append(out, *c)
	}
	return out, nil
}

// seed inserts a code row directly, bypassing the issue flow.
func (f *fakeCodeStore) seed(c model.StaffCode) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.nextID++
	c.ID = f.nextID
	f.codes[c.Code] = &c
}

type fakeStaffStore struct {
	mu     sync.Mutex
	nextID uint64
	staff  map[string]model.Staff
	codes  *fakeCodeStore // RegisterWithCode consumes codes here
}

func newFakeStaffStore(codes *fakeCodeStore) *fakeStaffStore {
	return &fakeStaffStore{staff: map[string]model.Staff{}, codes: codes}
}

func (f *fakeStaffStore) GetByEmployeeNumber(_ context.Context, employeeNumber string) (model.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if s, ok := f.staff[employeeNumber]; ok {
		return s, nil
	}
	return model.Staff{}, sql.ErrNoRows
}

func (f *fakeStaffStore) EmployeeNumberExists(_ context.Context, employeeNumber string) (bool, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	_, ok := f.staff[employeeNumber]
	return ok, nil
}

func (f *fakeStaffStore) ListAll(_ context.Context) ([]model.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]model.Staff, 0, len(f.staff))
	for _, s := range f.staff {
		out = append(out, s)
	}
	return out, nil
}

func (f *fakeStaffStore) RegisterWithCode(_ context.Context, s *model.Staff, codeID uint64, usedAt time.Time) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.staff[s.EmployeeNumber]; ok {
		return repository.ErrDuplicate
	}
	f.codes.mu.Lock()
	defer f.codes.mu.Unlock()
	var code *model.StaffCode
	for _, c := range f.codes.codes {
		if c.ID == codeID {
			code = c
			break
		}
	}
	if code == nil || code.Used {
		return sql.ErrNoRows
	}
	f.nextID++
	s.ID = f.nextID
	s.CreatedAt = usedAt
	s.UpdatedAt = usedAt
	f.staff[s.EmployeeNumber] = *s
	code.Used = true
	t := usedAt
	code.UsedAt = &t
	id := s.ID
	code.StaffID = &id
	return nil
}

func (f *fakeStaffStore) Update(_ context.Context, employeeNumber string, dateOfBirth *time.Time, photoID *string) (model.Staff, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.staff[employeeNumber]
	if !ok {
		return model.Staff{}, sql.ErrNoRows
	}
	if dateOfBirth != nil {
		s.DateOfBirth = *dateOfBirth
	}
	if photoID != nil {
		s.PhotoID = photoID
	}
	f.staff[employeeNumber] = s
	return s, nil
}

type fakePerfStore struct {
	rows []model.ApiPerformance
}

func (f *fakePerfStore) ListRange(_ context.Context, from, to time.Time) ([]model.ApiPerformance, error) {
	var out []model.ApiPerformance
	for _, r := range f.rows {
		if !r.CreatedAt.Before(from) && !r.CreatedAt.After(to) {
			out = append(out, r)
		}
	}
	return out, nil
}

type fakePublisher struct {
	mu     sync.Mutex
	events []queue.StaffRegisteredEvent
	done   chan struct{}
}

func newFakePublisher() *fakePublisher {
	return &fakePublisher{done: make(chan struct{}, 8)}
}

func (f *fakePublisher) PublishStaffRegistered(_ context.Context, ev queue.StaffRegisteredEvent) error {
	f.mu.Lock()
	f.events = append(f.events, ev)
	f.mu.Unlock()
	f.done <- struct{}{}
	return nil
}
