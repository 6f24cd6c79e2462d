package service

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/util"
)

// memLedger keeps entries in memory and enforces the (user, day, task)
// uniqueness the database index provides.
type memLedger struct {
	mu      sync.Mutex
	entries []model.EcoPoint

	insertFn func(context.Context, *model.EcoPoint) (bool, error)
	sumFn    func(context.Context, uint) (int, error)
}

func (m *memLedger) FindEntry(_ context.Context, userID uint, day, taskType string) (*model.EcoPoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.entries {
		e := m.entries[i]
		if e.UserID == userID && e.Date == day && e.TaskType == taskType {
			return &e, nil
		}
	}
	return nil, util.ErrNotFound
}

func (m *memLedger) InsertIfAbsent(ctx context.Context, entry *model.EcoPoint) (bool, error) {
	if m.insertFn != nil {
		return m.insertFn(ctx, entry)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, e := range m.entries {
		if e.UserID == entry.UserID && e.Date == entry.Date && e.TaskType == entry.TaskType {
			return false, nil
		}
	}
	entry.ID = uint(len(m.entries) + 1)
	m.entries = append(m.entries, *entry)
	return true, nil
}

func (m *memLedger) SumPoints(ctx context.Context, userID uint) (int, error) {
	if m.sumFn != nil {
		return m.sumFn(ctx, userID)
	}
	return m.SumPointsSince(ctx, userID, "")
}

func (m *memLedger) SumPointsSince(_ context.Context, userID uint, fromDay string) (int, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := 0
	for _, e := range m.entries {
		if e.UserID == userID && e.Date >= fromDay {
			total += e.Points
		}
	}
	return total, nil
}

func (m *memLedger) CountSince(_ context.Context, userID uint, fromDay string) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var n int64
	for _, e := range m.entries {
		if e.UserID == userID && e.Date >= fromDay {
			n++
		}
	}
	return n, nil
}

func (m *memLedger) FindByUserAndDay(_ context.Context, userID uint, day string) ([]model.EcoPoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.EcoPoint
	for _, e := range m.entries {
		if e.UserID == userID && e.Date == day {
			out = append(out, e)
		}
	}
	return out, nil
}

func (m *memLedger) FindRecent(_ context.Context, userID uint, limit int) ([]model.EcoPoint, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.EcoPoint
	for _, e := range m.entries {
		if e.UserID == userID {
			out = append(out, e)
		}
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].Date > out[j].Date })
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}

func (m *memLedger) CountActiveDays(_ context.Context, userID uint) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	days := map[string]bool{}
	for _, e := range m.entries {
		if e.UserID == userID {
			days[e.Date] = true
		}
	}
	return int64(len(days)), nil
}

type memBadges struct {
	mu     sync.Mutex
	badges []model.Badge

	existsFn func(context.Context, uint, string) (bool, error)
	createFn func(context.Context, *model.Badge) (bool, error)
}

func (m *memBadges) Exists(ctx context.Context, userID uint, name string) (bool, error) {
	if m.existsFn != nil {
		return m.existsFn(ctx, userID, name)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.badges {
		if b.UserID == userID && b.Name == name {
			return true, nil
		}
	}
	return false, nil
}

func (m *memBadges) CreateIfAbsent(ctx context.Context, badge *model.Badge) (bool, error) {
	if m.createFn != nil {
		return m.createFn(ctx, badge)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, b := range m.badges {
		if b.UserID == badge.UserID && b.Name == badge.Name {
			return false, nil
		}
	}
	m.badges = append(m.badges, *badge)
	return true, nil
}

func (m *memBadges) FindByUserID(_ context.Context, userID uint) ([]model.Badge, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	var out []model.Badge
	for _, b := range m.badges {
		if b.UserID == userID {
			out = append(out, b)
		}
	}
	return out, nil
}

func (m *memBadges) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	badges, err := m.FindByUserID(ctx, userID)
	return int64(len(badges)), err
}

type fakeTips struct {
	getAllFn func(context.Context) ([]model.Tip, error)
	createFn func(context.Context, *model.Tip) error
	deleteFn func(context.Context, uint) error
}

func (f *fakeTips) GetAll(ctx context.Context) ([]model.Tip, error) {
	if f.getAllFn != nil {
		return f.getAllFn(ctx)
	}
	return nil, nil
}

func (f *fakeTips) Create(ctx context.Context, tip *model.Tip) error {
	if f.createFn != nil {
		return f.createFn(ctx, tip)
	}
	return nil
}

func (f *fakeTips) Delete(ctx context.Context, id uint) error {
	if f.deleteFn != nil {
		return f.deleteFn(ctx, id)
	}
	return errors.New("deleteFn not provided")
}

type memUsers struct {
	mu    sync.Mutex
	users []model.User
}

func (m *memUsers) Create(_ context.Context, user *model.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	user.ID = uint(len(m.users) + 1)
	m.users = append(m.users, *user)
	return nil
}

func (m *memUsers) FindByID(_ context.Context, id uint) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].ID == id {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, util.ErrNotFound
}

func (m *memUsers) FindByEmail(_ context.Context, email string) (*model.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.users {
		if m.users[i].Email == email {
			u := m.users[i]
			return &u, nil
		}
	}
	return nil, util.ErrNotFound
}

func (m *memUsers) List(_ context.Context, offset, limit int) ([]model.User, int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	total := int64(len(m.users))
	if offset >= len(m.users) {
		return []model.User{}, total, nil
	}
	end := offset + limit
	if end > len(m.users) {
		end = len(m.users)
	}
	return append([]model.User(nil), m.users[offset:end]...), total, nil
}

func (m *memUsers) Count(context.Context) (int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	return int64(len(m.users)), nil
}

type lockerFunc func(context.Context, uint) (func(), error)

func (f lockerFunc) Lock(ctx context.Context, userID uint) (func(), error) {
	return f(ctx, userID)
}

func fixedClock(day string) func() time.Time {
	t, err := time.ParseInLocation(util.DateFormat, day, time.UTC)
	if err != nil {
		panic(err)
	}
	return func() time.Time { return t.Add(12 * time.Hour) }
}

// newTestLedger wires a ledger and badge evaluator over in-memory stores,
// with "today" pinned to day in UTC.
func newTestLedger(day string) (*LedgerService, *memLedger, *memBadges) {
	ledger := &memLedger{}
	badges := &memBadges{}
	badgeService := NewBadgeService(badges, time.UTC)
	badgeService.now = fixedClock(day)
	svc := NewLedgerService(ledger, badgeService, nil, time.UTC)
	svc.now = fixedClock(day)
	return svc, ledger, badges
}
