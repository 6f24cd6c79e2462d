package service

import (
	"context"
	"errors"
	"testing"
	"time"

	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/util"
)

type fakeStatsRepo struct {
	users, entries, points, badges, today, active int64
	top                                           []model.UserPoints
	err                                           error
	calls                                         int
}

func (f *fakeStatsRepo) CountUsers(context.Context) (int64, error) {
	f.calls++
	return f.users, f.err
}
func (f *fakeStatsRepo) CountEntries(context.Context) (int64, error) { return f.entries, f.err }
func (f *fakeStatsRepo) SumPoints(context.Context) (int64, error)    { return f.points, f.err }
func (f *fakeStatsRepo) CountBadges(context.Context) (int64, error)  { return f.badges, f.err }
func (f *fakeStatsRepo) CountEntriesOn(context.Context, string) (int64, error) {
	return f.today, f.err
}
func (f *fakeStatsRepo) CountActiveUsersSince(context.Context, string) (int64, error) {
	return f.active, f.err
}
func (f *fakeStatsRepo) TopUsers(context.Context, int) ([]model.UserPoints, error) {
	return f.top, f.err
}

type memCache struct {
	data map[string][]byte
	ttl  time.Duration
}

func (m *memCache) Get(_ context.Context, key string) ([]byte, error) {
	v, ok := m.data[key]
	if !ok {
		return nil, util.ErrNotFound
	}
	return v, nil
}

func (m *memCache) Set(_ context.Context, key string, value []byte, ttl time.Duration) error {
	if m.data == nil {
		m.data = map[string][]byte{}
	}
	m.data[key] = value
	m.ttl = ttl
	return nil
}

func TestCommunityStatsCached(t *testing.T) {
	repo := &fakeStatsRepo{users: 3, entries: 21}
	cache := &memCache{}
	ledger, _, _ := newTestLedger("2024-05-10")
	svc := NewStatsService(repo, cache, ledger)
	ctx := context.Background()

	first, err := svc.GetCommunityStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if first.TotalUsers != 3 || first.TotalCO2 != 42 || first.TotalWater != 315 || first.TotalTrees != 2 {
		t.Errorf("stats = %+v", first)
	}
	if cache.ttl != communityStatsTTL {
		t.Errorf("ttl = %v", cache.ttl)
	}

	repo.users = 100
	second, err := svc.GetCommunityStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if second.TotalUsers != 3 || repo.calls != 1 {
		t.Errorf("expected cached snapshot, got %+v after %d repo calls", second, repo.calls)
	}

	refreshed, err := svc.RefreshCommunityStats(ctx)
	if err != nil {
		t.Fatal(err)
	}
	if refreshed.TotalUsers != 100 {
		t.Errorf("refresh = %+v", refreshed)
	}
}

func TestCommunityStatsWithoutCache(t *testing.T) {
	repo := &fakeStatsRepo{users: 1, entries: 1}
	ledger, _, _ := newTestLedger("2024-05-10")
	svc := NewStatsService(repo, nil, ledger)

	for i := 0; i < 2; i++ {
		if _, err := svc.GetCommunityStats(context.Background()); err != nil {
			t.Fatal(err)
		}
	}
	if repo.calls != 2 {
		t.Errorf("repo calls = %d, want 2", repo.calls)
	}
}

func TestAdminStats(t *testing.T) {
	repo := &fakeStatsRepo{
		users: 4, entries: 9, points: 150, badges: 3, today: 2, active: 3,
		top: []model.UserPoints{{UserID: 1, Name: "a", Points: 100}},
	}
	ledger, _, _ := newTestLedger("2024-05-10")
	svc := NewStatsService(repo, nil, ledger)

	stats, err := svc.GetAdminStats(context.Background())
	if err != nil {
		t.Fatal(err)
	}
	if stats.TotalUsers != 4 || stats.TotalPoints != 150 || stats.TasksToday != 2 || len(stats.TopUsers) != 1 {
		t.Errorf("stats = %+v", stats)
	}
	if stats.Impact != ComputeImpact(150) {
		t.Errorf("impact = %+v", stats.Impact)
	}

	repo.err = errors.New("db down")
	if _, err := svc.GetAdminStats(context.Background()); !errors.Is(err, util.ErrPersistence) {
		t.Errorf("err = %v, want ErrPersistence", err)
	}
}
