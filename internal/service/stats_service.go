package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/util"
	"ecotrack_backend/pkg/logger"

	"go.uber.org/zap"
)

const (
	communityStatsKey = "ecotrack:stats:community"
	communityStatsTTL = 15 * time.Minute
	leaderboardSize   = 10
)

// StatsStore runs site-wide aggregates over the ledger.
type StatsStore interface {
	CountUsers(ctx context.Context) (int64, error)
	CountEntries(ctx context.Context) (int64, error)
	SumPoints(ctx context.Context) (int64, error)
	CountBadges(ctx context.Context) (int64, error)
	CountEntriesOn(ctx context.Context, day string) (int64, error)
	CountActiveUsersSince(ctx context.Context, fromDay string) (int64, error)
	TopUsers(ctx context.Context, limit int) ([]model.UserPoints, error)
}

// StatsCache stores serialized snapshots. Get returns util.ErrNotFound on a miss.
type StatsCache interface {
	Get(ctx context.Context, key string) ([]byte, error)
	Set(ctx context.Context, key string, value []byte, ttl time.Duration) error
}

type CommunityStats struct {
	TotalUsers int64 `json:"totalUsers"`
	CommunityImpact
	UpdatedAt time.Time `json:"updatedAt"`
}

type AdminStats struct {
	TotalUsers        int64              `json:"totalUsers"`
	TotalTasks        int64              `json:"totalTasks"`
	TotalPoints       int64              `json:"totalPoints"`
	TotalBadges       int64              `json:"totalBadges"`
	TasksToday        int64              `json:"tasksToday"`
	ActiveUsersWeekly int64              `json:"activeUsersWeekly"`
	TopUsers          []model.UserPoints `json:"topUsers"`
	Impact            Impact             `json:"impact"`
}

type StatsService struct {
	StatsRepo     StatsStore
	Cache         StatsCache
	LedgerService *LedgerService
	now           func() time.Time
}

// NewStatsService accepts a nil cache; every read then hits the database.
func NewStatsService(statsRepo StatsStore, cache StatsCache, ledgerService *LedgerService) *StatsService {
	return &StatsService{
		StatsRepo:     statsRepo,
		Cache:         cache,
		LedgerService: ledgerService,
		now:           time.Now,
	}
}

// GetCommunityStats serves the cached snapshot, computing it on a miss.
func (s *StatsService) GetCommunityStats(ctx context.Context) (*CommunityStats, error) {
	if s.Cache != nil {
		raw, err := s.Cache.Get(ctx, communityStatsKey)
		if err == nil {
			var stats CommunityStats
			if err := json.Unmarshal(raw, &stats); err == nil {
				return &stats, nil
			}
		} else if !errors.Is(err, util.ErrNotFound) {
			logger.L().Warn("Community stats cache read failed", zap.Error(err))
		}
	}
	return s.RefreshCommunityStats(ctx)
}

// RefreshCommunityStats recomputes the snapshot and stores it in the cache.
func (s *StatsService) RefreshCommunityStats(ctx context.Context) (*CommunityStats, error) {
	users, err := s.StatsRepo.CountUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count users: %w", util.ErrPersistence, err)
	}
	tasks, err := s.StatsRepo.CountEntries(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: count entries: %w", util.ErrPersistence, err)
	}

	stats := &CommunityStats{
		TotalUsers:      users,
		CommunityImpact: ComputeCommunityImpact(tasks),
		UpdatedAt:       s.now(),
	}

	if s.Cache != nil {
		raw, err := json.Marshal(stats)
		if err == nil {
			err = s.Cache.Set(ctx, communityStatsKey, raw, communityStatsTTL)
		}
		if err != nil {
			logger.L().Warn("Community stats cache write failed", zap.Error(err))
		}
	}
	return stats, nil
}

func (s *StatsService) GetAdminStats(ctx context.Context) (*AdminStats, error) {
	var (
		stats AdminStats
		err   error
	)

	today := s.LedgerService.Today()
	weekAgo, err := util.ShiftDay(today, -weekDays)
	if err != nil {
		return nil, err
	}

	if stats.TotalUsers, err = s.StatsRepo.CountUsers(ctx); err != nil {
		return nil, fmt.Errorf("%w: count users: %w", util.ErrPersistence, err)
	}
	if stats.TotalTasks, err = s.StatsRepo.CountEntries(ctx); err != nil {
		return nil, fmt.Errorf("%w: count entries: %w", util.ErrPersistence, err)
	}
	if stats.TotalPoints, err = s.StatsRepo.SumPoints(ctx); err != nil {
		return nil, fmt.Errorf("%w: sum points: %w", util.ErrPersistence, err)
	}
	if stats.TotalBadges, err = s.StatsRepo.CountBadges(ctx); err != nil {
		return nil, fmt.Errorf("%w: count badges: %w", util.ErrPersistence, err)
	}
	if stats.TasksToday, err = s.StatsRepo.CountEntriesOn(ctx, today); err != nil {
		return nil, fmt.Errorf("%w: count today's entries: %w", util.ErrPersistence, err)
	}
	if stats.ActiveUsersWeekly, err = s.StatsRepo.CountActiveUsersSince(ctx, weekAgo); err != nil {
		return nil, fmt.Errorf("%w: count active users: %w", util.ErrPersistence, err)
	}
	if stats.TopUsers, err = s.StatsRepo.TopUsers(ctx, leaderboardSize); err != nil {
		return nil, fmt.Errorf("%w: leaderboard: %w", util.ErrPersistence, err)
	}

	stats.Impact = ComputeImpact(int(stats.TotalPoints))
	return &stats, nil
}
