package service

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"
	"time"

	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/util"
	"ecotrack_backend/pkg/logger"
	"ecotrack_backend/pkg/monitoring"
	"ecotrack_backend/pkg/tracing"

	"go.opentelemetry.io/otel/attribute"
	"go.uber.org/zap"
)

// LedgerStore is the persistence behind the points ledger. Days are
// YYYY-MM-DD strings.
type LedgerStore interface {
	FindEntry(ctx context.Context, userID uint, day, taskType string) (*model.EcoPoint, error)
	// InsertIfAbsent writes entry unless (user, day, task type) already
	// exists, as a single statement. It reports whether a row was written.
	InsertIfAbsent(ctx context.Context, entry *model.EcoPoint) (bool, error)
	SumPoints(ctx context.Context, userID uint) (int, error)
	SumPointsSince(ctx context.Context, userID uint, fromDay string) (int, error)
	CountSince(ctx context.Context, userID uint, fromDay string) (int64, error)
	FindByUserAndDay(ctx context.Context, userID uint, day string) ([]model.EcoPoint, error)
	FindRecent(ctx context.Context, userID uint, limit int) ([]model.EcoPoint, error)
	CountActiveDays(ctx context.Context, userID uint) (int64, error)
}

// UserLocker serializes write paths per user.
type UserLocker interface {
	Lock(ctx context.Context, userID uint) (unlock func(), err error)
}

type noopLocker struct{}

func (noopLocker) Lock(context.Context, uint) (func(), error) { return func() {}, nil }

type CompleteResult struct {
	TaskID       int      `json:"taskId"`
	Date         string   `json:"date"`
	Points       int      `json:"points"`
	TotalPoints  int      `json:"totalPoints"`
	BadgeEarned  string   `json:"badgeEarned,omitempty"`
	BadgesEarned []string `json:"badgesEarned,omitempty"`
}

type LedgerService struct {
	LedgerRepo   LedgerStore
	BadgeService *BadgeService
	Locker       UserLocker
	loc          atomic.Pointer[time.Location]
	now          func() time.Time
}

// NewLedgerService accepts a nil locker when no lock backend is configured.
func NewLedgerService(ledgerRepo LedgerStore, badgeService *BadgeService, locker UserLocker, loc *time.Location) *LedgerService {
	if loc == nil {
		loc = time.Local
	}
	if locker == nil {
		locker = noopLocker{}
	}
	s := &LedgerService{
		LedgerRepo:   ledgerRepo,
		BadgeService: badgeService,
		Locker:       locker,
		now:          time.Now,
	}
	s.loc.Store(loc)
	return s
}

// SetLocation changes the zone used to cut calendar days, for the ledger
// and the badge evaluator alike.
func (s *LedgerService) SetLocation(loc *time.Location) {
	if loc == nil {
		return
	}
	s.loc.Store(loc)
	if s.BadgeService != nil {
		s.BadgeService.loc.Store(loc)
	}
}

// Today is the current calendar day in the ledger timezone.
func (s *LedgerService) Today() string {
	return util.DayString(s.now(), s.loc.Load())
}

// CompleteTask awards points for taskID on day, at most once per
// (user, task, day), then re-evaluates badges against the new total.
func (s *LedgerService) CompleteTask(ctx context.Context, userID uint, taskID, points int, day string) (*CompleteResult, error) {
	ctx, span := tracing.StartSpan(ctx, "LedgerService.CompleteTask")
	defer span.End()
	span.SetAttributes(attribute.Int("user.id", int(userID)), attribute.Int("task.id", taskID))

	if points <= 0 {
		return nil, util.ErrInvalidPoints
	}

	tag := TaskTag(taskID)

	unlock, err := s.Locker.Lock(ctx, userID)
	if err != nil {
		monitoring.ObserveTaskCompletion(tag, "busy")
		return nil, err
	}
	defer unlock()

	entry := &model.EcoPoint{
		UserID:      userID,
		Date:        day,
		TaskType:    tag,
		Points:      points,
		Description: DescribeTag(tag).Name,
	}
	created, err := s.LedgerRepo.InsertIfAbsent(ctx, entry)
	if err != nil {
		monitoring.ObserveTaskCompletion(tag, "error")
		span.RecordError(err)
		return nil, fmt.Errorf("%w: insert ledger entry: %w", util.ErrPersistence, err)
	}
	if !created {
		monitoring.ObserveTaskCompletion(tag, "duplicate")
		return nil, util.ErrAlreadyCompletedToday
	}

	total, err := s.LedgerRepo.SumPoints(ctx, userID)
	if err != nil {
		monitoring.ObserveTaskCompletion(tag, "error")
		return nil, fmt.Errorf("%w: sum points: %w", util.ErrPersistence, err)
	}

	grant, err := s.BadgeService.AssignBadges(ctx, userID, total)
	if err != nil {
		monitoring.ObserveTaskCompletion(tag, "error")
		return nil, err
	}

	monitoring.ObserveTaskCompletion(tag, "ok")
	logger.L().Info("Task completed",
		zap.Uint("user_id", userID),
		zap.String("task", tag),
		zap.String("day", day),
		zap.Int("points", points),
		zap.Int("total_points", total),
	)

	return &CompleteResult{
		TaskID:       taskID,
		Date:         day,
		Points:       points,
		TotalPoints:  total,
		BadgeEarned:  grant.Name,
		BadgesEarned: grant.All,
	}, nil
}

// CompleteTaskToday is CompleteTask for the current ledger day.
func (s *LedgerService) CompleteTaskToday(ctx context.Context, userID uint, taskID, points int) (*CompleteResult, error) {
	return s.CompleteTask(ctx, userID, taskID, points, s.Today())
}

// IsCompleted reports whether taskID already has an entry on day.
func (s *LedgerService) IsCompleted(ctx context.Context, userID uint, taskID int, day string) (bool, error) {
	_, err := s.LedgerRepo.FindEntry(ctx, userID, day, TaskTag(taskID))
	if errors.Is(err, util.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("%w: find ledger entry: %w", util.ErrPersistence, err)
	}
	return true, nil
}

func (s *LedgerService) GetUserTotalPoints(ctx context.Context, userID uint) (int, error) {
	total, err := s.LedgerRepo.SumPoints(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: sum points: %w", util.ErrPersistence, err)
	}
	return total, nil
}

// TaskStatus is a catalog task annotated with today's completion state.
type TaskStatus struct {
	DailyTask
	Completed bool `json:"completed"`
}

// TodayTasks lists the catalog with the tasks already done today marked.
func (s *LedgerService) TodayTasks(ctx context.Context, userID uint) ([]TaskStatus, error) {
	entries, err := s.LedgerRepo.FindByUserAndDay(ctx, userID, s.Today())
	if err != nil {
		return nil, fmt.Errorf("%w: list today's entries: %w", util.ErrPersistence, err)
	}

	done := make(map[string]bool, len(entries))
	for _, e := range entries {
		done[e.TaskType] = true
	}

	tasks := DailyTasks()
	out := make([]TaskStatus, len(tasks))
	for i, t := range tasks {
		out[i] = TaskStatus{DailyTask: t, Completed: done[TaskTag(t.ID)]}
	}
	return out, nil
}
