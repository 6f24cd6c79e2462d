package service

import (
	"context"
	"fmt"

	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/util"
)

const (
	recentActivityLimit = 10
	weekDays            = 7
	lastActivityToday   = "today"
)

type DashboardService struct {
	UserService   *UserService
	LedgerService *LedgerService
	BadgeService  *BadgeService
	TipService    *TipService
}

func NewDashboardService(
	userService *UserService,
	ledgerService *LedgerService,
	badgeService *BadgeService,
	tipService *TipService,
) *DashboardService {
	return &DashboardService{
		UserService:   userService,
		LedgerService: ledgerService,
		BadgeService:  badgeService,
		TipService:    tipService,
	}
}

type WeeklyStats struct {
	WeeklyPoints   int   `json:"weeklyPoints"`
	TasksCompleted int64 `json:"tasksCompleted"`
}

type Dashboard struct {
	Tasks            []TaskStatus `json:"tasks"`
	CompletedTaskIDs []string     `json:"completedTaskIds"`
	TotalPoints      int          `json:"totalPoints"`
	TodayPoints      int          `json:"todayPoints"`
	BadgesCount      int64        `json:"badgesCount"`
	LevelInfo
	WeeklyStats WeeklyStats `json:"weeklyStats"`
	Impact      Impact      `json:"environmentalImpact"`
	RandomTip   string      `json:"randomTip"`
}

// TodayTask is a ledger entry of today rendered for display.
type TodayTask struct {
	Name   string `json:"name"`
	Icon   string `json:"icon"`
	Points int    `json:"points"`
}

type Activity struct {
	Date        string `json:"date"`
	Icon        string `json:"icon"`
	Description string `json:"description"`
	Points      int    `json:"points"`
}

type ImpactSummary struct {
	Impact
	Comparisons
	Trees int `json:"trees"`
}

type ProfileSummary struct {
	User        *model.User `json:"user"`
	TotalPoints int         `json:"totalPoints"`
	LevelInfo
	Badges           []model.Badge `json:"badges"`
	ActiveDays       int64         `json:"activeDays"`
	TodayDate        string        `json:"todayDate"`
	TodayTasks       []TodayTask   `json:"todayTasks"`
	TodayPoints      int           `json:"todayPoints"`
	TodayImpact      ImpactSummary `json:"todayImpact"`
	RecentActivities []Activity    `json:"recentActivities"`
	TotalImpact      ImpactSummary `json:"totalImpact"`
	NextBadge        BadgeProgress `json:"nextBadge"`
	LastActivity     string        `json:"lastActivity"`
}

type StatsView struct {
	TotalPoints int           `json:"totalPoints"`
	Level       int           `json:"level"`
	WeeklyStats WeeklyStats   `json:"weeklyStats"`
	Impact      Impact        `json:"environmentalImpact"`
	Badges      []model.Badge `json:"badges"`
}

func summarizeImpact(points int) ImpactSummary {
	impact := ComputeImpact(points)
	return ImpactSummary{
		Impact:      impact,
		Comparisons: ComputeComparisons(impact),
		Trees:       TreesEquivalent(impact.CO2Saved),
	}
}

func (s *DashboardService) ledger() LedgerStore {
	return s.LedgerService.LedgerRepo
}

func (s *DashboardService) weeklyStats(ctx context.Context, userID uint, today string) (WeeklyStats, error) {
	from, err := util.ShiftDay(today, -weekDays)
	if err != nil {
		return WeeklyStats{}, err
	}

	points, err := s.ledger().SumPointsSince(ctx, userID, from)
	if err != nil {
		return WeeklyStats{}, fmt.Errorf("%w: weekly points: %w", util.ErrPersistence, err)
	}
	tasks, err := s.ledger().CountSince(ctx, userID, from)
	if err != nil {
		return WeeklyStats{}, fmt.Errorf("%w: weekly tasks: %w", util.ErrPersistence, err)
	}
	return WeeklyStats{WeeklyPoints: points, TasksCompleted: tasks}, nil
}

func (s *DashboardService) GetUserDashboard(ctx context.Context, userID uint) (*Dashboard, error) {
	today := s.LedgerService.Today()

	total, err := s.LedgerService.GetUserTotalPoints(ctx, userID)
	if err != nil {
		return nil, err
	}

	// today's tasks
	entries, err := s.ledger().FindByUserAndDay(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("%w: today's entries: %w", util.ErrPersistence, err)
	}
	done := make(map[string]bool, len(entries))
	completed := make([]string, 0, len(entries))
	todayPoints := 0
	for _, e := range entries {
		done[e.TaskType] = true
		completed = append(completed, e.TaskType)
		todayPoints += e.Points
	}
	tasks := make([]TaskStatus, 0)
	for _, t := range DailyTasks() {
		tasks = append(tasks, TaskStatus{DailyTask: t, Completed: done[TaskTag(t.ID)]})
	}

	weekly, err := s.weeklyStats(ctx, userID, today)
	if err != nil {
		return nil, err
	}

	badges, err := s.BadgeService.CountUserBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &Dashboard{
		Tasks:            tasks,
		CompletedTaskIDs: completed,
		TotalPoints:      total,
		TodayPoints:      todayPoints,
		BadgesCount:      badges,
		LevelInfo:        ComputeLevel(total),
		WeeklyStats:      weekly,
		Impact:           ComputeImpact(total),
		RandomTip:        s.TipService.GetRandomTip(ctx),
	}, nil
}

func (s *DashboardService) GetProfileSummary(ctx context.Context, userID uint) (*ProfileSummary, error) {
	user, err := s.UserService.GetUserByID(ctx, userID)
	if err != nil {
		return nil, err
	}

	today := s.LedgerService.Today()

	total, err := s.LedgerService.GetUserTotalPoints(ctx, userID)
	if err != nil {
		return nil, err
	}

	badges, err := s.BadgeService.GetUserBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	activeDays, err := s.ledger().CountActiveDays(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: active days: %w", util.ErrPersistence, err)
	}

	entries, err := s.ledger().FindByUserAndDay(ctx, userID, today)
	if err != nil {
		return nil, fmt.Errorf("%w: today's entries: %w", util.ErrPersistence, err)
	}
	todayTasks := make([]TodayTask, 0, len(entries))
	todayPoints := 0
	for _, e := range entries {
		t := DescribeTag(e.TaskType)
		todayTasks = append(todayTasks, TodayTask{Name: t.Name, Icon: t.Icon, Points: e.Points})
		todayPoints += e.Points
	}

	recent, err := s.ledger().FindRecent(ctx, userID, recentActivityLimit)
	if err != nil {
		return nil, fmt.Errorf("%w: recent activity: %w", util.ErrPersistence, err)
	}
	activities := make([]Activity, 0, len(recent))
	for _, e := range recent {
		t := DescribeTag(e.TaskType)
		activities = append(activities, Activity{Date: e.Date, Icon: t.Icon, Description: t.Done, Points: e.Points})
	}

	return &ProfileSummary{
		User:             user,
		TotalPoints:      total,
		LevelInfo:        ComputeLevel(total),
		Badges:           badges,
		ActiveDays:       activeDays,
		TodayDate:        today,
		TodayTasks:       todayTasks,
		TodayPoints:      todayPoints,
		TodayImpact:      summarizeImpact(todayPoints),
		RecentActivities: activities,
		TotalImpact:      summarizeImpact(total),
		NextBadge:        NextBadgeInfo(total),
		LastActivity:     LastActivityLabel(activities, today),
	}, nil
}

// LastActivityLabel renders the most recent activity relative to today.
// Users without activity get "today", as on the profile page.
func LastActivityLabel(activities []Activity, today string) string {
	if len(activities) == 0 || activities[0].Date == today {
		return lastActivityToday
	}
	days, err := util.DaysBetween(activities[0].Date, today)
	if err != nil || days <= 0 {
		return lastActivityToday
	}
	if days == 1 {
		return "1 day ago"
	}
	return fmt.Sprintf("%d days ago", days)
}

func (s *DashboardService) GetStats(ctx context.Context, userID uint) (*StatsView, error) {
	total, err := s.LedgerService.GetUserTotalPoints(ctx, userID)
	if err != nil {
		return nil, err
	}

	weekly, err := s.weeklyStats(ctx, userID, s.LedgerService.Today())
	if err != nil {
		return nil, err
	}

	badges, err := s.BadgeService.GetUserBadges(ctx, userID)
	if err != nil {
		return nil, err
	}

	return &StatsView{
		TotalPoints: total,
		Level:       Level(total),
		WeeklyStats: weekly,
		Impact:      ComputeImpact(total),
		Badges:      badges,
	}, nil
}
