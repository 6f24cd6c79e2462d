package service

import (
	"context"
	"errors"
	"testing"

	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/util"
)

func newTestDashboard(t *testing.T, day string) (*DashboardService, *LedgerService) {
	t.Helper()
	ledgerService, _, _ := newTestLedger(day)
	users := &memUsers{}
	if err := users.Create(context.Background(), &model.User{Name: "Aziza", Email: "a@example.com"}); err != nil {
		t.Fatal(err)
	}
	tips := NewTipService(&fakeTips{})
	return NewDashboardService(NewUserService(users), ledgerService, ledgerService.BadgeService, tips), ledgerService
}

func TestGetUserDashboard(t *testing.T) {
	svc, ledger := newTestDashboard(t, "2024-05-10")
	ctx := context.Background()

	mustComplete(t, ledger, 2, 15, "2024-05-10")
	mustComplete(t, ledger, 5, 25, "2024-05-10")
	mustComplete(t, ledger, 4, 20, "2024-05-05")
	mustComplete(t, ledger, 1, 10, "2024-04-01")

	d, err := svc.GetUserDashboard(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if d.TotalPoints != 70 || d.TodayPoints != 40 {
		t.Errorf("total=%d today=%d", d.TotalPoints, d.TodayPoints)
	}
	if d.WeeklyStats.WeeklyPoints != 60 || d.WeeklyStats.TasksCompleted != 3 {
		t.Errorf("weekly = %+v", d.WeeklyStats)
	}
	if d.Level != 0 || d.PointsToNextLevel != 30 {
		t.Errorf("level = %+v", d.LevelInfo)
	}
	if d.BadgesCount != 1 {
		t.Errorf("badges = %d, want 1", d.BadgesCount)
	}
	if len(d.CompletedTaskIDs) != 2 {
		t.Errorf("completed = %v", d.CompletedTaskIDs)
	}
	if d.RandomTip != util.FallbackTip {
		t.Errorf("tip = %q", d.RandomTip)
	}
	if d.Impact != ComputeImpact(70) {
		t.Errorf("impact = %+v", d.Impact)
	}
}

func TestGetProfileSummary(t *testing.T) {
	svc, ledger := newTestDashboard(t, "2024-05-10")
	ctx := context.Background()

	mustComplete(t, ledger, 3, 12, "2024-05-07")
	mustComplete(t, ledger, 4, 20, "2024-05-08")

	p, err := svc.GetProfileSummary(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if p.User.Name != "Aziza" || p.TotalPoints != 32 || p.ActiveDays != 2 {
		t.Errorf("profile = %+v", p)
	}
	if p.TodayPoints != 0 || len(p.TodayTasks) != 0 || p.TodayDate != "2024-05-10" {
		t.Errorf("today = %d %v %s", p.TodayPoints, p.TodayTasks, p.TodayDate)
	}
	if len(p.RecentActivities) != 2 || p.RecentActivities[0].Description != "You recycled waste" {
		t.Errorf("activities = %+v", p.RecentActivities)
	}
	if p.LastActivity != "2 days ago" {
		t.Errorf("last activity = %q", p.LastActivity)
	}
	if p.NextBadge.Name != "Green Starter" {
		t.Errorf("next badge = %+v", p.NextBadge)
	}
	if p.TotalImpact.Trees != TreesEquivalent(ComputeImpact(32).CO2Saved) {
		t.Errorf("trees = %d", p.TotalImpact.Trees)
	}
}

func TestGetProfileSummaryUnknownUser(t *testing.T) {
	svc, _ := newTestDashboard(t, "2024-05-10")
	_, err := svc.GetProfileSummary(context.Background(), 42)
	if !errors.Is(err, util.ErrUserNotFound) {
		t.Fatalf("err = %v, want ErrUserNotFound", err)
	}
}

func TestGetStats(t *testing.T) {
	svc, ledger := newTestDashboard(t, "2024-05-10")
	mustComplete(t, ledger, 5, 25, "2024-05-09")
	mustComplete(t, ledger, 5, 25, "2024-05-10")
	mustComplete(t, ledger, 5, 25, "2024-05-01")

	s, err := svc.GetStats(context.Background(), 1)
	if err != nil {
		t.Fatal(err)
	}
	if s.TotalPoints != 75 || s.Level != 0 || len(s.Badges) != 1 {
		t.Errorf("stats = %+v", s)
	}
	if s.WeeklyStats.TasksCompleted != 2 {
		t.Errorf("weekly = %+v", s.WeeklyStats)
	}
}

func TestLastActivityLabel(t *testing.T) {
	tests := []struct {
		name       string
		activities []Activity
		want       string
	}{
		{name: "no activity", want: "today"},
		{name: "today", activities: []Activity{{Date: "2024-05-10"}}, want: "today"},
		{name: "yesterday", activities: []Activity{{Date: "2024-05-09"}}, want: "1 day ago"},
		{name: "a week", activities: []Activity{{Date: "2024-05-03"}, {Date: "2024-05-01"}}, want: "7 days ago"},
		{name: "bad date", activities: []Activity{{Date: "garbage"}}, want: "today"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := LastActivityLabel(tt.activities, "2024-05-10"); got != tt.want {
				t.Errorf("LastActivityLabel() = %q, want %q", got, tt.want)
			}
		})
	}
}

func mustComplete(t *testing.T, ledger *LedgerService, taskID, points int, day string) {
	t.Helper()
	if _, err := ledger.CompleteTask(context.Background(), 1, taskID, points, day); err != nil {
		t.Fatalf("CompleteTask(%d, %s): %v", taskID, day, err)
	}
}
