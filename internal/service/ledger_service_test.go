package service

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/util"
)

func TestCompleteTask(t *testing.T) {
	svc, ledger, _ := newTestLedger("2024-05-01")
	ctx := context.Background()

	res, err := svc.CompleteTaskToday(ctx, 1, 4, 20)
	if err != nil {
		t.Fatalf("CompleteTaskToday: %v", err)
	}
	if res.TotalPoints != 20 || res.Date != "2024-05-01" || res.BadgeEarned != "" {
		t.Errorf("result = %+v", res)
	}

	entry, err := ledger.FindEntry(ctx, 1, "2024-05-01", "task_4")
	if err != nil {
		t.Fatalf("entry not stored: %v", err)
	}
	if entry.Points != 20 || entry.Description != "Recycle" {
		t.Errorf("entry = %+v", entry)
	}
}

func TestCompleteTaskTwiceSameDay(t *testing.T) {
	svc, _, _ := newTestLedger("2024-05-01")
	ctx := context.Background()

	if _, err := svc.CompleteTask(ctx, 1, 2, 15, "2024-05-01"); err != nil {
		t.Fatal(err)
	}
	_, err := svc.CompleteTask(ctx, 1, 2, 15, "2024-05-01")
	if !errors.Is(err, util.ErrAlreadyCompletedToday) {
		t.Fatalf("err = %v, want ErrAlreadyCompletedToday", err)
	}

	total, err := svc.GetUserTotalPoints(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if total != 15 {
		t.Errorf("total = %d after duplicate, want 15", total)
	}
}

func TestCompleteTaskNextDayAndOtherUsers(t *testing.T) {
	svc, _, _ := newTestLedger("2024-05-01")
	ctx := context.Background()

	if _, err := svc.CompleteTask(ctx, 1, 2, 15, "2024-05-01"); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CompleteTask(ctx, 1, 2, 15, "2024-05-02"); err != nil {
		t.Errorf("same task next day: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, 2, 2, 15, "2024-05-01"); err != nil {
		t.Errorf("same task other user: %v", err)
	}
	if _, err := svc.CompleteTask(ctx, 1, 3, 12, "2024-05-01"); err != nil {
		t.Errorf("other task same day: %v", err)
	}
}

func TestCompleteTaskGrantsBadge(t *testing.T) {
	svc, _, badges := newTestLedger("2024-05-01")
	ctx := context.Background()

	if _, err := svc.CompleteTask(ctx, 1, 5, 25, "2024-04-30"); err != nil {
		t.Fatal(err)
	}
	res, err := svc.CompleteTask(ctx, 1, 5, 25, "2024-05-01")
	if err != nil {
		t.Fatal(err)
	}
	if res.TotalPoints != 50 || res.BadgeEarned != "Green Starter" {
		t.Errorf("result = %+v", res)
	}
	if len(badges.badges) != 1 {
		t.Errorf("badges = %+v", badges.badges)
	}
}

func TestCompleteTaskRejectsNonPositivePoints(t *testing.T) {
	svc, ledger, _ := newTestLedger("2024-05-01")
	for _, p := range []int{0, -10} {
		_, err := svc.CompleteTaskToday(context.Background(), 1, 1, p)
		if !errors.Is(err, util.ErrInvalidPoints) {
			t.Errorf("points %d: err = %v", p, err)
		}
	}
	if len(ledger.entries) != 0 {
		t.Errorf("ledger changed: %+v", ledger.entries)
	}
}

func TestCompleteTaskLockFailure(t *testing.T) {
	svc, ledger, _ := newTestLedger("2024-05-01")
	svc.Locker = lockerFunc(func(context.Context, uint) (func(), error) {
		return nil, util.ErrUserBusy
	})

	_, err := svc.CompleteTaskToday(context.Background(), 1, 1, 10)
	if !errors.Is(err, util.ErrUserBusy) {
		t.Fatalf("err = %v, want ErrUserBusy", err)
	}
	if len(ledger.entries) != 0 {
		t.Error("entry written without the lock")
	}
}

func TestCompleteTaskReleasesLock(t *testing.T) {
	svc, _, _ := newTestLedger("2024-05-01")
	released := 0
	svc.Locker = lockerFunc(func(context.Context, uint) (func(), error) {
		return func() { released++ }, nil
	})

	_, _ = svc.CompleteTaskToday(context.Background(), 1, 1, 10)
	_, _ = svc.CompleteTaskToday(context.Background(), 1, 1, 10)
	if released != 2 {
		t.Errorf("released %d times, want 2", released)
	}
}

func TestCompleteTaskStorageErrors(t *testing.T) {
	boom := errors.New("db down")

	svc, ledger, _ := newTestLedger("2024-05-01")
	ledger.insertFn = func(context.Context, *model.EcoPoint) (bool, error) { return false, boom }
	if _, err := svc.CompleteTaskToday(context.Background(), 1, 1, 10); !errors.Is(err, util.ErrPersistence) {
		t.Errorf("insert failure: err = %v", err)
	}

	svc, ledger, _ = newTestLedger("2024-05-01")
	ledger.sumFn = func(context.Context, uint) (int, error) { return 0, boom }
	if _, err := svc.CompleteTaskToday(context.Background(), 1, 1, 10); !errors.Is(err, util.ErrPersistence) {
		t.Errorf("sum failure: err = %v", err)
	}
}

func TestCompleteTaskConcurrentDuplicates(t *testing.T) {
	svc, ledger, _ := newTestLedger("2024-05-01")
	ctx := context.Background()

	const workers = 20
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		ok, dupes int
	)
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := svc.CompleteTaskToday(ctx, 1, 3, 12)
			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				ok++
			case errors.Is(err, util.ErrAlreadyCompletedToday):
				dupes++
			default:
				t.Errorf("unexpected error: %v", err)
			}
		}()
	}
	wg.Wait()

	if ok != 1 || dupes != workers-1 {
		t.Errorf("ok=%d dupes=%d", ok, dupes)
	}
	if len(ledger.entries) != 1 {
		t.Errorf("ledger holds %d entries", len(ledger.entries))
	}
}

func TestTodayTasksAndIsCompleted(t *testing.T) {
	svc, _, _ := newTestLedger("2024-05-01")
	ctx := context.Background()

	if _, err := svc.CompleteTaskToday(ctx, 1, 2, 15); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CompleteTask(ctx, 1, 3, 12, "2024-04-30"); err != nil {
		t.Fatal(err)
	}

	tasks, err := svc.TodayTasks(ctx, 1)
	if err != nil {
		t.Fatal(err)
	}
	if len(tasks) != len(DailyTasks()) {
		t.Fatalf("got %d tasks", len(tasks))
	}
	for _, task := range tasks {
		if want := task.ID == 2; task.Completed != want {
			t.Errorf("task %d completed = %v", task.ID, task.Completed)
		}
	}

	done, err := svc.IsCompleted(ctx, 1, 2, "2024-05-01")
	if err != nil || !done {
		t.Errorf("IsCompleted(task 2) = %v, %v", done, err)
	}
	done, err = svc.IsCompleted(ctx, 1, 3, "2024-05-01")
	if err != nil || done {
		t.Errorf("IsCompleted(task 3) = %v, %v", done, err)
	}
}

func TestSetLocationMovesDayBoundary(t *testing.T) {
	svc, _, _ := newTestLedger("2024-05-01")
	late := time.Date(2024, 5, 1, 23, 30, 0, 0, time.UTC)
	svc.now = func() time.Time { return late }
	svc.BadgeService.now = svc.now

	if got := svc.Today(); got != "2024-05-01" {
		t.Fatalf("Today() in UTC = %s", got)
	}

	svc.SetLocation(time.FixedZone("UZT", 5*60*60))
	if got := svc.Today(); got != "2024-05-02" {
		t.Errorf("Today() at UTC+5 = %s, want 2024-05-02", got)
	}

	res, err := svc.CompleteTaskToday(context.Background(), 1, 5, 50)
	if err != nil {
		t.Fatal(err)
	}
	if res.Date != "2024-05-02" {
		t.Errorf("entry day = %s", res.Date)
	}
}
