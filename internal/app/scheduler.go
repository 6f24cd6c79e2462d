package app

import (
	"context"
	"time"

	"ecotrack_backend/internal/service"
	"ecotrack_backend/pkg/logger"

	"github.com/robfig/cron/v3"
	"go.uber.org/zap"
)

// Scheduler runs the periodic background jobs.
type Scheduler struct {
	cron         *cron.Cron
	statsService *service.StatsService
	statsSpec    string
}

func NewScheduler(statsService *service.StatsService, statsSpec string, loc *time.Location) *Scheduler {
	return &Scheduler{
		cron:         cron.New(cron.WithLocation(loc)),
		statsService: statsService,
		statsSpec:    statsSpec,
	}
}

// Start registers the jobs and starts the cron loop.
func (s *Scheduler) Start(ctx context.Context) error {
	_, err := s.cron.AddFunc(s.statsSpec, func() {
		jobCtx, cancel := context.WithTimeout(ctx, time.Minute)
		defer cancel()
		if _, err := s.statsService.RefreshCommunityStats(jobCtx); err != nil {
			logger.L().Error("[CRON] community stats refresh failed", zap.Error(err))
			return
		}
		logger.L().Debug("[CRON] community stats refreshed")
	})
	if err != nil {
		return err
	}

	s.cron.Start()
	logger.L().Info("Scheduler started", zap.String("stats_refresh_spec", s.statsSpec))
	return nil
}

// Stop waits for running jobs to finish.
func (s *Scheduler) Stop() {
	ctx := s.cron.Stop()
	<-ctx.Done()
	logger.L().Info("Scheduler stopped")
}
