package service

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/util"
	"ecotrack_backend/pkg/logger"
	"ecotrack_backend/pkg/monitoring"

	"go.uber.org/zap"
)

// BadgeStore is the persistence the badge evaluator needs.
type BadgeStore interface {
	Exists(ctx context.Context, userID uint, name string) (bool, error)
	// CreateIfAbsent inserts the badge unless (user, name) already exists
	// and reports whether a row was written.
	CreateIfAbsent(ctx context.Context, badge *model.Badge) (bool, error)
	FindByUserID(ctx context.Context, userID uint) ([]model.Badge, error)
	CountByUserID(ctx context.Context, userID uint) (int64, error)
}

// BadgeGrant is the outcome of one evaluation. Name is the highest badge
// created by the call, All every badge created by it in catalog order.
type BadgeGrant struct {
	Name string   `json:"name,omitempty"`
	All  []string `json:"all,omitempty"`
}

type BadgeService struct {
	BadgeRepo BadgeStore
	loc       atomic.Pointer[time.Location]
	now       func() time.Time
}

func NewBadgeService(badgeRepo BadgeStore, loc *time.Location) *BadgeService {
	if loc == nil {
		loc = time.Local
	}
	s := &BadgeService{BadgeRepo: badgeRepo, now: time.Now}
	s.loc.Store(loc)
	return s
}

// AssignBadges grants every catalog badge whose threshold is covered by
// totalPoints and that the user does not hold yet. Calling it again with the
// same total grants nothing.
func (s *BadgeService) AssignBadges(ctx context.Context, userID uint, totalPoints int) (BadgeGrant, error) {
	var grant BadgeGrant
	today := util.DayString(s.now(), s.loc.Load())

	for _, tier := range EarnedTiers(totalPoints) {
		exists, err := s.BadgeRepo.Exists(ctx, userID, tier.Name)
		if err != nil {
			return grant, fmt.Errorf("%w: check badge %q: %w", util.ErrPersistence, tier.Name, err)
		}
		if exists {
			continue
		}

		created, err := s.BadgeRepo.CreateIfAbsent(ctx, &model.Badge{
			UserID:      userID,
			Name:        tier.Name,
			Description: tier.Description,
			Icon:        tier.Icon,
			EarnedDate:  today,
		})
		if err != nil {
			return grant, fmt.Errorf("%w: grant badge %q: %w", util.ErrPersistence, tier.Name, err)
		}
		if !created {
			// a concurrent request granted it first
			continue
		}

		grant.Name = tier.Name
		grant.All = append(grant.All, tier.Name)
		monitoring.ObserveBadgeGranted(tier.Name)
		logger.L().Info("Badge granted", zap.Uint("user_id", userID), zap.String("badge", tier.Name))
	}

	return grant, nil
}

func (s *BadgeService) GetUserBadges(ctx context.Context, userID uint) ([]model.Badge, error) {
	badges, err := s.BadgeRepo.FindByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("%w: list badges: %w", util.ErrPersistence, err)
	}
	return badges, nil
}

func (s *BadgeService) CountUserBadges(ctx context.Context, userID uint) (int64, error) {
	n, err := s.BadgeRepo.CountByUserID(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("%w: count badges: %w", util.ErrPersistence, err)
	}
	return n, nil
}
