package repository

import (
	"context"

	"ecotrack_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BadgeRepository struct {
	DB *gorm.DB
}

func NewBadgeRepository(db *gorm.DB) *BadgeRepository {
	return &BadgeRepository{DB: db}
}

func (r *BadgeRepository) Exists(ctx context.Context, userID uint, name string) (bool, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Badge{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error
	return count > 0, err
}

// CreateIfAbsent reports false when idx_badge_user_name already holds the pair.
func (r *BadgeRepository) CreateIfAbsent(ctx context.Context, badge *model.Badge) (bool, error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(badge)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

// FindByUserID lists badges most recently earned first.
func (r *BadgeRepository) FindByUserID(ctx context.Context, userID uint) ([]model.Badge, error) {
	var badges []model.Badge
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("earned_date DESC, id DESC").
		Find(&badges).Error
	return badges, err
}

func (r *BadgeRepository) CountByUserID(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Badge{}).Where("user_id = ?", userID).Count(&count).Error
	return count, err
}
