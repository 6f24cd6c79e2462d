package repository

import (
	"context"

	"ecotrack_backend/internal/model"

	"gorm.io/gorm"
)

// StatsRepository runs site-wide aggregates for the landing page and admin area.
type StatsRepository struct {
	DB *gorm.DB
}

func NewStatsRepository(db *gorm.DB) *StatsRepository {
	return &StatsRepository{DB: db}
}

func (r *StatsRepository) CountUsers(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.User{}).Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountEntries(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.EcoPoint{}).Count(&count).Error
	return count, err
}

func (r *StatsRepository) SumPoints(ctx context.Context) (int64, error) {
	var total int64
	err := r.DB.WithContext(ctx).Model(&model.EcoPoint{}).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	return total, err
}

func (r *StatsRepository) CountBadges(ctx context.Context) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.Badge{}).Count(&count).Error
	return count, err
}

func (r *StatsRepository) CountEntriesOn(ctx context.Context, day string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.EcoPoint{}).Where("date = ?", day).Count(&count).Error
	return count, err
}

// CountActiveUsersSince counts users with an entry on or after fromDay.
func (r *StatsRepository) CountActiveUsersSince(ctx context.Context, fromDay string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.EcoPoint{}).
		Where("date >= ?", fromDay).
		Distinct("user_id").
		Count(&count).Error
	return count, err
}

// TopUsers is the points leaderboard.
func (r *StatsRepository) TopUsers(ctx context.Context, limit int) ([]model.UserPoints, error) {
	var rows []model.UserPoints
	err := r.DB.WithContext(ctx).Table("eco_points").
		Select("eco_points.user_id AS user_id, users.name AS name, SUM(eco_points.points) AS points").
		Joins("JOIN users ON users.id = eco_points.user_id AND users.deleted_at IS NULL").
		Group("eco_points.user_id, users.name").
		Order("points DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}
