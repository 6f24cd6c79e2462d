package repository

import (
	"context"

	"ecotrack_backend/internal/model"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// EcoPointRepository stores the points ledger.
type EcoPointRepository struct {
	DB *gorm.DB
}

func NewEcoPointRepository(db *gorm.DB) *EcoPointRepository {
	return &EcoPointRepository{DB: db}
}

// FindEntry looks up the entry for one task on one day.
func (r *EcoPointRepository) FindEntry(ctx context.Context, userID uint, day, taskType string) (*model.EcoPoint, error) {
	var entry model.EcoPoint
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND date = ? AND task_type = ?", userID, day, taskType).
		First(&entry).Error
	if err != nil {
		return nil, translate(err)
	}
	return &entry, nil
}

// InsertIfAbsent relies on idx_eco_point_user_day_task: a conflicting row
// leaves RowsAffected at zero.
func (r *EcoPointRepository) InsertIfAbsent(ctx context.Context, entry *model.EcoPoint) (bool, error) {
	res := r.DB.WithContext(ctx).
		Clauses(clause.OnConflict{DoNothing: true}).
		Create(entry)
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected == 1, nil
}

func (r *EcoPointRepository) SumPoints(ctx context.Context, userID uint) (int, error) {
	var total int
	err := r.DB.WithContext(ctx).Model(&model.EcoPoint{}).
		Where("user_id = ?", userID).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	return total, err
}

// SumPointsSince sums entries dated on or after fromDay.
func (r *EcoPointRepository) SumPointsSince(ctx context.Context, userID uint, fromDay string) (int, error) {
	var total int
	err := r.DB.WithContext(ctx).Model(&model.EcoPoint{}).
		Where("user_id = ? AND date >= ?", userID, fromDay).
		Select("COALESCE(SUM(points), 0)").
		Scan(&total).Error
	return total, err
}

func (r *EcoPointRepository) CountSince(ctx context.Context, userID uint, fromDay string) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.EcoPoint{}).
		Where("user_id = ? AND date >= ?", userID, fromDay).
		Count(&count).Error
	return count, err
}

func (r *EcoPointRepository) FindByUserAndDay(ctx context.Context, userID uint, day string) ([]model.EcoPoint, error) {
	var entries []model.EcoPoint
	err := r.DB.WithContext(ctx).
		Where("user_id = ? AND date = ?", userID, day).
		Order("id").
		Find(&entries).Error
	return entries, err
}

// FindRecent returns the latest entries, newest day first.
func (r *EcoPointRepository) FindRecent(ctx context.Context, userID uint, limit int) ([]model.EcoPoint, error) {
	var entries []model.EcoPoint
	err := r.DB.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("date DESC, id DESC").
		Limit(limit).
		Find(&entries).Error
	return entries, err
}

// CountActiveDays counts distinct days with at least one entry.
func (r *EcoPointRepository) CountActiveDays(ctx context.Context, userID uint) (int64, error) {
	var count int64
	err := r.DB.WithContext(ctx).Model(&model.EcoPoint{}).
		Where("user_id = ?", userID).
		Distinct("date").
		Count(&count).Error
	return count, err
}
