package repository

import (
	"context"

	"ecotrack_backend/internal/model"

	"gorm.io/gorm"
)

type TipRepository struct {
	DB *gorm.DB
}

func NewTipRepository(db *gorm.DB) *TipRepository {
	return &TipRepository{DB: db}
}

// GetAll returns the whole corpus in insertion order.
func (r *TipRepository) GetAll(ctx context.Context) ([]model.Tip, error) {
	var tips []model.Tip
	err := r.DB.WithContext(ctx).Order("id").Find(&tips).Error
	return tips, err
}

func (r *TipRepository) Create(ctx context.Context, tip *model.Tip) error {
	return r.DB.WithContext(ctx).Create(tip).Error
}

// Delete returns util.ErrNotFound when no tip has the id.
func (r *TipRepository) Delete(ctx context.Context, id uint) error {
	res := r.DB.WithContext(ctx).Delete(&model.Tip{}, id)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return translate(gorm.ErrRecordNotFound)
	}
	return nil
}
