package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"

	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/util"
	"ecotrack_backend/pkg/logger"

	"go.uber.org/zap"
)

type TipStore interface {
	GetAll(ctx context.Context) ([]model.Tip, error)
	Create(ctx context.Context, tip *model.Tip) error
	Delete(ctx context.Context, id uint) error
}

type TipService struct {
	TipRepo TipStore
	intn    func(n int) int
}

func NewTipService(tipRepo TipStore) *TipService {
	return &TipService{TipRepo: tipRepo, intn: rand.Intn}
}

// GetRandomTip picks one tip uniformly. It never fails: an empty corpus or a
// storage error yields the fallback tip.
func (s *TipService) GetRandomTip(ctx context.Context) string {
	tips, err := s.TipRepo.GetAll(ctx)
	if err != nil {
		logger.L().Warn("Failed to load tips, using fallback", zap.Error(err))
		return util.FallbackTip
	}
	if len(tips) == 0 {
		return util.FallbackTip
	}
	return tips[s.intn(len(tips))].Text
}

// list all tips
func (s *TipService) ListTips(ctx context.Context) ([]model.Tip, error) {
	tips, err := s.TipRepo.GetAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("%w: list tips: %w", util.ErrPersistence, err)
	}
	return tips, nil
}

// CreateTip stores a new tip after stripping any markup from it.
func (s *TipService) CreateTip(ctx context.Context, text, category string) (*model.Tip, error) {
	text = util.SanitizeText(text)
	if text == "" {
		return nil, fmt.Errorf("%w: tip text is empty", util.ErrInvalidInput)
	}

	tip := &model.Tip{
		Text:     text,
		Category: util.SanitizeText(category),
	}
	if err := s.TipRepo.Create(ctx, tip); err != nil {
		return nil, fmt.Errorf("%w: create tip: %w", util.ErrPersistence, err)
	}
	return tip, nil
}

// delete a tip
func (s *TipService) DeleteTip(ctx context.Context, id uint) error {
	err := s.TipRepo.Delete(ctx, id)
	if err == nil {
		return nil
	}
	if errors.Is(err, util.ErrNotFound) {
		return err
	}
	return fmt.Errorf("%w: delete tip: %w", util.ErrPersistence, err)
}
