package service

import (
	"context"
	"errors"
	"fmt"

	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/util"
)

// UserService handles user lookups for profiles and the admin area.
type UserService struct {
	UserRepo UserStore
}

func NewUserService(userRepo UserStore) *UserService {
	return &UserService{
		UserRepo: userRepo,
	}
}

// GetUserByID returns util.ErrUserNotFound for unknown ids.
func (s *UserService) GetUserByID(ctx context.Context, id uint) (*model.User, error) {
	user, err := s.UserRepo.FindByID(ctx, id)
	if errors.Is(err, util.ErrNotFound) {
		return nil, util.ErrUserNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("%w: find user: %w", util.ErrPersistence, err)
	}
	return user, nil
}

// GetUsers lists users newest first, page is 1-based.
func (s *UserService) GetUsers(ctx context.Context, page, pageSize int) ([]model.User, int64, error) {
	if page < 1 {
		page = 1
	}
	if pageSize < 1 || pageSize > 100 {
		pageSize = 20
	}

	users, total, err := s.UserRepo.List(ctx, (page-1)*pageSize, pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("%w: list users: %w", util.ErrPersistence, err)
	}
	return users, total, nil
}
