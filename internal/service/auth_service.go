package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ecotrack_backend/internal/config"
	"ecotrack_backend/internal/model"
	"ecotrack_backend/internal/util"

	"golang.org/x/crypto/bcrypt"
)

type UserStore interface {
	Create(ctx context.Context, user *model.User) error
	FindByID(ctx context.Context, id uint) (*model.User, error)
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	List(ctx context.Context, offset, limit int) ([]model.User, int64, error)
	Count(ctx context.Context) (int64, error)
}

type AuthService struct {
	UserRepo UserStore
	Cfg      *config.Config
}

func NewAuthService(userRepo UserStore, cfg *config.Config) *AuthService {
	return &AuthService{
		UserRepo: userRepo,
		Cfg:      cfg,
	}
}

// NormalizeEmail is applied on both register and login.
func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *AuthService) Register(ctx context.Context, name, email, password string) (*model.User, error) {
	name = util.SanitizeText(name)
	email = NormalizeEmail(email)
	if name == "" || email == "" {
		return nil, fmt.Errorf("%w: name and email are required", util.ErrInvalidInput)
	}

	_, err := s.UserRepo.FindByEmail(ctx, email)
	if err == nil {
		return nil, util.ErrEmailRegistered
	} else if !errors.Is(err, util.ErrNotFound) {
		return nil, fmt.Errorf("%w: find user: %w", util.ErrPersistence, err)
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Name:     name,
		Email:    email,
		Password: string(hashedPassword),
		Role:     model.RoleUser,
	}
	if err := s.UserRepo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("%w: create user: %w", util.ErrPersistence, err)
	}
	return user, nil
}

// Login checks the credentials and issues a signed token.
func (s *AuthService) Login(ctx context.Context, email, password string) (string, *model.User, error) {
	user, err := s.UserRepo.FindByEmail(ctx, NormalizeEmail(email))
	if errors.Is(err, util.ErrNotFound) {
		return "", nil, util.ErrInvalidCredentials
	}
	if err != nil {
		return "", nil, fmt.Errorf("%w: find user: %w", util.ErrPersistence, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)); err != nil {
		return "", nil, util.ErrInvalidCredentials
	}

	token, err := util.GenerateJWT(user, s.Cfg.JWT.Secret, s.Cfg.JWT.ExpireTime)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}
