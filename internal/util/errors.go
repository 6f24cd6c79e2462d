package util

import "errors"

var (
	ErrNotFound              = errors.New("resource not found")
	ErrUserNotFound          = errors.New("user not found")
	ErrEmailRegistered       = errors.New("email already registered")
	ErrInvalidCredentials    = errors.New("invalid credentials")
	ErrPermissionDenied      = errors.New("permission denied")
	ErrAlreadyCompletedToday = errors.New("task already completed today")
	ErrPersistence           = errors.New("persistence failure")
	ErrInvalidInput          = errors.New("invalid input")
	ErrInvalidPoints         = errors.New("points must be positive")
	ErrUserBusy              = errors.New("another request for this user is in progress")
)
