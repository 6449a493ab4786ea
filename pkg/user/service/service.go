package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
	"go.uber.org/zap"

	apperrors "github.com/finpet/finpet-api/pkg/app/errors"
	"github.com/finpet/finpet-api/pkg/app/validation"
	"github.com/finpet/finpet-api/pkg/auth"
	"github.com/finpet/finpet-api/pkg/user"
	"github.com/finpet/finpet-api/pkg/userstore"
)

// Store is the narrow data-access interface for the profile service.
//
//go:generate mockery --name Store --output mocks --outpkg mocks --filename mock_store.go --with-expecter
type Store interface {
	CreateUser(ctx context.Context, user *user.User) error
	GetUserByID(ctx context.Context, id string) (*user.User, error)
	UpdateProfile(ctx context.Context, userID string, name, image *string) error
	SetHandle(ctx context.Context, userID, handle string) error
}

// Service defines the interface for the profile business logic
//
//go:generate mockery --name Service --output mocks --outpkg mocks --filename mock_service.go --with-expecter
type Service interface {
	// GetProfile returns the caller's profile. A caller whose token carries an
	// email but who has no row yet is provisioned on first read.
	GetProfile(ctx context.Context, userID string) (*user.User, error)
	// UpdateProfile changes name and image and sets the handle once.
	UpdateProfile(ctx context.Context, userID string, req *user.UpdateProfileRequest) (*user.User, error)
}

type profileService struct {
	store  Store
	logger *zap.Logger
}

// NewService creates a new profile service
func NewService(store Store, logger *zap.Logger) Service {
	return &profileService{
		store:  store,
		logger: logger,
	}
}

func (s *profileService) GetProfile(ctx context.Context, userID string) (*user.User, error) {
	u, err := s.store.GetUserByID(ctx, userID)
	if err == nil {
		return u, nil
	}
	if !errors.Is(err, userstore.ErrUserNotFound) {
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	email, ok := auth.EmailFromContext(ctx)
	if !ok || email == "" {
		return nil, apperrors.ResourceNotFoundError(err, "user not found")
	}

	u = &user.User{ID: userID, Email: email, Balance: decimal.Zero}
	if err := s.store.CreateUser(ctx, u); err != nil {
		// A concurrent first request may have inserted the row.
		if existing, gerr := s.store.GetUserByID(ctx, userID); gerr == nil {
			return existing, nil
		}
		return nil, fmt.Errorf("failed to provision user: %w", err)
	}
	s.logger.Info("user provisioned", zap.String("user_id", userID))

	// Re-read for the column defaults.
	return s.store.GetUserByID(ctx, userID)
}

func (s *profileService) UpdateProfile(ctx context.Context, userID string, req *user.UpdateProfileRequest) (*user.User, error) {
	if req.Handle != nil {
		h := strings.TrimSpace(*req.Handle)
		req.Handle = &h
	}
	if req.Name != nil {
		n := strings.TrimSpace(*req.Name)
		req.Name = &n
	}
	if details := validation.Struct(req); details != nil {
		return nil, apperrors.ValidationError(nil, details)
	}
	if req.Empty() {
		return nil, apperrors.BadRequestError(nil, "nothing to update")
	}

	current, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, userstore.ErrUserNotFound) {
			return nil, apperrors.ResourceNotFoundError(err, "user not found")
		}
		return nil, fmt.Errorf("failed to get user: %w", err)
	}

	if req.Handle != nil && *req.Handle != current.Handle {
		if current.Handle != "" {
			return nil, apperrors.ConflictError(userstore.ErrHandleAlreadySet, "user id cannot be changed")
		}
		if err := s.store.SetHandle(ctx, userID, *req.Handle); err != nil {
			return nil, mapHandleError(err)
		}
	}

	if req.Name != nil || req.Image != nil {
		if err := s.store.UpdateProfile(ctx, userID, req.Name, req.Image); err != nil {
			if errors.Is(err, userstore.ErrUserNotFound) {
				return nil, apperrors.ResourceNotFoundError(err, "user not found")
			}
			return nil, fmt.Errorf("failed to update profile: %w", err)
		}
	}

	u, err := s.store.GetUserByID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to reload user: %w", err)
	}
	return u, nil
}

func mapHandleError(err error) error {
	switch {
	case errors.Is(err, userstore.ErrHandleTaken):
		return apperrors.ConflictError(err, "user id already taken")
	case errors.Is(err, userstore.ErrHandleAlreadySet):
		return apperrors.ConflictError(err, "user id cannot be changed")
	case errors.Is(err, userstore.ErrUserNotFound):
		return apperrors.ResourceNotFoundError(err, "user not found")
	}
	return fmt.Errorf("failed to set user id: %w", err)
}
