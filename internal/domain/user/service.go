package user

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"freelancernow/internal/domain/document"
)

// Service contains the business logic for profile operations
type Service struct {
	repo Repository
	log  *zap.Logger
}

// NewService creates a new user service
func NewService(repo Repository, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{repo: repo, log: log}
}

// CreateUser registers a new profile, defaulting to freelancer.
func (s *Service) CreateUser(ctx context.Context, params CreateParams) (*User, error) {
	if params.UserType == "" {
		params.UserType = TypeFreelancer
	}
	if err := params.Validate(); err != nil {
		return nil, err
	}
	return s.repo.Create(ctx, params)
}

// GetProfile retrieves a profile by ID
func (s *Service) GetProfile(ctx context.Context, userID int64) (*User, error) {
	if userID <= 0 {
		return nil, fmt.Errorf("%w: valid user ID is required", ErrInvalidInput)
	}

	u, err := s.repo.GetByID(ctx, userID)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// GetProfileByEmail looks a profile up by its exact registered email.
func (s *Service) GetProfileByEmail(ctx context.Context, email string) (*User, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, fmt.Errorf("%w: email is required", ErrInvalidInput)
	}

	u, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u, nil
}

// UpdateProfile validates and applies a partial profile update. The document,
// when present, is stored formatted.
func (s *Service) UpdateProfile(ctx context.Context, userID int64, params UpdateProfileParams) (*User, error) {
	current, err := s.GetProfile(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := params.Validate(current.UserType); err != nil {
		s.log.Debug("profile update rejected", zap.Int64("user_id", userID), zap.Error(err))
		return nil, err
	}

	// Switching type without sending a new document must still match the stored one.
	if params.UserType != nil && params.Document == nil && current.Document != "" {
		if err := CheckDocumentType(*params.UserType, document.TypeOf(current.Document)); err != nil {
			return nil, err
		}
	}

	updated, err := s.repo.UpdateProfile(ctx, userID, params.Normalize())
	if err != nil {
		return nil, fmt.Errorf("failed to update profile: %w", err)
	}

	s.log.Info("profile updated", zap.Int64("user_id", userID))
	return updated, nil
}
