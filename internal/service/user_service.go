package service

import (
	"context"
	"strings"

	"github.com/maheshrc27/brandlab-api/internal/apperrors"
	"github.com/maheshrc27/brandlab-api/internal/models"
	"github.com/maheshrc27/brandlab-api/internal/repository"
	"github.com/maheshrc27/brandlab-api/internal/transfer"
	"github.com/maheshrc27/brandlab-api/pkg/utils"
	"go.uber.org/zap"
)

type UserService interface {
	GetUserInfo(ctx context.Context, id string) (*models.StaffUser, error)
	CreateStaffUser(ctx context.Context, email, name, password string) (*models.StaffUser, error)
	UpsertGoogleUser(ctx context.Context, info *transfer.GoogleUserInfo) (*models.StaffUser, error)
}

type userService struct {
	u      repository.UserRepository
	logger *zap.Logger
}

func NewUserService(u repository.UserRepository, logger *zap.Logger) UserService {
	return &userService{
		u:      u,
		logger: logger,
	}
}

func (s *userService) GetUserInfo(ctx context.Context, id string) (*models.StaffUser, error) {
	user, err := s.u.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if user == nil {
		return nil, apperrors.NotFound("user", id)
	}
	return user, nil
}

func (s *userService) CreateStaffUser(ctx context.Context, email, name, password string) (*models.StaffUser, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return nil, apperrors.Validation("email", "email is required")
	}
	if len(password) < 8 {
		return nil, apperrors.Validation("password", "password must be at least 8 characters")
	}

	existing, err := s.u.GetByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, apperrors.Conflict("a staff user with this email already exists")
	}

	hash, err := utils.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &models.StaffUser{Email: email, Name: strings.TrimSpace(name), PasswordHash: hash}
	if err := s.u.Create(ctx, user); err != nil {
		return nil, err
	}
	s.logger.Info("Staff user created", zap.String("user_id", user.ID), zap.String("email", user.Email))
	return user, nil
}

// UpsertGoogleUser links a Google profile to the staff user with the same
// email, creating the user on first sign-in.
func (s *userService) UpsertGoogleUser(ctx context.Context, info *transfer.GoogleUserInfo) (*models.StaffUser, error) {
	user, err := s.u.GetByGoogleID(ctx, info.ID)
	if err != nil {
		return nil, err
	}
	if user == nil {
		user, err = s.u.GetByEmail(ctx, info.Email)
		if err != nil {
			return nil, err
		}
	}

	if user == nil {
		user = &models.StaffUser{
			Email:     info.Email,
			Name:      info.Name,
			GoogleID:  info.ID,
			AvatarURL: info.Picture,
		}
		if err := s.u.Create(ctx, user); err != nil {
			return nil, err
		}
		s.logger.Info("Staff user created from Google sign-in", zap.String("user_id", user.ID))
		return user, nil
	}

	if user.GoogleID != info.ID || user.Name != info.Name || user.AvatarURL != info.Picture {
		user.GoogleID = info.ID
		user.Name = info.Name
		user.AvatarURL = info.Picture
		if err := s.u.Update(ctx, user); err != nil {
			return nil, err
		}
	}
	return user, nil
}
