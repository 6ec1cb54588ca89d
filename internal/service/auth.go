package service

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/soundline/storefront/internal/events"
	"github.com/soundline/storefront/internal/hash"
	"github.com/soundline/storefront/internal/logging"
	"github.com/soundline/storefront/internal/models"
	"github.com/soundline/storefront/internal/repo"
	"github.com/soundline/storefront/internal/transport"
)

type AuthService struct {
	Repo     *repo.GormRepo
	Producer *events.Producer
}

func (s *AuthService) Register(ctx context.Context, req transport.RegisterRequest) (*models.User, error) {
	if req.Username == "" {
		return nil, fieldError("username", "username is required")
	}
	if req.Password == "" {
		return nil, fieldError("password", "password is required")
	}

	if _, err := s.Repo.GetUserByUsername(ctx, req.Username); err == nil {
		return nil, ErrConflict
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	passwordHash, err := hash.HashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	user := &models.User{
		Username:     req.Username,
		PasswordHash: passwordHash,
		Role:         models.RoleCustomer,
		Name:         req.Name,
		Email:        req.Email,
		Phone:        req.Phone,
		Address:      req.Address,
	}

	if _, err := s.Repo.CreateUser(ctx, user); err != nil {
		return nil, err
	}

	if err := s.Producer.Publish(ctx, events.TopicUsers, user.ID, map[string]any{
		"type":     "user_registered",
		"user_id":  user.ID,
		"username": user.Username,
	}); err != nil {
		logging.FromContext(ctx).Warn("user_event_error", "user_id", user.ID, "error", err)
	}

	return user, nil
}

func (s *AuthService) Login(ctx context.Context, req transport.LoginRequest) (*models.User, error) {
	user, err := s.Repo.GetUserByUsername(ctx, req.Username)
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrUnauthenticated
	}
	if err != nil {
		return nil, err
	}

	if !hash.CheckPassword(user.PasswordHash, req.Password) {
		return nil, ErrUnauthenticated
	}

	return user, nil
}
