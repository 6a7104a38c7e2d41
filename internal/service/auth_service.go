package service

import (
	"context"
	"errors"
	"time"

	"go-airport-booking/config"
	"go-airport-booking/internal/auth"
	"go-airport-booking/internal/model"
	"go-airport-booking/internal/repository"
	apperrors "go-airport-booking/pkg/app_errors"
)

type AuthService interface {
	Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error)
	Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error)
}

type AuthServiceImpl struct {
	users repository.UserRepository
	jwt   config.JWTConfig
}

func NewAuthService(users repository.UserRepository, jwt config.JWTConfig) AuthService {
	return &AuthServiceImpl{
		users: users,
		jwt:   jwt,
	}
}

func (s *AuthServiceImpl) Register(ctx context.Context, req *model.RegisterRequest) (*model.User, error) {
	hash, err := auth.HashPassword(req.Password, s.jwt.BcryptCost)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Email:        req.Email,
		PasswordHash: hash,
		FullName:     req.FullName,
		Role:         model.RoleUser,
	}

	return s.users.Create(ctx, user)
}

func (s *AuthServiceImpl) Login(ctx context.Context, req *model.LoginRequest) (*model.LoginResponse, error) {
	user, err := s.users.FindByEmail(ctx, req.Email)
	if err != nil {
		// An unknown email reads the same as a wrong password.
		if errors.Is(err, apperrors.ErrUserNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !auth.VerifyPassword(user.PasswordHash, req.Password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	ttl := time.Duration(s.jwt.AccessTTLMin) * time.Minute
	token, expiresAt, err := auth.NewAccessToken(s.jwt.Secret, user.ID, user.Role, ttl)
	if err != nil {
		return nil, err
	}

	return &model.LoginResponse{
		AccessToken: token,
		ExpiresAt:   expiresAt,
	}, nil
}
