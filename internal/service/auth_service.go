package service

import (
	"context"
	"errors"
	"fmt"

	"bistro_boss/internal/repository"
	"bistro_boss/internal/utils"
)

var (
	ErrInvalidCredentials = errors.New("invalid email or password")
)

// AuthService issues access tokens
type AuthService interface {
	IssueToken(ctx context.Context, email, password string) (string, error)
}

type authService struct {
	userRepo        repository.UserRepository
	jwtUtil         *utils.JWTUtil
	requirePassword bool
}

// NewAuthService creates a new AuthService. When requirePassword is false, users
// without a stored password hash (social sign-in) receive a token for the email
// they claim.
func NewAuthService(userRepo repository.UserRepository, jwtUtil *utils.JWTUtil, requirePassword bool) AuthService {
	return &authService{
		userRepo:        userRepo,
		jwtUtil:         jwtUtil,
		requirePassword: requirePassword,
	}
}

// IssueToken verifies the credentials that exist for email and signs a token
func (s *authService) IssueToken(ctx context.Context, email, password string) (string, error) {
	user, err := s.userRepo.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("error finding user by email: %w", err)
	}

	switch {
	case user != nil && user.PasswordHash != "":
		if !utils.CheckPasswordHash(password, user.PasswordHash) {
			return "", ErrInvalidCredentials
		}
	case s.requirePassword:
		return "", ErrInvalidCredentials
	default:
		log.Debugf("issuing token for %s without password check", email)
	}

	token, err := s.jwtUtil.GenerateToken(email)
	if err != nil {
		return "", fmt.Errorf("failed to generate token: %w", err)
	}
	return token, nil
}
