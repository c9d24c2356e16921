package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bistro_boss/internal/model"
	"bistro_boss/internal/repository"
	"bistro_boss/internal/utils"
)

var ErrUserAlreadyExists = errors.New("user already exists")

// UserService manages user records and roles
type UserService interface {
	ListUsers(ctx context.Context) ([]model.User, error)
	Register(ctx context.Context, req model.RegisterUserRequest) (*model.InsertResult, error)
	PromoteToAdmin(ctx context.Context, id string) (*model.UpdateResult, error)
	IsAdmin(ctx context.Context, requestedEmail, authEmail string) (bool, error)
}

type userService struct {
	repo repository.UserRepository
}

// NewUserService creates a new UserService
func NewUserService(repo repository.UserRepository) UserService {
	return &userService{repo: repo}
}

func (s *userService) ListUsers(ctx context.Context) ([]model.User, error) {
	users, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list users: %w", err)
	}
	return users, nil
}

// Register stores the user unless one with the same email already exists
func (s *userService) Register(ctx context.Context, req model.RegisterUserRequest) (*model.InsertResult, error) {
	existing, err := s.repo.FindByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing user: %w", err)
	}
	if existing != nil {
		return nil, ErrUserAlreadyExists
	}

	user := &model.User{
		Name:      req.Name,
		Email:     req.Email,
		Photo:     req.Photo,
		Role:      model.RoleDefault,
		CreatedAt: time.Now(),
		Extra:     req.Extra,
	}
	if req.Password != "" {
		hash, err := utils.HashPassword(req.Password)
		if err != nil {
			return nil, fmt.Errorf("failed to hash password: %w", err)
		}
		user.PasswordHash = hash
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("failed to create user in repository: %w", err)
	}
	log.Infof("registered user %s (%s)", user.Email, user.ID)
	return &model.InsertResult{InsertedID: user.ID}, nil
}

// PromoteToAdmin sets the admin role. An unknown id matches nothing and is not an error.
func (s *userService) PromoteToAdmin(ctx context.Context, id string) (*model.UpdateResult, error) {
	res, err := s.repo.SetRole(ctx, id, model.RoleAdmin)
	if err != nil {
		return nil, fmt.Errorf("failed to promote user: %w", err)
	}
	if res.ModifiedCount > 0 {
		log.Noticef("user %s promoted to admin", id)
	}
	return res, nil
}

// IsAdmin answers for the authenticated user only; asking about anyone else is "no"
func (s *userService) IsAdmin(ctx context.Context, requestedEmail, authEmail string) (bool, error) {
	if requestedEmail != authEmail {
		return false, nil
	}
	user, err := s.repo.FindByEmail(ctx, requestedEmail)
	if err != nil {
		return false, fmt.Errorf("failed to find user: %w", err)
	}
	return user.IsAdmin(), nil
}
