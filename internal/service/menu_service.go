package service

import (
	"context"
	"fmt"

	"bistro_boss/internal/model"
	"bistro_boss/internal/repository"
)

// MenuService serves the menu and the reviews shown next to it
type MenuService interface {
	ListMenu(ctx context.Context) ([]model.MenuItem, error)
	CreateMenuItem(ctx context.Context, item model.MenuItem) (*model.InsertResult, error)
	DeleteMenuItem(ctx context.Context, id string) (*model.DeleteResult, error)
	ListReviews(ctx context.Context) ([]model.Review, error)
}

type menuService struct {
	menu    repository.MenuRepository
	reviews repository.ReviewRepository
}

// NewMenuService creates a new MenuService
func NewMenuService(menu repository.MenuRepository, reviews repository.ReviewRepository) MenuService {
	return &menuService{menu: menu, reviews: reviews}
}

func (s *menuService) ListMenu(ctx context.Context) ([]model.MenuItem, error) {
	items, err := s.menu.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list menu: %w", err)
	}
	return items, nil
}

func (s *menuService) CreateMenuItem(ctx context.Context, item model.MenuItem) (*model.InsertResult, error) {
	if err := s.menu.Create(ctx, &item); err != nil {
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}
	return &model.InsertResult{InsertedID: item.ID}, nil
}

func (s *menuService) DeleteMenuItem(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := s.menu.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete menu item: %w", err)
	}
	return res, nil
}

func (s *menuService) ListReviews(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.reviews.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
