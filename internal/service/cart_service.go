package service

import (
	"context"
	"fmt"

	"bistro_boss/internal/model"
	"bistro_boss/internal/repository"
)

// CartService manages per-user cart items
type CartService interface {
	ListCart(ctx context.Context, requestedEmail, authEmail string) ([]model.CartItem, error)
	AddItem(ctx context.Context, item model.CartItem) (*model.InsertResult, error)
	RemoveItem(ctx context.Context, id string) (*model.DeleteResult, error)
}

type cartService struct {
	repo repository.CartRepository
}

// NewCartService creates a new CartService
func NewCartService(repo repository.CartRepository) CartService {
	return &cartService{repo: repo}
}

// ListCart returns an empty cart when no email is given and refuses to list
// another user's cart.
func (s *cartService) ListCart(ctx context.Context, requestedEmail, authEmail string) ([]model.CartItem, error) {
	if requestedEmail == "" {
		return []model.CartItem{}, nil
	}
	if requestedEmail != authEmail {
		return nil, ErrEmailMismatch
	}
	items, err := s.repo.FindByEmail(ctx, requestedEmail)
	if err != nil {
		return nil, fmt.Errorf("failed to list cart: %w", err)
	}
	return items, nil
}

func (s *cartService) AddItem(ctx context.Context, item model.CartItem) (*model.InsertResult, error) {
	if err := s.repo.Create(ctx, &item); err != nil {
		return nil, fmt.Errorf("failed to add cart item: %w", err)
	}
	return &model.InsertResult{InsertedID: item.ID}, nil
}

func (s *cartService) RemoveItem(ctx context.Context, id string) (*model.DeleteResult, error) {
	res, err := s.repo.Delete(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to remove cart item: %w", err)
	}
	return res, nil
}
