package service

import (
	"context"
	"fmt"
	"math"

	"bistro_boss/internal/model"
	"bistro_boss/internal/repository"
)

// StatsService builds the admin dashboard summary
type StatsService interface {
	AdminStats(ctx context.Context) (*model.AdminStats, error)
}

type statsService struct {
	store *repository.Store
}

// NewStatsService creates a new StatsService
func NewStatsService(store *repository.Store) StatsService {
	return &statsService{store: store}
}

// AdminStats uses approximate counts and sums revenue over every payment
func (s *statsService) AdminStats(ctx context.Context) (*model.AdminStats, error) {
	users, err := s.store.Users.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count users: %w", err)
	}
	menuItems, err := s.store.Menu.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count menu items: %w", err)
	}
	orders, err := s.store.Payments.EstimatedCount(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders: %w", err)
	}

	payments, err := s.store.Payments.FindAll(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load payments: %w", err)
	}
	var revenue float64
	for _, p := range payments {
		revenue += p.Price
	}

	return &model.AdminStats{
		Users:     users,
		MenuItems: menuItems,
		Orders:    orders,
		Revenue:   math.Round(revenue*100) / 100,
	}, nil
}
