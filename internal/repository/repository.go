package repository

import (
	"context"
	"errors"

	"bistro_boss/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

var (
	ErrInvalidID = errors.New("invalid id")
	// ErrCartNotCleared means the payment was stored but its cart items were not removed.
	ErrCartNotCleared = errors.New("payment recorded but cart items were not cleared")
)

// UserRepository defines operations for user data.
// Finders return (nil, nil) when nothing matches.
type UserRepository interface {
	Create(ctx context.Context, user *model.User) error
	FindByEmail(ctx context.Context, email string) (*model.User, error)
	FindAll(ctx context.Context) ([]model.User, error)
	SetRole(ctx context.Context, id, role string) (*model.UpdateResult, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

// MenuRepository defines operations for menu items
type MenuRepository interface {
	FindAll(ctx context.Context) ([]model.MenuItem, error)
	Create(ctx context.Context, item *model.MenuItem) error
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

// ReviewRepository is read-only
type ReviewRepository interface {
	FindAll(ctx context.Context) ([]model.Review, error)
}

// CartRepository defines operations for cart items
type CartRepository interface {
	FindByEmail(ctx context.Context, email string) ([]model.CartItem, error)
	Create(ctx context.Context, item *model.CartItem) error
	Delete(ctx context.Context, id string) (*model.DeleteResult, error)
}

// PaymentRepository defines operations for payments.
// RecordCheckout stores the payment and removes the purchased cart items. Backends
// without transactions return ErrCartNotCleared together with a non-nil result when
// only the first step succeeded.
type PaymentRepository interface {
	RecordCheckout(ctx context.Context, payment *model.Payment) (*model.CheckoutResult, error)
	FindAll(ctx context.Context) ([]model.Payment, error)
	EstimatedCount(ctx context.Context) (int64, error)
}

// Pinger checks that the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// Store bundles the repositories of one backend
type Store struct {
	Users    UserRepository
	Menu     MenuRepository
	Reviews  ReviewRepository
	Carts    CartRepository
	Payments PaymentRepository
	Pinger   Pinger
}

// DB is the subset of pgxpool.Pool the PostgreSQL repositories use
type DB interface {
	Begin(ctx context.Context) (pgx.Tx, error)
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Ping(ctx context.Context) error
}

// NewPostgresStore wires every repository to the same PostgreSQL handle
func NewPostgresStore(db DB) *Store {
	return &Store{
		Users:    NewUserRepository(db),
		Menu:     NewMenuRepository(db),
		Reviews:  NewReviewRepository(db),
		Carts:    NewCartRepository(db),
		Payments: NewPaymentRepository(db),
		Pinger:   db,
	}
}
