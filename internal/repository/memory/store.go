// Package memory keeps every collection in process memory. It backs local
// development and the handler tests; all data is lost on restart.
package memory

import (
	"context"
	"fmt"
	"sync"

	"bistro_boss/internal/model"
	"bistro_boss/internal/repository"

	"github.com/google/uuid"
)

// Store holds all collections behind one lock so checkout stays atomic
type Store struct {
	mu       sync.RWMutex
	users    []model.User
	menu     []model.MenuItem
	reviews  []model.Review
	cart     []model.CartItem
	payments []model.Payment
}

// NewStore creates an empty store
func NewStore() *Store {
	return &Store{}
}

// Repositories exposes the store through the repository interfaces
func (s *Store) Repositories() *repository.Store {
	return &repository.Store{
		Users:    &userRepo{s},
		Menu:     &menuRepo{s},
		Reviews:  &reviewRepo{s},
		Carts:    &cartRepo{s},
		Payments: &paymentRepo{s},
		Pinger:   s,
	}
}

// Ping always succeeds
func (s *Store) Ping(ctx context.Context) error {
	return ctx.Err()
}

// SeedReviews replaces the review collection; reviews have no write endpoint
func (s *Store) SeedReviews(reviews ...model.Review) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.reviews = nil
	for _, r := range reviews {
		if r.ID == "" {
			r.ID = uuid.NewString()
		}
		s.reviews = append(s.reviews, r)
	}
}

func checkID(id string) error {
	if _, err := uuid.Parse(id); err != nil {
		return fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}
	return nil
}

type userRepo struct{ s *Store }

func (r *userRepo) Create(ctx context.Context, user *model.User) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	user.ID = uuid.NewString()
	r.s.users = append(r.s.users, *user)
	return nil
}

func (r *userRepo) FindByEmail(ctx context.Context, email string) (*model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	for _, u := range r.s.users {
		if u.Email == email {
			found := u
			return &found, nil
		}
	}
	return nil, nil
}

func (r *userRepo) FindAll(ctx context.Context) ([]model.User, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]model.User{}, r.s.users...), nil
}

func (r *userRepo) SetRole(ctx context.Context, id, role string) (*model.UpdateResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	res := &model.UpdateResult{}
	for i := range r.s.users {
		if r.s.users[i].ID != id {
			continue
		}
		res.MatchedCount = 1
		if r.s.users[i].Role != role {
			r.s.users[i].Role = role
			res.ModifiedCount = 1
		}
		break
	}
	return res, nil
}

func (r *userRepo) EstimatedCount(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.users)), nil
}

type menuRepo struct{ s *Store }

func (r *menuRepo) FindAll(ctx context.Context) ([]model.MenuItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]model.MenuItem{}, r.s.menu...), nil
}

func (r *menuRepo) Create(ctx context.Context, item *model.MenuItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item.ID = uuid.NewString()
	r.s.menu = append(r.s.menu, *item)
	return nil
}

func (r *menuRepo) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, m := range r.s.menu {
		if m.ID == id {
			r.s.menu = append(r.s.menu[:i], r.s.menu[i+1:]...)
			return &model.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &model.DeleteResult{}, nil
}

func (r *menuRepo) EstimatedCount(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.menu)), nil
}

type reviewRepo struct{ s *Store }

func (r *reviewRepo) FindAll(ctx context.Context) ([]model.Review, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]model.Review{}, r.s.reviews...), nil
}

type cartRepo struct{ s *Store }

func (r *cartRepo) FindByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	items := []model.CartItem{}
	for _, c := range r.s.cart {
		if c.Email == email {
			items = append(items, c)
		}
	}
	return items, nil
}

func (r *cartRepo) Create(ctx context.Context, item *model.CartItem) error {
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	item.ID = uuid.NewString()
	r.s.cart = append(r.s.cart, *item)
	return nil
}

func (r *cartRepo) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()
	for i, c := range r.s.cart {
		if c.ID == id {
			r.s.cart = append(r.s.cart[:i], r.s.cart[i+1:]...)
			return &model.DeleteResult{DeletedCount: 1}, nil
		}
	}
	return &model.DeleteResult{}, nil
}

type paymentRepo struct{ s *Store }

func (r *paymentRepo) RecordCheckout(ctx context.Context, p *model.Payment) (*model.CheckoutResult, error) {
	for _, id := range p.CartIDs {
		if err := checkID(id); err != nil {
			return nil, err
		}
	}
	r.s.mu.Lock()
	defer r.s.mu.Unlock()

	p.ID = uuid.NewString()
	r.s.payments = append(r.s.payments, *p)

	purchased := make(map[string]bool, len(p.CartIDs))
	for _, id := range p.CartIDs {
		purchased[id] = true
	}
	kept := r.s.cart[:0]
	var deleted int64
	for _, c := range r.s.cart {
		if purchased[c.ID] {
			deleted++
			continue
		}
		kept = append(kept, c)
	}
	r.s.cart = kept

	return &model.CheckoutResult{
		PaymentResult: model.InsertResult{InsertedID: p.ID},
		DeleteResult:  &model.DeleteResult{DeletedCount: deleted},
	}, nil
}

func (r *paymentRepo) FindAll(ctx context.Context) ([]model.Payment, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return append([]model.Payment{}, r.s.payments...), nil
}

func (r *paymentRepo) EstimatedCount(ctx context.Context) (int64, error) {
	r.s.mu.RLock()
	defer r.s.mu.RUnlock()
	return int64(len(r.s.payments)), nil
}
