package repository

import (
	"context"
	"fmt"

	"bistro_boss/internal/model"
)

type cartRepository struct {
	db DB
}

// NewCartRepository creates a new CartRepository
func NewCartRepository(db DB) CartRepository {
	return &cartRepository{db: db}
}

// FindByEmail lists the cart items owned by email
func (r *cartRepository) FindByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	sql := `SELECT id, item_id, email, name, image, price, extra FROM cart WHERE email = $1 ORDER BY created_at`
	rows, err := r.db.Query(ctx, sql, email)
	if err != nil {
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}
	defer rows.Close()

	items := []model.CartItem{}
	for rows.Next() {
		var c model.CartItem
		if err := rows.Scan(&c.ID, &c.ItemID, &c.Email, &c.Name, &c.Image, &c.Price, &c.Extra); err != nil {
			return nil, fmt.Errorf("failed to scan cart row: %w", err)
		}
		items = append(items, c)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating cart rows: %w", err)
	}
	return items, nil
}

// Create inserts a cart item and assigns its id
func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) error {
	item.ID = newID()
	sql := `INSERT INTO cart (id, item_id, email, name, image, price, extra) VALUES ($1, $2, $3, $4, $5, $6, $7)`
	if _, err := r.db.Exec(ctx, sql, item.ID, item.ItemID, item.Email, item.Name, item.Image, item.Price, extraColumn(item.Extra)); err != nil {
		return fmt.Errorf("failed to create cart item: %w", err)
	}
	return nil
}

// Delete removes at most one cart item. A missing id is not an error.
func (r *cartRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM cart WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete cart item: %w", err)
	}
	return &model.DeleteResult{DeletedCount: cmdTag.RowsAffected()}, nil
}
