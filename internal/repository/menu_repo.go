package repository

import (
	"context"
	"fmt"

	"bistro_boss/internal/model"
)

type menuRepository struct {
	db DB
}

// NewMenuRepository creates a new MenuRepository
func NewMenuRepository(db DB) MenuRepository {
	return &menuRepository{db: db}
}

// FindAll returns the whole menu
func (r *menuRepository) FindAll(ctx context.Context) ([]model.MenuItem, error) {
	sql := `SELECT id, name, category, price, recipe, image FROM menu ORDER BY category, name`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}
	defer rows.Close()

	items := []model.MenuItem{}
	for rows.Next() {
		var m model.MenuItem
		if err := rows.Scan(&m.ID, &m.Name, &m.Category, &m.Price, &m.Recipe, &m.Image); err != nil {
			return nil, fmt.Errorf("failed to scan menu row: %w", err)
		}
		items = append(items, m)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating menu rows: %w", err)
	}
	return items, nil
}

// Create inserts a menu item and assigns its id
func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	item.ID = newID()
	sql := `INSERT INTO menu (id, name, category, price, recipe, image) VALUES ($1, $2, $3, $4, $5, $6)`
	if _, err := r.db.Exec(ctx, sql, item.ID, item.Name, item.Category, item.Price, item.Recipe, item.Image); err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}
	return nil
}

// Delete removes at most one menu item. A missing id is not an error.
func (r *menuRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	if err := checkID(id); err != nil {
		return nil, err
	}
	cmdTag, err := r.db.Exec(ctx, `DELETE FROM menu WHERE id = $1`, id)
	if err != nil {
		return nil, fmt.Errorf("failed to delete menu item: %w", err)
	}
	return &model.DeleteResult{DeletedCount: cmdTag.RowsAffected()}, nil
}

func (r *menuRepository) EstimatedCount(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, r.db, "menu")
}
