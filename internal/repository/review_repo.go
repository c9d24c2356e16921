package repository

import (
	"context"
	"fmt"

	"bistro_boss/internal/model"
)

type reviewRepository struct {
	db DB
}

// NewReviewRepository creates a new ReviewRepository
func NewReviewRepository(db DB) ReviewRepository {
	return &reviewRepository{db: db}
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]model.Review, error) {
	rows, err := r.db.Query(ctx, `SELECT id, name, details, rating FROM reviews`)
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	defer rows.Close()

	reviews := []model.Review{}
	for rows.Next() {
		var rv model.Review
		if err := rows.Scan(&rv.ID, &rv.Name, &rv.Details, &rv.Rating); err != nil {
			return nil, fmt.Errorf("failed to scan review row: %w", err)
		}
		reviews = append(reviews, rv)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating review rows: %w", err)
	}
	return reviews, nil
}
