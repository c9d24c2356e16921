package repository

import (
	"context"
	"fmt"

	"bistro_boss/internal/model"
)

type paymentRepository struct {
	db DB
}

// NewPaymentRepository creates a new PaymentRepository
func NewPaymentRepository(db DB) PaymentRepository {
	return &paymentRepository{db: db}
}

// RecordCheckout inserts the payment and clears its cart items in one transaction
func (r *paymentRepository) RecordCheckout(ctx context.Context, p *model.Payment) (_ *model.CheckoutResult, err error) {
	for _, id := range p.CartIDs {
		if err = checkID(id); err != nil {
			return nil, err
		}
	}
	p.ID = newID()
	if p.CartIDs == nil {
		p.CartIDs = []string{}
	}
	if p.MenuItemIDs == nil {
		p.MenuItemIDs = []string{}
	}

	tx, err := r.db.Begin(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to begin checkout: %w", err)
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback(ctx)
		}
	}()

	insertSQL := `INSERT INTO payments (id, email, price, transaction_id, date, cart_ids, menu_item_ids, status)
                  VALUES ($1, $2, $3, $4, $5, $6, $7, $8)`
	if _, err = tx.Exec(ctx, insertSQL, p.ID, p.Email, p.Price, p.TransactionID, p.Date, p.CartIDs, p.MenuItemIDs, p.Status); err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}
	cmdTag, err := tx.Exec(ctx, `DELETE FROM cart WHERE id = ANY($1)`, p.CartIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to clear cart items: %w", err)
	}
	if err = tx.Commit(ctx); err != nil {
		return nil, fmt.Errorf("failed to commit checkout: %w", err)
	}

	return &model.CheckoutResult{
		PaymentResult: model.InsertResult{InsertedID: p.ID},
		DeleteResult:  &model.DeleteResult{DeletedCount: cmdTag.RowsAffected()},
	}, nil
}

// FindAll loads every payment
func (r *paymentRepository) FindAll(ctx context.Context) ([]model.Payment, error) {
	sql := `SELECT id, email, price, transaction_id, date, cart_ids, menu_item_ids, status FROM payments ORDER BY date`
	rows, err := r.db.Query(ctx, sql)
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	defer rows.Close()

	payments := []model.Payment{}
	for rows.Next() {
		var p model.Payment
		if err := rows.Scan(&p.ID, &p.Email, &p.Price, &p.TransactionID, &p.Date, &p.CartIDs, &p.MenuItemIDs, &p.Status); err != nil {
			return nil, fmt.Errorf("failed to scan payment row: %w", err)
		}
		payments = append(payments, p)
	}
	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating payment rows: %w", err)
	}
	return payments, nil
}

func (r *paymentRepository) EstimatedCount(ctx context.Context) (int64, error) {
	return estimatedCount(ctx, r.db, "payments")
}
