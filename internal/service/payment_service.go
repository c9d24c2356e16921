package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"bistro_boss/internal/model"
	"bistro_boss/internal/payment"
	"bistro_boss/internal/repository"
)

// PaymentService bridges the card processor and the payment records
type PaymentService interface {
	CreateIntent(ctx context.Context, price float64) (*payment.Intent, error)
	RecordPayment(ctx context.Context, authEmail string, p model.Payment) (*model.CheckoutResult, error)
}

type paymentService struct {
	gateway  payment.Gateway
	payments repository.PaymentRepository
}

// NewPaymentService creates a new PaymentService
func NewPaymentService(gateway payment.Gateway, payments repository.PaymentRepository) PaymentService {
	return &paymentService{gateway: gateway, payments: payments}
}

// CreateIntent charges price rounded up to whole cents
func (s *paymentService) CreateIntent(ctx context.Context, price float64) (*payment.Intent, error) {
	amount, err := payment.MinorUnits(price)
	if err != nil {
		return nil, err
	}
	intent, err := s.gateway.CreateIntent(ctx, amount)
	if err != nil {
		return nil, fmt.Errorf("processor rejected intent for %d: %w", amount, err)
	}
	return intent, nil
}

// RecordPayment stores the payment and clears the purchased cart items. On a
// partial failure the returned result still describes the stored payment.
func (s *paymentService) RecordPayment(ctx context.Context, authEmail string, p model.Payment) (*model.CheckoutResult, error) {
	if p.Email == "" {
		p.Email = authEmail
	}
	if p.Date.IsZero() {
		p.Date = time.Now().UTC()
	}
	if p.Status == "" {
		p.Status = model.PaymentStatusPending
	}

	res, err := s.payments.RecordCheckout(ctx, &p)
	if err != nil {
		if errors.Is(err, repository.ErrCartNotCleared) {
			log.Errorf("payment %s (transaction %s) stored but cart items %v remain: %v", p.ID, p.TransactionID, p.CartIDs, err)
			return res, err
		}
		return nil, fmt.Errorf("failed to record payment: %w", err)
	}
	log.Infof("payment %s recorded for %s, %d cart item(s) cleared", p.ID, p.Email, res.DeleteResult.DeletedCount)
	return res, nil
}
