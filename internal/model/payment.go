package model

import "time"

const (
	PaymentStatusPending = "pending"
)

// Payment records a completed checkout
type Payment struct {
	ID            string    `json:"_id"`
	Email         string    `json:"email"`
	Price         float64   `json:"price"`
	TransactionID string    `json:"transactionId"`
	Date          time.Time `json:"date"`
	CartIDs       []string  `json:"cartIds"`
	MenuItemIDs   []string  `json:"menuItemIds"`
	Status        string    `json:"status"`
}

// PaymentIntentRequest asks the processor for a new intent
type PaymentIntentRequest struct {
	Price float64 `json:"price" binding:"required,gt=0"`
}

// CheckoutResult carries the outcome of both checkout steps
type CheckoutResult struct {
	PaymentResult InsertResult  `json:"paymentResult"`
	DeleteResult  *DeleteResult `json:"deleteResult"`
}

// AdminStats is the dashboard summary
type AdminStats struct {
	Users     int64   `json:"users"`
	MenuItems int64   `json:"menuItems"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}
