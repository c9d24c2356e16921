package mongostore

import (
	"context"
	"fmt"

	"bistro_boss/internal/model"
	"bistro_boss/internal/repository"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

type paymentRepository struct {
	payments *mongo.Collection
	cart     *mongo.Collection
}

// NewPaymentRepository creates a PaymentRepository on the payments and cart collections
func NewPaymentRepository(db *mongo.Database) repository.PaymentRepository {
	return &paymentRepository{
		payments: db.Collection(paymentsCollection),
		cart:     db.Collection(cartCollection),
	}
}

// RecordCheckout runs in two phases: insert the payment, then bulk-delete the
// purchased cart items. If the second phase fails the payment stays recorded and
// the returned error wraps repository.ErrCartNotCleared.
func (r *paymentRepository) RecordCheckout(ctx context.Context, p *model.Payment) (*model.CheckoutResult, error) {
	oids, err := objectIDs(p.CartIDs)
	if err != nil {
		return nil, err
	}
	doc := paymentDoc{
		ID:            primitive.NewObjectID(),
		Email:         p.Email,
		Price:         p.Price,
		TransactionID: p.TransactionID,
		Date:          p.Date,
		CartIDs:       p.CartIDs,
		MenuItemIDs:   p.MenuItemIDs,
		Status:        p.Status,
	}
	if _, err := r.payments.InsertOne(ctx, doc); err != nil {
		return nil, fmt.Errorf("failed to insert payment: %w", err)
	}
	p.ID = doc.ID.Hex()
	result := &model.CheckoutResult{PaymentResult: model.InsertResult{InsertedID: p.ID}}

	res, err := r.cart.DeleteMany(ctx, bson.M{"_id": bson.M{"$in": oids}})
	if err != nil {
		return result, fmt.Errorf("%w: %w", repository.ErrCartNotCleared, err)
	}
	result.DeleteResult = &model.DeleteResult{DeletedCount: res.DeletedCount}
	return result, nil
}

func (r *paymentRepository) FindAll(ctx context.Context) ([]model.Payment, error) {
	cur, err := r.payments.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query payments: %w", err)
	}
	var docs []paymentDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode payments: %w", err)
	}
	payments := make([]model.Payment, 0, len(docs))
	for _, d := range docs {
		payments = append(payments, d.toModel())
	}
	return payments, nil
}

func (r *paymentRepository) EstimatedCount(ctx context.Context) (int64, error) {
	n, err := r.payments.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to estimate payment count: %w", err)
	}
	return n, nil
}
