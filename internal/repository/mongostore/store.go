// Package mongostore implements the repositories on MongoDB, using the
// collection layout of the existing BistroDb database.
package mongostore

import (
	"context"
	"fmt"

	"bistro_boss/internal/repository"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection    = "user"
	menuCollection     = "menu"
	reviewsCollection  = "reviews"
	cartCollection     = "cart"
	paymentsCollection = "payments"
)

// NewStore wires every repository to collections of db
func NewStore(db *mongo.Database) *repository.Store {
	return &repository.Store{
		Users:    NewUserRepository(db),
		Menu:     NewMenuRepository(db),
		Reviews:  NewReviewRepository(db),
		Carts:    NewCartRepository(db),
		Payments: NewPaymentRepository(db),
		Pinger:   pinger{db.Client()},
	}
}

type pinger struct {
	client *mongo.Client
}

func (p pinger) Ping(ctx context.Context) error {
	return p.client.Ping(ctx, readpref.Primary())
}

func objectID(id string) (primitive.ObjectID, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return primitive.NilObjectID, fmt.Errorf("%w: %q", repository.ErrInvalidID, id)
	}
	return oid, nil
}

func objectIDs(ids []string) ([]primitive.ObjectID, error) {
	oids := make([]primitive.ObjectID, 0, len(ids))
	for _, id := range ids {
		oid, err := objectID(id)
		if err != nil {
			return nil, err
		}
		oids = append(oids, oid)
	}
	return oids, nil
}
