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

type cartRepository struct {
	coll *mongo.Collection
}

// NewCartRepository creates a CartRepository on the cart collection
func NewCartRepository(db *mongo.Database) repository.CartRepository {
	return &cartRepository{coll: db.Collection(cartCollection)}
}

func (r *cartRepository) FindByEmail(ctx context.Context, email string) ([]model.CartItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{"email": email})
	if err != nil {
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}
	var docs []cartDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode cart: %w", err)
	}
	items := make([]model.CartItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}
	return items, nil
}

func (r *cartRepository) Create(ctx context.Context, item *model.CartItem) error {
	doc := cartDoc{
		ID:     primitive.NewObjectID(),
		ItemID: item.ItemID,
		Email:  item.Email,
		Name:   item.Name,
		Image:  item.Image,
		Price:  item.Price,
		Extra:  inlineExtra(item.Extra, "_id", "itemId", "email", "name", "image", "price"),
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert cart item: %w", err)
	}
	item.ID = doc.ID.Hex()
	return nil
}

func (r *cartRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete cart item: %w", err)
	}
	return &model.DeleteResult{DeletedCount: res.DeletedCount}, nil
}
