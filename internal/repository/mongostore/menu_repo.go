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

type menuRepository struct {
	coll *mongo.Collection
}

// NewMenuRepository creates a MenuRepository on the menu collection
func NewMenuRepository(db *mongo.Database) repository.MenuRepository {
	return &menuRepository{coll: db.Collection(menuCollection)}
}

func (r *menuRepository) FindAll(ctx context.Context) ([]model.MenuItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query menu: %w", err)
	}
	var docs []menuDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode menu: %w", err)
	}
	items := make([]model.MenuItem, 0, len(docs))
	for _, d := range docs {
		items = append(items, d.toModel())
	}
	return items, nil
}

func (r *menuRepository) Create(ctx context.Context, item *model.MenuItem) error {
	doc := menuDoc{
		ID:       primitive.NewObjectID(),
		Name:     item.Name,
		Category: item.Category,
		Price:    item.Price,
		Recipe:   item.Recipe,
		Image:    item.Image,
	}
	if _, err := r.coll.InsertOne(ctx, doc); err != nil {
		return fmt.Errorf("failed to insert menu item: %w", err)
	}
	item.ID = doc.ID.Hex()
	return nil
}

func (r *menuRepository) Delete(ctx context.Context, id string) (*model.DeleteResult, error) {
	oid, err := objectID(id)
	if err != nil {
		return nil, err
	}
	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid})
	if err != nil {
		return nil, fmt.Errorf("failed to delete menu item: %w", err)
	}
	return &model.DeleteResult{DeletedCount: res.DeletedCount}, nil
}

func (r *menuRepository) EstimatedCount(ctx context.Context) (int64, error) {
	n, err := r.coll.EstimatedDocumentCount(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to estimate menu count: %w", err)
	}
	return n, nil
}

type reviewRepository struct {
	coll *mongo.Collection
}

// NewReviewRepository creates a ReviewRepository on the reviews collection
func NewReviewRepository(db *mongo.Database) repository.ReviewRepository {
	return &reviewRepository{coll: db.Collection(reviewsCollection)}
}

func (r *reviewRepository) FindAll(ctx context.Context) ([]model.Review, error) {
	cur, err := r.coll.Find(ctx, bson.M{})
	if err != nil {
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}
	var docs []reviewDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode reviews: %w", err)
	}
	reviews := make([]model.Review, 0, len(docs))
	for _, d := range docs {
		reviews = append(reviews, model.Review{ID: d.ID.Hex(), Name: d.Name, Details: d.Details, Rating: d.Rating})
	}
	return reviews, nil
}
