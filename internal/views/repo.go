package views

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "product_views"

// Repository encapsulates view-event persistence.
type Repository struct {
	col *mongo.Collection
}

// NewRepository constructs a view repository bound to the provided database.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(collectionName)}
}

// Insert stores one view event.
func (r *Repository) Insert(ctx context.Context, view *View) error {
	_, err := r.col.InsertOne(ctx, view)
	return err
}

// CountForProduct counts view events for the given product.
func (r *Repository) CountForProduct(ctx context.Context, productID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"productId": productID})
}

// DistinctVisitors returns the distinct non-empty visitor identifiers that
// viewed the given product.
func (r *Repository) DistinctVisitors(ctx context.Context, productID primitive.ObjectID) ([]string, error) {
	filter := bson.M{
		"productId": productID,
		"visitorId": bson.M{"$exists": true, "$ne": ""},
	}
	values, err := r.col.Distinct(ctx, "visitorId", filter)
	if err != nil {
		return nil, err
	}
	ids := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			ids = append(ids, s)
		}
	}
	return ids, nil
}
