package catalog

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "products"

// Repository provides read access to the product collection.
type Repository struct {
	col *mongo.Collection
}

// NewRepository constructs a catalog repository bound to the provided database.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(collectionName)}
}

// FindAll returns every product in storage order.
func (r *Repository) FindAll(ctx context.Context) ([]Product, error) {
	cursor, err := r.col.Find(ctx, bson.D{})
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	products := []Product{}
	if err := cursor.All(ctx, &products); err != nil {
		return nil, err
	}
	return products, nil
}

// FindByID returns the product with the given identity.
func (r *Repository) FindByID(ctx context.Context, id primitive.ObjectID) (*Product, error) {
	var p Product
	if err := r.col.FindOne(ctx, bson.M{"_id": id}).Decode(&p); err != nil {
		return nil, err
	}
	return &p, nil
}
