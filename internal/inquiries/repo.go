package inquiries

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
)

const collectionName = "inquiries"

// Repository encapsulates inquiry persistence.
type Repository struct {
	col *mongo.Collection
}

// NewRepository constructs an inquiry repository bound to the provided database.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(collectionName)}
}

// Insert stores a new inquiry and returns its generated identity.
func (r *Repository) Insert(ctx context.Context, inquiry *Inquiry) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, inquiry)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, mongo.ErrNilDocument
	}
	return oid, nil
}

// CountForProduct counts inquiries referencing the given product.
func (r *Repository) CountForProduct(ctx context.Context, productID primitive.ObjectID) (int64, error) {
	return r.col.CountDocuments(ctx, bson.M{"productId": productID})
}
