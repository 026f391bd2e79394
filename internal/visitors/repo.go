package visitors

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

const collectionName = "visitors"

// Repository encapsulates visitor persistence.
type Repository struct {
	col *mongo.Collection
}

// NewRepository constructs a visitor repository bound to the provided database.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{col: db.Collection(collectionName)}
}

// EnsureIndexes creates the unique contact indexes. Uniqueness at the storage
// level is what closes the concurrent-registration race; the lookup in the
// service is only the fast path.
func (r *Repository) EnsureIndexes(ctx context.Context) error {
	_, err := r.col.Indexes().CreateMany(ctx, []mongo.IndexModel{
		{
			Keys:    bson.D{{Key: "email", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_email"),
		},
		{
			Keys:    bson.D{{Key: "phone", Value: 1}},
			Options: options.Index().SetUnique(true).SetName("uniq_phone"),
		},
	})
	return err
}

// FindByEmailOrPhone returns the visitor whose email or phone matches.
func (r *Repository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*Visitor, error) {
	filter := bson.M{"$or": bson.A{
		bson.M{"email": email},
		bson.M{"phone": phone},
	}}
	var v Visitor
	if err := r.col.FindOne(ctx, filter).Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// FindByPhone returns the visitor registered with the given phone number.
func (r *Repository) FindByPhone(ctx context.Context, phone string) (*Visitor, error) {
	var v Visitor
	if err := r.col.FindOne(ctx, bson.M{"phone": phone}).Decode(&v); err != nil {
		return nil, err
	}
	return &v, nil
}

// Insert stores a new visitor and returns its generated identity.
func (r *Repository) Insert(ctx context.Context, v *Visitor) (primitive.ObjectID, error) {
	res, err := r.col.InsertOne(ctx, v)
	if err != nil {
		return primitive.NilObjectID, err
	}
	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return primitive.NilObjectID, mongo.ErrNilDocument
	}
	return oid, nil
}
