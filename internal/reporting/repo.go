package reporting

import (
	"context"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

const (
	inquiriesCollection = "inquiries"
	visitorsCollection  = "visitors"
	productsCollection  = "products"
)

// Repository runs the cross-collection aggregation pipelines. All pipelines
// originate from the inquiry collection; a product with zero inquiries never
// produces a row.
type Repository struct {
	inquiries *mongo.Collection
}

// NewRepository constructs a reporting repository bound to the provided database.
func NewRepository(db *mongo.Database) *Repository {
	return &Repository{inquiries: db.Collection(inquiriesCollection)}
}

// CountInquiries counts every inquiry record.
func (r *Repository) CountInquiries(ctx context.Context) (int64, error) {
	return r.inquiries.CountDocuments(ctx, bson.D{})
}

// DistinctVisitorPhones returns the distinct visitorPhone values across all
// inquiries.
func (r *Repository) DistinctVisitorPhones(ctx context.Context) ([]string, error) {
	values, err := r.inquiries.Distinct(ctx, "visitorPhone", bson.D{})
	if err != nil {
		return nil, err
	}
	phones := make([]string, 0, len(values))
	for _, v := range values {
		if s, ok := v.(string); ok {
			phones = append(phones, s)
		}
	}
	return phones, nil
}

// ProductBreakdown groups inquiries by product, resolves display names and
// sorts by count descending. Product name ascending is the fixed tie-break so
// repeated calls on identical data order identically.
func (r *Repository) ProductBreakdown(ctx context.Context) ([]ProductCount, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$group", Value: bson.D{
			{Key: "_id", Value: "$productId"},
			{Key: "count", Value: bson.D{{Key: "$sum", Value: 1}}},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: productsCollection},
			{Key: "localField", Value: "_id"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "productDetails"},
		}}},
		bson.D{{Key: "$unwind", Value: "$productDetails"}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "productName", Value: "$productDetails.name"},
			{Key: "count", Value: 1},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{
			{Key: "count", Value: -1},
			{Key: "productName", Value: 1},
		}}},
	}

	cursor, err := r.inquiries.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []ProductCount{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// RecentInquiries returns the most recently created inquiries, resolved to
// visitor and product display names. The unwinds are strict, so a row whose
// visitor or product no longer resolves is dropped.
func (r *Repository) RecentInquiries(ctx context.Context, limit int) ([]RecentInquiry, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$sort", Value: bson.D{{Key: "createdAt", Value: -1}}}},
		bson.D{{Key: "$limit", Value: limit}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: productsCollection},
			{Key: "localField", Value: "productId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "productInfo"},
		}}},
		bson.D{{Key: "$unwind", Value: "$productInfo"}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: visitorsCollection},
			{Key: "localField", Value: "visitorPhone"},
			{Key: "foreignField", Value: "phone"},
			{Key: "as", Value: "visitorInfo"},
		}}},
		bson.D{{Key: "$unwind", Value: "$visitorInfo"}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 0},
			{Key: "visitorName", Value: "$visitorInfo.name"},
			{Key: "productName", Value: "$productInfo.name"},
			{Key: "timestamp", Value: "$createdAt"},
		}}},
	}

	cursor, err := r.inquiries.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []RecentInquiry{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}

// ExportRows joins every inquiry to its visitor and product with outer-join
// semantics, newest first.
func (r *Repository) ExportRows(ctx context.Context) ([]ExportRow, error) {
	pipeline := mongo.Pipeline{
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: visitorsCollection},
			{Key: "localField", Value: "visitorPhone"},
			{Key: "foreignField", Value: "phone"},
			{Key: "as", Value: "visitorDetails"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$visitorDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$lookup", Value: bson.D{
			{Key: "from", Value: productsCollection},
			{Key: "localField", Value: "productId"},
			{Key: "foreignField", Value: "_id"},
			{Key: "as", Value: "productDetails"},
		}}},
		bson.D{{Key: "$unwind", Value: bson.D{
			{Key: "path", Value: "$productDetails"},
			{Key: "preserveNullAndEmptyArrays", Value: true},
		}}},
		bson.D{{Key: "$project", Value: bson.D{
			{Key: "_id", Value: 1},
			{Key: "visitorName", Value: "$visitorDetails.name"},
			{Key: "visitorEmail", Value: "$visitorDetails.email"},
			{Key: "visitorPhone", Value: "$visitorPhone"},
			{Key: "productName", Value: "$productDetails.name"},
			{Key: "productCategory", Value: "$productDetails.category"},
			{Key: "inquiryDate", Value: "$createdAt"},
		}}},
		bson.D{{Key: "$sort", Value: bson.D{{Key: "inquiryDate", Value: -1}}}},
	}

	cursor, err := r.inquiries.Aggregate(ctx, pipeline)
	if err != nil {
		return nil, err
	}
	defer cursor.Close(ctx)

	rows := []ExportRow{}
	if err := cursor.All(ctx, &rows); err != nil {
		return nil, err
	}
	return rows, nil
}
