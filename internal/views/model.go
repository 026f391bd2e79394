package views

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// View is one product page view. VisitorID is whatever opaque identifier the
// frontend carries in local storage; anonymous views omit it.
type View struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	ProductID primitive.ObjectID `bson:"productId"`
	VisitorID string             `bson:"visitorId,omitempty"`
	CreatedAt time.Time          `bson:"createdAt"`
}

// ProductStats is the per-product counter block on the detail page.
type ProductStats struct {
	ViewCount      int64 `json:"viewCount"`
	InquiryCount   int64 `json:"inquiryCount"`
	UniqueVisitors int64 `json:"uniqueVisitors"`
}
