package visitors

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Visitor is a registered exhibition attendee, identified by contact info.
// Field names mirror the documents the legacy frontend already reads.
type Visitor struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Phone     string             `bson:"phone" json:"phone"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}
