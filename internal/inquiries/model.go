package inquiries

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Status is the follow-up state of an inquiry. Only pending is produced by
// the registration flows; the other two exist for the admin follow-up tooling.
type Status string

const (
	StatusPending   Status = "pending"
	StatusContacted Status = "contacted"
	StatusResolved  Status = "resolved"
)

// Inquiry links a visitor to a product they expressed interest in. The
// visitor is referenced by phone for compatibility with existing documents;
// VisitorID is stamped best-effort on new inquiries so the reference can
// migrate to identity keys without breaking legacy phone-only records.
type Inquiry struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	VisitorPhone string              `bson:"visitorPhone" json:"visitorPhone"`
	VisitorID    *primitive.ObjectID `bson:"visitorId,omitempty" json:"visitorId,omitempty"`
	ProductID    primitive.ObjectID  `bson:"productId" json:"productId"`
	Status       Status              `bson:"status" json:"status"`
	CreatedAt    time.Time           `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updatedAt" json:"updatedAt"`
}

// Receipt is returned to the frontend after a successful submission.
type Receipt struct {
	InquiryID string    `json:"inquiryId"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}
