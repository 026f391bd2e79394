package reporting

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Stats is the admin dashboard payload.
//
// TotalVisitors counts distinct visitor phones across the inquiry collection,
// not the visitor registry's size: it is "visitors who inquired". Recent
// inquiries use inner-join semantics and may therefore hold fewer rows than
// TotalInquiries suggests when a referenced visitor or product is gone.
type Stats struct {
	TotalInquiries         int64           `json:"totalInquiries"`
	TotalVisitors          int             `json:"totalVisitors"`
	AvgInquiriesPerVisitor float64         `json:"avgInquiriesPerVisitor"`
	ProductInquiries       []ProductCount  `json:"productInquiries"`
	RecentInquiries        []RecentInquiry `json:"recentInquiries"`
}

// ProductCount is one row of the per-product inquiry breakdown.
type ProductCount struct {
	ProductName string `bson:"productName" json:"productName"`
	Count       int64  `bson:"count" json:"count"`
}

// RecentInquiry is one row of the recent-activity list.
type RecentInquiry struct {
	VisitorName string    `bson:"visitorName" json:"visitorName"`
	ProductName string    `bson:"productName" json:"productName"`
	Timestamp   time.Time `bson:"timestamp" json:"timestamp"`
}

// ExportRow is one denormalized inquiry for the CSV feed. The joins are
// outer: fields of a missing visitor or product decode as zero values and are
// rendered as "N/A".
type ExportRow struct {
	ID              primitive.ObjectID `bson:"_id"`
	VisitorName     string             `bson:"visitorName"`
	VisitorEmail    string             `bson:"visitorEmail"`
	VisitorPhone    string             `bson:"visitorPhone"`
	ProductName     string             `bson:"productName"`
	ProductCategory string             `bson:"productCategory"`
	InquiryDate     time.Time          `bson:"inquiryDate"`
}
