package catalog

import (
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Product is a catalog entry as stored. The catalog is externally seeded and
// read-only from this service's perspective.
type Product struct {
	ID          primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name        string             `bson:"name" json:"name"`
	Description string             `bson:"description" json:"description"`
	Category    string             `bson:"category" json:"category"`
	Price       float64            `bson:"price" json:"price"`
	Stock       int                `bson:"stock" json:"stock"`
	ImageURL    string             `bson:"imageUrl" json:"imageUrl"`
	Features    []string           `bson:"features" json:"features"`
}

// Detail is the display projection of a stored product. Specifications are
// synthesized placeholders: the stored documents carry none, and the detail
// page expects the field (a display compromise, not a data concern).
type Detail struct {
	ID              string            `json:"_id"`
	DisplayID       string            `json:"id"`
	Name            string            `json:"name"`
	Description     string            `json:"description"`
	LongDescription string            `json:"longDescription"`
	Category        string            `json:"category"`
	Images          []string          `json:"images"`
	ImageURL        string            `json:"imageUrl"`
	Specifications  map[string]string `json:"specifications"`
	Features        []string          `json:"features"`
	Price           string            `json:"price"`
	OriginalPrice   float64           `json:"originalPrice"`
	Stock           int               `json:"stock"`
	Rating          float64           `json:"rating"`
	ReviewCount     int               `json:"reviewCount"`
}
