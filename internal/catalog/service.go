package catalog

import (
	"context"
	"errors"
	"fmt"

	"github.com/shopspring/decimal"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	pkgerrors "github.com/boothlabs/boothtrack-backend/pkg/errors"
)

const placeholderImage = "/placeholder.svg?height=500&width=500"

type repository interface {
	FindAll(ctx context.Context) ([]Product, error)
	FindByID(ctx context.Context, id primitive.ObjectID) (*Product, error)
}

// Service exposes catalog reads.
type Service interface {
	// ListAll returns all products in storage order, no pagination.
	ListAll(ctx context.Context) ([]Product, error)
	// GetByID resolves an identity string to the display projection.
	GetByID(ctx context.Context, id string) (*Detail, error)
}

type service struct {
	repo repository
}

// NewService builds a catalog service with the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("catalog repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ListAll(ctx context.Context) ([]Product, error) {
	products, err := s.repo.FindAll(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "list products")
	}
	return products, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*Detail, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid product ID")
	}

	product, err := s.repo.FindByID(ctx, oid)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "fetch product")
	}

	return toDetail(product), nil
}

func toDetail(p *Product) *Detail {
	hex := p.ID.Hex()

	imageURL := p.ImageURL
	if imageURL == "" {
		imageURL = placeholderImage
	}

	features := p.Features
	if features == nil {
		features = []string{}
	}

	return &Detail{
		ID:              hex,
		DisplayID:       hex,
		Name:            p.Name,
		Description:     p.Description,
		LongDescription: p.Description,
		Category:        p.Category,
		Images:          []string{imageURL},
		ImageURL:        imageURL,
		Specifications: map[string]string{
			"Material": "High-quality materials",
			"Origin":   "Designed with care",
		},
		Features:      features,
		Price:         formatPrice(p.Price),
		OriginalPrice: p.Price,
		Stock:         p.Stock,
		Rating:        4.5,
		ReviewCount:   0,
	}
}

func formatPrice(price float64) string {
	return "$" + decimal.NewFromFloat(price).StringFixed(2)
}
