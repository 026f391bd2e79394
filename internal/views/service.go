package views

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/boothlabs/boothtrack-backend/internal/catalog"
	pkgerrors "github.com/boothlabs/boothtrack-backend/pkg/errors"
)

type repository interface {
	Insert(ctx context.Context, view *View) error
	CountForProduct(ctx context.Context, productID primitive.ObjectID) (int64, error)
	DistinctVisitors(ctx context.Context, productID primitive.ObjectID) ([]string, error)
}

type productFinder interface {
	FindByID(ctx context.Context, id primitive.ObjectID) (*catalog.Product, error)
}

type inquiryCounter interface {
	CountForProduct(ctx context.Context, productID primitive.ObjectID) (int64, error)
}

// Service tracks product views and serves per-product counters.
type Service interface {
	// Record stores one view event. The visitor identifier is optional and
	// accepted opaquely.
	Record(ctx context.Context, productID, visitorID string) error
	// StatsFor returns the counters for an existing product.
	StatsFor(ctx context.Context, productID string) (*ProductStats, error)
}

type service struct {
	repo      repository
	products  productFinder
	inquiries inquiryCounter
}

// NewService builds a view-tracking service.
func NewService(repo repository, products productFinder, inquiries inquiryCounter) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("view repository required")
	}
	if products == nil {
		return nil, fmt.Errorf("product finder required")
	}
	if inquiries == nil {
		return nil, fmt.Errorf("inquiry counter required")
	}
	return &service{repo: repo, products: products, inquiries: inquiries}, nil
}

func (s *service) Record(ctx context.Context, productID, visitorID string) error {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(productID))
	if err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid product ID")
	}

	view := &View{
		ProductID: oid,
		VisitorID: strings.TrimSpace(visitorID),
		CreatedAt: time.Now().UTC(),
	}
	if err := s.repo.Insert(ctx, view); err != nil {
		return pkgerrors.Wrap(pkgerrors.CodeStorage, err, "insert view")
	}
	return nil
}

func (s *service) StatsFor(ctx context.Context, productID string) (*ProductStats, error) {
	oid, err := primitive.ObjectIDFromHex(strings.TrimSpace(productID))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid product ID")
	}

	if _, err := s.products.FindByID(ctx, oid); err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, pkgerrors.New(pkgerrors.CodeNotFound, "Product stats not found")
		}
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "fetch product")
	}

	viewCount, err := s.repo.CountForProduct(ctx, oid)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "count views")
	}
	inquiryCount, err := s.inquiries.CountForProduct(ctx, oid)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "count inquiries")
	}
	visitors, err := s.repo.DistinctVisitors(ctx, oid)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "distinct visitors")
	}

	return &ProductStats{
		ViewCount:      viewCount,
		InquiryCount:   inquiryCount,
		UniqueVisitors: int64(len(visitors)),
	}, nil
}
