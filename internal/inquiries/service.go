package inquiries

import (
	"context"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	"github.com/boothlabs/boothtrack-backend/internal/visitors"
	pkgerrors "github.com/boothlabs/boothtrack-backend/pkg/errors"
)

type repository interface {
	Insert(ctx context.Context, inquiry *Inquiry) (primitive.ObjectID, error)
}

// visitorResolver resolves a phone number to a registered visitor. Used only
// for the best-effort identity stamp; resolution failure never rejects an
// inquiry.
type visitorResolver interface {
	FindByPhone(ctx context.Context, phone string) (*visitors.Visitor, error)
}

// Service records expressions of interest.
type Service interface {
	// Create inserts a pending inquiry. Neither the visitor phone nor the
	// product are verified to exist; both are accepted opaquely.
	Create(ctx context.Context, visitorPhone, productID string) (*Receipt, error)
}

type service struct {
	repo     repository
	resolver visitorResolver
}

// NewService builds an inquiry service. The resolver is optional.
func NewService(repo repository, resolver visitorResolver) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("inquiry repository required")
	}
	return &service{repo: repo, resolver: resolver}, nil
}

func (s *service) Create(ctx context.Context, visitorPhone, productID string) (*Receipt, error) {
	phone := strings.TrimSpace(visitorPhone)
	rawID := strings.TrimSpace(productID)
	if phone == "" || rawID == "" {
		return nil, pkgerrors.New(pkgerrors.CodeValidation, "Visitor phone number and Product ID are required")
	}

	oid, err := primitive.ObjectIDFromHex(rawID)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "Invalid Product ID format")
	}

	now := time.Now().UTC()
	inquiry := &Inquiry{
		VisitorPhone: phone,
		VisitorID:    s.resolveVisitor(ctx, phone),
		ProductID:    oid,
		Status:       StatusPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	id, err := s.repo.Insert(ctx, inquiry)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "insert inquiry")
	}

	return &Receipt{
		InquiryID: id.Hex(),
		Status:    "created",
		Timestamp: now,
	}, nil
}

func (s *service) resolveVisitor(ctx context.Context, phone string) *primitive.ObjectID {
	if s.resolver == nil {
		return nil
	}
	visitor, err := s.resolver.FindByPhone(ctx, phone)
	if err != nil || visitor == nil {
		return nil
	}
	id := visitor.ID
	return &id
}
