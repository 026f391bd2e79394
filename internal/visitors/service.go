package visitors

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	pkgerrors "github.com/boothlabs/boothtrack-backend/pkg/errors"
)

type repository interface {
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*Visitor, error)
	Insert(ctx context.Context, v *Visitor) (primitive.ObjectID, error)
}

// Service exposes visitor registration.
type Service interface {
	// RegisterOrFetch returns the visitor matching the given email or phone,
	// creating one when no match exists. The bool reports whether a new
	// record was created. An existing record is returned unchanged even when
	// the other fields differ.
	RegisterOrFetch(ctx context.Context, input RegisterInput) (*Visitor, bool, error)
}

// RegisterInput carries the registration form fields.
type RegisterInput struct {
	Name  string
	Email string
	Phone string
}

type service struct {
	repo repository
}

// NewService builds a visitor service with the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("visitor repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) RegisterOrFetch(ctx context.Context, input RegisterInput) (*Visitor, bool, error) {
	name := strings.TrimSpace(input.Name)
	email := strings.TrimSpace(input.Email)
	phone := strings.TrimSpace(input.Phone)
	if name == "" || email == "" || phone == "" {
		return nil, false, pkgerrors.New(pkgerrors.CodeValidation, "Name, email, and phone are required")
	}

	existing, err := s.repo.FindByEmailOrPhone(ctx, email, phone)
	if err != nil && !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "look up visitor")
	}
	if existing != nil {
		return existing, false, nil
	}

	now := time.Now().UTC()
	visitor := &Visitor{
		Name:      name,
		Email:     email,
		Phone:     phone,
		CreatedAt: now,
		UpdatedAt: now,
	}

	id, err := s.repo.Insert(ctx, visitor)
	if err != nil {
		if mongo.IsDuplicateKeyError(err) {
			// Lost a concurrent registration; the unique index kept the
			// collection clean, so return the winner.
			winner, lookupErr := s.repo.FindByEmailOrPhone(ctx, email, phone)
			if lookupErr == nil && winner != nil {
				return winner, false, nil
			}
			return nil, false, pkgerrors.Wrap(pkgerrors.CodeConflict, err, "visitor already registered")
		}
		return nil, false, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "insert visitor")
	}

	visitor.ID = id
	return visitor, true, nil
}
