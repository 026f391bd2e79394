package views

import (
	"context"
	"errors"
	"testing"

	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"

	"github.com/boothlabs/boothtrack-backend/internal/catalog"
	pkgerrors "github.com/boothlabs/boothtrack-backend/pkg/errors"
)

type stubViewRepo struct {
	insertErr error
	count     int64
	visitors  []string
	last      *View
}

func (s *stubViewRepo) Insert(ctx context.Context, view *View) error {
	s.last = view
	return s.insertErr
}

func (s *stubViewRepo) CountForProduct(ctx context.Context, productID primitive.ObjectID) (int64, error) {
	return s.count, nil
}

func (s *stubViewRepo) DistinctVisitors(ctx context.Context, productID primitive.ObjectID) ([]string, error) {
	return s.visitors, nil
}

type stubProductFinder struct {
	product *catalog.Product
	err     error
}

func (s stubProductFinder) FindByID(ctx context.Context, id primitive.ObjectID) (*catalog.Product, error) {
	if s.err != nil {
		return nil, s.err
	}
	return s.product, nil
}

type stubInquiryCounter struct {
	count int64
	err   error
}

func (s stubInquiryCounter) CountForProduct(ctx context.Context, productID primitive.ObjectID) (int64, error) {
	return s.count, s.err
}

func newTestService(t *testing.T, repo *stubViewRepo, finder stubProductFinder, counter stubInquiryCounter) Service {
	t.Helper()
	svc, err := NewService(repo, finder, counter)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	return svc
}

func TestRecordRejectsMalformedID(t *testing.T) {
	repo := &stubViewRepo{}
	svc := newTestService(t, repo, stubProductFinder{}, stubInquiryCounter{})

	err := svc.Record(context.Background(), "nope", "")
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeValidation {
		t.Fatalf("expected validation error, got %v", err)
	}
	if repo.last != nil {
		t.Fatal("expected no event written")
	}
}

func TestRecordStoresAnonymousView(t *testing.T) {
	repo := &stubViewRepo{}
	svc := newTestService(t, repo, stubProductFinder{}, stubInquiryCounter{})

	productID := primitive.NewObjectID()
	if err := svc.Record(context.Background(), productID.Hex(), ""); err != nil {
		t.Fatalf("record: %v", err)
	}
	if repo.last == nil || repo.last.ProductID != productID {
		t.Fatalf("unexpected event %+v", repo.last)
	}
	if repo.last.VisitorID != "" {
		t.Fatalf("expected anonymous view, got visitor %q", repo.last.VisitorID)
	}
	if repo.last.CreatedAt.IsZero() {
		t.Fatal("expected event timestamp")
	}
}

func TestStatsForUnknownProductIs404(t *testing.T) {
	svc := newTestService(t, &stubViewRepo{}, stubProductFinder{err: mongo.ErrNoDocuments}, stubInquiryCounter{})

	_, err := svc.StatsFor(context.Background(), primitive.NewObjectID().Hex())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeNotFound {
		t.Fatalf("expected not found, got %v", err)
	}
}

func TestStatsForAggregatesCounters(t *testing.T) {
	repo := &stubViewRepo{count: 42, visitors: []string{"v1", "v2", "v3"}}
	finder := stubProductFinder{product: &catalog.Product{Name: "Smart Home Hub"}}
	svc := newTestService(t, repo, finder, stubInquiryCounter{count: 7})

	stats, err := svc.StatsFor(context.Background(), primitive.NewObjectID().Hex())
	if err != nil {
		t.Fatalf("stats: %v", err)
	}
	if stats.ViewCount != 42 || stats.InquiryCount != 7 || stats.UniqueVisitors != 3 {
		t.Fatalf("unexpected stats %+v", stats)
	}
}

func TestStatsForWrapsCounterFailure(t *testing.T) {
	finder := stubProductFinder{product: &catalog.Product{}}
	svc := newTestService(t, &stubViewRepo{}, finder, stubInquiryCounter{err: errors.New("boom")})

	_, err := svc.StatsFor(context.Background(), primitive.NewObjectID().Hex())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStorage {
		t.Fatalf("expected storage error, got %v", err)
	}
}
