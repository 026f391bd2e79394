package reporting

import (
	"context"
	"fmt"

	pkgerrors "github.com/boothlabs/boothtrack-backend/pkg/errors"
)

// recentLimit caps the dashboard recent-activity list.
const recentLimit = 5

type repository interface {
	CountInquiries(ctx context.Context) (int64, error)
	DistinctVisitorPhones(ctx context.Context) ([]string, error)
	ProductBreakdown(ctx context.Context) ([]ProductCount, error)
	RecentInquiries(ctx context.Context, limit int) ([]RecentInquiry, error)
	ExportRows(ctx context.Context) ([]ExportRow, error)
}

// Service computes the admin statistics and the CSV export feed.
type Service interface {
	ComputeStats(ctx context.Context) (*Stats, error)
	ExportCSV(ctx context.Context) ([]byte, error)
}

type service struct {
	repo repository
}

// NewService builds a reporting service with the provided repository.
func NewService(repo repository) (Service, error) {
	if repo == nil {
		return nil, fmt.Errorf("reporting repository required")
	}
	return &service{repo: repo}, nil
}

func (s *service) ComputeStats(ctx context.Context) (*Stats, error) {
	totalInquiries, err := s.repo.CountInquiries(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "count inquiries")
	}

	phones, err := s.repo.DistinctVisitorPhones(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "distinct visitor phones")
	}
	totalVisitors := len(phones)

	breakdown, err := s.repo.ProductBreakdown(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "product breakdown")
	}
	if breakdown == nil {
		breakdown = []ProductCount{}
	}

	recent, err := s.repo.RecentInquiries(ctx, recentLimit)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "recent inquiries")
	}
	if recent == nil {
		recent = []RecentInquiry{}
	}

	avg := 0.0
	if totalVisitors > 0 {
		avg = float64(totalInquiries) / float64(totalVisitors)
	}

	return &Stats{
		TotalInquiries:         totalInquiries,
		TotalVisitors:          totalVisitors,
		AvgInquiriesPerVisitor: avg,
		ProductInquiries:       breakdown,
		RecentInquiries:        recent,
	}, nil
}

func (s *service) ExportCSV(ctx context.Context) ([]byte, error) {
	rows, err := s.repo.ExportRows(ctx)
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeStorage, err, "export inquiries")
	}
	return buildCSV(rows), nil
}
