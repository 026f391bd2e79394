package reporting

import (
	"context"
	"errors"
	"testing"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"

	pkgerrors "github.com/boothlabs/boothtrack-backend/pkg/errors"
)

type stubReportingRepo struct {
	total     int64
	phones    []string
	breakdown []ProductCount
	recent    []RecentInquiry
	rows      []ExportRow
	err       error

	recentLimit int
}

func (s *stubReportingRepo) CountInquiries(ctx context.Context) (int64, error) {
	return s.total, s.err
}

func (s *stubReportingRepo) DistinctVisitorPhones(ctx context.Context) ([]string, error) {
	return s.phones, s.err
}

func (s *stubReportingRepo) ProductBreakdown(ctx context.Context) ([]ProductCount, error) {
	return s.breakdown, s.err
}

func (s *stubReportingRepo) RecentInquiries(ctx context.Context, limit int) ([]RecentInquiry, error) {
	s.recentLimit = limit
	return s.recent, s.err
}

func (s *stubReportingRepo) ExportRows(ctx context.Context) ([]ExportRow, error) {
	return s.rows, s.err
}

func TestComputeStatsCountsDistinctInquiryPhones(t *testing.T) {
	repo := &stubReportingRepo{
		total:  5,
		phones: []string{"+15550001111", "+15550002222"},
		breakdown: []ProductCount{
			{ProductName: "Smart Home Hub", Count: 3},
			{ProductName: "Wireless Earbuds Pro", Count: 2},
		},
	}
	svc, err := NewService(repo)
	if err != nil {
		t.Fatalf("new service: %v", err)
	}

	stats, err := svc.ComputeStats(context.Background())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}

	if stats.TotalInquiries != 5 {
		t.Fatalf("expected 5 inquiries, got %d", stats.TotalInquiries)
	}
	// Distinct phones over inquiries, not the visitor registry's size.
	if stats.TotalVisitors != 2 {
		t.Fatalf("expected 2 visitors, got %d", stats.TotalVisitors)
	}
	if stats.AvgInquiriesPerVisitor != 2.5 {
		t.Fatalf("expected average 2.5, got %f", stats.AvgInquiriesPerVisitor)
	}
	if repo.recentLimit != 5 {
		t.Fatalf("expected recent limit 5, got %d", repo.recentLimit)
	}

	if len(stats.ProductInquiries) != 2 ||
		stats.ProductInquiries[0].ProductName != "Smart Home Hub" ||
		stats.ProductInquiries[0].Count != 3 ||
		stats.ProductInquiries[1].ProductName != "Wireless Earbuds Pro" ||
		stats.ProductInquiries[1].Count != 2 {
		t.Fatalf("unexpected breakdown %+v", stats.ProductInquiries)
	}
}

func TestComputeStatsZeroVisitorsIsSafe(t *testing.T) {
	svc, _ := NewService(&stubReportingRepo{total: 0, phones: nil})

	stats, err := svc.ComputeStats(context.Background())
	if err != nil {
		t.Fatalf("compute: %v", err)
	}
	if stats.AvgInquiriesPerVisitor != 0 {
		t.Fatalf("expected NaN-safe zero average, got %f", stats.AvgInquiriesPerVisitor)
	}
	if stats.ProductInquiries == nil || stats.RecentInquiries == nil {
		t.Fatal("expected empty slices, not nulls")
	}
}

func TestComputeStatsWrapsStorageError(t *testing.T) {
	svc, _ := NewService(&stubReportingRepo{err: errors.New("no reachable servers")})

	_, err := svc.ComputeStats(context.Background())
	if typed := pkgerrors.As(err); typed == nil || typed.Code() != pkgerrors.CodeStorage {
		t.Fatalf("expected storage error, got %v", err)
	}
}

func TestExportCSVJoinsRowCountToInquiries(t *testing.T) {
	rows := []ExportRow{
		{
			ID:              primitive.NewObjectID(),
			VisitorName:     "Ana",
			VisitorEmail:    "ana@expo.test",
			VisitorPhone:    "+15550001111",
			ProductName:     "Smart Home Hub",
			ProductCategory: "Electronics",
			InquiryDate:     time.Date(2026, 3, 14, 10, 0, 0, 0, time.UTC),
		},
		{
			ID:           primitive.NewObjectID(),
			VisitorPhone: "+15550002222",
			InquiryDate:  time.Date(2026, 3, 13, 9, 0, 0, 0, time.UTC),
		},
	}
	svc, _ := NewService(&stubReportingRepo{rows: rows})

	out, err := svc.ExportCSV(context.Background())
	if err != nil {
		t.Fatalf("export: %v", err)
	}

	lines := splitLines(t, out)
	if len(lines) != 3 {
		t.Fatalf("expected header plus one line per inquiry, got %d", len(lines))
	}
}

func splitLines(t *testing.T, out []byte) []string {
	t.Helper()
	s := string(out)
	if len(s) == 0 {
		t.Fatal("empty csv")
	}
	if s[len(s)-1] == '\n' {
		t.Fatal("expected no trailing newline")
	}
	lines := []string{}
	start := 0
	for i := 0; i < len(s); i++ {
		if s[i] == '\n' {
			lines = append(lines, s[start:i])
			start = i + 1
		}
	}
	return append(lines, s[start:])
}
