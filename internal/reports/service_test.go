package reports

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
)

type stubReportRepo struct {
	rows   []OrderSummaryRow
	recent []models.Order
}

func (s stubReportRepo) ListSummaries(context.Context) ([]OrderSummaryRow, error) {
	return s.rows, nil
}

func (s stubReportRepo) Recent(_ context.Context, limit int) ([]models.Order, error) {
	if len(s.recent) > limit {
		return s.recent[:limit], nil
	}
	return s.recent, nil
}

func summaryRow(status enums.OrderStatus, amount int64, createdAt time.Time) OrderSummaryRow {
	return OrderSummaryRow{
		ID:          uuid.New(),
		Status:      status,
		TotalAmount: decimal.NewFromInt(amount),
		CreatedAt:   createdAt,
	}
}

func TestReportAggregation(t *testing.T) {
	now := time.Date(2026, time.September, 15, 12, 0, 0, 0, time.UTC)
	thisMonth := time.Date(2026, time.September, 2, 0, 0, 0, 0, time.UTC)
	lastMonth := time.Date(2026, time.August, 20, 0, 0, 0, 0, time.UTC)
	longAgo := time.Date(2025, time.January, 1, 0, 0, 0, 0, time.UTC)

	repo := stubReportRepo{
		rows: []OrderSummaryRow{
			summaryRow(enums.OrderStatusPending, 10000, thisMonth),
			summaryRow(enums.OrderStatusDelivered, 20000, thisMonth),
			summaryRow(enums.OrderStatusShipped, 5000, lastMonth),
			summaryRow(enums.OrderStatusCancelled, 7000, lastMonth),
			summaryRow(enums.OrderStatusDelivered, 3000, longAgo),
		},
	}

	svc, err := NewService(ServiceParams{Repo: repo, Now: func() time.Time { return now }})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	report, err := svc.Report(context.Background())
	if err != nil {
		t.Fatalf("report: %v", err)
	}

	if report.OrderCount != 5 {
		t.Fatalf("expected 5 orders, got %d", report.OrderCount)
	}
	// Cancelled revenue is excluded; everything else counts regardless of age.
	if !report.TotalRevenue.Equal(decimal.NewFromInt(38000)) {
		t.Fatalf("expected total revenue 38000, got %s", report.TotalRevenue)
	}
	if report.CountsByStatus[enums.OrderStatusDelivered] != 2 {
		t.Fatalf("expected 2 delivered, got %d", report.CountsByStatus[enums.OrderStatusDelivered])
	}
	if report.CountsByStatus[enums.OrderStatusCancelled] != 1 {
		t.Fatalf("expected 1 cancelled, got %d", report.CountsByStatus[enums.OrderStatusCancelled])
	}

	if len(report.RevenueByMonth) != trailingMonths {
		t.Fatalf("expected %d buckets, got %d", trailingMonths, len(report.RevenueByMonth))
	}
	first := report.RevenueByMonth[0]
	last := report.RevenueByMonth[trailingMonths-1]
	if first.Month != "2026-04" {
		t.Fatalf("expected oldest bucket 2026-04, got %s", first.Month)
	}
	if last.Month != "2026-09" || !last.Revenue.Equal(decimal.NewFromInt(30000)) || last.Orders != 2 {
		t.Fatalf("unexpected current bucket %+v", last)
	}

	august := report.RevenueByMonth[trailingMonths-2]
	if !august.Revenue.Equal(decimal.NewFromInt(5000)) || august.Orders != 1 {
		t.Fatalf("expected august revenue 5000 from one order, got %+v", august)
	}
}

func TestReportEmpty(t *testing.T) {
	svc, err := NewService(ServiceParams{Repo: stubReportRepo{}})
	if err != nil {
		t.Fatalf("build service: %v", err)
	}

	report, err := svc.Report(context.Background())
	if err != nil {
		t.Fatalf("report: %v", err)
	}
	if !report.TotalRevenue.IsZero() || report.OrderCount != 0 {
		t.Fatalf("expected empty report, got %+v", report)
	}
	if len(report.RevenueByMonth) != trailingMonths {
		t.Fatalf("expected %d empty buckets, got %d", trailingMonths, len(report.RevenueByMonth))
	}
	for _, bucket := range report.RevenueByMonth {
		if !bucket.Revenue.IsZero() || bucket.Orders != 0 {
			t.Fatalf("expected empty bucket, got %+v", bucket)
		}
	}
}
