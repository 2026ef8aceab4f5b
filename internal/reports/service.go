package reports

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/bath14971-sudo/dom-car-finder/internal/orders"
	"github.com/bath14971-sudo/dom-car-finder/pkg/db/models"
	"github.com/bath14971-sudo/dom-car-finder/pkg/enums"
	pkgerrors "github.com/bath14971-sudo/dom-car-finder/pkg/errors"
)

const (
	trailingMonths   = 6
	recentOrderCount = 5
	monthKeyFormat   = "2006-01"
)

// MonthlyRevenueDTO is one bucket of the trailing revenue chart.
type MonthlyRevenueDTO struct {
	Month   string          `json:"month"`
	Revenue decimal.Decimal `json:"revenue"`
	Orders  int64           `json:"orders"`
}

// ReportDTO is the admin dashboard aggregation.
type ReportDTO struct {
	TotalRevenue   decimal.Decimal             `json:"total_revenue"`
	OrderCount     int64                       `json:"order_count"`
	CountsByStatus map[enums.OrderStatus]int64 `json:"counts_by_status"`
	RevenueByMonth []MonthlyRevenueDTO         `json:"revenue_by_month"`
	RecentOrders   []orders.OrderDTO           `json:"recent_orders"`
}

type reportRepository interface {
	ListSummaries(ctx context.Context) ([]OrderSummaryRow, error)
	Recent(ctx context.Context, limit int) ([]models.Order, error)
}

// Service computes the admin dashboard report.
type Service interface {
	Report(ctx context.Context) (ReportDTO, error)
}

type service struct {
	repo reportRepository
	now  func() time.Time
}

// ServiceParams groups dependencies for the reports service.
type ServiceParams struct {
	Repo reportRepository
	// Now overrides the clock; nil uses time.Now.
	Now func() time.Time
}

// NewService builds a reports service with the required dependencies.
func NewService(params ServiceParams) (Service, error) {
	if params.Repo == nil {
		return nil, fmt.Errorf("report repository is required")
	}
	now := params.Now
	if now == nil {
		now = time.Now
	}
	return &service{repo: params.Repo, now: now}, nil
}

// Report aggregates revenue and order counts. Cancelled orders count toward
// volume but never toward revenue.
func (s *service) Report(ctx context.Context) (ReportDTO, error) {
	rows, err := s.repo.ListSummaries(ctx)
	if err != nil {
		return ReportDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load order summaries")
	}

	report := ReportDTO{
		TotalRevenue:   decimal.Zero,
		CountsByStatus: map[enums.OrderStatus]int64{},
	}

	months, buckets := trailingMonthBuckets(s.now().UTC())

	for _, row := range rows {
		report.OrderCount++
		report.CountsByStatus[row.Status]++
		if row.Status == enums.OrderStatusCancelled {
			continue
		}
		report.TotalRevenue = report.TotalRevenue.Add(row.TotalAmount)

		key := row.CreatedAt.UTC().Format(monthKeyFormat)
		if bucket, ok := buckets[key]; ok {
			bucket.Revenue = bucket.Revenue.Add(row.TotalAmount)
			bucket.Orders++
		}
	}

	report.RevenueByMonth = make([]MonthlyRevenueDTO, 0, len(months))
	for _, key := range months {
		report.RevenueByMonth = append(report.RevenueByMonth, *buckets[key])
	}

	recent, err := s.repo.Recent(ctx, recentOrderCount)
	if err != nil {
		return ReportDTO{}, pkgerrors.Wrap(pkgerrors.CodeInternal, err, "load recent orders")
	}
	report.RecentOrders = make([]orders.OrderDTO, 0, len(recent))
	for i := range recent {
		report.RecentOrders = append(report.RecentOrders, *orders.FromModel(&recent[i]))
	}

	return report, nil
}

// trailingMonthBuckets returns the last six month keys oldest first, with an
// empty bucket prepared for each.
func trailingMonthBuckets(now time.Time) ([]string, map[string]*MonthlyRevenueDTO) {
	anchor := time.Date(now.Year(), now.Month(), 1, 0, 0, 0, 0, time.UTC)

	months := make([]string, 0, trailingMonths)
	buckets := make(map[string]*MonthlyRevenueDTO, trailingMonths)
	for i := trailingMonths - 1; i >= 0; i-- {
		key := anchor.AddDate(0, -i, 0).Format(monthKeyFormat)
		months = append(months, key)
		buckets[key] = &MonthlyRevenueDTO{Month: key, Revenue: decimal.Zero}
	}
	return months, buckets
}
