package services

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"finance-agent-tools/internal/ledger"
	"finance-agent-tools/internal/models"

	"github.com/shopspring/decimal"
)

// Grouping granularities for revenue bucketing
const (
	GroupByDay   = "day"
	GroupByWeek  = "week"
	GroupByMonth = "month"
)

const defaultPageSize = 100

var (
	ErrInvalidGranularity = errors.New("grouping must be one of: day, week, month")
	ErrInvalidDateRange   = errors.New("end date must not be before start date")
)

type revenueService struct {
	ledger   ledger.Client
	pageSize int
}

// NewRevenueService creates the revenue trend analysis service.
// pageSize caps records fetched per ledger page; values outside (0, 100]
// fall back to 100, the ledger's maximum.
func NewRevenueService(client ledger.Client, pageSize int) RevenueServiceInterface {
	if pageSize <= 0 || pageSize > defaultPageSize {
		pageSize = defaultPageSize
	}
	return &revenueService{
		ledger:   client,
		pageSize: pageSize,
	}
}

func (s *revenueService) AnalyzeRevenueTrends(ctx context.Context, startDate, endDate time.Time, groupBy string) (*models.RevenueReport, error) {
	if groupBy == "" {
		groupBy = GroupByDay
	}
	if groupBy != GroupByDay && groupBy != GroupByWeek && groupBy != GroupByMonth {
		return nil, ErrInvalidGranularity
	}
	if endDate.Before(startDate) {
		return nil, ErrInvalidDateRange
	}

	// Both dates are inclusive UTC calendar days, so the upper bound is
	// the last second before the next midnight.
	rangeStart := startDate.UTC().Truncate(24 * time.Hour)
	rangeEnd := endDate.UTC().Truncate(24 * time.Hour).AddDate(0, 0, 1).Add(-time.Second)

	charges, err := s.fetchSucceededCharges(ctx, rangeStart.Unix(), rangeEnd.Unix())
	if err != nil {
		slog.Error("revenue trend analysis failed",
			"start_date", rangeStart.Format("2006-01-02"),
			"end_date", endDate.UTC().Format("2006-01-02"),
			"error", err)
		return nil, err
	}

	var totalMinor int64
	for _, charge := range charges {
		totalMinor += charge.Amount
	}

	totalRevenue := minorToMajor(totalMinor)
	buckets := bucketCharges(charges, groupBy)
	insights := generateInsights(buckets, totalRevenue, len(charges))

	report := &models.RevenueReport{
		Summary: models.RevenueSummary{
			TotalRevenue:       totalRevenue,
			TransactionCount:   len(charges),
			AverageTransaction: averageMajor(totalMinor, len(charges)),
		},
		PeriodData: buckets,
		Insights:   insights,
	}

	slog.Info("revenue trends analyzed",
		"group_by", groupBy,
		"transaction_count", len(charges),
		"period_count", len(buckets))

	return report, nil
}

// fetchSucceededCharges pages through the charge feed until the ledger
// reports no further pages, keeping only settled charges. A failed page
// fetch aborts the whole operation; there is no partial success.
func (s *revenueService) fetchSucceededCharges(ctx context.Context, createdGTE, createdLTE int64) ([]ledger.Charge, error) {
	var charges []ledger.Charge
	cursor := ""

	for {
		page, err := s.ledger.ListCharges(ctx, ledger.ChargeListParams{
			CreatedGTE:    createdGTE,
			CreatedLTE:    createdLTE,
			Limit:         s.pageSize,
			StartingAfter: cursor,
		})
		if err != nil {
			return nil, fmt.Errorf("fetch charges: %w", err)
		}

		for _, charge := range page.Data {
			if charge.Status == ledger.ChargeStatusSucceeded {
				charges = append(charges, charge)
			}
		}

		if !page.HasMore || len(page.Data) == 0 {
			break
		}
		cursor = page.Data[len(page.Data)-1].ID
	}

	return charges, nil
}

type bucketAccumulator struct {
	minor int64
	count int
}

// bucketCharges partitions charges into calendar buckets keyed by period
// label and returns them sorted ascending. Sums accumulate in minor units
// and convert to major units once per bucket. Periods with no charges are
// absent, not zero-filled.
func bucketCharges(charges []ledger.Charge, groupBy string) []models.PeriodBucket {
	accumulators := make(map[string]*bucketAccumulator)

	for _, charge := range charges {
		key := periodKey(time.Unix(charge.Created, 0).UTC(), groupBy)
		acc, ok := accumulators[key]
		if !ok {
			acc = &bucketAccumulator{}
			accumulators[key] = acc
		}
		acc.minor += charge.Amount
		acc.count++
	}

	keys := make([]string, 0, len(accumulators))
	for key := range accumulators {
		keys = append(keys, key)
	}
	// Period labels are zero-padded, so lexicographic order is
	// chronological order.
	sort.Strings(keys)

	buckets := make([]models.PeriodBucket, 0, len(keys))
	for _, key := range keys {
		acc := accumulators[key]
		buckets = append(buckets, models.PeriodBucket{
			Period:           key,
			Revenue:          minorToMajor(acc.minor),
			TransactionCount: acc.count,
		})
	}

	return buckets
}

// periodKey derives the bucket label for a charge creation time.
// Week buckets are keyed by the Monday on or before the date.
func periodKey(t time.Time, groupBy string) string {
	switch groupBy {
	case GroupByWeek:
		offset := (int(t.Weekday()) + 6) % 7
		return t.AddDate(0, 0, -offset).Format("2006-01-02")
	case GroupByMonth:
		return t.Format("2006-01")
	default:
		return t.Format("2006-01-02")
	}
}

// generateInsights derives the fixed-order observation lines:
// best period, worst period (when at least two buckets exist), average
// revenue per period, and the successful transaction count. The earliest
// bucket wins revenue ties in both the best and worst scan.
func generateInsights(buckets []models.PeriodBucket, totalRevenue float64, transactionCount int) []string {
	insights := make([]string, 0, 4)

	if len(buckets) == 0 && transactionCount == 0 {
		return insights
	}

	if len(buckets) > 0 {
		best := buckets[0]
		for _, b := range buckets[1:] {
			if b.Revenue > best.Revenue {
				best = b
			}
		}
		insights = append(insights, fmt.Sprintf("Best performing period: %s with $%.2f in revenue", best.Period, best.Revenue))
	}

	if len(buckets) > 1 {
		worst := buckets[0]
		for _, b := range buckets[1:] {
			if b.Revenue < worst.Revenue {
				worst = b
			}
		}
		insights = append(insights, fmt.Sprintf("Lowest performing period: %s with $%.2f in revenue", worst.Period, worst.Revenue))
	}

	average := 0.0
	if len(buckets) > 0 {
		average = decimal.NewFromFloat(totalRevenue).
			Div(decimal.NewFromInt(int64(len(buckets)))).
			Round(2).
			InexactFloat64()
	}
	insights = append(insights, fmt.Sprintf("Average revenue per period: $%.2f", average))

	if transactionCount > 0 {
		insights = append(insights, fmt.Sprintf("Processed %d successful transactions", transactionCount))
	}

	return insights
}
