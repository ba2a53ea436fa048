// Package report contains sales reporting use cases.
package report

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"

	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// ProductSales aggregates one product's sales for the day. UnitPrice is the
// price the product was first sold at that day; a mid-day price change shows
// up in the totals but not in this display price. Buyers holds the distinct
// first names of everyone who bought this product, in first-seen order.
type ProductSales struct {
	Name      string
	UnitPrice decimal.Decimal
	Quantity  int
	Total     decimal.Decimal
	Buyers    []string
}

// DailySalesReport is the aggregated sales summary for one local day.
type DailySalesReport struct {
	Date          string
	TotalSales    decimal.Decimal
	PaidSales     decimal.Decimal
	PayLaterSales decimal.Decimal
	Products      []ProductSales
	Buyers        []string
}

// DailySalesInput represents the input for the daily sales report.
type DailySalesInput struct {
	Date string // YYYY-MM-DD
}

// DailySalesOutput represents the output of the daily sales report.
type DailySalesOutput struct {
	Report *DailySalesReport
}

// DailySalesUseCase builds the end-of-day sales report. Paid and pay-later
// totals reflect the current settlement state of each line item, so a report
// rerun after reconciliation shows the settled amounts under paid.
type DailySalesUseCase struct {
	reportRepo Repository
	location   *time.Location
}

// NewDailySalesUseCase creates a new DailySalesUseCase instance. The location
// defines which wall clock the report day follows.
func NewDailySalesUseCase(reportRepo Repository, location *time.Location) *DailySalesUseCase {
	if location == nil {
		location = time.Local
	}
	return &DailySalesUseCase{
		reportRepo: reportRepo,
		location:   location,
	}
}

// Execute builds the report for the given date. The reporting window is the
// half-open interval from local midnight to the next local midnight, so a
// sale at exactly 00:00 belongs to the new day only.
func (uc *DailySalesUseCase) Execute(ctx context.Context, input DailySalesInput) (*DailySalesOutput, error) {
	day, err := time.ParseInLocation("2006-01-02", input.Date, uc.location)
	if err != nil {
		return nil, domainerror.NewReportError(
			domainerror.ErrCodeInvalidReportDate,
			"date must be in YYYY-MM-DD format",
			domainerror.ErrInvalidReportDate,
		)
	}

	start := day
	end := day.AddDate(0, 0, 1)

	rows, err := uc.reportRepo.FetchSalesRows(ctx, start, end)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales rows: %w", err)
	}

	report := aggregateSales(rows)
	report.Date = input.Date
	return &DailySalesOutput{Report: report}, nil
}

// aggregateSales folds sold line items into the daily report: running totals
// split by settlement state, per-product rollups in first-seen order, and the
// distinct buyer first names in first-seen order, both per product and for
// the whole day.
func aggregateSales(rows []SalesRow) *DailySalesReport {
	report := &DailySalesReport{
		TotalSales:    decimal.Zero,
		PaidSales:     decimal.Zero,
		PayLaterSales: decimal.Zero,
		Products:      []ProductSales{},
		Buyers:        []string{},
	}

	productIndex := make(map[string]int)
	productBuyers := make(map[string]map[string]bool)
	seenBuyers := make(map[string]bool)

	for _, row := range rows {
		report.TotalSales = report.TotalSales.Add(row.TotalPrice)
		if row.PaymentStatus == entity.PaymentStatusPaid {
			report.PaidSales = report.PaidSales.Add(row.TotalPrice)
		} else {
			report.PayLaterSales = report.PayLaterSales.Add(row.TotalPrice)
		}

		idx, seen := productIndex[row.ItemName]
		if !seen {
			idx = len(report.Products)
			productIndex[row.ItemName] = idx
			productBuyers[row.ItemName] = make(map[string]bool)
			report.Products = append(report.Products, ProductSales{
				Name:      row.ItemName,
				UnitPrice: row.UnitPrice,
				Quantity:  row.Quantity,
				Total:     row.TotalPrice,
				Buyers:    []string{},
			})
		} else {
			report.Products[idx].Quantity += row.Quantity
			report.Products[idx].Total = report.Products[idx].Total.Add(row.TotalPrice)
		}

		if row.BuyerFirstName == "" {
			continue
		}
		if !productBuyers[row.ItemName][row.BuyerFirstName] {
			productBuyers[row.ItemName][row.BuyerFirstName] = true
			report.Products[idx].Buyers = append(report.Products[idx].Buyers, row.BuyerFirstName)
		}
		if !seenBuyers[row.BuyerFirstName] {
			seenBuyers[row.BuyerFirstName] = true
			report.Buyers = append(report.Buyers, row.BuyerFirstName)
		}
	}

	return report
}
