// Package report contains sales reporting use cases.
package report

import (
	"context"
	"time"

	"github.com/shopspring/decimal"

	"github.com/campus-pos/backend/internal/domain/entity"
)

// SalesRow is one sold line item joined with its buyer, as fetched for a
// reporting window. Rows arrive ordered by transaction creation time so the
// aggregation sees products in the order they were first sold.
type SalesRow struct {
	ItemName       string
	UnitPrice      decimal.Decimal
	Quantity       int
	TotalPrice     decimal.Decimal
	PaymentStatus  entity.PaymentStatus
	BuyerFirstName string
	SoldAt         time.Time
}

// Repository defines the read model for sales reporting.
type Repository interface {
	// FetchSalesRows returns all line items of transactions dated within
	// [start, end), ordered by transaction creation then item insertion.
	FetchSalesRows(ctx context.Context, start, end time.Time) ([]SalesRow, error)
}
