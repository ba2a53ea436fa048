// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/campus-pos/backend/internal/application/usecase/report"
	"github.com/campus-pos/backend/internal/domain/entity"
)

// reportRepository implements the report.Repository interface.
type reportRepository struct {
	db *gorm.DB
}

// NewReportRepository creates a new report repository instance.
func NewReportRepository(db *gorm.DB) report.Repository {
	return &reportRepository{
		db: db,
	}
}

// FetchSalesRows returns all line items of transactions dated within
// [start, end). Rows are ordered by transaction creation time so the report
// aggregation sees products and buyers in the order they first appeared.
// The buyer join is LEFT so sales survive a deleted account.
func (r *reportRepository) FetchSalesRows(ctx context.Context, start, end time.Time) ([]report.SalesRow, error) {
	var results []struct {
		ItemName       string          `gorm:"column:item_name"`
		UnitPrice      decimal.Decimal `gorm:"column:unit_price"`
		Quantity       int             `gorm:"column:quantity"`
		TotalPrice     decimal.Decimal `gorm:"column:total_price"`
		PaymentStatus  string          `gorm:"column:payment_status"`
		BuyerFirstName string          `gorm:"column:buyer_first_name"`
		SoldAt         time.Time       `gorm:"column:sold_at"`
	}

	query := `
		SELECT
			ti.name as item_name,
			ti.price as unit_price,
			ti.quantity as quantity,
			ti.total_price as total_price,
			ti.payment_status as payment_status,
			COALESCE(u.first_name, '') as buyer_first_name,
			t.created_at as sold_at
		FROM transaction_items ti
		JOIN transactions t ON t.id = ti.transaction_id
		LEFT JOIN users u ON u.id = t.user_id
		WHERE t.transaction_date >= ?
			AND t.transaction_date < ?
		ORDER BY t.created_at ASC, ti.id ASC
	`

	err := r.db.WithContext(ctx).
		Raw(query, start, end).
		Scan(&results).Error
	if err != nil {
		return nil, fmt.Errorf("failed to fetch sales rows: %w", err)
	}

	rows := make([]report.SalesRow, len(results))
	for i, res := range results {
		rows[i] = report.SalesRow{
			ItemName:       res.ItemName,
			UnitPrice:      res.UnitPrice,
			Quantity:       res.Quantity,
			TotalPrice:     res.TotalPrice,
			PaymentStatus:  entity.PaymentStatus(res.PaymentStatus),
			BuyerFirstName: res.BuyerFirstName,
			SoldAt:         res.SoldAt,
		}
	}
	return rows, nil
}
