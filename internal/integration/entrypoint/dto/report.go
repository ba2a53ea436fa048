package dto

import (
	"github.com/shopspring/decimal"

	"github.com/campus-pos/backend/internal/application/usecase/report"
)

// ProductSalesResponse represents one product's aggregated sales for a day.
type ProductSalesResponse struct {
	Name      string          `json:"name"`
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int             `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
	Buyers    []string        `json:"buyers"`
}

// DailySalesResponse represents the daily sales report.
type DailySalesResponse struct {
	Date          string                 `json:"date"`
	TotalSales    decimal.Decimal        `json:"total_sales"`
	PaidSales     decimal.Decimal        `json:"paid_sales"`
	PayLaterSales decimal.Decimal        `json:"pay_later_sales"`
	Products      []ProductSalesResponse `json:"products"`
	Buyers        []string               `json:"buyers"`
}

// ToDailySalesResponse converts the report aggregate to its DTO.
func ToDailySalesResponse(r *report.DailySalesReport) DailySalesResponse {
	products := make([]ProductSalesResponse, 0, len(r.Products))
	for _, p := range r.Products {
		products = append(products, ProductSalesResponse{
			Name:      p.Name,
			UnitPrice: p.UnitPrice,
			Quantity:  p.Quantity,
			Total:     p.Total,
			Buyers:    p.Buyers,
		})
	}
	return DailySalesResponse{
		Date:          r.Date,
		TotalSales:    r.TotalSales,
		PaidSales:     r.PaidSales,
		PayLaterSales: r.PayLaterSales,
		Products:      products,
		Buyers:        r.Buyers,
	}
}
