package report

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

type fakeReportRepo struct {
	rows      []SalesRow
	gotStart  time.Time
	gotEnd    time.Time
	returnErr error
}

func (f *fakeReportRepo) FetchSalesRows(ctx context.Context, start, end time.Time) ([]SalesRow, error) {
	f.gotStart = start
	f.gotEnd = end
	if f.returnErr != nil {
		return nil, f.returnErr
	}
	return f.rows, nil
}

func d(n int64) decimal.Decimal { return decimal.NewFromInt(n) }

func TestDailySales(t *testing.T) {
	ctx := context.Background()
	loc := time.UTC

	t.Run("splits totals by settlement state", func(t *testing.T) {
		// Two cash cokes, one cash chips, one pending coffee
		repo := &fakeReportRepo{rows: []SalesRow{
			{ItemName: "Coke", UnitPrice: d(10), Quantity: 2, TotalPrice: d(20), PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Alice"},
			{ItemName: "Chips", UnitPrice: d(15), Quantity: 1, TotalPrice: d(15), PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Alice"},
			{ItemName: "Coffee", UnitPrice: d(10), Quantity: 1, TotalPrice: d(10), PaymentStatus: entity.PaymentStatusPayLater, BuyerFirstName: "Bob"},
		}}
		uc := NewDailySalesUseCase(repo, loc)

		out, err := uc.Execute(ctx, DailySalesInput{Date: "2026-03-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		r := out.Report
		if !r.TotalSales.Equal(d(45)) {
			t.Errorf("total = %s, want 45", r.TotalSales)
		}
		if !r.PaidSales.Equal(d(35)) {
			t.Errorf("paid = %s, want 35", r.PaidSales)
		}
		if !r.PayLaterSales.Equal(d(10)) {
			t.Errorf("pay later = %s, want 10", r.PayLaterSales)
		}
		if !r.PaidSales.Add(r.PayLaterSales).Equal(r.TotalSales) {
			t.Errorf("paid + pay later != total")
		}
	})

	t.Run("settled items move to paid on rerun", func(t *testing.T) {
		// Same day after the coffee was reconciled
		repo := &fakeReportRepo{rows: []SalesRow{
			{ItemName: "Coke", UnitPrice: d(10), Quantity: 2, TotalPrice: d(20), PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Alice"},
			{ItemName: "Chips", UnitPrice: d(15), Quantity: 1, TotalPrice: d(15), PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Alice"},
			{ItemName: "Coffee", UnitPrice: d(10), Quantity: 1, TotalPrice: d(10), PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Bob"},
		}}
		uc := NewDailySalesUseCase(repo, loc)

		out, err := uc.Execute(ctx, DailySalesInput{Date: "2026-03-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Report.PaidSales.Equal(d(45)) {
			t.Errorf("paid = %s, want 45", out.Report.PaidSales)
		}
		if !out.Report.PayLaterSales.Equal(d(0)) {
			t.Errorf("pay later = %s, want 0", out.Report.PayLaterSales)
		}
	})

	t.Run("products keep first-seen order and price", func(t *testing.T) {
		// Coke sold at 10, then repriced to 12 and sold again
		repo := &fakeReportRepo{rows: []SalesRow{
			{ItemName: "Coke", UnitPrice: d(10), Quantity: 1, TotalPrice: d(10), PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Alice"},
			{ItemName: "Chips", UnitPrice: d(15), Quantity: 1, TotalPrice: d(15), PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Bob"},
			{ItemName: "Coke", UnitPrice: d(12), Quantity: 2, TotalPrice: d(24), PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Alice"},
		}}
		uc := NewDailySalesUseCase(repo, loc)

		out, err := uc.Execute(ctx, DailySalesInput{Date: "2026-03-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		products := out.Report.Products
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
		if products[0].Name != "Coke" || products[1].Name != "Chips" {
			t.Errorf("wrong order: %s, %s", products[0].Name, products[1].Name)
		}
		if !products[0].UnitPrice.Equal(d(10)) {
			t.Errorf("unit price = %s, want first-seen 10", products[0].UnitPrice)
		}
		if products[0].Quantity != 3 {
			t.Errorf("quantity = %d, want 3", products[0].Quantity)
		}
		if !products[0].Total.Equal(d(34)) {
			t.Errorf("product total = %s, want 34", products[0].Total)
		}
	})

	t.Run("buyers are distinct first names in first-seen order", func(t *testing.T) {
		repo := &fakeReportRepo{rows: []SalesRow{
			{ItemName: "Coke", TotalPrice: d(10), UnitPrice: d(10), Quantity: 1, PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Bob"},
			{ItemName: "Coke", TotalPrice: d(10), UnitPrice: d(10), Quantity: 1, PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Alice"},
			{ItemName: "Coke", TotalPrice: d(10), UnitPrice: d(10), Quantity: 1, PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Bob"},
		}}
		uc := NewDailySalesUseCase(repo, loc)

		out, err := uc.Execute(ctx, DailySalesInput{Date: "2026-03-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		buyers := out.Report.Buyers
		if len(buyers) != 2 || buyers[0] != "Bob" || buyers[1] != "Alice" {
			t.Errorf("buyers = %v, want [Bob Alice]", buyers)
		}
	})

	t.Run("each product lists only its own buyers", func(t *testing.T) {
		// Alice buys Coke twice, Bob buys Chips
		repo := &fakeReportRepo{rows: []SalesRow{
			{ItemName: "Coke", UnitPrice: d(10), Quantity: 1, TotalPrice: d(10), PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Alice"},
			{ItemName: "Chips", UnitPrice: d(15), Quantity: 1, TotalPrice: d(15), PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Bob"},
			{ItemName: "Coke", UnitPrice: d(10), Quantity: 1, TotalPrice: d(10), PaymentStatus: entity.PaymentStatusPaid, BuyerFirstName: "Alice"},
		}}
		uc := NewDailySalesUseCase(repo, loc)

		out, err := uc.Execute(ctx, DailySalesInput{Date: "2026-03-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		products := out.Report.Products
		if len(products) != 2 {
			t.Fatalf("expected 2 products, got %d", len(products))
		}
		if len(products[0].Buyers) != 1 || products[0].Buyers[0] != "Alice" {
			t.Errorf("%s buyers = %v, want [Alice]", products[0].Name, products[0].Buyers)
		}
		if len(products[1].Buyers) != 1 || products[1].Buyers[0] != "Bob" {
			t.Errorf("%s buyers = %v, want [Bob]", products[1].Name, products[1].Buyers)
		}
		if len(out.Report.Buyers) != 2 {
			t.Errorf("day buyers = %v, want both", out.Report.Buyers)
		}
	})

	t.Run("queries a half-open local day window", func(t *testing.T) {
		repo := &fakeReportRepo{}
		uc := NewDailySalesUseCase(repo, loc)

		if _, err := uc.Execute(ctx, DailySalesInput{Date: "2026-03-01"}); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		wantStart := time.Date(2026, 3, 1, 0, 0, 0, 0, loc)
		wantEnd := time.Date(2026, 3, 2, 0, 0, 0, 0, loc)
		if !repo.gotStart.Equal(wantStart) {
			t.Errorf("start = %v, want %v", repo.gotStart, wantStart)
		}
		if !repo.gotEnd.Equal(wantEnd) {
			t.Errorf("end = %v, want %v", repo.gotEnd, wantEnd)
		}
	})

	t.Run("empty day yields zero totals", func(t *testing.T) {
		uc := NewDailySalesUseCase(&fakeReportRepo{}, loc)

		out, err := uc.Execute(ctx, DailySalesInput{Date: "2026-03-01"})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !out.Report.TotalSales.IsZero() {
			t.Errorf("total = %s, want 0", out.Report.TotalSales)
		}
		if len(out.Report.Products) != 0 || len(out.Report.Buyers) != 0 {
			t.Errorf("expected empty products and buyers")
		}
	})

	t.Run("rejects a malformed date", func(t *testing.T) {
		uc := NewDailySalesUseCase(&fakeReportRepo{}, loc)

		_, err := uc.Execute(ctx, DailySalesInput{Date: "03/01/2026"})
		var repErr *domainerror.ReportError
		if !errors.As(err, &repErr) || repErr.Code != domainerror.ErrCodeInvalidReportDate {
			t.Fatalf("expected invalid report date error, got %v", err)
		}
	})
}
