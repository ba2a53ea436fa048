package persistence

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
	"github.com/campus-pos/backend/internal/integration/persistence/model"
)

var dbCounter int

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	dbCounter++
	dsn := fmt.Sprintf("file:repotest%d?mode=memory&cache=shared", dbCounter)
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test db: %v", err)
	}
	err = db.AutoMigrate(
		&model.UserModel{},
		&model.ProductModel{},
		&model.TransactionModel{},
		&model.TransactionItemModel{},
		&model.PaidItemModel{},
	)
	if err != nil {
		t.Fatalf("failed to migrate: %v", err)
	}
	return db
}

func TestProductRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("create and find by barcode", func(t *testing.T) {
		repo := NewProductRepository(newTestDB(t))
		product := entity.NewProduct("Coke", decimal.NewFromInt(10), 5, "4901234567894", entity.CategoryDrinks, "")

		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("create failed: %v", err)
		}
		got, err := repo.FindByBarcode(ctx, "4901234567894")
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if got.Name != "Coke" || got.Quantity != 5 {
			t.Errorf("got %s qty %d", got.Name, got.Quantity)
		}
	})

	t.Run("unknown barcode reports not found", func(t *testing.T) {
		repo := NewProductRepository(newTestDB(t))

		_, err := repo.FindByBarcode(ctx, "0000000000000")
		if !errors.Is(err, domainerror.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("decrement reduces quantity", func(t *testing.T) {
		repo := NewProductRepository(newTestDB(t))
		product := entity.NewProduct("Coke", decimal.NewFromInt(10), 5, "4901234567894", entity.CategoryDrinks, "")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if err := repo.DecrementStock(ctx, product.ID, 3); err != nil {
			t.Fatalf("decrement failed: %v", err)
		}
		got, err := repo.FindByID(ctx, product.ID)
		if err != nil {
			t.Fatalf("find failed: %v", err)
		}
		if got.Quantity != 2 {
			t.Errorf("quantity = %d, want 2", got.Quantity)
		}
	})

	t.Run("decrement past zero is rejected and leaves stock unchanged", func(t *testing.T) {
		repo := NewProductRepository(newTestDB(t))
		product := entity.NewProduct("Coke", decimal.NewFromInt(10), 2, "4901234567894", entity.CategoryDrinks, "")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		err := repo.DecrementStock(ctx, product.ID, 3)
		if !errors.Is(err, domainerror.ErrInsufficientStock) {
			t.Fatalf("expected ErrInsufficientStock, got %v", err)
		}
		got, _ := repo.FindByID(ctx, product.ID)
		if got.Quantity != 2 {
			t.Errorf("quantity = %d, want unchanged 2", got.Quantity)
		}
	})

	t.Run("decrement to exactly zero succeeds", func(t *testing.T) {
		repo := NewProductRepository(newTestDB(t))
		product := entity.NewProduct("Coke", decimal.NewFromInt(10), 2, "4901234567894", entity.CategoryDrinks, "")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		if err := repo.DecrementStock(ctx, product.ID, 2); err != nil {
			t.Fatalf("decrement failed: %v", err)
		}
		got, _ := repo.FindByID(ctx, product.ID)
		if got.Quantity != 0 {
			t.Errorf("quantity = %d, want 0", got.Quantity)
		}
	})

	t.Run("decrement of a missing product reports not found", func(t *testing.T) {
		repo := NewProductRepository(newTestDB(t))
		product := entity.NewProduct("Coke", decimal.NewFromInt(10), 2, "4901234567894", entity.CategoryDrinks, "")

		err := repo.DecrementStock(ctx, product.ID, 1)
		if !errors.Is(err, domainerror.ErrProductNotFound) {
			t.Fatalf("expected ErrProductNotFound, got %v", err)
		}
	})

	t.Run("exists by barcode", func(t *testing.T) {
		repo := NewProductRepository(newTestDB(t))
		product := entity.NewProduct("Coke", decimal.NewFromInt(10), 2, "4901234567894", entity.CategoryDrinks, "")
		if err := repo.Create(ctx, product); err != nil {
			t.Fatalf("create failed: %v", err)
		}

		exists, err := repo.ExistsByBarcode(ctx, "4901234567894")
		if err != nil || !exists {
			t.Errorf("exists = %v, err = %v", exists, err)
		}
		exists, err = repo.ExistsByBarcode(ctx, "1111111111111")
		if err != nil || exists {
			t.Errorf("exists = %v, err = %v", exists, err)
		}
	})
}
