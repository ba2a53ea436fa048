package checkout

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// fakeCatalog is an in-memory product catalog with stock counts.
type fakeCatalog struct {
	products map[uuid.UUID]*entity.Product
}

func newFakeCatalog() *fakeCatalog {
	return &fakeCatalog{products: make(map[uuid.UUID]*entity.Product)}
}

func (f *fakeCatalog) addProduct(name, barcode string, price decimal.Decimal, stock int) *entity.Product {
	product := &entity.Product{
		ID:       uuid.New(),
		Name:     name,
		Price:    price,
		Quantity: stock,
		Barcode:  barcode,
		Category: entity.CategoryDrinks,
	}
	f.products[product.ID] = product
	return product
}

func (f *fakeCatalog) Create(ctx context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeCatalog) FindByID(ctx context.Context, id uuid.UUID) (*entity.Product, error) {
	if product, ok := f.products[id]; ok {
		return product, nil
	}
	return nil, domainerror.ErrProductNotFound
}

func (f *fakeCatalog) FindByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	for _, product := range f.products {
		if product.Barcode == barcode {
			return product, nil
		}
	}
	return nil, domainerror.ErrProductNotFound
}

func (f *fakeCatalog) FindAll(ctx context.Context) ([]*entity.Product, error) {
	out := make([]*entity.Product, 0, len(f.products))
	for _, product := range f.products {
		out = append(out, product)
	}
	return out, nil
}

func (f *fakeCatalog) Update(ctx context.Context, product *entity.Product) error {
	f.products[product.ID] = product
	return nil
}

func (f *fakeCatalog) Delete(ctx context.Context, id uuid.UUID) error {
	delete(f.products, id)
	return nil
}

func (f *fakeCatalog) ExistsByBarcode(ctx context.Context, barcode string) (bool, error) {
	_, err := f.FindByBarcode(ctx, barcode)
	return err == nil, nil
}

func (f *fakeCatalog) DecrementStock(ctx context.Context, id uuid.UUID, qty int) error {
	product, ok := f.products[id]
	if !ok {
		return domainerror.ErrProductNotFound
	}
	if product.Quantity < qty {
		return domainerror.ErrInsufficientStock
	}
	product.Quantity -= qty
	return nil
}

// checkoutTxnRepo mimics the all-or-nothing commit of the real repository:
// every stock decrement must succeed or nothing is persisted.
type checkoutTxnRepo struct {
	catalog *fakeCatalog
	created []*entity.Transaction
}

func (r *checkoutTxnRepo) Create(ctx context.Context, txn *entity.Transaction, decrements []adapter.StockDecrement) error {
	for _, d := range decrements {
		product, ok := r.catalog.products[d.ProductID]
		if !ok {
			return domainerror.ErrProductNotFound
		}
		if product.Quantity < d.Quantity {
			return domainerror.ErrInsufficientStock
		}
	}
	for _, d := range decrements {
		r.catalog.products[d.ProductID].Quantity -= d.Quantity
	}
	r.created = append(r.created, txn)
	return nil
}

func (r *checkoutTxnRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (r *checkoutTxnRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return r.created, nil
}

func (r *checkoutTxnRepo) SettleLineItems(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) ([]*entity.TransactionItem, error) {
	return nil, domainerror.ErrLineItemNotFound
}

func (r *checkoutTxnRepo) FindPaidItems(ctx context.Context, userID uuid.UUID) ([]*entity.PaidItem, error) {
	return nil, nil
}

// recordingCache records barcode invalidations.
type recordingCache struct {
	invalidated []string
}

func (c *recordingCache) GetByBarcode(ctx context.Context, barcode string) (*entity.Product, error) {
	return nil, nil
}

func (c *recordingCache) SetByBarcode(ctx context.Context, product *entity.Product) error {
	return nil
}

func (c *recordingCache) InvalidateBarcode(ctx context.Context, barcode string) error {
	c.invalidated = append(c.invalidated, barcode)
	return nil
}

var (
	_ adapter.ProductRepository     = (*fakeCatalog)(nil)
	_ adapter.TransactionRepository = (*checkoutTxnRepo)(nil)
	_ adapter.ProductCache          = (*recordingCache)(nil)
)

func transactionErrorCode(err error) domainerror.TransactionErrorCode {
	var txnErr *domainerror.TransactionError
	if asTransactionError(err, &txnErr) {
		return txnErr.Code
	}
	return ""
}

func TestCreateTransaction(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("cash checkout snapshots prices and decrements stock", func(t *testing.T) {
		catalog := newFakeCatalog()
		cola := catalog.addProduct("Cola", "4900000201", decimal.RequireFromString("1.75"), 10)
		txnRepo := &checkoutTxnRepo{catalog: catalog}
		cache := &recordingCache{}
		uc := NewCreateTransactionUseCase(txnRepo, catalog, cache)

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        userID,
			PaymentMethod: "Cash",
			Items:         []CheckoutItem{{ProductID: cola.ID, Quantity: 2}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transaction.ReceiptNumber == "" {
			t.Error("expected a receipt number")
		}
		if len(out.Transaction.Items) != 1 {
			t.Fatalf("expected 1 line item, got %d", len(out.Transaction.Items))
		}
		item := out.Transaction.Items[0]
		if item.PaymentStatus != entity.PaymentStatusPaid {
			t.Errorf("cash items must be Paid, got %s", item.PaymentStatus)
		}
		if !item.TotalPrice.Equal(decimal.RequireFromString("3.50")) {
			t.Errorf("wrong line total: %s", item.TotalPrice)
		}
		if cola.Quantity != 8 {
			t.Errorf("stock not decremented, got %d", cola.Quantity)
		}
		if len(cache.invalidated) != 1 || cache.invalidated[0] != "4900000201" {
			t.Errorf("barcode cache not invalidated: %v", cache.invalidated)
		}
	})

	t.Run("pay later checkout leaves items pending", func(t *testing.T) {
		catalog := newFakeCatalog()
		chips := catalog.addProduct("Chips", "4900000202", decimal.RequireFromString("1.20"), 6)
		txnRepo := &checkoutTxnRepo{catalog: catalog}
		uc := NewCreateTransactionUseCase(txnRepo, catalog, nil)

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        userID,
			PaymentMethod: "Pay Later",
			Items:         []CheckoutItem{{ProductID: chips.ID, Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transaction.Items[0].PaymentStatus != entity.PaymentStatusPayLater {
			t.Errorf("pay later items must stay pending, got %s", out.Transaction.Items[0].PaymentStatus)
		}
	})

	t.Run("cart entries resolve by barcode", func(t *testing.T) {
		catalog := newFakeCatalog()
		catalog.addProduct("Juice", "4900000203", decimal.RequireFromString("2.25"), 4)
		txnRepo := &checkoutTxnRepo{catalog: catalog}
		uc := NewCreateTransactionUseCase(txnRepo, catalog, nil)

		out, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        userID,
			PaymentMethod: "Cash",
			Items:         []CheckoutItem{{Barcode: "4900000203", Quantity: 1}},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if out.Transaction.Items[0].Name != "Juice" {
			t.Errorf("wrong product resolved: %s", out.Transaction.Items[0].Name)
		}
	})

	t.Run("out of stock rolls the whole purchase back", func(t *testing.T) {
		catalog := newFakeCatalog()
		cola := catalog.addProduct("Cola", "4900000204", decimal.RequireFromString("1.75"), 10)
		rare := catalog.addProduct("Rare Snack", "4900000205", decimal.RequireFromString("5.00"), 1)
		txnRepo := &checkoutTxnRepo{catalog: catalog}
		uc := NewCreateTransactionUseCase(txnRepo, catalog, nil)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        userID,
			PaymentMethod: "Cash",
			Items: []CheckoutItem{
				{ProductID: cola.ID, Quantity: 1},
				{ProductID: rare.ID, Quantity: 3},
			},
		})
		if transactionErrorCode(err) != domainerror.ErrCodeCheckoutOutOfStock {
			t.Fatalf("expected out of stock, got %v", err)
		}
		if cola.Quantity != 10 || rare.Quantity != 1 {
			t.Errorf("stock must be untouched after rollback: cola=%d rare=%d", cola.Quantity, rare.Quantity)
		}
		if len(txnRepo.created) != 0 {
			t.Errorf("no transaction must be persisted, got %d", len(txnRepo.created))
		}
	})

	t.Run("rejects an unknown payment method", func(t *testing.T) {
		catalog := newFakeCatalog()
		cola := catalog.addProduct("Cola", "4900000206", decimal.RequireFromString("1.75"), 10)
		uc := NewCreateTransactionUseCase(&checkoutTxnRepo{catalog: catalog}, catalog, nil)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        userID,
			PaymentMethod: "Card",
			Items:         []CheckoutItem{{ProductID: cola.ID, Quantity: 1}},
		})
		if transactionErrorCode(err) != domainerror.ErrCodeInvalidPaymentMethod {
			t.Fatalf("expected invalid payment method, got %v", err)
		}
	})

	t.Run("rejects an empty cart", func(t *testing.T) {
		catalog := newFakeCatalog()
		uc := NewCreateTransactionUseCase(&checkoutTxnRepo{catalog: catalog}, catalog, nil)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        userID,
			PaymentMethod: "Cash",
		})
		if transactionErrorCode(err) != domainerror.ErrCodeEmptyCart {
			t.Fatalf("expected empty cart, got %v", err)
		}
	})

	t.Run("rejects a non-positive quantity", func(t *testing.T) {
		catalog := newFakeCatalog()
		cola := catalog.addProduct("Cola", "4900000207", decimal.RequireFromString("1.75"), 10)
		uc := NewCreateTransactionUseCase(&checkoutTxnRepo{catalog: catalog}, catalog, nil)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        userID,
			PaymentMethod: "Cash",
			Items:         []CheckoutItem{{ProductID: cola.ID, Quantity: 0}},
		})
		if transactionErrorCode(err) != domainerror.ErrCodeInvalidItemQuantity {
			t.Fatalf("expected invalid quantity, got %v", err)
		}
	})

	t.Run("unknown barcode fails the checkout", func(t *testing.T) {
		catalog := newFakeCatalog()
		uc := NewCreateTransactionUseCase(&checkoutTxnRepo{catalog: catalog}, catalog, nil)

		_, err := uc.Execute(ctx, CreateTransactionInput{
			UserID:        userID,
			PaymentMethod: "Cash",
			Items:         []CheckoutItem{{Barcode: "0000000000", Quantity: 1}},
		})
		if transactionErrorCode(err) != domainerror.ErrCodeUnknownBarcode {
			t.Fatalf("expected unknown barcode, got %v", err)
		}
	})
}
