package checkout

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
)

// fakeTransactionRepo mimics the guarded settlement semantics of the real
// repository: an item can be settled once, only by its owner, each
// settlement appends a history record, and a failing item rolls the whole
// batch back.
type fakeTransactionRepo struct {
	items     map[uuid.UUID]*entity.TransactionItem
	owners    map[uuid.UUID]uuid.UUID
	paidItems []*entity.PaidItem
}

func newFakeTransactionRepo() *fakeTransactionRepo {
	return &fakeTransactionRepo{
		items:  make(map[uuid.UUID]*entity.TransactionItem),
		owners: make(map[uuid.UUID]uuid.UUID),
	}
}

func (f *fakeTransactionRepo) addPendingItem(userID uuid.UUID, name string, price decimal.Decimal) *entity.TransactionItem {
	item := entity.NewTransactionItem(uuid.New(), name, price, 1, entity.PaymentStatusPayLater)
	f.items[item.ID] = item
	f.owners[item.ID] = userID
	return item
}

func (f *fakeTransactionRepo) Create(ctx context.Context, txn *entity.Transaction, decrements []adapter.StockDecrement) error {
	return nil
}

func (f *fakeTransactionRepo) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	return nil, domainerror.ErrTransactionNotFound
}

func (f *fakeTransactionRepo) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	return nil, nil
}

func (f *fakeTransactionRepo) SettleLineItems(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) ([]*entity.TransactionItem, error) {
	for _, itemID := range itemIDs {
		item, ok := f.items[itemID]
		if !ok || f.owners[itemID] != userID || item.PaymentStatus != entity.PaymentStatusPayLater {
			return nil, domainerror.ErrLineItemNotFound
		}
		if item.Name == "" || !item.Price.IsPositive() {
			return nil, domainerror.ErrIncompleteLineItem
		}
	}

	settled := make([]*entity.TransactionItem, 0, len(itemIDs))
	for _, itemID := range itemIDs {
		item := f.items[itemID]
		item.PaymentStatus = entity.PaymentStatusPaid
		f.paidItems = append(f.paidItems, entity.NewPaidItem(userID, item, entity.PaymentMethodPayLater))
		settled = append(settled, item)
	}
	return settled, nil
}

func (f *fakeTransactionRepo) FindPaidItems(ctx context.Context, userID uuid.UUID) ([]*entity.PaidItem, error) {
	var out []*entity.PaidItem
	for _, p := range f.paidItems {
		if p.UserID == userID {
			out = append(out, p)
		}
	}
	return out, nil
}

func TestConfirmPayLater(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	otherUserID := uuid.New()

	t.Run("settles pending items and records history", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		coffee := repo.addPendingItem(userID, "Coffee", decimal.NewFromInt(10))
		soda := repo.addPendingItem(userID, "Soda", decimal.NewFromInt(5))
		uc := NewConfirmPayLaterUseCase(repo)

		out, err := uc.Execute(ctx, ConfirmPayLaterInput{
			UserID:  userID,
			ItemIDs: []uuid.UUID{coffee.ID, soda.ID},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if len(out.SettledItems) != 2 {
			t.Fatalf("expected 2 settled items, got %d", len(out.SettledItems))
		}
		for _, item := range out.SettledItems {
			if item.PaymentStatus != entity.PaymentStatusPaid {
				t.Errorf("item %s not marked Paid: %s", item.Name, item.PaymentStatus)
			}
		}
		history, _ := repo.FindPaidItems(ctx, userID)
		if len(history) != 2 {
			t.Errorf("expected 2 history records, got %d", len(history))
		}
	})

	t.Run("second settlement of the same item fails", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		coffee := repo.addPendingItem(userID, "Coffee", decimal.NewFromInt(10))
		uc := NewConfirmPayLaterUseCase(repo)

		if _, err := uc.Execute(ctx, ConfirmPayLaterInput{UserID: userID, ItemIDs: []uuid.UUID{coffee.ID}}); err != nil {
			t.Fatalf("first settlement failed: %v", err)
		}

		_, err := uc.Execute(ctx, ConfirmPayLaterInput{UserID: userID, ItemIDs: []uuid.UUID{coffee.ID}})
		var txnErr *domainerror.TransactionError
		if !asTransactionError(err, &txnErr) || txnErr.Code != domainerror.ErrCodeLineItemNotFound {
			t.Fatalf("expected line item not found, got %v", err)
		}
		// History must not gain a second record
		history, _ := repo.FindPaidItems(ctx, userID)
		if len(history) != 1 {
			t.Errorf("expected 1 history record, got %d", len(history))
		}
	})

	t.Run("cannot settle another user's item", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		coffee := repo.addPendingItem(otherUserID, "Coffee", decimal.NewFromInt(10))
		uc := NewConfirmPayLaterUseCase(repo)

		_, err := uc.Execute(ctx, ConfirmPayLaterInput{UserID: userID, ItemIDs: []uuid.UUID{coffee.ID}})
		var txnErr *domainerror.TransactionError
		if !asTransactionError(err, &txnErr) || txnErr.Code != domainerror.ErrCodeLineItemNotFound {
			t.Fatalf("expected line item not found, got %v", err)
		}
		if coffee.PaymentStatus != entity.PaymentStatusPayLater {
			t.Errorf("other user's item was modified")
		}
	})

	t.Run("an unknown id fails the whole batch", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		coffee := repo.addPendingItem(userID, "Coffee", decimal.NewFromInt(10))
		uc := NewConfirmPayLaterUseCase(repo)

		_, err := uc.Execute(ctx, ConfirmPayLaterInput{
			UserID:  userID,
			ItemIDs: []uuid.UUID{coffee.ID, uuid.New()},
		})
		var txnErr *domainerror.TransactionError
		if !asTransactionError(err, &txnErr) || txnErr.Code != domainerror.ErrCodeLineItemNotFound {
			t.Fatalf("expected line item not found, got %v", err)
		}
		if coffee.PaymentStatus != entity.PaymentStatusPayLater {
			t.Errorf("no item may settle when the batch fails")
		}
		history, _ := repo.FindPaidItems(ctx, userID)
		if len(history) != 0 {
			t.Errorf("expected no history records, got %d", len(history))
		}
	})

	t.Run("an item without a price fails the whole batch", func(t *testing.T) {
		repo := newFakeTransactionRepo()
		coffee := repo.addPendingItem(userID, "Coffee", decimal.NewFromInt(10))
		broken := repo.addPendingItem(userID, "Mystery", decimal.Zero)
		uc := NewConfirmPayLaterUseCase(repo)

		_, err := uc.Execute(ctx, ConfirmPayLaterInput{
			UserID:  userID,
			ItemIDs: []uuid.UUID{coffee.ID, broken.ID},
		})
		var txnErr *domainerror.TransactionError
		if !asTransactionError(err, &txnErr) || txnErr.Code != domainerror.ErrCodeIncompleteLineItem {
			t.Fatalf("expected incomplete line item, got %v", err)
		}
		if coffee.PaymentStatus != entity.PaymentStatusPayLater {
			t.Errorf("no item may settle when the batch fails")
		}
	})

	t.Run("rejects empty id list", func(t *testing.T) {
		uc := NewConfirmPayLaterUseCase(newFakeTransactionRepo())

		_, err := uc.Execute(ctx, ConfirmPayLaterInput{UserID: userID})
		var txnErr *domainerror.TransactionError
		if !asTransactionError(err, &txnErr) || txnErr.Code != domainerror.ErrCodeMissingSettlementIDs {
			t.Fatalf("expected missing settlement ids error, got %v", err)
		}
	})

	t.Run("rejects nil item id", func(t *testing.T) {
		uc := NewConfirmPayLaterUseCase(newFakeTransactionRepo())

		_, err := uc.Execute(ctx, ConfirmPayLaterInput{UserID: userID, ItemIDs: []uuid.UUID{uuid.Nil}})
		var txnErr *domainerror.TransactionError
		if !asTransactionError(err, &txnErr) || txnErr.Code != domainerror.ErrCodeIncompleteLineItem {
			t.Fatalf("expected incomplete line item error, got %v", err)
		}
	})
}

func asTransactionError(err error, target **domainerror.TransactionError) bool {
	return errors.As(err, target)
}
