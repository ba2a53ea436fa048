// Package persistence implements repository interfaces for database operations.
package persistence

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/campus-pos/backend/internal/application/adapter"
	"github.com/campus-pos/backend/internal/domain/entity"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
	"github.com/campus-pos/backend/internal/integration/persistence/model"
)

// transactionRepository implements the adapter.TransactionRepository interface.
type transactionRepository struct {
	db *gorm.DB
}

// NewTransactionRepository creates a new transaction repository instance.
func NewTransactionRepository(db *gorm.DB) adapter.TransactionRepository {
	return &transactionRepository{
		db: db,
	}
}

// Create persists a transaction with its line items and applies the stock
// decrements in the same database transaction. A failed decrement rolls the
// whole checkout back.
func (r *transactionRepository) Create(ctx context.Context, txn *entity.Transaction, decrements []adapter.StockDecrement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, dec := range decrements {
			result := tx.
				Model(&model.ProductModel{}).
				Where("id = ? AND quantity >= ?", dec.ProductID, dec.Quantity).
				UpdateColumn("quantity", gorm.Expr("quantity - ?", dec.Quantity))
			if result.Error != nil {
				return result.Error
			}
			if result.RowsAffected == 0 {
				return domainerror.ErrInsufficientStock
			}
		}

		txnModel := model.TransactionModelFromEntity(txn)
		if err := tx.Create(txnModel).Error; err != nil {
			return err
		}
		return nil
	})
}

// FindByID retrieves a transaction with its line items.
func (r *transactionRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Transaction, error) {
	var txnModel model.TransactionModel
	result := r.db.WithContext(ctx).Preload("Items").Where("id = ?", id).First(&txnModel)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, domainerror.ErrTransactionNotFound
		}
		return nil, result.Error
	}
	return txnModel.ToEntity(), nil
}

// FindByUser retrieves all transactions for a user, newest first.
func (r *transactionRepository) FindByUser(ctx context.Context, userID uuid.UUID) ([]*entity.Transaction, error) {
	var models []model.TransactionModel
	result := r.db.WithContext(ctx).
		Preload("Items").
		Where("user_id = ?", userID).
		Order("transaction_date DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	transactions := make([]*entity.Transaction, len(models))
	for i, m := range models {
		transactions[i] = m.ToEntity()
	}
	return transactions, nil
}

// SettleLineItems flips the given pending line items from Pay Later to Paid
// and appends a settlement history record per item, all in one database
// transaction. A failed item rolls the whole batch back, so either every
// requested item settles or none does. Each status flip is a guarded
// conditional update: the WHERE clause requires the item to still be pending
// and to belong to the given user, so a concurrent or repeated settlement
// matches zero rows instead of double-settling.
func (r *transactionRepository) SettleLineItems(ctx context.Context, userID uuid.UUID, itemIDs []uuid.UUID) ([]*entity.TransactionItem, error) {
	settled := make([]*entity.TransactionItem, 0, len(itemIDs))

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		for _, itemID := range itemIDs {
			item, err := settleLineItem(tx, userID, itemID)
			if err != nil {
				return err
			}
			settled = append(settled, item)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return settled, nil
}

func settleLineItem(tx *gorm.DB, userID, itemID uuid.UUID) (*entity.TransactionItem, error) {
	result := tx.
		Model(&model.TransactionItemModel{}).
		Where("id = ? AND payment_status = ?", itemID, string(entity.PaymentStatusPayLater)).
		Where("transaction_id IN (?)",
			tx.Model(&model.TransactionModel{}).Select("id").Where("user_id = ?", userID),
		).
		Update("payment_status", string(entity.PaymentStatusPaid))
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, domainerror.ErrLineItemNotFound
	}

	var itemModel model.TransactionItemModel
	if err := tx.Where("id = ?", itemID).First(&itemModel).Error; err != nil {
		return nil, err
	}
	if itemModel.Name == "" || !itemModel.Price.IsPositive() {
		return nil, domainerror.ErrIncompleteLineItem
	}

	item := itemModel.ToEntity()
	paid := entity.NewPaidItem(userID, item, entity.PaymentMethodPayLater)
	if err := tx.Create(model.PaidItemModelFromEntity(paid)).Error; err != nil {
		return nil, err
	}
	return item, nil
}

// FindPaidItems retrieves a user's settlement history, newest first.
func (r *transactionRepository) FindPaidItems(ctx context.Context, userID uuid.UUID) ([]*entity.PaidItem, error) {
	var models []model.PaidItemModel
	result := r.db.WithContext(ctx).
		Where("user_id = ?", userID).
		Order("settled_at DESC").
		Find(&models)
	if result.Error != nil {
		return nil, result.Error
	}

	paidItems := make([]*entity.PaidItem, len(models))
	for i, m := range models {
		paidItems[i] = m.ToEntity()
	}
	return paidItems, nil
}
