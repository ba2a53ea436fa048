// Package model defines database models for persistence layer.
package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/campus-pos/backend/internal/domain/entity"
)

// TransactionModel represents the transactions table in the database.
type TransactionModel struct {
	ID              uuid.UUID              `gorm:"type:uuid;primaryKey"`
	UserID          uuid.UUID              `gorm:"type:uuid;index;not null"`
	ReceiptNumber   string                 `gorm:"type:varchar(50);uniqueIndex;not null"`
	PaymentMethod   string                 `gorm:"type:varchar(20);not null"`
	TransactionDate time.Time              `gorm:"index;not null"`
	Items           []TransactionItemModel `gorm:"foreignKey:TransactionID"`
	CreatedAt       time.Time              `gorm:"not null"`
	UpdatedAt       time.Time              `gorm:"not null"`
}

// TableName returns the table name for the TransactionModel.
func (TransactionModel) TableName() string {
	return "transactions"
}

// TransactionItemModel represents the transaction_items table. Name and price
// are snapshots taken at checkout; catalog edits do not touch sold items.
type TransactionItemModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	TransactionID uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	Quantity      int             `gorm:"not null"`
	TotalPrice    decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentStatus string          `gorm:"type:varchar(20);index;not null"`
}

// TableName returns the table name for the TransactionItemModel.
func (TransactionItemModel) TableName() string {
	return "transaction_items"
}

// PaidItemModel represents the paid_items settlement history table.
type PaidItemModel struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	UserID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	ItemID        uuid.UUID       `gorm:"type:uuid;index;not null"`
	Name          string          `gorm:"type:varchar(255);not null"`
	Price         decimal.Decimal `gorm:"type:decimal(12,2);not null"`
	PaymentMethod string          `gorm:"type:varchar(20);not null"`
	SettledAt     time.Time       `gorm:"not null"`
}

// TableName returns the table name for the PaidItemModel.
func (PaidItemModel) TableName() string {
	return "paid_items"
}

// ToEntity converts a TransactionModel to a domain Transaction entity.
func (m *TransactionModel) ToEntity() *entity.Transaction {
	items := make([]*entity.TransactionItem, len(m.Items))
	for i, itemModel := range m.Items {
		items[i] = itemModel.ToEntity()
	}
	return &entity.Transaction{
		ID:              m.ID,
		UserID:          m.UserID,
		ReceiptNumber:   m.ReceiptNumber,
		PaymentMethod:   entity.PaymentMethod(m.PaymentMethod),
		TransactionDate: m.TransactionDate,
		Items:           items,
		CreatedAt:       m.CreatedAt,
		LastUpdated:     m.UpdatedAt,
	}
}

// TransactionModelFromEntity creates a TransactionModel from a domain Transaction entity.
func TransactionModelFromEntity(txn *entity.Transaction) *TransactionModel {
	items := make([]TransactionItemModel, len(txn.Items))
	for i, item := range txn.Items {
		items[i] = *TransactionItemModelFromEntity(item)
	}
	return &TransactionModel{
		ID:              txn.ID,
		UserID:          txn.UserID,
		ReceiptNumber:   txn.ReceiptNumber,
		PaymentMethod:   string(txn.PaymentMethod),
		TransactionDate: txn.TransactionDate,
		Items:           items,
		CreatedAt:       txn.CreatedAt,
		UpdatedAt:       txn.LastUpdated,
	}
}

// ToEntity converts a TransactionItemModel to a domain TransactionItem entity.
func (m *TransactionItemModel) ToEntity() *entity.TransactionItem {
	return &entity.TransactionItem{
		ID:            m.ID,
		TransactionID: m.TransactionID,
		Name:          m.Name,
		Price:         m.Price,
		Quantity:      m.Quantity,
		TotalPrice:    m.TotalPrice,
		PaymentStatus: entity.PaymentStatus(m.PaymentStatus),
	}
}

// TransactionItemModelFromEntity creates a TransactionItemModel from a domain entity.
func TransactionItemModelFromEntity(item *entity.TransactionItem) *TransactionItemModel {
	return &TransactionItemModel{
		ID:            item.ID,
		TransactionID: item.TransactionID,
		Name:          item.Name,
		Price:         item.Price,
		Quantity:      item.Quantity,
		TotalPrice:    item.TotalPrice,
		PaymentStatus: string(item.PaymentStatus),
	}
}

// ToEntity converts a PaidItemModel to a domain PaidItem entity.
func (m *PaidItemModel) ToEntity() *entity.PaidItem {
	return &entity.PaidItem{
		ID:            m.ID,
		UserID:        m.UserID,
		ItemID:        m.ItemID,
		Name:          m.Name,
		Price:         m.Price,
		PaymentMethod: entity.PaymentMethod(m.PaymentMethod),
		SettledAt:     m.SettledAt,
	}
}

// PaidItemModelFromEntity creates a PaidItemModel from a domain PaidItem entity.
func PaidItemModelFromEntity(paid *entity.PaidItem) *PaidItemModel {
	return &PaidItemModel{
		ID:            paid.ID,
		UserID:        paid.UserID,
		ItemID:        paid.ItemID,
		Name:          paid.Name,
		Price:         paid.Price,
		PaymentMethod: string(paid.PaymentMethod),
		SettledAt:     paid.SettledAt,
	}
}
