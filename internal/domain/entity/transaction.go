// Package entity defines the core business entities for the domain layer.
package entity

import (
	"crypto/rand"
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// PaymentMethod represents how a transaction was paid at checkout.
type PaymentMethod string

const (
	PaymentMethodCash     PaymentMethod = "Cash"
	PaymentMethodPayLater PaymentMethod = "Pay Later"
)

// ValidPaymentMethod reports whether the given method is a known value.
func ValidPaymentMethod(m PaymentMethod) bool {
	return m == PaymentMethodCash || m == PaymentMethodPayLater
}

// PaymentStatus represents the settlement state of a single line item.
// Status is tracked per line item, not per transaction, because a pay-later
// purchase can be settled one item at a time.
type PaymentStatus string

const (
	PaymentStatusPaid     PaymentStatus = "Paid"
	PaymentStatusPayLater PaymentStatus = "Pay Later"
)

// TransactionItem is one line item within a transaction's product list.
type TransactionItem struct {
	ID            uuid.UUID
	TransactionID uuid.UUID
	Name          string
	Price         decimal.Decimal
	Quantity      int
	TotalPrice    decimal.Decimal // Price * Quantity, computed at checkout
	PaymentStatus PaymentStatus
}

// NewTransactionItem creates a line item with its total computed from
// unit price and quantity.
func NewTransactionItem(transactionID uuid.UUID, name string, price decimal.Decimal, quantity int, status PaymentStatus) *TransactionItem {
	return &TransactionItem{
		ID:            uuid.New(),
		TransactionID: transactionID,
		Name:          name,
		Price:         price,
		Quantity:      quantity,
		TotalPrice:    price.Mul(decimal.NewFromInt(int64(quantity))),
		PaymentStatus: status,
	}
}

// Transaction represents a purchase event made at the kiosk.
type Transaction struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	ReceiptNumber   string // generated unique human-readable id
	PaymentMethod   PaymentMethod
	TransactionDate time.Time
	Items           []*TransactionItem
	CreatedAt       time.Time
	LastUpdated     time.Time
}

// NewTransaction creates a Transaction with a fresh receipt number.
// Line items are appended by the checkout flow.
func NewTransaction(userID uuid.UUID, method PaymentMethod, date time.Time) *Transaction {
	now := time.Now().UTC()
	return &Transaction{
		ID:              uuid.New(),
		UserID:          userID,
		ReceiptNumber:   newReceiptNumber(),
		PaymentMethod:   method,
		TransactionDate: date,
		CreatedAt:       now,
		LastUpdated:     now,
	}
}

// AddItem appends a line item priced from the given product data. Items of a
// Cash transaction are settled immediately; Pay Later items start pending.
func (t *Transaction) AddItem(name string, price decimal.Decimal, quantity int) *TransactionItem {
	status := PaymentStatusPaid
	if t.PaymentMethod == PaymentMethodPayLater {
		status = PaymentStatusPayLater
	}
	item := NewTransactionItem(t.ID, name, price, quantity, status)
	t.Items = append(t.Items, item)
	return item
}

// Total returns the sum of all line item totals.
func (t *Transaction) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range t.Items {
		total = total.Add(item.TotalPrice)
	}
	return total
}

// newReceiptNumber generates a unique receipt id like "TXN-9F2C1A0D74E3".
func newReceiptNumber() string {
	buf := make([]byte, 6)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failure is unrecoverable for id generation; fall back
		// to the uuid source instead of returning an empty id.
		return "TXN-" + strings.ToUpper(strings.ReplaceAll(uuid.NewString(), "-", "")[:12])
	}
	return "TXN-" + strings.ToUpper(hex.EncodeToString(buf))
}

// PaidItem is a denormalized settlement record appended to a user's history
// when a pay-later line item is confirmed as paid.
type PaidItem struct {
	ID            uuid.UUID
	UserID        uuid.UUID
	ItemID        uuid.UUID
	Name          string
	Price         decimal.Decimal
	PaymentMethod PaymentMethod
	SettledAt     time.Time
}

// NewPaidItem creates a settlement history record for the given line item.
func NewPaidItem(userID uuid.UUID, item *TransactionItem, method PaymentMethod) *PaidItem {
	return &PaidItem{
		ID:            uuid.New(),
		UserID:        userID,
		ItemID:        item.ID,
		Name:          item.Name,
		Price:         item.Price,
		PaymentMethod: method,
		SettledAt:     time.Now().UTC(),
	}
}
