package dto

import (
	"time"

	"github.com/shopspring/decimal"

	"github.com/campus-pos/backend/internal/domain/entity"
)

// CheckoutItemRequest is one cart entry at checkout. Either product_id or
// barcode identifies the product; product_id wins when both are present.
type CheckoutItemRequest struct {
	ProductID string `json:"product_id"`
	Barcode   string `json:"barcode"`
	Quantity  int    `json:"quantity" binding:"required,min=1"`
}

// CreateTransactionRequest represents the request body for checkout.
type CreateTransactionRequest struct {
	PaymentMethod string                `json:"payment_method" binding:"required"`
	Items         []CheckoutItemRequest `json:"items" binding:"required"`
}

// ConfirmPayLaterRequest represents the request body for settling
// pay-later line items.
type ConfirmPayLaterRequest struct {
	ItemIDs []string `json:"item_ids" binding:"required"`
}

// TransactionItemResponse represents one line item in API responses.
type TransactionItemResponse struct {
	ID            string          `json:"id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	Quantity      int             `json:"quantity"`
	TotalPrice    decimal.Decimal `json:"total_price"`
	PaymentStatus string          `json:"payment_status"`
}

// TransactionResponse represents a purchase in API responses.
type TransactionResponse struct {
	ID              string                    `json:"id"`
	ReceiptNumber   string                    `json:"receipt_number"`
	PaymentMethod   string                    `json:"payment_method"`
	TransactionDate time.Time                 `json:"transaction_date"`
	Total           decimal.Decimal           `json:"total"`
	Items           []TransactionItemResponse `json:"items"`
}

// PaidItemResponse represents one settlement history record.
type PaidItemResponse struct {
	ID            string          `json:"id"`
	ItemID        string          `json:"item_id"`
	Name          string          `json:"name"`
	Price         decimal.Decimal `json:"price"`
	PaymentMethod string          `json:"payment_method"`
	SettledAt     time.Time       `json:"settled_at"`
}

// TransactionListResponse represents a user's purchase history.
type TransactionListResponse struct {
	Transactions []TransactionResponse `json:"transactions"`
	PaidItems    []PaidItemResponse    `json:"paid_items"`
}

// SettlementResponse represents the result of a pay-later confirmation.
type SettlementResponse struct {
	SettledItems []TransactionItemResponse `json:"settled_items"`
	Message      string                    `json:"message"`
}

// ToTransactionItemResponse converts a line item entity to its DTO.
func ToTransactionItemResponse(item *entity.TransactionItem) TransactionItemResponse {
	return TransactionItemResponse{
		ID:            item.ID.String(),
		Name:          item.Name,
		Price:         item.Price,
		Quantity:      item.Quantity,
		TotalPrice:    item.TotalPrice,
		PaymentStatus: string(item.PaymentStatus),
	}
}

// ToTransactionResponse converts a transaction entity to its DTO.
func ToTransactionResponse(txn *entity.Transaction) TransactionResponse {
	items := make([]TransactionItemResponse, 0, len(txn.Items))
	for _, item := range txn.Items {
		items = append(items, ToTransactionItemResponse(item))
	}
	return TransactionResponse{
		ID:              txn.ID.String(),
		ReceiptNumber:   txn.ReceiptNumber,
		PaymentMethod:   string(txn.PaymentMethod),
		TransactionDate: txn.TransactionDate,
		Total:           txn.Total(),
		Items:           items,
	}
}

// ToPaidItemResponse converts a settlement record entity to its DTO.
func ToPaidItemResponse(item *entity.PaidItem) PaidItemResponse {
	return PaidItemResponse{
		ID:            item.ID.String(),
		ItemID:        item.ItemID.String(),
		Name:          item.Name,
		Price:         item.Price,
		PaymentMethod: string(item.PaymentMethod),
		SettledAt:     item.SettledAt,
	}
}

// ToTransactionListResponse converts a purchase history to its DTO.
func ToTransactionListResponse(txns []*entity.Transaction, paid []*entity.PaidItem) TransactionListResponse {
	resp := TransactionListResponse{
		Transactions: make([]TransactionResponse, 0, len(txns)),
		PaidItems:    make([]PaidItemResponse, 0, len(paid)),
	}
	for _, txn := range txns {
		resp.Transactions = append(resp.Transactions, ToTransactionResponse(txn))
	}
	for _, item := range paid {
		resp.PaidItems = append(resp.PaidItems, ToPaidItemResponse(item))
	}
	return resp
}
