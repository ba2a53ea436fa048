package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campus-pos/backend/internal/application/usecase/checkout"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
	"github.com/campus-pos/backend/internal/integration/entrypoint/dto"
	"github.com/campus-pos/backend/internal/integration/entrypoint/middleware"
)

// TransactionController handles checkout and settlement endpoints.
type TransactionController struct {
	createUseCase          *checkout.CreateTransactionUseCase
	listUseCase            *checkout.ListTransactionsUseCase
	confirmPayLaterUseCase *checkout.ConfirmPayLaterUseCase
}

// NewTransactionController creates a new transaction controller instance.
func NewTransactionController(
	createUseCase *checkout.CreateTransactionUseCase,
	listUseCase *checkout.ListTransactionsUseCase,
	confirmPayLaterUseCase *checkout.ConfirmPayLaterUseCase,
) *TransactionController {
	return &TransactionController{
		createUseCase:          createUseCase,
		listUseCase:            listUseCase,
		confirmPayLaterUseCase: confirmPayLaterUseCase,
	}
}

// Create handles POST /transactions requests: the checkout of a cart.
func (c *TransactionController) Create(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.CreateTransactionRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeEmptyCart),
		})
		return
	}

	items := make([]checkout.CheckoutItem, 0, len(req.Items))
	for _, item := range req.Items {
		entry := checkout.CheckoutItem{
			Barcode:  item.Barcode,
			Quantity: item.Quantity,
		}
		if item.ProductID != "" {
			id, err := uuid.Parse(item.ProductID)
			if err != nil {
				ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
					Error: "Invalid product id in cart",
					Code:  string(domainerror.ErrCodeProductNotFound),
				})
				return
			}
			entry.ProductID = id
		}
		items = append(items, entry)
	}

	input := checkout.CreateTransactionInput{
		UserID:        userID,
		PaymentMethod: req.PaymentMethod,
		Items:         items,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToTransactionResponse(output.Transaction))
}

// List handles GET /transactions requests: the caller's purchase history
// plus their settlement history.
func (c *TransactionController) List(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), checkout.ListTransactionsInput{
		UserID: userID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions, output.PaidItems))
}

// ListForUser handles GET /users/:id/transactions requests: an admin view
// of another user's purchase and settlement history.
func (c *TransactionController) ListForUser(ctx *gin.Context) {
	targetID, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid user id",
			Code:  string(domainerror.ErrCodeTransactionNotFound),
		})
		return
	}

	output, err := c.listUseCase.Execute(ctx.Request.Context(), checkout.ListTransactionsInput{
		UserID: targetID,
	})
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToTransactionListResponse(output.Transactions, output.PaidItems))
}

// ConfirmPayLater handles POST /transactions/pay-later/confirm requests.
func (c *TransactionController) ConfirmPayLater(ctx *gin.Context) {
	userID, ok := middleware.GetUserIDFromContext(ctx)
	if !ok {
		ctx.JSON(http.StatusUnauthorized, dto.ErrorResponse{
			Error: "Authentication required",
			Code:  string(domainerror.ErrCodeMissingToken),
		})
		return
	}

	var req dto.ConfirmPayLaterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingSettlementIDs),
		})
		return
	}

	itemIDs := make([]uuid.UUID, 0, len(req.ItemIDs))
	for _, raw := range req.ItemIDs {
		id, err := uuid.Parse(raw)
		if err != nil {
			ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
				Error: "Invalid item id",
				Code:  string(domainerror.ErrCodeIncompleteLineItem),
			})
			return
		}
		itemIDs = append(itemIDs, id)
	}

	input := checkout.ConfirmPayLaterInput{
		UserID:  userID,
		ItemIDs: itemIDs,
	}

	output, err := c.confirmPayLaterUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleTransactionError(ctx, err)
		return
	}

	settled := make([]dto.TransactionItemResponse, 0, len(output.SettledItems))
	for _, item := range output.SettledItems {
		settled = append(settled, dto.ToTransactionItemResponse(item))
	}

	ctx.JSON(http.StatusOK, dto.SettlementResponse{
		SettledItems: settled,
		Message:      output.Message,
	})
}

// handleTransactionError handles checkout errors and returns appropriate
// HTTP responses. Checkout can also surface product errors when a cart
// entry fails to resolve.
func (c *TransactionController) handleTransactionError(ctx *gin.Context, err error) {
	var txnErr *domainerror.TransactionError
	if errors.As(err, &txnErr) {
		statusCode := getStatusCodeForTransactionError(txnErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: txnErr.Message,
			Code:  string(txnErr.Code),
		})
		return
	}

	var productErr *domainerror.ProductError
	if errors.As(err, &productErr) {
		statusCode := getStatusCodeForProductError(productErr.Code)
		ctx.JSON(statusCode, dto.ErrorResponse{
			Error: productErr.Message,
			Code:  string(productErr.Code),
		})
		return
	}

	ctx.JSON(http.StatusInternalServerError, dto.ErrorResponse{
		Error: "An internal error occurred",
	})
}

// getStatusCodeForTransactionError maps transaction error codes to HTTP status codes.
func getStatusCodeForTransactionError(code domainerror.TransactionErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidPaymentMethod,
		domainerror.ErrCodeEmptyCart,
		domainerror.ErrCodeInvalidItemQuantity,
		domainerror.ErrCodeMissingSettlementIDs:
		return http.StatusBadRequest
	case domainerror.ErrCodeUnknownBarcode,
		domainerror.ErrCodeLineItemNotFound,
		domainerror.ErrCodeTransactionNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeCheckoutOutOfStock:
		return http.StatusConflict
	case domainerror.ErrCodeIncompleteLineItem:
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
