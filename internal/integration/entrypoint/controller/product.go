package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/campus-pos/backend/internal/application/usecase/product"
	domainerror "github.com/campus-pos/backend/internal/domain/error"
	"github.com/campus-pos/backend/internal/integration/entrypoint/dto"
)

// ProductController handles product catalog endpoints.
type ProductController struct {
	listUseCase         *product.ListProductsUseCase
	getUseCase          *product.GetProductUseCase
	getByBarcodeUseCase *product.GetByBarcodeUseCase
	createUseCase       *product.CreateProductUseCase
	updateUseCase       *product.UpdateProductUseCase
	deleteUseCase       *product.DeleteProductUseCase
	decrementUseCase    *product.DecrementStockUseCase
}

// NewProductController creates a new product controller instance.
func NewProductController(
	listUseCase *product.ListProductsUseCase,
	getUseCase *product.GetProductUseCase,
	getByBarcodeUseCase *product.GetByBarcodeUseCase,
	createUseCase *product.CreateProductUseCase,
	updateUseCase *product.UpdateProductUseCase,
	deleteUseCase *product.DeleteProductUseCase,
	decrementUseCase *product.DecrementStockUseCase,
) *ProductController {
	return &ProductController{
		listUseCase:         listUseCase,
		getUseCase:          getUseCase,
		getByBarcodeUseCase: getByBarcodeUseCase,
		createUseCase:       createUseCase,
		updateUseCase:       updateUseCase,
		deleteUseCase:       deleteUseCase,
		decrementUseCase:    decrementUseCase,
	}
}

// List handles GET /products requests.
func (c *ProductController) List(ctx *gin.Context) {
	output, err := c.listUseCase.Execute(ctx.Request.Context())
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductListResponse(output.Products))
}

// Get handles GET /products/:id requests.
func (c *ProductController) Get(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product id",
			Code:  string(domainerror.ErrCodeMissingProductFields),
		})
		return
	}

	output, err := c.getUseCase.Execute(ctx.Request.Context(), product.GetProductInput{ID: id})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// GetByBarcode handles GET /products/barcode/:code requests. This is the
// scanner's hot path at the kiosk.
func (c *ProductController) GetByBarcode(ctx *gin.Context) {
	output, err := c.getByBarcodeUseCase.Execute(ctx.Request.Context(), product.GetByBarcodeInput{
		Barcode: ctx.Param("code"),
	})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Create handles POST /products requests (admin only).
func (c *ProductController) Create(ctx *gin.Context) {
	var req dto.CreateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingProductFields),
		})
		return
	}

	input := product.CreateProductInput{
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Barcode:  req.Barcode,
		Category: req.Category,
		ImageURL: req.ImageURL,
	}

	output, err := c.createUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.ToProductResponse(output.Product))
}

// Update handles PUT /products/:id requests (admin only).
func (c *ProductController) Update(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product id",
			Code:  string(domainerror.ErrCodeMissingProductFields),
		})
		return
	}

	var req dto.UpdateProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeMissingProductFields),
		})
		return
	}

	input := product.UpdateProductInput{
		ID:       id,
		Name:     req.Name,
		Price:    req.Price,
		Quantity: req.Quantity,
		Barcode:  req.Barcode,
		Category: req.Category,
		ImageURL: req.ImageURL,
	}

	output, err := c.updateUseCase.Execute(ctx.Request.Context(), input)
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// Delete handles DELETE /products/:id requests (admin only).
func (c *ProductController) Delete(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product id",
			Code:  string(domainerror.ErrCodeMissingProductFields),
		})
		return
	}

	output, err := c.deleteUseCase.Execute(ctx.Request.Context(), product.DeleteProductInput{ID: id})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{
		Message: output.Message,
	})
}

// DecrementStock handles PUT /products/:id/decrement requests (admin only).
func (c *ProductController) DecrementStock(ctx *gin.Context) {
	id, err := uuid.Parse(ctx.Param("id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid product id",
			Code:  string(domainerror.ErrCodeMissingProductFields),
		})
		return
	}

	var req dto.DecrementStockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, dto.ErrorResponse{
			Error: "Invalid request body",
			Code:  string(domainerror.ErrCodeInvalidProductQuantity),
		})
		return
	}

	output, err := c.decrementUseCase.Execute(ctx.Request.Context(), product.DecrementStockInput{
		ID:       id,
		Quantity: req.Quantity,
	})
	if err != nil {
		c.handleProductError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.ToProductResponse(output.Product))
}

// handleProductError handles product errors and returns appropriate HTTP responses.
func (c *ProductController) handleProductError(ctx *gin.Context, err error) {
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

// getStatusCodeForProductError maps product error codes to HTTP status codes.
func getStatusCodeForProductError(code domainerror.ProductErrorCode) int {
	switch code {
	case domainerror.ErrCodeInvalidProductPrice,
		domainerror.ErrCodeInvalidProductQuantity,
		domainerror.ErrCodeInvalidProductCategory,
		domainerror.ErrCodeMissingProductFields:
		return http.StatusBadRequest
	case domainerror.ErrCodeProductNotFound:
		return http.StatusNotFound
	case domainerror.ErrCodeBarcodeExists,
		domainerror.ErrCodeInsufficientStock:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}
