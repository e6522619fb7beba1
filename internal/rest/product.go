package rest

import (
	"context"
	"errors"
	"net/http"
	"time"

	"storefront/domain"
	"storefront/pkg/logger"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type ProductService interface {
	GetAllProducts(ctx context.Context) ([]domain.Product, error)
	GetProductByID(ctx context.Context, id domain.ID) (*domain.Product, error)
	CreateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	UpdateProduct(ctx context.Context, product *domain.Product) (*domain.Product, error)
	DeleteProduct(ctx context.Context, id domain.ID) error
	RecordView(ctx context.Context, productID domain.ID, userID *uint) error
}

type ProductHandler struct {
	productService ProductService
	validator      *validator.Validate
	timeout        time.Duration
}

func NewProductHandler(productService ProductService) *ProductHandler {
	return &ProductHandler{
		productService: productService,
		validator:      validator.New(),
		timeout:        10 * time.Second,
	}
}

type ProductRequest struct {
	Image       string          `json:"image"`
	Name        string          `json:"name" validate:"required"`
	Category    string          `json:"category" validate:"required"`
	SubCategory string          `json:"subCategory"`
	Brand       string          `json:"brand"`
	Stock       int             `json:"stock" validate:"gte=0"`
	PriceCents  int64           `json:"priceCents" validate:"required,gt=0"`
	Rating      domain.Rating   `json:"rating"`
	Keywords    domain.Keywords `json:"keywords"`
}

func (r ProductRequest) toDomain(id domain.ID) *domain.Product {
	return &domain.Product{
		ID:          id,
		Image:       r.Image,
		Name:        r.Name,
		Category:    r.Category,
		SubCategory: r.SubCategory,
		Brand:       r.Brand,
		Stock:       r.Stock,
		PriceCents:  r.PriceCents,
		Rating:      r.Rating,
		Keywords:    r.Keywords,
	}
}

func (h *ProductHandler) GetAllProducts(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	products, err := h.productService.GetAllProducts(ctx)
	if err != nil {
		logger.Error("Failed to find all Product", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":  "successfully get all products",
		"products": products,
	})
}

// GetProductByID also records a product view for the caller, anonymous or
// not. A failed view write does not fail the request.
func (h *ProductHandler) GetProductByID(c echo.Context) error {
	productID := domain.ID(c.Param("id"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	product, err := h.productService.GetProductByID(ctx, productID)
	if err != nil {
		return c.JSON(productErrorStatus(err), ResponseError{Message: err.Error()})
	}

	var userID *uint
	if uid, ok := c.Get("user_id").(uint); ok {
		userID = &uid
	}
	if err := h.productService.RecordView(ctx, product.ID, userID); err != nil {
		logger.Warn("failed to record product view", "product_id", product.ID.String(), "error", err)
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully find product by id",
		"product": product,
	})
}

func (h *ProductHandler) CreateProduct(c echo.Context) error {
	var req ProductRequest

	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	newProduct, err := h.productService.CreateProduct(ctx, req.toDomain(""))
	if err != nil {
		logger.Error("Failed to create Product", err)
		return c.JSON(productErrorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, map[string]interface{}{
		"message": "Product successfully created",
		"product": newProduct,
	})
}

func (h *ProductHandler) UpdateProduct(c echo.Context) error {
	productID := domain.ID(c.Param("id"))

	var req ProductRequest
	if err := c.Bind(&req); err != nil {
		logger.Error("Failed to bind request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validator.Struct(&req); err != nil {
		logger.Error("Failed to validate product request", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	updateProduct, err := h.productService.UpdateProduct(ctx, req.toDomain(productID))
	if err != nil {
		logger.Error("Failed to update Product", err)
		return c.JSON(productErrorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message": "successfully update product",
		"product": updateProduct,
	})
}

func (h *ProductHandler) DeleteProduct(c echo.Context) error {
	productID := domain.ID(c.Param("id"))

	ctx, cancel := context.WithTimeout(c.Request().Context(), h.timeout)
	defer cancel()

	if err := h.productService.DeleteProduct(ctx, productID); err != nil {
		logger.Error("Failed to delete Product", err)
		return c.JSON(productErrorStatus(err), ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, map[string]interface{}{
		"message":    "product successfully deleted",
		"product_id": productID,
	})
}

func productErrorStatus(err error) int {
	switch {
	case errors.Is(err, domain.ErrProductNotFound):
		return http.StatusNotFound
	case errors.Is(err, domain.ErrInvalidProduct), errors.Is(err, domain.ErrInvalidProductID):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}
