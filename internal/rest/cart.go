package rest

import (
	"context"
	"errors"
	"net/http"

	"storefront/domain"
	"storefront/pkg/logger"

	"github.com/AMFarhan21/fres"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

type (
	CartHandler struct {
		validate    *validator.Validate
		cartService CartService
	}

	CartService interface {
		AddItem(ctx context.Context, userID uint, productID domain.ID, quantity int) (domain.CartItem, error)
		GetCart(ctx context.Context, userID uint) ([]domain.CartItem, error)
		RemoveItem(ctx context.Context, userID uint, productID domain.ID) error
	}

	CartItemInput struct {
		ProductID domain.ID `json:"productId" validate:"required"`
		Quantity  int       `json:"quantity" validate:"gte=0"`
	}
)

func NewCartHandler(cartService CartService) *CartHandler {
	return &CartHandler{
		validate:    validator.New(),
		cartService: cartService,
	}
}

func (h *CartHandler) GetCart(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	items, err := h.cartService.GetCart(c.Request().Context(), userID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(items))
}

func (h *CartHandler) AddItem(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var request CartItemInput
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}
	if err := h.validate.Struct(&request); err != nil {
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	item, err := h.cartService.AddItem(c.Request().Context(), userID, request.ProductID, request.Quantity)
	if err != nil {
		if errors.Is(err, domain.ErrProductNotFound) {
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(item))
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	productID := domain.ID(c.Param("productId"))
	if err := h.cartService.RemoveItem(c.Request().Context(), userID, productID); err != nil {
		switch {
		case errors.Is(err, domain.ErrCartItemNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		case errors.Is(err, domain.ErrInvalidProductID):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.NoContent(http.StatusNoContent)
}
