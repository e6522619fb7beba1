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
	OrdersHandler struct {
		validate      *validator.Validate
		ordersService OrdersService
	}

	OrdersService interface {
		PlaceOrder(ctx context.Context, userID uint, lines []domain.OrderLine) (domain.Order, error)
		GetUserOrders(ctx context.Context, userID uint) ([]domain.Order, error)
	}

	OrderLineInput struct {
		ProductID domain.ID `json:"productId" validate:"required"`
		Quantity  int       `json:"quantity" validate:"gt=0"`
	}

	OrdersInput struct {
		Products []OrderLineInput `json:"products" validate:"required,min=1,dive"`
	}
)

func NewOrdersHandler(ordersService OrdersService) *OrdersHandler {
	return &OrdersHandler{
		validate:      validator.New(),
		ordersService: ordersService,
	}
}

func (h *OrdersHandler) CreateOrder(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	var request OrdersInput
	if err := c.Bind(&request); err != nil {
		logger.Error("Invalid request body", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	if err := h.validate.Struct(&request); err != nil {
		logger.Error("Failed to validation order validation", err)
		return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
	}

	lines := make([]domain.OrderLine, 0, len(request.Products))
	for _, p := range request.Products {
		lines = append(lines, domain.OrderLine{ProductID: p.ProductID, Quantity: domain.Qty(p.Quantity)})
	}

	order, err := h.ordersService.PlaceOrder(c.Request().Context(), userID, lines)
	if err != nil {
		logger.Error("Failed to create order", err)
		switch {
		case errors.Is(err, domain.ErrProductNotFound):
			return c.JSON(http.StatusNotFound, ResponseError{Message: err.Error()})
		case errors.Is(err, domain.ErrOutOfStock),
			errors.Is(err, domain.ErrEmptyOrder),
			errors.Is(err, domain.ErrInvalidProduct):
			return c.JSON(http.StatusBadRequest, ResponseError{Message: err.Error()})
		}
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusCreated, fres.Response.StatusCreated(order))
}

func (h *OrdersHandler) GetOrders(c echo.Context) error {
	userID, ok := c.Get("user_id").(uint)
	if !ok {
		return c.JSON(http.StatusUnauthorized, ResponseError{Message: "unauthorized"})
	}

	orders, err := h.ordersService.GetUserOrders(c.Request().Context(), userID)
	if err != nil {
		logger.Error("Failed to get orders", err)
		return c.JSON(http.StatusInternalServerError, ResponseError{Message: err.Error()})
	}

	return c.JSON(http.StatusOK, fres.Response.StatusOK(orders))
}
