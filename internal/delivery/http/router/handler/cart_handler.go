// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"mycomart/internal/delivery/http/response"
	"mycomart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CartHandler holds dependencies for cart-related handlers.
type CartHandler struct {
	uc     usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(uc usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		uc:     uc,
		logger: logger,
	}
}

// AddItemInput is the add-to-cart request body.
type AddItemInput struct {
	ProductID int64 `json:"product_id" validate:"required"`
	Quantity  int   `json:"quantity" validate:"required,min=1"`
}

// UpdateQuantityInput is the quantity-change request body.
type UpdateQuantityInput struct {
	Quantity int `json:"quantity" validate:"required"`
}

// Get returns the current cart.
func (h *CartHandler) Get(c echo.Context) error {
	cart, err := h.uc.Get(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// AddItem adds a product to the cart.
func (h *CartHandler) AddItem(c echo.Context) error {
	var input *AddItemInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}
	if err := c.Validate(input); err != nil {
		return errors.WithStack(err)
	}

	cart, err := h.uc.AddItem(c.Request().Context(), input.ProductID, input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item added")
}

// UpdateQuantity overwrites one line's quantity.
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	var input *UpdateQuantityInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart input")
	}

	cart, err := h.uc.UpdateQuantity(c.Request().Context(), c.Param("id"), input.Quantity)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "")
}

// RemoveItem deletes one line from the cart.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	cart, err := h.uc.RemoveItem(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, cart, "Item removed")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.uc.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Cart cleared")
}

// Totals returns the derived cart summary.
func (h *CartHandler) Totals(c echo.Context) error {
	totals, err := h.uc.Totals(c.Request().Context())
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, totals, "")
}
