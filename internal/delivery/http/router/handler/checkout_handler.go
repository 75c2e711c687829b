// Package handler contains the HTTP handlers for the application.
package handler

import (
	"log/slog"
	"net/http"

	"mycomart/internal/delivery/http/response"
	"mycomart/internal/domain/entity"
	"mycomart/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// CheckoutHandler holds dependencies for checkout-related handlers.
type CheckoutHandler struct {
	uc     usecase.CheckoutUsecase
	logger *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(uc usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		uc:     uc,
		logger: logger,
	}
}

// Start begins a checkout attempt.
func (h *CheckoutHandler) Start(c echo.Context) error {
	var input *usecase.CheckoutInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	result, err := h.uc.StartCheckout(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "")
}

// CompletePayment submits the provider callback for verification.
func (h *CheckoutHandler) CompletePayment(c echo.Context) error {
	var callback *entity.PaymentCallback
	if err := c.Bind(&callback); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid payment callback")
	}

	result, err := h.uc.CompletePayment(c.Request().Context(), callback)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, result, "Payment verified")
}

// Cancel resets the checkout attempt to idle.
func (h *CheckoutHandler) Cancel(c echo.Context) error {
	if err := h.uc.CancelCheckout(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Checkout cancelled")
}

// State returns the current checkout state.
func (h *CheckoutHandler) State(c echo.Context) error {
	return response.Success(c, http.StatusOK, map[string]string{
		"state": h.uc.State().String(),
	}, "")
}
