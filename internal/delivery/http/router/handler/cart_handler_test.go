package handler

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"mycomart/internal/delivery/http/validator"
	"mycomart/internal/domain/entity"
	domainerrors "mycomart/internal/domain/errors"
	mockUC "mycomart/internal/mocks/usecase"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func newCartEcho() *echo.Echo {
	e := echo.New()
	e.Validator = validator.New()

	return e
}

func TestCartHandler_AddItem(t *testing.T) {
	uc := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		AddItem(mock.Anything, int64(7), 2).
		Return(&entity.Cart{Items: []*entity.CartItem{
			{ID: "41", ProductID: 7, Quantity: 2},
		}}, nil)

	e := newCartEcho()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"product_id": 7, "quantity": 2}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	require.NoError(t, h.AddItem(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), `"product_id":7`)
}

func TestCartHandler_AddItem_ValidationRejectsZeroQuantity(t *testing.T) {
	uc := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	e := newCartEcho()
	req := httptest.NewRequest(http.MethodPost, "/cart/items", strings.NewReader(`{"product_id": 7, "quantity": 0}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	err := h.AddItem(c)
	assert.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}

func TestCartHandler_UpdateQuantity_UsesPathParam(t *testing.T) {
	uc := mockUC.NewMockCartUsecase(t)
	h := NewCartHandler(uc, slog.New(slog.NewTextHandler(io.Discard, nil)))

	uc.EXPECT().
		UpdateQuantity(mock.Anything, "41", 3).
		Return(&entity.Cart{}, nil)

	e := newCartEcho()
	req := httptest.NewRequest(http.MethodPut, "/cart/items/41", strings.NewReader(`{"quantity": 3}`))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	c.SetParamNames("id")
	c.SetParamValues("41")

	require.NoError(t, h.UpdateQuantity(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}
