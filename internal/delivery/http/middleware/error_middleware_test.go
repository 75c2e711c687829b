package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	domainerrors "mycomart/internal/domain/errors"
	"mycomart/internal/domain/repository"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func handleError(t *testing.T, err error) *httptest.ResponseRecorder {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	NewErrorMiddleware(logger).HandleHTTPError(err, c)

	return rec
}

// A backend 401 bubbling up through a handler is an expired session, not an
// internal fault.
func TestErrorMiddleware_BackendUnauthorizedRendersSessionExpired(t *testing.T) {
	rec := handleError(t, errors.Wrap(repository.ErrUnauthorized, "GET /api/cart/"))

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
	assert.Contains(t, rec.Body.String(), "SESSION_EXPIRED")
}

func TestErrorMiddleware_AppErrorRendersItsOwnShape(t *testing.T) {
	rec := handleError(t, domainerrors.ErrCartItemNotFound)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Contains(t, rec.Body.String(), "CART_ITEM_NOT_FOUND")
}

func TestErrorMiddleware_UnknownErrorFallsBackToInternal(t *testing.T) {
	rec := handleError(t, errors.New("boom"))

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.Contains(t, rec.Body.String(), "INTERNAL_ERROR")
}
