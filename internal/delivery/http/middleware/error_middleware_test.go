package middleware

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	deliverycontext "storefront/internal/delivery/context"
	domainerrors "storefront/internal/domain/errors"
)

func newErrorContext(t *testing.T, logger *slog.Logger) (echo.Context, *httptest.ResponseRecorder) {
	t.Helper()

	e := echo.New()
	req := httptest.NewRequest(http.MethodGet, "/products/1", nil)
	if logger != nil {
		req = req.WithContext(deliverycontext.WithLogger(req.Context(), logger))
	}
	rec := httptest.NewRecorder()

	return e.NewContext(req, rec), rec
}

func decodeEnvelope(t *testing.T, rec *httptest.ResponseRecorder) domainerrors.Response {
	t.Helper()

	var resp domainerrors.Response
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp
}

func TestErrorMiddleware_MapsAppError(t *testing.T) {
	m := NewErrorMiddleware()
	c, rec := newErrorContext(t, nil)

	m.HandleHTTPError(domainerrors.ErrProductNotFound, c)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.False(t, resp.Success)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "PRODUCT_NOT_FOUND", resp.Error.Code)
}

func TestErrorMiddleware_MapsWrappedAppError(t *testing.T) {
	m := NewErrorMiddleware()
	c, rec := newErrorContext(t, nil)

	m.HandleHTTPError(errors.Wrap(domainerrors.ErrEmptyCart, "checkout"), c)

	assert.Equal(t, http.StatusUnprocessableEntity, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "EMPTY_CART", resp.Error.Code)
}

func TestErrorMiddleware_MapsEchoHTTPError(t *testing.T) {
	m := NewErrorMiddleware()
	c, rec := newErrorContext(t, nil)

	m.HandleHTTPError(echo.NewHTTPError(http.StatusBadRequest, "bad input"), c)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	resp := decodeEnvelope(t, rec)
	assert.Equal(t, "bad input", resp.Message)
}

func TestErrorMiddleware_UnhandledErrorLogsThroughRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil)).With(slog.String("request_id", "req-42"))

	m := NewErrorMiddleware()
	c, rec := newErrorContext(t, logger)

	m.HandleHTTPError(errors.New("boom"), c)

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	resp := decodeEnvelope(t, rec)
	require.NotNil(t, resp.Error)
	assert.Equal(t, "INTERNAL_ERROR", resp.Error.Code)

	assert.Contains(t, buf.String(), "boom")
	assert.Contains(t, buf.String(), "request_id=req-42")
}
