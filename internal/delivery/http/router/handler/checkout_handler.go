package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	deliverycontext "storefront/internal/delivery/context"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// CheckoutHandler holds dependencies for the checkout endpoints.
type CheckoutHandler struct {
	checkout usecase.CheckoutUsecase
	logger   *slog.Logger
}

// NewCheckoutHandler is the constructor for CheckoutHandler, injected by Fx.
func NewCheckoutHandler(checkout usecase.CheckoutUsecase, logger *slog.Logger) *CheckoutHandler {
	return &CheckoutHandler{
		checkout: checkout,
		logger:   logger,
	}
}

// PlaceOrder snapshots the cart into an order and clears the cart.
func (h *CheckoutHandler) PlaceOrder(c echo.Context) error {
	var input usecase.PlaceOrderInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid checkout input")
	}

	order, err := h.checkout.PlaceOrder(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	h.logger.Info("Order placed",
		slog.String("orderId", order.ID),
		slog.String("requestId", deliverycontext.RequestID(c)),
	)

	return response.Success(c, http.StatusCreated, order, "Order placed successfully")
}

// Orders lists all placed orders, oldest first.
func (h *CheckoutHandler) Orders(c echo.Context) error {
	orders := h.checkout.Orders(c.Request().Context())

	return response.Success(c, http.StatusOK, orders, "Orders fetched successfully")
}
