package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"storefront/internal/delivery/http/response"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

// CartHandler holds dependencies for the cart endpoints.
type CartHandler struct {
	cart   usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler, injected by Fx.
func NewCartHandler(cart usecase.CartUsecase, logger *slog.Logger) *CartHandler {
	return &CartHandler{
		cart:   cart,
		logger: logger,
	}
}

// addItemRequest is the payload for adding a line to the cart.
type addItemRequest struct {
	ProductID string `json:"productId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Price     string `json:"price" validate:"required"`
	Image     string `json:"image"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
	Size      string `json:"size"`
	Color     string `json:"color"`
}

// setQuantityRequest is the payload for changing a line's quantity. Values
// below 1 are accepted here and ignored downstream.
type setQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// View returns the cart with its derived count and total.
func (h *CartHandler) View(c echo.Context) error {
	view := h.cart.View(c.Request().Context())

	return response.Success(c, http.StatusOK, view, "Cart fetched successfully")
}

// AddItem merges an item into the cart and returns the updated view.
func (h *CartHandler) AddItem(c echo.Context) error {
	var req addItemRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart item")
	}
	if err := c.Validate(&req); err != nil {
		return err
	}

	item, err := req.toItem()
	if err != nil {
		return response.BadRequest(c, "INVALID_INPUT", err.Error())
	}

	if err := h.cart.AddItem(c.Request().Context(), item); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.cart.View(c.Request().Context()), "Item added to cart")
}

// RemoveItem removes every line carrying the product id.
func (h *CartHandler) RemoveItem(c echo.Context) error {
	if err := h.cart.RemoveItem(c.Request().Context(), c.Param("productId")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.cart.View(c.Request().Context()), "Item removed from cart")
}

// SetQuantity updates the quantity on every line carrying the product id.
func (h *CartHandler) SetQuantity(c echo.Context) error {
	var req setQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity")
	}

	if err := h.cart.SetQuantity(c.Request().Context(), c.Param("productId"), req.Quantity); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.cart.View(c.Request().Context()), "Quantity updated")
}

// Clear empties the cart.
func (h *CartHandler) Clear(c echo.Context) error {
	if err := h.cart.Clear(c.Request().Context()); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, h.cart.View(c.Request().Context()), "Cart cleared")
}

// Open marks the cart drawer visible.
func (h *CartHandler) Open(c echo.Context) error {
	h.cart.OpenCart(c.Request().Context())

	return response.Success(c, http.StatusOK, nil, "Cart opened")
}

// Close marks the cart drawer hidden.
func (h *CartHandler) Close(c echo.Context) error {
	h.cart.CloseCart(c.Request().Context())

	return response.Success(c, http.StatusOK, nil, "Cart closed")
}

func (r *addItemRequest) toItem() (entity.CartItem, error) {
	price, err := decimal.NewFromString(r.Price)
	if err != nil {
		return entity.CartItem{}, errors.Wrap(err, "invalid price")
	}

	return entity.CartItem{
		ProductID: r.ProductID,
		Name:      r.Name,
		Price:     price,
		Image:     r.Image,
		Quantity:  r.Quantity,
		Size:      r.Size,
		Color:     r.Color,
	}, nil
}
