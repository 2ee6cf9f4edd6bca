package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// DashboardHandler holds dependencies for the role-gated dashboards.
type DashboardHandler struct {
	dashboard usecase.DashboardUsecase
	logger    *slog.Logger
}

// NewDashboardHandler is the constructor for DashboardHandler, injected by Fx.
func NewDashboardHandler(dashboard usecase.DashboardUsecase, logger *slog.Logger) *DashboardHandler {
	return &DashboardHandler{
		dashboard: dashboard,
		logger:    logger,
	}
}

// AdminStats returns the store-wide figures shown on the admin dashboard.
func (h *DashboardHandler) AdminStats(c echo.Context) error {
	stats := h.dashboard.AdminStats(c.Request().Context())

	return response.Success(c, http.StatusOK, stats, "Admin stats fetched successfully")
}

// SellerStats returns the catalog figures shown on the seller dashboard.
func (h *DashboardHandler) SellerStats(c echo.Context) error {
	stats := h.dashboard.SellerStats(c.Request().Context())

	return response.Success(c, http.StatusOK, stats, "Seller stats fetched successfully")
}
