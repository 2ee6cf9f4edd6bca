package handler

import (
	"log/slog"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"
)

// SearchHandler holds dependencies for the search endpoint.
type SearchHandler struct {
	search usecase.SearchUsecase
	logger *slog.Logger
}

// NewSearchHandler is the constructor for SearchHandler, injected by Fx.
func NewSearchHandler(search usecase.SearchUsecase, logger *slog.Logger) *SearchHandler {
	return &SearchHandler{
		search: search,
		logger: logger,
	}
}

// Search ranks catalog products against the query string. A blank query
// returns searched=false so callers can tell "not searched" apart from a
// search with zero results.
func (h *SearchHandler) Search(c echo.Context) error {
	out, err := h.search.Search(c.Request().Context(), c.QueryParam("q"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, out, "Search completed successfully")
}
