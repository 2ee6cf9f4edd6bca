// Package handler contains the HTTP handlers for the application.
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

// ProductHandler holds dependencies for catalog browsing and management.
type ProductHandler struct {
	catalog usecase.CatalogUsecase
	browse  usecase.BrowseUsecase
	logger  *slog.Logger
}

// NewProductHandler is the constructor for ProductHandler, injected by Fx.
func NewProductHandler(catalog usecase.CatalogUsecase, browse usecase.BrowseUsecase, logger *slog.Logger) *ProductHandler {
	return &ProductHandler{
		catalog: catalog,
		browse:  browse,
		logger:  logger,
	}
}

// ListByCategory returns the category's products narrowed by the filter query
// parameters and ordered by the sort key.
func (h *ProductHandler) ListByCategory(c echo.Context) error {
	category := entity.ParseCategory(c.Param("category"))

	filter, err := filterFromQuery(c)
	if err != nil {
		return response.BadRequest(c, "INVALID_FILTER", err.Error())
	}

	products := h.browse.ListProducts(c.Request().Context(), category, filter)

	return response.Success(c, http.StatusOK, products, "Products fetched successfully")
}

// Facets returns the distinct filterable values of a category.
func (h *ProductHandler) Facets(c echo.Context) error {
	category := entity.ParseCategory(c.Param("category"))
	facets := h.browse.Facets(c.Request().Context(), category)

	return response.Success(c, http.StatusOK, facets, "Facets fetched successfully")
}

// Get returns a single product by id.
func (h *ProductHandler) Get(c echo.Context) error {
	product, err := h.catalog.GetProduct(c.Request().Context(), c.Param("id"))
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, product, "Product fetched successfully")
}

// Featured returns the featured products in featured-rank order.
func (h *ProductHandler) Featured(c echo.Context) error {
	products := h.catalog.FeaturedProducts(c.Request().Context())

	return response.Success(c, http.StatusOK, products, "Featured products fetched successfully")
}

// NewArrivals returns products flagged as new.
func (h *ProductHandler) NewArrivals(c echo.Context) error {
	products := h.catalog.NewArrivals(c.Request().Context())

	return response.Success(c, http.StatusOK, products, "New arrivals fetched successfully")
}

// OnSale returns products currently on sale.
func (h *ProductHandler) OnSale(c echo.Context) error {
	products := h.catalog.OnSaleProducts(c.Request().Context())

	return response.Success(c, http.StatusOK, products, "Sale products fetched successfully")
}

// Create adds a new product to the catalog.
func (h *ProductHandler) Create(c echo.Context) error {
	var input usecase.ProductInput
	if err := c.Bind(&input); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product input")
	}
	if err := c.Validate(&input); err != nil {
		return err
	}

	product, err := h.catalog.AddProduct(c.Request().Context(), input)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusCreated, product, "Product created successfully")
}

// Update merges a partial update into an existing product.
func (h *ProductHandler) Update(c echo.Context) error {
	var patch usecase.ProductPatch
	if err := c.Bind(&patch); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid product patch")
	}

	if err := h.catalog.UpdateProduct(c.Request().Context(), c.Param("id"), patch); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product updated successfully")
}

// Delete removes a product from the catalog.
func (h *ProductHandler) Delete(c echo.Context) error {
	if err := h.catalog.RemoveProduct(c.Request().Context(), c.Param("id")); err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, nil, "Product deleted successfully")
}

// filterFromQuery builds the filter state from repeatable query parameters:
// subCategory, color, size, plus minPrice/maxPrice and sort.
func filterFromQuery(c echo.Context) (entity.FilterState, error) {
	filter := entity.FilterState{
		SubCategories: c.QueryParams()["subCategory"],
		Colors:        c.QueryParams()["color"],
		Sizes:         c.QueryParams()["size"],
		Sort:          entity.SortFeatured,
	}

	if raw := c.QueryParam("minPrice"); raw != "" {
		min, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, errors.Wrap(err, "invalid minPrice")
		}
		filter.PriceMin = min
	}
	if raw := c.QueryParam("maxPrice"); raw != "" {
		max, err := decimal.NewFromString(raw)
		if err != nil {
			return filter, errors.Wrap(err, "invalid maxPrice")
		}
		filter.PriceMax = max
	}

	if raw := c.QueryParam("sort"); raw != "" {
		key := entity.SortKey(raw)
		if !key.IsValid() {
			return filter, errors.Errorf("unknown sort key: %s", raw)
		}
		filter.Sort = key
	}

	return filter, nil
}
