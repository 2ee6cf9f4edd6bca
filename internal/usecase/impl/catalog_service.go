package impl

import (
	"context"
	"log/slog"
	"sort"
	"sync"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"storefront/config"
	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/infra/seed"
	"storefront/internal/usecase"
)

type catalogService struct {
	store  repository.Store
	logger *slog.Logger

	mu       sync.RWMutex
	products []entity.Product
}

// CatalogServiceParams holds dependencies for CatalogService, injected by Fx.
type CatalogServiceParams struct {
	fx.In

	Config *config.Config
	Store  repository.Store
	Logger *slog.Logger
}

// NewCatalogService creates the catalog store. The persisted snapshot is
// loaded once here; when none exists the starter catalog is seeded in.
func NewCatalogService(params CatalogServiceParams) usecase.CatalogUsecase {
	s := &catalogService{
		store:  params.Store,
		logger: params.Logger,
	}

	ctx := context.Background()
	if !loadState(ctx, s.store, repository.KeyProducts, &s.products, s.logger) {
		if params.Config.Seed == nil || params.Config.Seed.Enabled {
			s.products = seed.Products()
			saveState(ctx, s.store, repository.KeyProducts, s.products, s.logger)
		}
	}

	return s
}

// AddProduct assigns a unique id, appends the product and persists the catalog.
func (s *catalogService) AddProduct(ctx context.Context, input usecase.ProductInput) (*entity.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product := entity.Product{
		ID:            uuid.NewString(),
		Name:          input.Name,
		Description:   input.Description,
		Price:         input.Price,
		Category:      input.Category,
		SubCategory:   input.SubCategory,
		Images:        input.Images,
		Sizes:         input.Sizes,
		Colors:        input.Colors,
		Ratings:       input.Ratings,
		ReviewCount:   input.ReviewCount,
		InStock:       input.InStock,
		FeaturedOrder: input.FeaturedOrder,
		IsNew:         input.IsNew,
		OnSale:        input.OnSale,
		SalePrice:     input.SalePrice,
	}

	s.products = append(s.products, product)
	saveState(ctx, s.store, repository.KeyProducts, s.products, s.logger)

	return &product, nil
}

// UpdateProduct merges the patch into the record with the given id. Unknown
// ids no-op silently.
func (s *catalogService) UpdateProduct(ctx context.Context, id string, patch usecase.ProductPatch) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		s.logger.Debug("update of unknown product ignored", slog.String("id", id))

		return nil
	}

	applyPatch(&s.products[idx], patch)
	saveState(ctx, s.store, repository.KeyProducts, s.products, s.logger)

	return nil
}

// RemoveProduct deletes the record with the given id. Idempotent.
func (s *catalogService) RemoveProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.products[:0]
	for _, p := range s.products {
		if p.ID != id {
			kept = append(kept, p)
		}
	}
	s.products = kept
	saveState(ctx, s.store, repository.KeyProducts, s.products, s.logger)

	return nil
}

// GetProduct returns the product with the given id.
func (s *catalogService) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return nil, domainerrors.ErrProductNotFound
	}

	product := s.products[idx]

	return &product, nil
}

// ProductsByCategory returns the category-scoped subset in insertion order.
func (s *catalogService) ProductsByCategory(ctx context.Context, category entity.Category) []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterCopy(s.products, func(p entity.Product) bool {
		return p.Category == category
	})
}

// AllProducts returns the full catalog in insertion order.
func (s *catalogService) AllProducts(ctx context.Context) []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Product, len(s.products))
	copy(out, s.products)

	return out
}

// FeaturedProducts returns featured products ordered by featured rank.
func (s *catalogService) FeaturedProducts(ctx context.Context) []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	featured := filterCopy(s.products, func(p entity.Product) bool {
		return p.FeaturedOrder > 0
	})
	sort.SliceStable(featured, func(i, j int) bool {
		return featured[i].FeaturedOrder < featured[j].FeaturedOrder
	})

	return featured
}

// NewArrivals returns products flagged as new, in insertion order.
func (s *catalogService) NewArrivals(ctx context.Context) []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterCopy(s.products, func(p entity.Product) bool {
		return p.IsNew
	})
}

// OnSaleProducts returns products currently on sale, in insertion order.
func (s *catalogService) OnSaleProducts(ctx context.Context) []entity.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return filterCopy(s.products, func(p entity.Product) bool {
		return p.OnSale
	})
}

// indexOf must be called with the mutex held.
func (s *catalogService) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}

	return -1
}

func filterCopy(products []entity.Product, keep func(entity.Product) bool) []entity.Product {
	out := make([]entity.Product, 0, len(products))
	for _, p := range products {
		if keep(p) {
			out = append(out, p)
		}
	}

	return out
}

func applyPatch(p *entity.Product, patch usecase.ProductPatch) {
	if patch.Name != nil {
		p.Name = *patch.Name
	}
	if patch.Description != nil {
		p.Description = *patch.Description
	}
	if patch.Price != nil {
		p.Price = *patch.Price
	}
	if patch.Category != nil {
		p.Category = *patch.Category
	}
	if patch.SubCategory != nil {
		p.SubCategory = *patch.SubCategory
	}
	if patch.Images != nil {
		p.Images = patch.Images
	}
	if patch.Sizes != nil {
		p.Sizes = patch.Sizes
	}
	if patch.Colors != nil {
		p.Colors = patch.Colors
	}
	if patch.Ratings != nil {
		p.Ratings = *patch.Ratings
	}
	if patch.ReviewCount != nil {
		p.ReviewCount = *patch.ReviewCount
	}
	if patch.InStock != nil {
		p.InStock = *patch.InStock
	}
	if patch.FeaturedOrder != nil {
		p.FeaturedOrder = *patch.FeaturedOrder
	}
	if patch.IsNew != nil {
		p.IsNew = *patch.IsNew
	}
	if patch.OnSale != nil {
		p.OnSale = *patch.OnSale
	}
	if patch.SalePrice != nil {
		p.SalePrice = patch.SalePrice
	}
}
