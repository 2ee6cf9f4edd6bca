package impl

import (
	"context"
	"log/slog"
	"sync"

	"go.uber.org/fx"

	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

type cartService struct {
	store  repository.Store
	logger *slog.Logger

	mu   sync.RWMutex
	cart entity.Cart
	open bool
}

// CartServiceParams holds dependencies for CartService, injected by Fx.
type CartServiceParams struct {
	fx.In

	Store  repository.Store
	Logger *slog.Logger
}

// NewCartService creates the cart aggregator, loading any persisted cart once.
func NewCartService(params CartServiceParams) usecase.CartUsecase {
	s := &cartService{
		store:  params.Store,
		logger: params.Logger,
	}

	loadState(context.Background(), s.store, repository.KeyCart, &s.cart.Items, s.logger)

	return s
}

// AddItem merges the item into an existing line with the same
// (product, size, color) key, or appends a new line. The cart drawer becomes
// visible on every addition.
func (s *cartService) AddItem(ctx context.Context, item entity.CartItem) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	key := item.Key()
	merged := false
	for i := range s.cart.Items {
		if s.cart.Items[i].Key() == key {
			s.cart.Items[i].Quantity += item.Quantity
			merged = true

			break
		}
	}
	if !merged {
		s.cart.Items = append(s.cart.Items, item)
	}

	s.open = true
	saveState(ctx, s.store, repository.KeyCart, s.cart.Items, s.logger)

	return nil
}

// RemoveItem removes all lines with the given product id, regardless of size
// or color. Removal is keyed more coarsely than merging on purpose.
func (s *cartService) RemoveItem(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	kept := s.cart.Items[:0]
	for _, item := range s.cart.Items {
		if item.ProductID != productID {
			kept = append(kept, item)
		}
	}
	s.cart.Items = kept
	saveState(ctx, s.store, repository.KeyCart, s.cart.Items, s.logger)

	return nil
}

// SetQuantity sets the quantity on all lines with the given product id.
// Quantities below 1 are ignored; the quantity can never be driven to zero
// through this call.
func (s *cartService) SetQuantity(ctx context.Context, productID string, quantity int) error {
	if quantity < 1 {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.cart.Items {
		if s.cart.Items[i].ProductID == productID {
			s.cart.Items[i].Quantity = quantity
		}
	}
	saveState(ctx, s.store, repository.KeyCart, s.cart.Items, s.logger)

	return nil
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.cart.Items = nil
	saveState(ctx, s.store, repository.KeyCart, s.cart.Items, s.logger)

	return nil
}

// View returns the current cart with count and total recomputed from the lines.
func (s *cartService) View(ctx context.Context) usecase.CartView {
	s.mu.RLock()
	defer s.mu.RUnlock()

	items := make([]entity.CartItem, len(s.cart.Items))
	copy(items, s.cart.Items)

	return usecase.CartView{
		Items: items,
		Count: s.cart.Count(),
		Total: s.cart.Total(),
		Open:  s.open,
	}
}

// OpenCart marks the cart drawer visible.
func (s *cartService) OpenCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = true
}

// CloseCart marks the cart drawer hidden.
func (s *cartService) CloseCart(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.open = false
}
