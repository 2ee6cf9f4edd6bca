package impl

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/fx"

	"storefront/internal/domain/entity"
	domainerrors "storefront/internal/domain/errors"
	"storefront/internal/domain/repository"
	"storefront/internal/usecase"
)

type checkoutService struct {
	cart   usecase.CartUsecase
	store  repository.Store
	logger *slog.Logger

	mu     sync.RWMutex
	orders []entity.Order
}

// CheckoutServiceParams holds dependencies for CheckoutService, injected by Fx.
type CheckoutServiceParams struct {
	fx.In

	Cart   usecase.CartUsecase
	Store  repository.Store
	Logger *slog.Logger
}

// NewCheckoutService creates the checkout flow, loading persisted orders once.
func NewCheckoutService(params CheckoutServiceParams) usecase.CheckoutUsecase {
	s := &checkoutService{
		cart:   params.Cart,
		store:  params.Store,
		logger: params.Logger,
	}

	loadState(context.Background(), s.store, repository.KeyOrders, &s.orders, s.logger)

	return s
}

// PlaceOrder freezes the cart into an order, persists the order list and
// clears the cart. Payment stays mocked; the order records what would have
// been charged.
func (s *checkoutService) PlaceOrder(ctx context.Context, input usecase.PlaceOrderInput) (*entity.Order, error) {
	view := s.cart.View(ctx)
	if len(view.Items) == 0 {
		return nil, domainerrors.ErrEmptyCart
	}

	order := entity.Order{
		ID:        uuid.NewString(),
		Items:     view.Items,
		Total:     view.Total,
		Shipping:  input.Shipping,
		PlacedAt:  time.Now().UTC(),
		UserEmail: input.Email,
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	saveState(ctx, s.store, repository.KeyOrders, s.orders, s.logger)
	s.mu.Unlock()

	if err := s.cart.Clear(ctx); err != nil {
		return nil, err
	}

	return &order, nil
}

// Orders returns all placed orders, oldest first.
func (s *checkoutService) Orders(ctx context.Context) []entity.Order {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]entity.Order, len(s.orders))
	copy(out, s.orders)

	return out
}
