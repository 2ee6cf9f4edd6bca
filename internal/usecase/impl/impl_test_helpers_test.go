package impl

import (
	"context"
	"io"
	"log/slog"
	"sync"

	"github.com/shopspring/decimal"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/domain/repository"
)

// fakeStore is an in-memory key-value store used in place of the blob-backed
// one. Errors can be injected per operation to exercise the best-effort
// persistence paths.
type fakeStore struct {
	mu      sync.Mutex
	data    map[string][]byte
	loadErr error
	saveErr error
}

func newFakeStore() *fakeStore {
	return &fakeStore{data: map[string][]byte{}}
}

func (s *fakeStore) Load(ctx context.Context, key string) ([]byte, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadErr != nil {
		return nil, s.loadErr
	}
	data, ok := s.data[key]
	if !ok {
		return nil, repository.ErrKeyNotFound
	}

	return data, nil
}

func (s *fakeStore) Save(ctx context.Context, key string, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.saveErr != nil {
		return s.saveErr
	}
	s.data[key] = data

	return nil
}

func (s *fakeStore) Delete(ctx context.Context, key string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.data, key)

	return nil
}

func (s *fakeStore) raw(key string) ([]byte, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, ok := s.data[key]

	return data, ok
}

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func testConfig() *config.Config {
	return &config.Config{
		Seed: &config.SeedConfig{Enabled: false},
	}
}

func testConfigWithSeed() *config.Config {
	return &config.Config{
		Seed: &config.SeedConfig{Enabled: true},
	}
}

func price(raw string) decimal.Decimal {
	return decimal.RequireFromString(raw)
}

func pricePtr(raw string) *decimal.Decimal {
	d := decimal.RequireFromString(raw)

	return &d
}

func testProduct(id, name string) entity.Product {
	return entity.Product{
		ID:          id,
		Name:        name,
		Description: "A " + name + " for everyday wear",
		Price:       price("49.99"),
		Category:    entity.CategoryMen,
		SubCategory: "shirts",
		Images:      []string{"https://example.com/" + id + ".jpg"},
		Sizes:       []string{"S", "M", "L"},
		Colors:      []string{"black"},
		Ratings:     4.0,
		ReviewCount: 10,
		InStock:     true,
	}
}

func testCartItem(productID string, quantity int, size, color string) entity.CartItem {
	return entity.CartItem{
		ProductID: productID,
		Name:      "Product " + productID,
		Price:     price("20.00"),
		Image:     "https://example.com/" + productID + ".jpg",
		Quantity:  quantity,
		Size:      size,
		Color:     color,
	}
}
