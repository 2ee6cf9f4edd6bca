package impl

import (
	"context"
	"slices"
	"sort"
	"strings"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/fx"

	"storefront/config"
	"storefront/internal/domain/entity"
	"storefront/internal/usecase"
)

type searchService struct {
	catalog     usecase.CatalogUsecase
	resultDelay time.Duration
}

// SearchServiceParams holds dependencies for SearchService, injected by Fx.
type SearchServiceParams struct {
	fx.In

	Config  *config.Config
	Catalog usecase.CatalogUsecase
}

// NewSearchService creates the search ranking engine.
func NewSearchService(params SearchServiceParams) usecase.SearchUsecase {
	var delay time.Duration
	if params.Config.Search != nil {
		delay = params.Config.Search.ResultDelay
	}

	return &searchService{
		catalog:     params.Catalog,
		resultDelay: delay,
	}
}

// Search tokenizes the query and ranks the catalog against it. The optional
// result delay is purely cosmetic; it is cancelled with the request context,
// so an abandoned search never blocks its caller.
func (s *searchService) Search(ctx context.Context, query string) (*usecase.SearchOutput, error) {
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return &usecase.SearchOutput{Query: query, Searched: false, Results: []entity.Product{}}, nil
	}

	if s.resultDelay > 0 {
		timer := time.NewTimer(s.resultDelay)
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return nil, errors.Wrap(ctx.Err(), "search cancelled")
		case <-timer.C:
		}
	}

	results := rankProducts(s.catalog.AllProducts(ctx), tokenize(trimmed))

	return &usecase.SearchOutput{Query: trimmed, Searched: true, Results: results}, nil
}

// tokenize lowercases the query and splits it on whitespace, dropping empty
// fragments and duplicates so a repeated word cannot inflate a match count.
func tokenize(query string) []string {
	fields := strings.Fields(strings.ToLower(query))
	tokens := fields[:0]
	for _, f := range fields {
		if !slices.Contains(tokens, f) {
			tokens = append(tokens, f)
		}
	}

	return tokens
}

// searchableText is the lowercase concatenation of every text field a query
// token can match against.
func searchableText(p *entity.Product) string {
	parts := make([]string, 0, 4+len(p.Colors)+len(p.Sizes))
	parts = append(parts, p.Name, p.Description, p.Category.String(), p.SubCategory)
	parts = append(parts, p.Colors...)
	parts = append(parts, p.Sizes...)

	return strings.ToLower(strings.Join(parts, " "))
}

// matchCount is the number of distinct tokens appearing as a substring of the
// text. A token counts once no matter how often it occurs.
func matchCount(text string, tokens []string) int {
	count := 0
	for _, token := range tokens {
		if strings.Contains(text, token) {
			count++
		}
	}

	return count
}

// rankProducts keeps products matched by at least one token and orders them by
// descending distinct-token match count. The sort is stable, so ties keep the
// catalog's order.
func rankProducts(products []entity.Product, tokens []string) []entity.Product {
	type scored struct {
		product entity.Product
		score   int
	}

	matches := make([]scored, 0, len(products))
	for _, p := range products {
		if score := matchCount(searchableText(&p), tokens); score > 0 {
			matches = append(matches, scored{product: p, score: score})
		}
	}

	sort.SliceStable(matches, func(i, j int) bool {
		return matches[i].score > matches[j].score
	})

	results := make([]entity.Product, len(matches))
	for i, m := range matches {
		results[i] = m.product
	}

	return results
}
