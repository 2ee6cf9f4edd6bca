package usecase

import (
	"context"

	"storefront/internal/domain/entity"
)

// SearchOutput carries search results together with the Searched flag, which
// lets callers tell "no query was run" apart from "the query matched nothing".
type SearchOutput struct {
	Query    string           `json:"query"`
	Searched bool             `json:"searched"`
	Results  []entity.Product `json:"results"`
}

// SearchUsecase ranks catalog products against a free-text query.
type SearchUsecase interface {
	// Search tokenizes the query and returns products ranked by the number
	// of distinct tokens found in their searchable text. An empty or
	// whitespace-only query returns Searched=false with no results.
	Search(ctx context.Context, query string) (*SearchOutput, error)
}
