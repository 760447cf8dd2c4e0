package service

import (
	"fmt"

	"github.com/kavyamehta/vastra/internal/domain"
)

// ComposeShoppingQueries flattens every item's shopping queries across
// the suggestion in encounter order, without deduplication. When the
// union is empty it falls back to a single query synthesized from the
// original user text.
func ComposeShoppingQueries(suggestion *domain.StyleSuggestion, originalQuery string) []string {
	var queries []string
	if suggestion != nil {
		for _, item := range suggestion.Items {
			queries = append(queries, item.ShoppingQueries...)
		}
	}

	if len(queries) == 0 {
		queries = []string{fmt.Sprintf("%s fashion clothes India", originalQuery)}
	}
	return queries
}
