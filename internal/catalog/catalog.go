// Package catalog provides the recipe catalog: an instantly available
// curated snapshot merged with eventually consistent remote query results
// for section browsing, search, suggestions, and category filtering.
package catalog

import (
	"context"
	"strings"

	"github.com/ladlehq/ladle/internal/ladledb"
)

// Query describes one remote catalog query. Zero-valued fields are not
// applied.
type Query struct {
	// TitlePrefix matches titles starting with the value,
	// case-insensitively.
	TitlePrefix string

	// TitleContains matches titles containing the value,
	// case-insensitively.
	TitleContains string

	// Cuisine matches recipes tagged with the cuisine.
	Cuisine string

	// Category matches recipes tagged with the category.
	Category string

	// MaxTotalTimeMinutes keeps only recipes at or under the threshold.
	MaxTotalTimeMinutes int

	// Offset is the inclusive row offset for pagination.
	Offset int

	// Limit is the maximum number of rows to return.
	Limit int
}

// Querier is the remote catalog query interface. Implementations order
// results curated first, then by total rating, rating count, and rating
// descending with id as a stable tiebreak.
type Querier interface {
	// Recipes returns one page of recipes matching q.
	Recipes(ctx context.Context, q Query) ([]ladledb.CatalogRecipe, error)

	// Count returns the exact number of recipes matching q, without
	// transferring rows.
	Count(ctx context.Context, q Query) (int, error)
}

// dedup tracks recipes already shown, by id and by case-insensitive exact
// title. Remote results matching either key of a shown recipe are dropped.
type dedup struct {
	ids    map[string]bool
	titles map[string]bool
}

func newDedup(seen []ladledb.CatalogRecipe) *dedup {
	d := &dedup{ids: map[string]bool{}, titles: map[string]bool{}}
	for _, r := range seen {
		d.add(&r)
	}
	return d
}

func (d *dedup) add(r *ladledb.CatalogRecipe) {
	d.ids[r.ID] = true
	d.titles[strings.ToLower(r.Title)] = true
}

// appendNew appends the recipes from src not yet tracked by d.
func (d *dedup) appendNew(dst, src []ladledb.CatalogRecipe) []ladledb.CatalogRecipe {
	for _, r := range src {
		if d.ids[r.ID] || d.titles[strings.ToLower(r.Title)] {
			continue
		}
		d.add(&r)
		dst = append(dst, r)
	}
	return dst
}

// rankLess orders recipes curated first, then total rating, then rating
// count descending.
func rankLess(a, b *ladledb.CatalogRecipe) bool {
	if a.Curated != b.Curated {
		return a.Curated
	}
	if ta, tb := a.TotalRating(), b.TotalRating(); ta != tb {
		return ta > tb
	}
	return a.RatingCount > b.RatingCount
}
