package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"

	"github.com/cenkalti/backoff/v5"
	"github.com/supabase-community/postgrest-go"

	"github.com/ladlehq/ladle/internal/ladledb"
)

const (
	recipesTable = "recipes"

	// fallbackPageSize caps the simpler query used when the richly sorted
	// primary query fails.
	fallbackPageSize = 10

	countMaxTries = 3
)

// NewRemoteCatalog returns a Querier over the catalog's PostgREST
// interface.
func NewRemoteCatalog(rawURL string, apiKey string) *RemoteCatalog {
	headers := map[string]string{
		"apikey":        apiKey,
		"Authorization": "Bearer " + apiKey,
	}
	return &RemoteCatalog{client: postgrest.NewClient(rawURL, "public", headers)}
}

type RemoteCatalog struct {
	client *postgrest.Client
}

// Recipes runs the richly sorted query, degrading to a simpler shape with
// fewer sort keys and a smaller page when it fails, so catalog browsing
// never fails outright on a sorting-induced timeout.
func (c *RemoteCatalog) Recipes(ctx context.Context, q Query) ([]ladledb.CatalogRecipe, error) {
	recipes, err := c.query(q, true)
	if err == nil {
		return recipes, nil
	}
	slog.WarnContext(ctx, "catalog: primary recipe query failed, falling back to simple query", "error", err)
	return c.query(q, false)
}

func (c *RemoteCatalog) query(q Query, rich bool) ([]ladledb.CatalogRecipe, error) {
	fb := applyFilters(c.client.From(recipesTable).Select("*", "", false), q)

	if rich {
		fb = fb.Order("isCurated", &postgrest.OrderOpts{Ascending: false}).
			Order("totalRating", &postgrest.OrderOpts{Ascending: false}).
			Order("ratingCount", &postgrest.OrderOpts{Ascending: false}).
			Order("rating", &postgrest.OrderOpts{Ascending: false}).
			Order("id", &postgrest.OrderOpts{Ascending: true})
	} else {
		fb = fb.Order("rating", &postgrest.OrderOpts{Ascending: false})
	}

	limit := q.Limit
	if !rich && limit > fallbackPageSize {
		limit = fallbackPageSize
	}
	if limit > 0 {
		fb = fb.Range(q.Offset, q.Offset+limit-1, "")
	}

	var recipes []ladledb.CatalogRecipe
	if _, err := fb.ExecuteTo(&recipes); err != nil {
		return nil, fmt.Errorf("catalog: querying recipes: %w", err)
	}
	return recipes, nil
}

// Count issues a head-only exact count. Counts gate pagination decisions,
// so transient failures are retried briefly before giving up.
func (c *RemoteCatalog) Count(ctx context.Context, q Query) (int, error) {
	count, err := backoff.Retry(ctx, func() (int, error) {
		fb := applyFilters(c.client.From(recipesTable).Select("id", "exact", true), q)
		_, n, err := fb.Execute()
		if err != nil {
			return 0, fmt.Errorf("catalog: counting recipes: %w", err)
		}
		return int(n), nil
	}, backoff.WithBackOff(backoff.NewExponentialBackOff()), backoff.WithMaxTries(countMaxTries))
	if err != nil {
		return 0, err
	}
	return count, nil
}

func applyFilters(fb *postgrest.FilterBuilder, q Query) *postgrest.FilterBuilder {
	if q.TitlePrefix != "" {
		fb = fb.Ilike("title", q.TitlePrefix+"%")
	}
	if q.TitleContains != "" {
		fb = fb.Ilike("title", "%"+q.TitleContains+"%")
	}
	if q.Cuisine != "" {
		fb = fb.Contains("cuisines", []string{q.Cuisine})
	}
	if q.Category != "" {
		fb = fb.Contains("categories", []string{q.Category})
	}
	if q.MaxTotalTimeMinutes > 0 {
		fb = fb.Lte("totalTimeMinutes", strconv.Itoa(q.MaxTotalTimeMinutes))
	}
	return fb
}
