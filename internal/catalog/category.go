package catalog

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/ladlehq/ladle/internal/ladledb"
)

const categoryPageSize = 20

// CategoryState is the state of category-filter browsing. At most one
// filter is active at a time.
type CategoryState struct {
	// Active is the selected category, empty when no filter is applied.
	Active string

	// Recipes are the results shown for the active filter.
	Recipes []ladledb.CatalogRecipe

	// TotalCount is the authoritative result count, -1 until known.
	TotalCount int

	// HasMore reports whether another page exists.
	HasMore bool

	// offset is the number of remote rows consumed so far.
	offset int
}

// NewCategoryBrowse returns the category-filter browsing engine.
func NewCategoryBrowse(remote Querier) *CategoryBrowse {
	return &CategoryBrowse{remote: remote}
}

type CategoryBrowse struct {
	remote Querier
}

// Toggle applies a category filter. Selecting the already active category
// clears the filter rather than re-applying it; selecting a different one
// replaces it. Data and the exact total count are fetched concurrently.
func (b *CategoryBrowse) Toggle(ctx context.Context, st *CategoryState, category string) error {
	if st.Active == category {
		*st = CategoryState{TotalCount: -1}
		return nil
	}
	*st = CategoryState{Active: category, TotalCount: -1}

	var (
		recipes []ladledb.CatalogRecipe
		total   int
	)
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		recipes, err = b.remote.Recipes(gctx, Query{Category: category, Limit: categoryPageSize})
		return err
	})
	grp.Go(func() error {
		var err error
		total, err = b.remote.Count(gctx, Query{Category: category})
		return err
	})
	if err := grp.Wait(); err != nil {
		return fmt.Errorf("catalog: browsing category %q: %w", category, err)
	}

	st.Recipes = recipes
	st.offset = len(recipes)
	st.TotalCount = total
	st.HasMore = total > st.offset
	return nil
}

// LoadMore appends the next page for the active filter, deduplicated by id
// and case-insensitive exact title against shown results.
func (b *CategoryBrowse) LoadMore(ctx context.Context, st *CategoryState) error {
	if st.Active == "" || !st.HasMore {
		return nil
	}
	page, err := b.remote.Recipes(ctx, Query{
		Category: st.Active,
		Offset:   st.offset,
		Limit:    categoryPageSize,
	})
	if err != nil {
		return fmt.Errorf("catalog: loading more for category %q: %w", st.Active, err)
	}
	seen := newDedup(st.Recipes)
	st.Recipes = seen.appendNew(st.Recipes, page)
	st.offset += len(page)
	st.HasMore = st.TotalCount > st.offset && len(page) > 0
	return nil
}
