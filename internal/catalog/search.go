package catalog

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/ladlehq/ladle/internal/ladledb"
)

const (
	// searchPageSize is the remote page size for search results.
	searchPageSize = 20

	// localSearchLimit caps the instant local results.
	localSearchLimit = 20

	// prefixPassTarget is the prefix-match result count under which the
	// broader contains-match pass also runs.
	prefixPassTarget = 10
)

// SearchResults is the accumulated state of one free-text search. It has a
// single logical owner; pages are appended by LoadMore.
type SearchResults struct {
	// Query is the search text.
	Query string

	// Recipes are the merged results shown so far, curated first, then by
	// total rating and rating count descending.
	Recipes []ladledb.CatalogRecipe

	// TotalCount is the authoritative remote result count, -1 until known.
	TotalCount int

	// HasMore reports whether another remote page exists.
	HasMore bool

	// offset is the number of remote rows consumed so far.
	offset int

	// maxTime is the total-time ceiling in minutes, 0 for none.
	maxTime int

	seen *dedup
}

// NewSearch returns the free-text search engine over the curated snapshot
// and the remote catalog.
func NewSearch(curated *CuratedSet, remote Querier) *Search {
	return &Search{curated: curated, remote: remote}
}

type Search struct {
	curated *CuratedSet
	remote  Querier
}

// Run performs a search: instant local substring results, then a remote
// prefix pass widened to a contains pass when the prefix pass returns
// fewer than its target, with the exact total count fetched concurrently.
// Remote results are deduplicated against local ones by id and by
// case-insensitive exact title before being appended; local results are
// never reordered relative to remote ones of equal rank.
// maxTotalTimeMinutes, when positive, keeps only recipes at or under the
// ceiling, locally and remotely.
func (s *Search) Run(ctx context.Context, query string, maxTotalTimeMinutes int) (*SearchResults, error) {
	local := s.curated.Search(query, localSearchLimit)
	if maxTotalTimeMinutes > 0 {
		local = withinTime(local, maxTotalTimeMinutes)
	}
	res := &SearchResults{
		Query:      query,
		Recipes:    local,
		TotalCount: -1,
		maxTime:    maxTotalTimeMinutes,
	}
	res.seen = newDedup(res.Recipes)

	var (
		remote []ladledb.CatalogRecipe
		total  = -1
	)
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		remote, err = s.fetchPage(gctx, query, maxTotalTimeMinutes, 0)
		return err
	})
	grp.Go(func() error {
		n, err := s.remote.Count(gctx, Query{TitleContains: query, MaxTotalTimeMinutes: maxTotalTimeMinutes})
		if err != nil {
			return err
		}
		total = n
		return nil
	})
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("catalog: searching %q: %w", query, err)
	}

	res.Recipes = res.seen.appendNew(res.Recipes, remote)
	sort.SliceStable(res.Recipes, func(i, j int) bool {
		return rankLess(&res.Recipes[i], &res.Recipes[j])
	})
	// Advance by rows actually consumed, matching LoadMore, so a short
	// first page does not skip rows on the next one.
	res.offset = len(remote)
	res.TotalCount = total
	res.HasMore = total > res.offset
	return res, nil
}

// LoadMore appends the next remote page, deduplicated against everything
// already shown. HasMore comes from the authoritative total count, not
// from the page size.
func (s *Search) LoadMore(ctx context.Context, res *SearchResults) error {
	if !res.HasMore {
		return nil
	}
	page, err := s.fetchPage(ctx, res.Query, res.maxTime, res.offset)
	if err != nil {
		return fmt.Errorf("catalog: loading more results for %q: %w", res.Query, err)
	}
	res.Recipes = res.seen.appendNew(res.Recipes, page)
	res.offset += len(page)
	res.HasMore = res.TotalCount > res.offset && len(page) > 0
	return nil
}

// fetchPage runs the two-pass remote query: titles starting with the query
// first, widened to titles containing it only when the prefix pass comes
// up short. The passes are deduplicated against each other by id and
// case-insensitive exact title.
func (s *Search) fetchPage(ctx context.Context, query string, maxTime int, offset int) ([]ladledb.CatalogRecipe, error) {
	prefix, err := s.remote.Recipes(ctx, Query{
		TitlePrefix:         query,
		MaxTotalTimeMinutes: maxTime,
		Offset:              offset,
		Limit:               searchPageSize,
	})
	if err != nil {
		return nil, err
	}
	if len(prefix) >= prefixPassTarget {
		return prefix, nil
	}

	contains, err := s.remote.Recipes(ctx, Query{
		TitleContains:       query,
		MaxTotalTimeMinutes: maxTime,
		Offset:              offset,
		Limit:               searchPageSize - len(prefix),
	})
	if err != nil {
		return nil, err
	}
	seen := newDedup(prefix)
	return seen.appendNew(prefix, contains), nil
}

// withinTime keeps recipes whose total time is at or under the ceiling.
// Recipes with an unknown (zero) total time are kept, matching the remote
// filter's treatment of zero rows.
func withinTime(recipes []ladledb.CatalogRecipe, maxMinutes int) []ladledb.CatalogRecipe {
	out := recipes[:0:0]
	for _, r := range recipes {
		if r.TotalTimeMinutes <= maxMinutes {
			out = append(out, r)
		}
	}
	return out
}
