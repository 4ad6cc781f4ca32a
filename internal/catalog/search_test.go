package catalog

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/ladlehq/ladle/internal/ladledb"
)

func TestSearchRun(t *testing.T) {
	remote := &fakeQuerier{
		recipes: func(_ context.Context, q Query) ([]ladledb.CatalogRecipe, error) {
			if q.TitlePrefix != "" {
				// Matches the curated chicken soup by id and by
				// case-different title; only the stew is new.
				return []ladledb.CatalogRecipe{
					rec("c", "Chicken Soup"),
					rec("x", "chicken soup"),
					rec("r1", "Chicken Stew"),
				}, nil
			}
			return nil, nil
		},
		count: func(context.Context, Query) (int, error) {
			return 25, nil
		},
	}
	s := NewSearch(loadFixture(t), remote)

	res, err := s.Run(context.Background(), "chicken s", 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := ids(res.Recipes); len(got) != 2 || got[0] != "c" || got[1] != "r1" {
		t.Errorf("results = %v, want deduplicated [c r1]", got)
	}
	// The curated local match ranks above the uncurated remote one.
	if !res.Recipes[0].Curated {
		t.Error("local curated result should rank first")
	}
	if res.TotalCount != 25 {
		t.Errorf("TotalCount = %d, want 25", res.TotalCount)
	}
	if !res.HasMore {
		t.Error("HasMore = false with 25 total and one page consumed")
	}
}

func TestSearchRunRemoteError(t *testing.T) {
	remote := &fakeQuerier{
		recipes: func(context.Context, Query) ([]ladledb.CatalogRecipe, error) {
			return nil, errors.New("backend down")
		},
	}
	if _, err := NewSearch(loadFixture(t), remote).Run(context.Background(), "chicken", 0); err == nil {
		t.Error("expected an error when the remote query fails")
	}
}

func TestSearchLoadMore(t *testing.T) {
	page2 := []ladledb.CatalogRecipe{rec("r1", "Chicken Stew")}
	for i := 0; i < searchPageSize; i++ {
		page2 = append(page2, rec(string(rune('A'+i)), "Filler "+string(rune('A'+i))))
	}
	page2 = page2[:searchPageSize]

	var gotOffset int
	remote := &fakeQuerier{
		recipes: func(_ context.Context, q Query) ([]ladledb.CatalogRecipe, error) {
			if q.TitlePrefix == "" {
				return nil, nil
			}
			if q.Offset == 0 {
				page := make([]ladledb.CatalogRecipe, searchPageSize)
				for i := range page {
					page[i] = rec(string(rune('a'+i)), "Chicken "+string(rune('a'+i)))
				}
				page[0] = rec("r1", "Chicken Stew")
				return page, nil
			}
			gotOffset = q.Offset
			return page2, nil
		},
		count: func(context.Context, Query) (int, error) {
			return 21, nil
		},
	}
	s := NewSearch(loadFixture(t), remote)

	res, err := s.Run(context.Background(), "chicken", 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	shown := len(res.Recipes)

	if err := s.LoadMore(context.Background(), res); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}
	if gotOffset != searchPageSize {
		t.Errorf("offset = %d, want %d", gotOffset, searchPageSize)
	}
	// The repeated stew is deduplicated; only genuinely new rows land.
	if want := shown + searchPageSize - 1; len(res.Recipes) != want {
		t.Errorf("got %d results after LoadMore, want %d", len(res.Recipes), want)
	}
	seen := map[string]bool{}
	for _, r := range res.Recipes {
		if seen[r.ID] {
			t.Errorf("duplicate id %q after LoadMore", r.ID)
		}
		seen[r.ID] = true
	}
	if res.HasMore {
		t.Error("HasMore = true after consuming 40 of 21 rows")
	}

	// Exhausted results make LoadMore a no-op.
	if err := s.LoadMore(context.Background(), res); err != nil {
		t.Fatalf("LoadMore after exhaustion: %v", err)
	}
}

func TestSearchMaxTimeFilter(t *testing.T) {
	quick := `[
		{"id":"q1","title":"Quick Chicken","totalTimeMinutes":30,"rating":"4.0","ratingCount":"10"},
		{"id":"q2","title":"Slow Chicken","totalTimeMinutes":90,"rating":"4.0","ratingCount":"10"}
	]`
	curated := NewCuratedSetFrom([]byte(quick))
	if err := curated.Load(); err != nil {
		t.Fatalf("Load: %v", err)
	}

	remote := &fakeQuerier{
		recipes: func(_ context.Context, q Query) ([]ladledb.CatalogRecipe, error) {
			if q.MaxTotalTimeMinutes != 45 {
				t.Errorf("recipe query ceiling = %d, want 45", q.MaxTotalTimeMinutes)
			}
			return nil, nil
		},
		count: func(_ context.Context, q Query) (int, error) {
			if q.MaxTotalTimeMinutes != 45 {
				t.Errorf("count query ceiling = %d, want 45", q.MaxTotalTimeMinutes)
			}
			return 0, nil
		},
	}
	s := NewSearch(curated, remote)

	res, err := s.Run(context.Background(), "chicken", 45)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if got := ids(res.Recipes); len(got) != 1 || got[0] != "q1" {
		t.Errorf("results = %v, want only the recipe under the ceiling", got)
	}
}

func TestSearchShortFirstPageOffset(t *testing.T) {
	// A prefix pass full enough to skip widening but short of a full page:
	// the cursor must advance by the rows consumed, not the page size.
	short := prefixPassTarget + 2
	var nextOffsets []int
	remote := &fakeQuerier{
		recipes: func(_ context.Context, q Query) ([]ladledb.CatalogRecipe, error) {
			if q.Offset == 0 {
				page := make([]ladledb.CatalogRecipe, short)
				for i := range page {
					page[i] = rec(fmt.Sprintf("s%02d", i), fmt.Sprintf("Pho %02d", i))
				}
				return page, nil
			}
			nextOffsets = append(nextOffsets, q.Offset)
			return nil, nil
		},
		count: func(context.Context, Query) (int, error) {
			return 25, nil
		},
	}
	s := NewSearch(loadFixture(t), remote)

	res, err := s.Run(context.Background(), "pho", 0)
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !res.HasMore {
		t.Fatal("HasMore = false with 25 total and a short first page")
	}

	if err := s.LoadMore(context.Background(), res); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}
	for _, off := range nextOffsets {
		if off != short {
			t.Errorf("next page queried at offset %d, want %d", off, short)
		}
	}
	if len(nextOffsets) == 0 {
		t.Fatal("LoadMore issued no remote queries")
	}
}

func TestSearchTwoPassWidening(t *testing.T) {
	var containsLimit int
	containsCalled := false
	remote := &fakeQuerier{
		recipes: func(_ context.Context, q Query) ([]ladledb.CatalogRecipe, error) {
			if q.TitlePrefix != "" {
				return []ladledb.CatalogRecipe{rec("p1", "Pho"), rec("p2", "Pho Bo")}, nil
			}
			containsCalled = true
			containsLimit = q.Limit
			return []ladledb.CatalogRecipe{rec("p1", "Pho"), rec("c1", "Beef Pho")}, nil
		},
	}
	s := NewSearch(loadFixture(t), remote)

	page, err := s.fetchPage(context.Background(), "pho", 0, 0)
	if err != nil {
		t.Fatalf("fetchPage: %v", err)
	}
	if !containsCalled {
		t.Fatal("contains pass did not run despite a short prefix pass")
	}
	if want := searchPageSize - 2; containsLimit != want {
		t.Errorf("contains pass limit = %d, want %d", containsLimit, want)
	}
	if got := ids(page); len(got) != 3 || got[2] != "c1" {
		t.Errorf("merged page = %v, want [p1 p2 c1]", got)
	}
}

func TestSearchPrefixPassSufficient(t *testing.T) {
	remote := &fakeQuerier{
		recipes: func(_ context.Context, q Query) ([]ladledb.CatalogRecipe, error) {
			if q.TitleContains != "" {
				t.Error("contains pass ran despite a full prefix pass")
			}
			page := make([]ladledb.CatalogRecipe, prefixPassTarget)
			for i := range page {
				page[i] = rec(string(rune('a'+i)), "Pho "+string(rune('a'+i)))
			}
			return page, nil
		},
	}
	s := NewSearch(loadFixture(t), remote)

	page, err := s.fetchPage(context.Background(), "pho", 0, 0)
	if err != nil {
		t.Fatalf("fetchPage: %v", err)
	}
	if len(page) != prefixPassTarget {
		t.Errorf("page has %d recipes, want %d", len(page), prefixPassTarget)
	}
}
