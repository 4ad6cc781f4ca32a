package catalog

import (
	"context"
	"errors"
	"testing"

	"github.com/ladlehq/ladle/internal/ladledb"
)

func TestCategoryToggle(t *testing.T) {
	remote := &fakeQuerier{
		recipes: func(_ context.Context, q Query) ([]ladledb.CatalogRecipe, error) {
			if q.Category != "Desserts" {
				t.Errorf("category = %q, want Desserts", q.Category)
			}
			return []ladledb.CatalogRecipe{rec("d1", "Tiramisu"), rec("d2", "Flan")}, nil
		},
		count: func(context.Context, Query) (int, error) {
			return 30, nil
		},
	}
	b := NewCategoryBrowse(remote)

	var st CategoryState
	if err := b.Toggle(context.Background(), &st, "Desserts"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if st.Active != "Desserts" {
		t.Errorf("active = %q", st.Active)
	}
	if got := ids(st.Recipes); len(got) != 2 {
		t.Errorf("recipes = %v", got)
	}
	if st.TotalCount != 30 || !st.HasMore {
		t.Errorf("TotalCount = %d, HasMore = %v", st.TotalCount, st.HasMore)
	}

	// Selecting the active category clears the filter.
	if err := b.Toggle(context.Background(), &st, "Desserts"); err != nil {
		t.Fatalf("Toggle to clear: %v", err)
	}
	if st.Active != "" || len(st.Recipes) != 0 || st.HasMore {
		t.Errorf("state after clearing = %+v, want empty", st)
	}
	if st.TotalCount != -1 {
		t.Errorf("TotalCount = %d after clearing, want -1", st.TotalCount)
	}
}

func TestCategoryToggleReplaces(t *testing.T) {
	remote := &fakeQuerier{
		recipes: func(_ context.Context, q Query) ([]ladledb.CatalogRecipe, error) {
			return []ladledb.CatalogRecipe{rec(q.Category+"-1", q.Category)}, nil
		},
		count: func(context.Context, Query) (int, error) {
			return 1, nil
		},
	}
	b := NewCategoryBrowse(remote)

	var st CategoryState
	if err := b.Toggle(context.Background(), &st, "Soups"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if err := b.Toggle(context.Background(), &st, "Salads"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if st.Active != "Salads" {
		t.Errorf("active = %q, want Salads", st.Active)
	}
	if got := ids(st.Recipes); len(got) != 1 || got[0] != "Salads-1" {
		t.Errorf("recipes = %v, want [Salads-1]", got)
	}
}

func TestCategoryToggleError(t *testing.T) {
	remote := &fakeQuerier{
		recipes: func(context.Context, Query) ([]ladledb.CatalogRecipe, error) {
			return nil, errors.New("backend down")
		},
	}
	var st CategoryState
	if err := NewCategoryBrowse(remote).Toggle(context.Background(), &st, "Soups"); err == nil {
		t.Error("expected an error when the remote query fails")
	}
}

func TestCategoryLoadMore(t *testing.T) {
	var gotOffset int
	remote := &fakeQuerier{
		recipes: func(_ context.Context, q Query) ([]ladledb.CatalogRecipe, error) {
			if q.Offset == 0 {
				page := make([]ladledb.CatalogRecipe, categoryPageSize)
				for i := range page {
					page[i] = rec(string(rune('a'+i)), "Dish "+string(rune('a'+i)))
				}
				return page, nil
			}
			gotOffset = q.Offset
			// First row repeats the previous page.
			return []ladledb.CatalogRecipe{rec("a", "Dish a"), rec("z1", "Dish z1")}, nil
		},
		count: func(context.Context, Query) (int, error) {
			return 22, nil
		},
	}
	b := NewCategoryBrowse(remote)

	var st CategoryState
	if err := b.Toggle(context.Background(), &st, "Desserts"); err != nil {
		t.Fatalf("Toggle: %v", err)
	}
	if err := b.LoadMore(context.Background(), &st); err != nil {
		t.Fatalf("LoadMore: %v", err)
	}
	if gotOffset != categoryPageSize {
		t.Errorf("offset = %d, want %d", gotOffset, categoryPageSize)
	}
	if want := categoryPageSize + 1; len(st.Recipes) != want {
		t.Errorf("got %d recipes, want %d deduplicated", len(st.Recipes), want)
	}
	if st.HasMore {
		t.Error("HasMore = true after consuming 22 of 22 rows")
	}

	// No active filter makes LoadMore a no-op.
	cleared := CategoryState{}
	if err := b.LoadMore(context.Background(), &cleared); err != nil {
		t.Fatalf("LoadMore without a filter: %v", err)
	}
	if len(cleared.Recipes) != 0 {
		t.Error("LoadMore fetched without an active filter")
	}
}
