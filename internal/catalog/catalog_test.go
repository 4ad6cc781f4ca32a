package catalog

import (
	"context"
	"testing"

	"github.com/ladlehq/ladle/internal/ladledb"
)

// fakeQuerier implements Querier with overridable function fields.
type fakeQuerier struct {
	recipes func(ctx context.Context, q Query) ([]ladledb.CatalogRecipe, error)
	count   func(ctx context.Context, q Query) (int, error)
}

func (f *fakeQuerier) Recipes(ctx context.Context, q Query) ([]ladledb.CatalogRecipe, error) {
	if f.recipes == nil {
		return nil, nil
	}
	return f.recipes(ctx, q)
}

func (f *fakeQuerier) Count(ctx context.Context, q Query) (int, error) {
	if f.count == nil {
		return 0, nil
	}
	return f.count(ctx, q)
}

func rec(id, title string) ladledb.CatalogRecipe {
	return ladledb.CatalogRecipe{ID: id, Title: title}
}

func ids(recipes []ladledb.CatalogRecipe) []string {
	out := make([]string, len(recipes))
	for i, r := range recipes {
		out[i] = r.ID
	}
	return out
}

func TestDedupAppendNew(t *testing.T) {
	shown := []ladledb.CatalogRecipe{rec("1", "Soup")}
	d := newDedup(shown)

	got := d.appendNew(shown, []ladledb.CatalogRecipe{
		rec("1", "Soup"), // same id
		rec("2", "soup"), // same title, different case
		rec("3", "Stew"),
		rec("4", "Stew"), // title already added this pass
	})

	want := []string{"1", "3"}
	if len(got) != len(want) {
		t.Fatalf("got %d recipes %v, want %v", len(got), ids(got), want)
	}
	for i, id := range want {
		if got[i].ID != id {
			t.Errorf("recipe[%d].ID = %q, want %q", i, got[i].ID, id)
		}
	}
}

func TestRankLess(t *testing.T) {
	curated := ladledb.CatalogRecipe{ID: "c", Curated: true, Rating: 3, RatingCount: 1}
	popular := ladledb.CatalogRecipe{ID: "p", Rating: 4.8, RatingCount: 1000}
	modest := ladledb.CatalogRecipe{ID: "m", Rating: 4.8, RatingCount: 10}

	if !rankLess(&curated, &popular) {
		t.Error("curated should rank before any non-curated recipe")
	}
	if !rankLess(&popular, &modest) {
		t.Error("higher total rating should rank first")
	}
	if rankLess(&modest, &popular) {
		t.Error("rank order is not symmetric")
	}
}
