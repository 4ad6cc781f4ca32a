package catalog

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"slices"
	"sort"
	"strconv"
	"strings"

	"github.com/ladlehq/ladle/internal/ladledb"
)

//go:embed curated.json
var bundledRecipes []byte

// curatedRecord is one record of the bundled dataset. The dataset encodes
// numeric rating fields as strings, so they are shadowed here and parsed at
// load time.
type curatedRecord struct {
	ladledb.CatalogRecipe
	Rating      string `json:"rating"`
	RatingCount string `json:"ratingCount"`
}

// NewCuratedSet returns a curated set over the bundled dataset. Call Load
// before use.
func NewCuratedSet() *CuratedSet {
	return NewCuratedSetFrom(bundledRecipes)
}

// NewCuratedSetFrom returns a curated set over the given dataset bytes.
func NewCuratedSetFrom(data []byte) *CuratedSet {
	return &CuratedSet{data: data}
}

// CuratedSet is the in-memory snapshot of curated recipes bundled with the
// application, indexed by cuisine and category for instant section fills.
// Load it once at startup; it has a single logical owner and is read-only
// after loading.
type CuratedSet struct {
	data []byte

	recipes    []ladledb.CatalogRecipe
	byCuisine  map[string][]ladledb.CatalogRecipe
	byCategory map[string][]ladledb.CatalogRecipe
	loaded     bool
}

// Load parses and indexes the dataset. Recipes are marked curated and
// sorted by total rating descending.
func (s *CuratedSet) Load() error {
	var records []curatedRecord
	if err := json.Unmarshal(s.data, &records); err != nil {
		return fmt.Errorf("catalog: parsing bundled dataset: %w", err)
	}

	recipes := make([]ladledb.CatalogRecipe, len(records))
	for i, rec := range records {
		r := rec.CatalogRecipe
		r.Curated = true
		r.Rating, _ = strconv.ParseFloat(rec.Rating, 64)
		r.RatingCount, _ = strconv.Atoi(rec.RatingCount)
		recipes[i] = r
	}
	sort.SliceStable(recipes, func(i, j int) bool {
		return recipes[i].TotalRating() > recipes[j].TotalRating()
	})

	byCuisine := map[string][]ladledb.CatalogRecipe{}
	byCategory := map[string][]ladledb.CatalogRecipe{}
	for _, r := range recipes {
		for _, c := range r.Cuisines {
			byCuisine[c] = append(byCuisine[c], r)
		}
		for _, c := range r.Categories {
			byCategory[c] = append(byCategory[c], r)
		}
	}

	s.recipes = recipes
	s.byCuisine = byCuisine
	s.byCategory = byCategory
	s.loaded = true
	return nil
}

// Refresh re-parses the dataset, replacing the indexes.
func (s *CuratedSet) Refresh() error {
	return s.Load()
}

// Loaded reports whether Load has succeeded.
func (s *CuratedSet) Loaded() bool {
	return s.loaded
}

// Section returns up to limit curated recipes for a cuisine or category
// key, cuisine index first. The result is a copy; callers append remote
// results onto it without touching the snapshot.
func (s *CuratedSet) Section(key string, limit int) []ladledb.CatalogRecipe {
	recipes := s.byCuisine[key]
	if len(recipes) == 0 {
		recipes = s.byCategory[key]
	}
	if limit > 0 && len(recipes) > limit {
		recipes = recipes[:limit]
	}
	return slices.Clone(recipes)
}

// Search returns up to limit curated recipes whose title contains q,
// case-insensitively, in rating order.
func (s *CuratedSet) Search(q string, limit int) []ladledb.CatalogRecipe {
	q = strings.ToLower(strings.TrimSpace(q))
	if q == "" {
		return nil
	}
	var out []ladledb.CatalogRecipe
	for _, r := range s.recipes {
		if !strings.Contains(strings.ToLower(r.Title), q) {
			continue
		}
		out = append(out, r)
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out
}
