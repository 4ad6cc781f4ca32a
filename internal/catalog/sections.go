package catalog

import (
	"context"
	"fmt"
	"log/slog"
	"sort"

	"github.com/wandb/parallel"
	"golang.org/x/sync/errgroup"

	"github.com/ladlehq/ladle/internal/ladledb"
)

const (
	// sectionDisplayLimit caps the instant local fill per section.
	sectionDisplayLimit = 10

	// sectionPageSize is the page size for remote section fetches.
	sectionPageSize = 10

	// maxSectionFetches bounds the remote augmentation fan-out.
	maxSectionFetches = 8
)

// SectionKind says which catalog tag a section key addresses.
type SectionKind int

const (
	KindCuisine SectionKind = iota
	KindCategory
)

// SectionKey identifies one browsable shelf.
type SectionKey struct {
	Name string
	Kind SectionKind
}

// DefaultSectionKeys is the fixed display order of the home catalog
// shelves.
var DefaultSectionKeys = []SectionKey{
	{"Mexican", KindCuisine},
	{"Italian", KindCuisine},
	{"Japanese", KindCuisine},
	{"Chinese", KindCuisine},
	{"Indian", KindCuisine},
	{"Thai", KindCuisine},
	{"French", KindCuisine},
	{"Greek", KindCuisine},
	{"Korean", KindCuisine},
	{"Vietnamese", KindCuisine},
	{"Spanish", KindCuisine},
	{"Mediterranean", KindCuisine},
	{"Middle Eastern", KindCuisine},
	{"American", KindCuisine},
	{"Caribbean", KindCuisine},
	{"Seafood", KindCuisine},
	{"Breakfast", KindCategory},
	{"Lunch", KindCategory},
	{"Dinner", KindCategory},
	{"Appetizers", KindCategory},
	{"Soups", KindCategory},
	{"Salads", KindCategory},
	{"Pasta", KindCategory},
	{"Grilling", KindCategory},
	{"Baking", KindCategory},
	{"Desserts", KindCategory},
	{"Vegetarian", KindCategory},
	{"Vegan", KindCategory},
	{"Gluten-Free", KindCategory},
	{"Quick & Easy", KindCategory},
}

// Section is one horizontally scrollable shelf of the catalog. It is
// mutated incrementally as pages arrive and reset only on a full refresh.
type Section struct {
	// Key identifies the shelf.
	Key SectionKey

	// Recipes currently loaded, display order.
	Recipes []ladledb.CatalogRecipe

	// Page is the pagination cursor of the next remote page.
	Page int

	// HasMore reports whether more remote pages exist.
	HasMore bool

	// Loading reports an in-flight fetch.
	Loading bool

	// Loaded reports that the section has completed at least one fill.
	Loaded bool
}

func (s *Section) query() Query {
	q := Query{Limit: sectionPageSize}
	switch s.Key.Kind {
	case KindCuisine:
		q.Cuisine = s.Key.Name
	case KindCategory:
		q.Category = s.Key.Name
	}
	return q
}

// NewSections returns the section browsing engine over the curated
// snapshot and the remote catalog.
func NewSections(curated *CuratedSet, remote Querier) *Sections {
	return &Sections{
		curated: curated,
		remote:  remote,
		keys:    DefaultSectionKeys,
	}
}

// Sections owns the per-section state of catalog browsing. It has a single
// logical owner; methods are not called concurrently with each other,
// though Augment fans out its remote fetches internally.
type Sections struct {
	curated *CuratedSet
	remote  Querier
	keys    []SectionKey

	sections map[string]*Section
}

// LoadLocal instantly fills every configured section from the curated
// snapshot and returns the sections in display order. Sections with no
// curated recipes are created empty so remote augmentation can populate
// them.
func (s *Sections) LoadLocal() []*Section {
	s.sections = make(map[string]*Section, len(s.keys))
	for _, key := range s.keys {
		s.sections[key.Name] = &Section{
			Key:     key,
			Recipes: s.curated.Section(key.Name, sectionDisplayLimit),
			HasMore: true,
		}
	}
	return s.Ordered()
}

// Augment fetches additional recipes for every section concurrently, with
// a bounded fan-out, and merges each result into the already displayed
// list. Merging only appends: local items are never reordered, and ids
// already shown are skipped, so augmenting twice introduces no duplicates.
// A failed section keeps its local-only results; the operation as a whole
// never fails.
func (s *Sections) Augment(ctx context.Context) []*Section {
	type sectionPage struct {
		key     SectionKey
		recipes []ladledb.CatalogRecipe
	}

	grp := parallel.Collect[sectionPage](parallel.Limited(ctx, maxSectionFetches))
	for _, sec := range s.sections {
		sec.Loading = true
		q := sec.query()
		key := sec.Key
		grp.Go(func(ctx context.Context) (sectionPage, error) {
			recipes, err := s.remote.Recipes(ctx, q)
			if err != nil {
				// Keep the local-only shelf.
				slog.WarnContext(ctx, "catalog: section augmentation failed", "section", key.Name, "error", err)
				return sectionPage{key: key}, nil
			}
			return sectionPage{key: key, recipes: recipes}, nil
		})
	}

	// Collection order is completion order; the final display order comes
	// from the configured key list, so it does not matter here.
	pages, _ := grp.Wait()
	for _, page := range pages {
		s.merge(page.key, page.recipes)
	}
	return s.Ordered()
}

// merge appends the recipes not already present by id, creating the
// section when it only exists remotely.
func (s *Sections) merge(key SectionKey, recipes []ladledb.CatalogRecipe) {
	sec, ok := s.sections[key.Name]
	if !ok {
		sec = &Section{Key: key}
		s.sections[key.Name] = sec
	}
	seen := make(map[string]bool, len(sec.Recipes))
	for _, r := range sec.Recipes {
		seen[r.ID] = true
	}
	for _, r := range recipes {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		sec.Recipes = append(sec.Recipes, r)
	}
	sec.Page = 1
	sec.Loading = false
	sec.Loaded = true
}

// LoadMore fetches the next remote page for one section along with the
// authoritative total count, deduplicating against shown recipes before
// appending.
func (s *Sections) LoadMore(ctx context.Context, key string) (*Section, error) {
	sec, ok := s.sections[key]
	if !ok {
		return nil, fmt.Errorf("catalog: unknown section %q", key)
	}
	if sec.Loading || !sec.HasMore {
		return sec, nil
	}
	sec.Loading = true
	defer func() { sec.Loading = false }()

	q := sec.query()
	q.Offset = sec.Page * sectionPageSize

	var (
		recipes []ladledb.CatalogRecipe
		total   int
	)
	grp, gctx := errgroup.WithContext(ctx)
	grp.Go(func() error {
		var err error
		recipes, err = s.remote.Recipes(gctx, q)
		return err
	})
	grp.Go(func() error {
		var err error
		total, err = s.remote.Count(gctx, sec.query())
		return err
	})
	if err := grp.Wait(); err != nil {
		return nil, fmt.Errorf("catalog: loading more for section %q: %w", key, err)
	}

	seen := make(map[string]bool, len(sec.Recipes))
	for _, r := range sec.Recipes {
		seen[r.ID] = true
	}
	for _, r := range recipes {
		if seen[r.ID] {
			continue
		}
		seen[r.ID] = true
		sec.Recipes = append(sec.Recipes, r)
	}
	sec.Page++
	sec.HasMore = sec.Page*sectionPageSize < total
	sec.Loaded = true
	return sec, nil
}

// Ordered returns the sections in the configured display order, with
// sections for unknown keys last.
func (s *Sections) Ordered() []*Section {
	rank := make(map[string]int, len(s.keys))
	for i, key := range s.keys {
		rank[key.Name] = i
	}
	out := make([]*Section, 0, len(s.sections))
	for _, sec := range s.sections {
		out = append(out, sec)
	}
	sort.SliceStable(out, func(i, j int) bool {
		ri, iok := rank[out[i].Key.Name]
		rj, jok := rank[out[j].Key.Name]
		if iok != jok {
			return iok
		}
		if !iok {
			return out[i].Key.Name < out[j].Key.Name
		}
		return ri < rj
	})
	return out
}

// Reset drops all section state ahead of a full refresh.
func (s *Sections) Reset() {
	s.sections = nil
}
