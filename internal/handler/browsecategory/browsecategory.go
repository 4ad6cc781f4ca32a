package browsecategory

import (
	"context"

	"github.com/ladlehq/ladle/internal/catalog"
	"github.com/ladlehq/ladle/internal/ladledb"
)

type Request struct {
	Category string `json:"category"`

	// LoadMore pages the active filter instead of toggling it.
	LoadMore bool `json:"loadMore"`
}

type Response struct {
	Active     string                  `json:"active"`
	Recipes    []ladledb.CatalogRecipe `json:"recipes"`
	TotalCount int                     `json:"totalCount"`
	HasMore    bool                    `json:"hasMore"`
}

func NewHandler(browse *catalog.CategoryBrowse) *Handler {
	return &Handler{browse: browse}
}

// Handler serves category-filter browsing for the single client session
// this server fronts. Selecting the active category again clears the
// filter.
type Handler struct {
	browse *catalog.CategoryBrowse
	state  catalog.CategoryState
}

func (h *Handler) BrowseCategory(ctx context.Context, req *Request) (*Response, error) {
	if req.LoadMore {
		if err := h.browse.LoadMore(ctx, &h.state); err != nil {
			return nil, err
		}
	} else if err := h.browse.Toggle(ctx, &h.state, req.Category); err != nil {
		return nil, err
	}
	return &Response{
		Active:     h.state.Active,
		Recipes:    h.state.Recipes,
		TotalCount: h.state.TotalCount,
		HasMore:    h.state.HasMore,
	}, nil
}
