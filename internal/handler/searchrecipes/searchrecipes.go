package searchrecipes

import (
	"context"
	"net/http"

	"github.com/ladlehq/ladle/internal/catalog"
	"github.com/ladlehq/ladle/internal/httpjson"
	"github.com/ladlehq/ladle/internal/ladledb"
)

type Request struct {
	Query string `json:"query"`

	// MaxTotalTimeMinutes keeps only recipes at or under the total-time
	// ceiling, 0 for no ceiling.
	MaxTotalTimeMinutes int `json:"maxTotalTimeMinutes"`

	// LoadMore pages the current search instead of starting a new one.
	LoadMore bool `json:"loadMore"`
}

type Response struct {
	Recipes    []ladledb.CatalogRecipe `json:"recipes"`
	TotalCount int                     `json:"totalCount"`
	HasMore    bool                    `json:"hasMore"`
}

func NewHandler(search *catalog.Search) *Handler {
	return &Handler{search: search}
}

// Handler serves free-text search. It keeps the current search state for
// the single client session this server fronts.
type Handler struct {
	search  *catalog.Search
	current *catalog.SearchResults
}

func (h *Handler) SearchRecipes(ctx context.Context, req *Request) (*Response, error) {
	if req.LoadMore {
		if h.current == nil || h.current.Query != req.Query {
			return nil, httpjson.Error(http.StatusBadRequest, "no search in progress for that query")
		}
		if err := h.search.LoadMore(ctx, h.current); err != nil {
			return nil, err
		}
		return response(h.current), nil
	}

	res, err := h.search.Run(ctx, req.Query, req.MaxTotalTimeMinutes)
	if err != nil {
		return nil, err
	}
	h.current = res
	return response(res), nil
}

func response(res *catalog.SearchResults) *Response {
	return &Response{
		Recipes:    res.Recipes,
		TotalCount: res.TotalCount,
		HasMore:    res.HasMore,
	}
}
