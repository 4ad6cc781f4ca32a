package suggest

import (
	"context"

	"github.com/ladlehq/ladle/internal/catalog"
)

type Request struct {
	Query string `json:"query"`
}

type Response struct {
	Suggestions []string `json:"suggestions"`
}

func NewHandler(suggester *catalog.Suggester) *Handler {
	return &Handler{suggester: suggester}
}

type Handler struct {
	suggester *catalog.Suggester
}

// Suggest returns autocomplete suggestions for a partial query. Debouncing
// happens client-side per keystroke; this endpoint serves the settled
// query.
func (h *Handler) Suggest(ctx context.Context, req *Request) (*Response, error) {
	suggestions, err := h.suggester.Suggest(ctx, req.Query)
	if err != nil {
		return nil, err
	}
	return &Response{Suggestions: suggestions}, nil
}
