package listbookmarks

import (
	"context"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/ladlehq/ladle/internal/bookmarks"
)

type Request struct{}

type Response struct {
	RecipeIDs []string `json:"recipeIds"`
}

func NewHandler(store *bookmarks.Store) *Handler {
	return &Handler{store: store}
}

type Handler struct {
	store *bookmarks.Store
}

func (h *Handler) ListBookmarks(ctx context.Context, _ *Request) (*Response, error) {
	ids, err := h.store.List(ctx, firebaseauth.TokenFromContext(ctx).UID)
	if err != nil {
		return nil, err
	}
	return &Response{RecipeIDs: ids}, nil
}
