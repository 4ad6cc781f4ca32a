package togglebookmark

import (
	"context"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/ladlehq/ladle/internal/bookmarks"
)

type Request struct {
	RecipeID string `json:"recipeId"`

	// Bookmarked is the state currently shown to the user.
	Bookmarked bool `json:"bookmarked"`

	// Desired is the state the user toggled to.
	Desired bool `json:"desired"`
}

type Response struct {
	// Bookmarked is the state to show. On a store failure this is the
	// rolled-back state rather than an error, so the toggle never leaves
	// the UI stuck.
	Bookmarked bool `json:"bookmarked"`

	RolledBack bool `json:"rolledBack"`
}

func NewHandler(store *bookmarks.Store) *Handler {
	return &Handler{store: store}
}

type Handler struct {
	store *bookmarks.Store
}

// ToggleBookmark applies an optimistic bookmark toggle: the transition is
// computed up front, the confirming store write runs, and a write failure
// rolls back to the prior state.
func (h *Handler) ToggleBookmark(ctx context.Context, req *Request) (*Response, error) {
	userID := firebaseauth.TokenFromContext(ctx).UID

	t := bookmarks.Toggle(req.Bookmarked, req.Desired)

	var err error
	switch t.Action {
	case bookmarks.ActionAdd:
		err = h.store.Add(ctx, userID, req.RecipeID)
	case bookmarks.ActionRemove:
		err = h.store.Remove(ctx, userID, req.RecipeID)
	case bookmarks.ActionNone:
	}
	if err != nil {
		return &Response{Bookmarked: t.Rollback, RolledBack: true}, nil
	}
	return &Response{Bookmarked: t.Next}, nil
}
