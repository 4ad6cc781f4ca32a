package deleterecipe

import (
	"context"
	"errors"
	"net/http"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/ladlehq/ladle/internal/httpjson"
	"github.com/ladlehq/ladle/internal/userrecipes"
)

type Request struct {
	RecipeID string `json:"recipeId"`
}

type Response struct{}

func NewHandler(store *userrecipes.Store) *Handler {
	return &Handler{store: store}
}

type Handler struct {
	store *userrecipes.Store
}

func (h *Handler) DeleteRecipe(ctx context.Context, req *Request) (*Response, error) {
	err := h.store.Delete(ctx, firebaseauth.TokenFromContext(ctx).UID, req.RecipeID)
	if errors.Is(err, userrecipes.ErrNotOwner) {
		return nil, httpjson.Error(http.StatusForbidden, "not your recipe")
	}
	if err != nil {
		return nil, err
	}
	return &Response{}, nil
}
