package updaterecipe

import (
	"context"
	"errors"
	"net/http"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/ladlehq/ladle/internal/httpjson"
	"github.com/ladlehq/ladle/internal/ladledb"
	"github.com/ladlehq/ladle/internal/userrecipes"
)

type Request struct {
	Recipe *ladledb.UserRecipe `json:"recipe"`
}

type Response struct{}

func NewHandler(store *userrecipes.Store) *Handler {
	return &Handler{store: store}
}

type Handler struct {
	store *userrecipes.Store
}

func (h *Handler) UpdateRecipe(ctx context.Context, req *Request) (*Response, error) {
	if req.Recipe == nil || req.Recipe.ID == "" {
		return nil, httpjson.Error(http.StatusBadRequest, "recipe with an id is required")
	}
	err := h.store.Update(ctx, firebaseauth.TokenFromContext(ctx).UID, req.Recipe)
	if errors.Is(err, userrecipes.ErrNotOwner) {
		return nil, httpjson.Error(http.StatusForbidden, "not your recipe")
	}
	if err != nil {
		return nil, err
	}
	return &Response{}, nil
}
