package saverecipe

import (
	"context"
	"encoding/base64"
	"fmt"
	"net/http"
	"strings"

	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"

	"github.com/ladlehq/ladle/internal/httpjson"
	"github.com/ladlehq/ladle/internal/images"
	"github.com/ladlehq/ladle/internal/ladledb"
	"github.com/ladlehq/ladle/internal/userrecipes"
)

type Request struct {
	// Recipe is the imported recipe to save for the signed-in user.
	Recipe *ladledb.ImportedRecipe `json:"recipe"`

	// ImageDataURL optionally carries a locally captured image as a data
	// URL, uploaded to object storage on save.
	ImageDataURL string `json:"imageDataUrl"`
}

type Response struct {
	RecipeID string `json:"recipeId"`
}

func NewHandler(store *userrecipes.Store, uploader *images.Uploader) *Handler {
	return &Handler{store: store, uploader: uploader}
}

type Handler struct {
	store    *userrecipes.Store
	uploader *images.Uploader
}

// SaveRecipe copies an imported recipe into the user's recipes, uploading
// any local image and replacing the image URL with the public one.
func (h *Handler) SaveRecipe(ctx context.Context, req *Request) (*Response, error) {
	if req.Recipe == nil || req.Recipe.Title == "" {
		return nil, httpjson.Error(http.StatusBadRequest, "recipe with a title is required")
	}
	userID := firebaseauth.TokenFromContext(ctx).UID

	recipe := ladledb.FromImported(req.Recipe, userID)

	if req.ImageDataURL != "" {
		contentType, data, err := decodeDataURL(req.ImageDataURL)
		if err != nil {
			return nil, httpjson.Error(http.StatusBadRequest, "invalid image data")
		}
		url, err := h.uploader.Upload(ctx, fmt.Sprintf("user-recipes/%s/main-image.jpg", userID), data, contentType)
		if err != nil {
			return nil, fmt.Errorf("saverecipe: uploading image: %w", err)
		}
		recipe.ImageURL = url
	}

	id, err := h.store.Create(ctx, recipe)
	if err != nil {
		return nil, fmt.Errorf("saverecipe: storing recipe: %w", err)
	}
	return &Response{RecipeID: id}, nil
}

func decodeDataURL(dataURL string) (string, []byte, error) {
	rest, ok := strings.CutPrefix(dataURL, "data:")
	if !ok {
		return "", nil, fmt.Errorf("saverecipe: not a data URL")
	}
	meta, encoded, ok := strings.Cut(rest, ",")
	if !ok {
		return "", nil, fmt.Errorf("saverecipe: malformed data URL")
	}
	contentType, _, _ := strings.Cut(meta, ";")
	data, err := base64.StdEncoding.DecodeString(encoded)
	if err != nil {
		return "", nil, fmt.Errorf("saverecipe: decoding image data: %w", err)
	}
	return contentType, data, nil
}
