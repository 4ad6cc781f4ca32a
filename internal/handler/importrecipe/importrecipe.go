package importrecipe

import (
	"context"
	"errors"
	"net/http"

	"github.com/ladlehq/ladle/internal/httpjson"
	"github.com/ladlehq/ladle/internal/importer"
	"github.com/ladlehq/ladle/internal/ladledb"
)

type Request struct {
	URL string `json:"url"`
}

type Response struct {
	Recipe *ladledb.ImportedRecipe `json:"recipe"`
}

func NewHandler(imp *importer.Importer) *Handler {
	return &Handler{importer: imp}
}

type Handler struct {
	importer *importer.Importer
}

// ImportRecipe imports the recipe at the submitted URL. Failures carry a
// descriptive message; the client retries by resubmitting.
func (h *Handler) ImportRecipe(ctx context.Context, req *Request) (*Response, error) {
	recipe, err := h.importer.Import(ctx, req.URL)
	if err != nil {
		return nil, importError(err)
	}
	return &Response{Recipe: recipe}, nil
}

func importError(err error) error {
	var parseErr *importer.ParsingError
	var netErr *importer.NetworkError
	switch {
	case errors.Is(err, importer.ErrInvalidURL):
		return httpjson.Error(http.StatusBadRequest, "that doesn't look like a valid link")
	case errors.Is(err, importer.ErrNoRecipeFound):
		return httpjson.Error(http.StatusNotFound, "no recipe was found at that link")
	case errors.As(err, &parseErr):
		return httpjson.Error(http.StatusUnprocessableEntity, parseErr.Message)
	case errors.As(err, &netErr):
		return httpjson.Error(http.StatusBadGateway, "couldn't reach that link, try again")
	default:
		return err
	}
}
