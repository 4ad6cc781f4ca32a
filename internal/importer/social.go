package importer

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/ladlehq/ladle/internal/ladledb"
	"github.com/ladlehq/ladle/internal/recipeschema"
)

type importAPIRequest struct {
	URL            string `json:"url"`
	SaveToDatabase bool   `json:"saveToDatabase"`
}

type importAPIRecipe struct {
	Title            string   `json:"title"`
	Description      string   `json:"description"`
	ImageURL         string   `json:"imageUrl"`
	PrepTimeMinutes  int      `json:"prepTimeMinutes"`
	CookTimeMinutes  int      `json:"cookTimeMinutes"`
	TotalTimeMinutes int      `json:"totalTimeMinutes"`
	Servings         string   `json:"servings"`
	Ingredients      []string `json:"ingredients"`
	Instructions     []string `json:"instructions"`
	SourceName       string   `json:"sourceName"`
	Author           string   `json:"author"`
}

type importAPIResponse struct {
	Success  bool             `json:"success"`
	Recipe   *importAPIRecipe `json:"recipe"`
	IsRecipe *bool            `json:"isRecipe"`
	Error    string           `json:"error"`
}

// importSocial posts the URL to the remote import API, which handles
// platforms that cannot be extracted from HTML. The saveToDatabase flag is
// always false; persistence is the user's explicit save action.
func (im *Importer) importSocial(ctx context.Context, pageURL string) (*ladledb.ImportedRecipe, error) {
	body, err := json.Marshal(importAPIRequest{URL: pageURL, SaveToDatabase: false})
	if err != nil {
		return nil, fmt.Errorf("importer: marshalling import request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, im.importEndpoint, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("importer: building import request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := im.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}
	defer func() {
		_ = res.Body.Close()
	}()

	resBody, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, &NetworkError{Cause: err}
	}

	var parsed importAPIResponse
	if res.StatusCode < http.StatusOK || res.StatusCode >= http.StatusMultipleChoices {
		if json.Unmarshal(resBody, &parsed) == nil && parsed.Error != "" {
			return nil, &ParsingError{Message: parsed.Error}
		}
		return nil, &NetworkError{Cause: fmt.Errorf("import API returned status %d", res.StatusCode)}
	}
	if err := json.Unmarshal(resBody, &parsed); err != nil {
		return nil, &ParsingError{Message: "unexpected import API response"}
	}
	if !parsed.Success {
		msg := parsed.Error
		if msg == "" {
			msg = "import failed"
		}
		return nil, &ParsingError{Message: msg}
	}
	// The API reports "not a recipe" as success without a recipe object.
	if parsed.Recipe == nil {
		return nil, ErrNoRecipeFound
	}
	return apiRecipeToImported(parsed.Recipe, pageURL), nil
}

// apiRecipeToImported maps the API response permissively: missing fields
// become defaults rather than failing the import.
func apiRecipeToImported(r *importAPIRecipe, pageURL string) *ladledb.ImportedRecipe {
	servings := strings.TrimSpace(r.Servings)
	if servings == "" {
		servings = recipeschema.DefaultServings
	}

	total := r.TotalTimeMinutes
	if total == 0 && r.PrepTimeMinutes+r.CookTimeMinutes > 0 {
		total = r.PrepTimeMinutes + r.CookTimeMinutes
	}

	sourceName := r.SourceName
	if sourceName == "" {
		if u, err := url.Parse(pageURL); err == nil {
			sourceName = strings.TrimPrefix(u.Hostname(), "www.")
		}
	}

	return &ladledb.ImportedRecipe{
		Title:            r.Title,
		Description:      r.Description,
		ImageURL:         r.ImageURL,
		PrepTimeMinutes:  r.PrepTimeMinutes,
		CookTimeMinutes:  r.CookTimeMinutes,
		TotalTimeMinutes: total,
		Servings:         servings,
		Ingredients:      r.Ingredients,
		Instructions:     r.Instructions,
		SourceURL:        pageURL,
		SourceName:       sourceName,
		Author:           r.Author,
	}
}
