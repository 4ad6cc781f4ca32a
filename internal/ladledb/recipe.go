package ladledb

import (
	"net/url"
	"strings"
)

// imageProxyHost is the host of the image resizing proxy that catalog
// image URLs may be wrapped with. The original URL is carried in the
// proxy's url query parameter.
const imageProxyHost = "images.weserv.nl"

// CatalogRecipe is a recipe in the server-side catalog. It is read-only to
// clients; writes happen through curation tooling outside this service.
type CatalogRecipe struct {
	// ID is the unique identifier of the recipe in the catalog.
	ID string `json:"id"`

	// Title is the title of the recipe.
	Title string `json:"title"`

	// Description is the description of the recipe.
	Description string `json:"description"`

	// ImageURL is the URL for the main image of the recipe. It may be
	// wrapped by the image proxy; use DisplayImageURL for rendering.
	ImageURL string `json:"imageUrl"`

	// PrepTimeMinutes is the preparation time in minutes, 0 if unknown.
	PrepTimeMinutes int `json:"prepTimeMinutes"`

	// CookTimeMinutes is the cooking time in minutes, 0 if unknown.
	CookTimeMinutes int `json:"cookTimeMinutes"`

	// TotalTimeMinutes is the total time in minutes, 0 if unknown.
	TotalTimeMinutes int `json:"totalTimeMinutes"`

	// Servings is the serving size as free-form text.
	Servings string `json:"servings"`

	// Ingredients are the ingredients of the recipe, in order.
	Ingredients []string `json:"ingredients"`

	// Instructions are the steps of the recipe, in order.
	Instructions []string `json:"instructions"`

	// Rating is the average user rating of the recipe.
	Rating float64 `json:"rating"`

	// RatingCount is the number of ratings the recipe has received.
	RatingCount int `json:"ratingCount"`

	// Curated reports whether the recipe is part of the curated set that
	// ranks above ordinarily sourced recipes.
	Curated bool `json:"isCurated"`

	// Cuisines are the cuisine tags of the recipe, e.g. "Mexican".
	Cuisines []string `json:"cuisines"`

	// Categories are the category tags of the recipe, e.g. "Desserts".
	Categories []string `json:"categories"`

	// SourceURL is the URL of the page the recipe came from, if any.
	SourceURL string `json:"sourceUrl"`

	// SourceName is the name of the site the recipe came from, if any.
	SourceName string `json:"sourceName"`

	// Author is the author of the recipe, if known.
	Author string `json:"author"`
}

// TotalRating is the primary sort key for catalog recipes, weighting the
// average rating by the number of ratings so that a well-known recipe ranks
// above an identically rated but rarely rated one.
func (r *CatalogRecipe) TotalRating() float64 {
	return r.Rating * float64(r.RatingCount)
}

// DisplayImageURL returns the image URL to render, unwrapping the image
// proxy back to the original source when the URL is proxy-wrapped.
func (r *CatalogRecipe) DisplayImageURL() string {
	u, err := url.Parse(r.ImageURL)
	if err != nil {
		return r.ImageURL
	}
	host := strings.ToLower(u.Hostname())
	if host != imageProxyHost && !strings.HasSuffix(host, "."+imageProxyHost) {
		return r.ImageURL
	}
	orig := u.Query().Get("url")
	if orig == "" {
		return r.ImageURL
	}
	if !strings.HasPrefix(orig, "http://") && !strings.HasPrefix(orig, "https://") {
		orig = "https://" + orig
	}
	return orig
}

// ImportedRecipe is the normalized result of importing a recipe from a web
// page or social media link. It is created once per import and not modified
// afterwards; saving it copies the fields into a UserRecipe.
type ImportedRecipe struct {
	// Title is the title of the recipe. Never empty; a candidate without a
	// title is not a recipe.
	Title string `json:"title"`

	// Description is the description of the recipe, if any.
	Description string `json:"description"`

	// ImageURL is the URL of the main image, if any.
	ImageURL string `json:"imageUrl"`

	// PrepTimeMinutes is the preparation time in minutes, 0 if unknown.
	PrepTimeMinutes int `json:"prepTimeMinutes"`

	// CookTimeMinutes is the cooking time in minutes, 0 if unknown.
	CookTimeMinutes int `json:"cookTimeMinutes"`

	// TotalTimeMinutes is the total time in minutes. When the page does not
	// declare it, it is the sum of prep and cook times when that is
	// positive, otherwise 0.
	TotalTimeMinutes int `json:"totalTimeMinutes"`

	// Servings is the serving size as free-form text. Always populated,
	// defaulting to "2 servings" when the page does not declare it.
	Servings string `json:"servings"`

	// Ingredients are the ingredients of the recipe, in page order.
	Ingredients []string `json:"ingredients"`

	// Instructions are the steps of the recipe, in page order. Numbering is
	// applied by the presentation layer.
	Instructions []string `json:"instructions"`

	// SourceURL is the URL the recipe was imported from.
	SourceURL string `json:"sourceUrl"`

	// SourceName is the name of the source site, if known.
	SourceName string `json:"sourceName"`

	// Author is the author of the recipe, if known.
	Author string `json:"author"`
}
