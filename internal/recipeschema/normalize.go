package recipeschema

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/ladlehq/ladle/internal/ladledb"
)

// DefaultServings is used when a page does not declare a serving size.
const DefaultServings = "2 servings"

// Normalize converts a Recipe-typed JSON-LD entity into an ImportedRecipe.
// The only validation gate is the title: an entity without a non-empty name
// is not a recipe and reports not ok. Every other field falls back to its
// zero value or documented default when absent or oddly shaped.
func Normalize(raw map[string]any, src *url.URL) (*ladledb.ImportedRecipe, bool) {
	title := strings.TrimSpace(asString(firstOf(raw["name"])))
	if title == "" {
		return nil, false
	}

	prep, _ := ParseMinutes(asString(raw["prepTime"]))
	cook, _ := ParseMinutes(asString(raw["cookTime"]))
	total, ok := ParseMinutes(asString(raw["totalTime"]))
	if !ok && prep+cook > 0 {
		total = prep + cook
	}

	return &ladledb.ImportedRecipe{
		Title:            title,
		Description:      strings.TrimSpace(asString(firstOf(raw["description"]))),
		ImageURL:         imageURL(raw["image"]),
		PrepTimeMinutes:  prep,
		CookTimeMinutes:  cook,
		TotalTimeMinutes: total,
		Servings:         servings(raw["recipeYield"]),
		Ingredients:      ingredients(raw["recipeIngredient"]),
		Instructions:     instructions(raw["recipeInstructions"]),
		SourceURL:        src.String(),
		SourceName:       sourceName(raw["publisher"], src),
		Author:           author(raw["author"]),
	}, true
}

// imageURL accepts a bare URL string, an object with a url key, or an
// array of either, taking the first element.
func imageURL(v any) string {
	v = firstOf(v)
	if s := asString(v); s != "" {
		return s
	}
	return fieldString(v, "url")
}

// servings accepts a string, a number formatted as "<n> servings", or an
// array of either, defaulting when nothing usable is present.
func servings(v any) string {
	v = firstOf(v)
	if s := strings.TrimSpace(asString(v)); s != "" {
		return s
	}
	if n, ok := v.(float64); ok && n > 0 {
		return fmt.Sprintf("%d servings", int(n))
	}
	return DefaultServings
}

// ingredients accepts only a list of strings; anything else is an empty
// list.
func ingredients(v any) []string {
	list, ok := v.([]any)
	if !ok {
		return nil
	}
	out := make([]string, 0, len(list))
	for _, e := range list {
		if s := strings.TrimSpace(asString(e)); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// instructions accepts a list of HowToStep objects, flattening one level of
// HowToSection nesting depth-first in document order, or a single string
// split on newlines.
func instructions(v any) []string {
	switch steps := v.(type) {
	case []any:
		var out []string
		for _, e := range steps {
			if text := strings.TrimSpace(fieldString(e, "text")); text != "" {
				out = append(out, text)
				continue
			}
			m, ok := e.(map[string]any)
			if !ok {
				continue
			}
			nested, ok := m["itemListElement"].([]any)
			if !ok {
				continue
			}
			for _, step := range nested {
				if text := strings.TrimSpace(fieldString(step, "text")); text != "" {
					out = append(out, text)
				}
			}
		}
		return out
	case string:
		var out []string
		for _, line := range strings.Split(steps, "\n") {
			if line = strings.TrimSpace(line); line != "" {
				out = append(out, line)
			}
		}
		return out
	default:
		return nil
	}
}

// sourceName prefers the publisher name from the structured data, falling
// back to the page host with a leading "www." stripped.
func sourceName(v any, src *url.URL) string {
	if name := strings.TrimSpace(fieldString(firstOf(v), "name")); name != "" {
		return name
	}
	return strings.TrimPrefix(src.Hostname(), "www.")
}

// author accepts a string, an object with a name field, or an array of
// either, taking the first element.
func author(v any) string {
	v = firstOf(v)
	if s := strings.TrimSpace(asString(v)); s != "" {
		return s
	}
	return strings.TrimSpace(fieldString(v, "name"))
}
