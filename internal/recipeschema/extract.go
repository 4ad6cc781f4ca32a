package recipeschema

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const scriptTypeJSONLD = "application/ld+json"

// ExtractRecipe scans the JSON-LD script blocks of an HTML page for the
// first entity typed as a schema.org Recipe, in document order. Malformed
// documents and non-recipe entities are skipped silently.
func ExtractRecipe(htmlText string) (map[string]any, bool) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(htmlText))
	if err != nil {
		return nil, false
	}

	var found map[string]any
	doc.Find("script").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		typ, _ := s.Attr("type")
		if !strings.EqualFold(strings.TrimSpace(typ), scriptTypeJSONLD) {
			return true
		}
		if recipe, ok := recipeInDocument(s.Text()); ok {
			found = recipe
			return false
		}
		return true
	})
	return found, found != nil
}

// recipeInDocument parses one JSON-LD document and looks for a Recipe
// entity in a top-level array, a @graph wrapper, or the bare object.
func recipeInDocument(text string) (map[string]any, bool) {
	var v any
	if err := json.Unmarshal([]byte(text), &v); err != nil {
		return nil, false
	}

	switch doc := v.(type) {
	case []any:
		return recipeInList(doc)
	case map[string]any:
		if graph, ok := doc["@graph"].([]any); ok {
			return recipeInList(graph)
		}
		return asRecipe(doc)
	default:
		return nil, false
	}
}

func recipeInList(entities []any) (map[string]any, bool) {
	for _, e := range entities {
		if recipe, ok := asRecipe(e); ok {
			return recipe, true
		}
	}
	return nil, false
}

// asRecipe tests whether v is an entity whose @type is "Recipe". The type
// field may be a single string or an array of strings.
func asRecipe(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok {
		return nil, false
	}
	switch t := m["@type"].(type) {
	case string:
		if t == "Recipe" {
			return m, true
		}
	case []any:
		for _, e := range t {
			if asString(e) == "Recipe" {
				return m, true
			}
		}
	}
	return nil, false
}

// ExtractMicrodataRecipe is the fallback for pages carrying recipe
// microdata instead of JSON-LD. Microdata markup is rare enough on recipe
// sites that parsing it has not been needed; this always reports no match.
func ExtractMicrodataRecipe(string) (map[string]any, bool) {
	return nil, false
}
