package recipeschema

import "testing"

func page(scripts ...string) string {
	body := ""
	for _, s := range scripts {
		body += `<script type="application/ld+json">` + s + `</script>`
	}
	return "<html><head>" + body + "</head><body><h1>A page</h1></body></html>"
}

func TestExtractRecipe(t *testing.T) {
	tests := []struct {
		name  string
		html  string
		found bool
		title string
	}{
		{
			name:  "bare object",
			html:  page(`{"@type":"Recipe","name":"Pancakes"}`),
			found: true,
			title: "Pancakes",
		},
		{
			name:  "top-level array",
			html:  page(`[{"@type":"WebSite"},{"@type":"Recipe","name":"Waffles"}]`),
			found: true,
			title: "Waffles",
		},
		{
			name:  "graph wrapper",
			html:  page(`{"@graph":[{"@type":"Organization"},{"@type":"Recipe","name":"Crepes"}]}`),
			found: true,
			title: "Crepes",
		},
		{
			name:  "type array",
			html:  page(`{"@type":["Thing","Recipe"],"name":"Toast"}`),
			found: true,
			title: "Toast",
		},
		{
			name:  "first match wins across scripts",
			html:  page(`{"@type":"Recipe","name":"First"}`, `{"@type":"Recipe","name":"Second"}`),
			found: true,
			title: "First",
		},
		{
			name:  "malformed script skipped",
			html:  page(`{not json`, `{"@type":"Recipe","name":"Survivor"}`),
			found: true,
			title: "Survivor",
		},
		{
			name:  "type match is case sensitive",
			html:  page(`{"@type":"recipe","name":"Nope"}`),
			found: false,
		},
		{
			name:  "no recipe entity",
			html:  page(`{"@type":"NewsArticle","headline":"News"}`),
			found: false,
		},
		{
			name:  "no scripts at all",
			html:  "<html><body><p>hello</p></body></html>",
			found: false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recipe, found := ExtractRecipe(tt.html)
			if found != tt.found {
				t.Fatalf("found = %v, want %v", found, tt.found)
			}
			if !found {
				return
			}
			if name := asString(recipe["name"]); name != tt.title {
				t.Errorf("name = %q, want %q", name, tt.title)
			}
		})
	}
}

func TestExtractRecipeScriptTypeCaseInsensitive(t *testing.T) {
	html := `<html><head><script type="application/LD+JSON">{"@type":"Recipe","name":"Scones"}</script></head></html>`
	recipe, found := ExtractRecipe(html)
	if !found {
		t.Fatal("expected a recipe")
	}
	if name := asString(recipe["name"]); name != "Scones" {
		t.Errorf("name = %q, want %q", name, "Scones")
	}
}

func TestExtractMicrodataRecipeIsStub(t *testing.T) {
	if _, found := ExtractMicrodataRecipe(`<div itemscope itemtype="https://schema.org/Recipe"></div>`); found {
		t.Error("microdata extraction should never match")
	}
}
