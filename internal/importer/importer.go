// Package importer turns a user-supplied URL into a normalized imported
// recipe, dispatching social media links to the remote import API and
// everything else to direct page extraction.
package importer

import (
	"context"
	"net/http"
	"net/url"
	"strings"
	"unicode/utf8"

	"github.com/gocolly/colly/v2"

	"github.com/ladlehq/ladle/internal/ladledb"
	"github.com/ladlehq/ladle/internal/recipeschema"
)

// socialHosts are platforms whose pages cannot be extracted directly;
// links to them go through the remote import API, which scrapes video
// captions server-side. Matched as case-insensitive substrings of the
// host.
var socialHosts = []string{
	"tiktok.com",
	"instagram.com",
	"youtube.com",
	"youtu.be",
	"facebook.com",
	"fb.watch",
	"pinterest.com",
}

// New returns an importer. hosts overrides the social dispatch list; empty
// keeps the default.
func New(baseCollector *colly.Collector, httpClient *http.Client, importEndpoint string, hosts []string) *Importer {
	if len(hosts) == 0 {
		hosts = socialHosts
	}
	return &Importer{
		baseCollector:  baseCollector,
		httpClient:     httpClient,
		importEndpoint: importEndpoint,
		socialHosts:    hosts,
	}
}

type Importer struct {
	baseCollector  *colly.Collector
	httpClient     *http.Client
	importEndpoint string
	socialHosts    []string
}

// Import fetches and normalizes the recipe at rawURL. Failures are
// terminal for the attempt; there is no automatic retry. Errors are
// ErrInvalidURL, ErrNoRecipeFound, *NetworkError, or *ParsingError.
func (im *Importer) Import(ctx context.Context, rawURL string) (*ladledb.ImportedRecipe, error) {
	u, err := NormalizeURL(rawURL)
	if err != nil {
		return nil, err
	}
	if im.isSocial(u) {
		return im.importSocial(ctx, u.String())
	}
	return im.importWebsite(ctx, u)
}

// NormalizeURL prepends https:// to scheme-less input and validates the
// result as an http or https URL.
func NormalizeURL(raw string) (*url.URL, error) {
	raw = strings.TrimSpace(raw)
	if !strings.HasPrefix(raw, "http://") && !strings.HasPrefix(raw, "https://") {
		raw = "https://" + raw
	}
	u, err := url.Parse(raw)
	if err != nil || (u.Scheme != "http" && u.Scheme != "https") || u.Host == "" {
		return nil, ErrInvalidURL
	}
	return u, nil
}

func (im *Importer) isSocial(u *url.URL) bool {
	host := strings.ToLower(u.Host)
	for _, h := range im.socialHosts {
		if strings.Contains(host, h) {
			return true
		}
	}
	return false
}

// importWebsite fetches the page and runs structured-data extraction,
// falling back to microdata before giving up. Extraction misses are
// silent; only exhaustion of all strategies surfaces an error.
func (im *Importer) importWebsite(ctx context.Context, u *url.URL) (*ladledb.ImportedRecipe, error) {
	// Avoid clone since we don't want to share storage.
	c := colly.NewCollector(
		colly.UserAgent(im.baseCollector.UserAgent),
		colly.StdlibContext(ctx),
	)

	var body []byte
	c.OnResponse(func(r *colly.Response) {
		body = r.Body
	})
	if err := c.Visit(u.String()); err != nil {
		return nil, &NetworkError{Cause: err}
	}

	if !utf8.Valid(body) {
		return nil, &ParsingError{Message: "page is not valid UTF-8"}
	}
	htmlText := string(body)

	if raw, ok := recipeschema.ExtractRecipe(htmlText); ok {
		if recipe, ok := recipeschema.Normalize(raw, u); ok {
			return recipe, nil
		}
	}
	if raw, ok := recipeschema.ExtractMicrodataRecipe(htmlText); ok {
		if recipe, ok := recipeschema.Normalize(raw, u); ok {
			return recipe, nil
		}
	}
	return nil, ErrNoRecipeFound
}
