package main

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"strings"

	"cloud.google.com/go/storage"
	firebase "firebase.google.com/go/v4"
	"github.com/curioswitch/go-curiostack/server"
	"github.com/curioswitch/go-usegcp/middleware/firebaseauth"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/gocolly/colly/v2"

	"github.com/ladlehq/ladle/internal/bookmarks"
	"github.com/ladlehq/ladle/internal/catalog"
	"github.com/ladlehq/ladle/internal/config"
	"github.com/ladlehq/ladle/internal/handler/browsecategory"
	"github.com/ladlehq/ladle/internal/handler/deleterecipe"
	"github.com/ladlehq/ladle/internal/handler/importrecipe"
	"github.com/ladlehq/ladle/internal/handler/listbookmarks"
	"github.com/ladlehq/ladle/internal/handler/listsections"
	"github.com/ladlehq/ladle/internal/handler/saverecipe"
	"github.com/ladlehq/ladle/internal/handler/searchrecipes"
	"github.com/ladlehq/ladle/internal/handler/suggest"
	"github.com/ladlehq/ladle/internal/handler/togglebookmark"
	"github.com/ladlehq/ladle/internal/handler/updaterecipe"
	"github.com/ladlehq/ladle/internal/httpjson"
	"github.com/ladlehq/ladle/internal/images"
	"github.com/ladlehq/ladle/internal/importer"
	"github.com/ladlehq/ladle/internal/userrecipes"
)

//go:embed conf/*.yaml
var confFiles embed.FS

func main() {
	conf, _ := fs.Sub(confFiles, "conf")
	os.Exit(server.Main(&config.Config{}, conf, setupServer))
}

func setupServer(ctx context.Context, conf *config.Config, s *server.Server) error {
	mux := server.Mux(s)

	fbApp, err := firebase.NewApp(ctx, &firebase.Config{ProjectID: conf.Google.Project})
	if err != nil {
		return fmt.Errorf("main: create firebase app: %w", err)
	}

	fbAuth, err := fbApp.Auth(ctx)
	if err != nil {
		return fmt.Errorf("main: create firebase auth client: %w", err)
	}

	firestore, err := fbApp.Firestore(ctx)
	if err != nil {
		return fmt.Errorf("main: create firestore client: %w", err)
	}
	defer func() {
		if err := firestore.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close firestore client", "error", err)
		}
	}()

	storage, err := storage.NewGRPCClient(ctx)
	if err != nil {
		return fmt.Errorf("main: create storage client: %w", err)
	}
	defer func() {
		if err := storage.Close(); err != nil {
			slog.ErrorContext(ctx, "main: close storage client", "error", err)
		}
	}()
	publicBucket := conf.Google.Project + "-public"

	curated := catalog.NewCuratedSet()
	if err := curated.Load(); err != nil {
		return fmt.Errorf("main: load curated recipes: %w", err)
	}

	remote := catalog.NewRemoteCatalog(conf.Catalog.URL, conf.Catalog.APIKey)

	baseCollector := colly.NewCollector(
		colly.UserAgent("LadleBot/0.1"),
	)
	imp := importer.New(baseCollector, http.DefaultClient, conf.Import.Endpoint, conf.Import.SocialHosts)

	bookmarkStore := bookmarks.NewStore(firestore)
	recipeStore := userrecipes.NewStore(firestore)
	uploader := images.NewUploader(storage, publicBucket)

	fbMW := firebaseauth.NewMiddleware(fbAuth)
	mux.Use(middleware.Maybe(fbMW, func(r *http.Request) bool {
		return strings.HasPrefix(r.URL.Path, "/api/user/")
	}))

	httpjson.Handle(mux, "/api/import", importrecipe.NewHandler(imp).ImportRecipe)
	httpjson.Handle(mux, "/api/sections", listsections.NewHandler(catalog.NewSections(curated, remote)).ListSections)
	httpjson.Handle(mux, "/api/search", searchrecipes.NewHandler(catalog.NewSearch(curated, remote)).SearchRecipes)
	httpjson.Handle(mux, "/api/suggest", suggest.NewHandler(catalog.NewSuggester(remote)).Suggest)
	httpjson.Handle(mux, "/api/category", browsecategory.NewHandler(catalog.NewCategoryBrowse(remote)).BrowseCategory)

	mux.Group(func(r chi.Router) {
		httpjson.Handle(r, "/api/user/bookmarks/toggle", togglebookmark.NewHandler(bookmarkStore).ToggleBookmark)
		httpjson.Handle(r, "/api/user/bookmarks", listbookmarks.NewHandler(bookmarkStore).ListBookmarks)
		httpjson.Handle(r, "/api/user/recipes/save", saverecipe.NewHandler(recipeStore, uploader).SaveRecipe)
		httpjson.Handle(r, "/api/user/recipes/update", updaterecipe.NewHandler(recipeStore).UpdateRecipe)
		httpjson.Handle(r, "/api/user/recipes/delete", deleterecipe.NewHandler(recipeStore).DeleteRecipe)
	})

	if err := server.Start(ctx, s); err != nil {
		return fmt.Errorf("main: starting server: %w", err)
	}
	return nil
}
