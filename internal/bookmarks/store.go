package bookmarks

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ladlehq/ladle/internal/ladledb"
)

// NewStore returns a bookmark store over Firestore, keyed by user and
// recipe id.
func NewStore(store *firestore.Client) *Store {
	return &Store{store: store}
}

type Store struct {
	store *firestore.Client
}

func (s *Store) doc(userID, recipeID string) *firestore.DocumentRef {
	return s.store.Collection("users").Doc(userID).Collection("bookmarks").Doc("recipe-" + recipeID)
}

// Add creates the bookmark. Adding an existing bookmark is a no-op
// overwrite.
func (s *Store) Add(ctx context.Context, userID string, recipeID string) error {
	bookmark := ladledb.RecipeBookmark{
		RecipeID:  recipeID,
		CreatedAt: time.Now(),
	}
	if _, err := s.doc(userID, recipeID).Set(ctx, bookmark); err != nil {
		return fmt.Errorf("bookmarks: saving bookmark: %w", err)
	}
	return nil
}

// Remove deletes the bookmark. Removing a missing bookmark is not an
// error.
func (s *Store) Remove(ctx context.Context, userID string, recipeID string) error {
	if _, err := s.doc(userID, recipeID).Delete(ctx); err != nil && status.Code(err) != codes.NotFound {
		return fmt.Errorf("bookmarks: deleting bookmark: %w", err)
	}
	return nil
}

// List returns the bookmarked recipe ids for the user.
func (s *Store) List(ctx context.Context, userID string) ([]string, error) {
	iter := s.store.Collection("users").Doc(userID).Collection("bookmarks").Documents(ctx)
	defer iter.Stop()

	var ids []string
	for {
		doc, err := iter.Next()
		if errors.Is(err, iterator.Done) {
			return ids, nil
		}
		if err != nil {
			return nil, fmt.Errorf("bookmarks: listing bookmarks: %w", err)
		}
		var bookmark ladledb.RecipeBookmark
		if err := doc.DataTo(&bookmark); err != nil {
			return nil, fmt.Errorf("bookmarks: unmarshalling bookmark: %w", err)
		}
		ids = append(ids, bookmark.RecipeID)
	}
}

// IsBookmarked reports whether the user has bookmarked the recipe.
func (s *Store) IsBookmarked(ctx context.Context, userID string, recipeID string) (bool, error) {
	doc, err := s.doc(userID, recipeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return false, nil
		}
		return false, fmt.Errorf("bookmarks: getting bookmark: %w", err)
	}
	return doc.Exists(), nil
}
