// Package userrecipes stores recipes created or saved by users.
package userrecipes

import (
	"context"
	"errors"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/ladlehq/ladle/internal/ladledb"
)

// ErrNotOwner is returned when a user modifies a recipe they do not own.
var ErrNotOwner = errors.New("userrecipes: recipe not owned by user")

// NewStore returns a user recipe store over Firestore. All operations are
// scoped to the signed-in user's id.
func NewStore(store *firestore.Client) *Store {
	return &Store{store: store}
}

type Store struct {
	store *firestore.Client
}

func (s *Store) collection() *firestore.CollectionRef {
	return s.store.Collection("userRecipes")
}

// Create stores a new recipe owned by recipe.UserID and returns its id.
func (s *Store) Create(ctx context.Context, recipe *ladledb.UserRecipe) (string, error) {
	doc := s.collection().NewDoc()
	recipe.ID = doc.ID
	recipe.CreatedAt = time.Now()
	recipe.UpdatedAt = recipe.CreatedAt
	if _, err := doc.Create(ctx, recipe); err != nil {
		return "", fmt.Errorf("userrecipes: creating recipe: %w", err)
	}
	return recipe.ID, nil
}

// Update overwrites an existing recipe after verifying ownership.
func (s *Store) Update(ctx context.Context, userID string, recipe *ladledb.UserRecipe) error {
	existing, err := s.get(ctx, recipe.ID)
	if err != nil {
		return err
	}
	if existing.UserID != userID {
		return ErrNotOwner
	}
	recipe.UserID = userID
	recipe.CreatedAt = existing.CreatedAt
	recipe.UpdatedAt = time.Now()
	if _, err := s.collection().Doc(recipe.ID).Set(ctx, recipe); err != nil {
		return fmt.Errorf("userrecipes: updating recipe: %w", err)
	}
	return nil
}

// Delete removes a recipe after verifying ownership. Deleting a missing
// recipe is not an error.
func (s *Store) Delete(ctx context.Context, userID string, recipeID string) error {
	doc, err := s.collection().Doc(recipeID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil
		}
		return fmt.Errorf("userrecipes: getting recipe: %w", err)
	}
	var existing ladledb.UserRecipe
	if err := doc.DataTo(&existing); err != nil {
		return fmt.Errorf("userrecipes: unmarshalling recipe: %w", err)
	}
	if existing.UserID != userID {
		return ErrNotOwner
	}
	if _, err := s.collection().Doc(recipeID).Delete(ctx); err != nil {
		return fmt.Errorf("userrecipes: deleting recipe: %w", err)
	}
	return nil
}

func (s *Store) get(ctx context.Context, recipeID string) (*ladledb.UserRecipe, error) {
	doc, err := s.collection().Doc(recipeID).Get(ctx)
	if err != nil {
		return nil, fmt.Errorf("userrecipes: getting recipe: %w", err)
	}
	var recipe ladledb.UserRecipe
	if err := doc.DataTo(&recipe); err != nil {
		return nil, fmt.Errorf("userrecipes: unmarshalling recipe: %w", err)
	}
	return &recipe, nil
}
