package ladledb

import "time"

// UserRecipe is a recipe created by a user, either from scratch or by
// saving an imported recipe. Stored in Firestore under the owning user.
type UserRecipe struct {
	// ID is the unique identifier of the recipe.
	ID string `firestore:"id"`

	// UserID is the ID of the user who owns the recipe.
	UserID string `firestore:"userId"`

	// Title is the title of the recipe.
	Title string `firestore:"title"`

	// Description is the description of the recipe.
	Description string `firestore:"description"`

	// ImageURL is the URL for the main image of the recipe.
	ImageURL string `firestore:"imageUrl"`

	// PrepTimeMinutes is the preparation time in minutes, 0 if unknown.
	PrepTimeMinutes int `firestore:"prepTimeMinutes"`

	// CookTimeMinutes is the cooking time in minutes, 0 if unknown.
	CookTimeMinutes int `firestore:"cookTimeMinutes"`

	// TotalTimeMinutes is the total time in minutes, 0 if unknown.
	TotalTimeMinutes int `firestore:"totalTimeMinutes"`

	// Servings is the serving size as free-form text.
	Servings string `firestore:"servings"`

	// Ingredients are the ingredients of the recipe, in order.
	Ingredients []string `firestore:"ingredients"`

	// Instructions are the steps of the recipe, in order.
	Instructions []string `firestore:"instructions"`

	// SourceURL is the URL the recipe was imported from, if any.
	SourceURL string `firestore:"sourceUrl"`

	// SourceName is the name of the source site, if any.
	SourceName string `firestore:"sourceName"`

	// CreatedAt is the time the recipe was created.
	CreatedAt time.Time `firestore:"createdAt"`

	// UpdatedAt is the time the recipe was last updated.
	UpdatedAt time.Time `firestore:"updatedAt"`
}

// FromImported copies an imported recipe into a user recipe owned by
// userID. ID and timestamps are filled in by the store on create.
func FromImported(imported *ImportedRecipe, userID string) *UserRecipe {
	return &UserRecipe{
		UserID:           userID,
		Title:            imported.Title,
		Description:      imported.Description,
		ImageURL:         imported.ImageURL,
		PrepTimeMinutes:  imported.PrepTimeMinutes,
		CookTimeMinutes:  imported.CookTimeMinutes,
		TotalTimeMinutes: imported.TotalTimeMinutes,
		Servings:         imported.Servings,
		Ingredients:      imported.Ingredients,
		Instructions:     imported.Instructions,
		SourceURL:        imported.SourceURL,
		SourceName:       imported.SourceName,
	}
}

// RecipeBookmark is a bookmarked recipe.
type RecipeBookmark struct {
	// The ID of the recipe being bookmarked.
	RecipeID string `firestore:"recipeId"`

	// The time the bookmark was created.
	CreatedAt time.Time `firestore:"createdAt"`
}
