package db

import (
	"context"
	"database/sql"
	"github.com/matbuddy/go-matbuddy/pkg/tools/random"
	"github.com/stretchr/testify/require"
	"strings"
	"testing"
)

func createRandomRecipe(t *testing.T) Recipe {
	user := createRandomUser(t)

	createArgs := CreateRecipeParams{
		Title:       random.String(12),
		Description: random.String(30),
		ImageUrl:    "https://example.com/" + random.String(8) + ".jpg",
		Ingredients: strings.Join(random.StringSlice(4), ", "),
		CreatedBy:   user.ID,
	}

	recipe, err := testQueries.CreateRecipe(context.Background(), createArgs)
	require.NoError(t, err)
	require.NotEmpty(t, recipe)
	require.NotEmpty(t, recipe.ID)

	require.Equal(t, createArgs.Title, recipe.Title)
	require.Equal(t, createArgs.Description, recipe.Description)
	require.Equal(t, createArgs.ImageUrl, recipe.ImageUrl)
	require.Equal(t, createArgs.Ingredients, recipe.Ingredients)
	require.Equal(t, createArgs.CreatedBy, recipe.CreatedBy)

	return recipe
}

func TestCreateRecipe(t *testing.T) {
	createRandomRecipe(t)
}

func TestCreateRecipeUnknownUser(t *testing.T) {
	createArgs := CreateRecipeParams{
		Title:       random.String(12),
		Ingredients: strings.Join(random.StringSlice(4), ", "),
		CreatedBy:   random.Int(1<<40, 1<<41),
	}

	recipe, err := testQueries.CreateRecipe(context.Background(), createArgs)
	require.Error(t, err)
	require.Empty(t, recipe)
}

func TestGetRecipe(t *testing.T) {
	recipe := createRandomRecipe(t)

	gotRecipe, err := testQueries.GetRecipe(context.Background(), recipe.ID)
	require.NoError(t, err)
	require.NotEmpty(t, gotRecipe)

	require.Equal(t, recipe, gotRecipe)
}

func TestGetRecipeNotFound(t *testing.T) {
	gotRecipe, err := testQueries.GetRecipe(context.Background(), random.Int(1<<40, 1<<41))
	require.Error(t, err)
	require.EqualError(t, err, sql.ErrNoRows.Error())
	require.Empty(t, gotRecipe)
}

func TestListRecipes(t *testing.T) {
	n := 5
	created := make([]Recipe, 0, n)
	for i := 0; i < n; i++ {
		created = append(created, createRandomRecipe(t))
	}

	recipesList, err := testQueries.ListRecipes(context.Background())
	require.NoError(t, err)
	require.GreaterOrEqual(t, len(recipesList), n)

	byID := make(map[int64]Recipe, len(recipesList))
	for _, recipe := range recipesList {
		require.NotEmpty(t, recipe)
		byID[recipe.ID] = recipe
	}

	for _, recipe := range created {
		require.Equal(t, recipe, byID[recipe.ID])
	}
}
