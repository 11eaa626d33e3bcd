package db

import (
	"context"
)

type Querier interface {
	CreateFavorite(ctx context.Context, arg CreateFavoriteParams) (Favorite, error)
	CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error)
	CreateUser(ctx context.Context, arg CreateUserParams) (User, error)
	DeleteFavorite(ctx context.Context, arg DeleteFavoriteParams) error
	GetRecipe(ctx context.Context, id int64) (Recipe, error)
	GetUserByEmail(ctx context.Context, email string) (User, error)
	ListFavoritesByUser(ctx context.Context, userID int64) ([]Favorite, error)
	ListRecipes(ctx context.Context) ([]Recipe, error)
}

var _ Querier = (*Queries)(nil)
