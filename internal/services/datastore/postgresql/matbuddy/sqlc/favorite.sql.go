package db

import (
	"context"
)

const createFavorite = `-- name: CreateFavorite :one
INSERT INTO favorites (user_id, recipe_id)
VALUES ($1, $2)
RETURNING id, user_id, recipe_id
`

type CreateFavoriteParams struct {
	UserID   int64 `json:"userId"`
	RecipeID int64 `json:"recipeId"`
}

func (q *Queries) CreateFavorite(ctx context.Context, arg CreateFavoriteParams) (Favorite, error) {
	row := q.db.QueryRowContext(ctx, createFavorite, arg.UserID, arg.RecipeID)
	var i Favorite
	err := row.Scan(&i.ID, &i.UserID, &i.RecipeID)
	return i, err
}

const deleteFavorite = `-- name: DeleteFavorite :exec
DELETE FROM favorites
WHERE user_id = $1
  AND recipe_id = $2
`

type DeleteFavoriteParams struct {
	UserID   int64 `json:"userId"`
	RecipeID int64 `json:"recipeId"`
}

func (q *Queries) DeleteFavorite(ctx context.Context, arg DeleteFavoriteParams) error {
	_, err := q.db.ExecContext(ctx, deleteFavorite, arg.UserID, arg.RecipeID)
	return err
}

const listFavoritesByUser = `-- name: ListFavoritesByUser :many
SELECT id, user_id, recipe_id
FROM favorites
WHERE user_id = $1
ORDER BY id
`

func (q *Queries) ListFavoritesByUser(ctx context.Context, userID int64) ([]Favorite, error) {
	rows, err := q.db.QueryContext(ctx, listFavoritesByUser, userID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Favorite{}
	for rows.Next() {
		var i Favorite
		if err := rows.Scan(&i.ID, &i.UserID, &i.RecipeID); err != nil {
			return nil, err
		}
		items = append(items, i)
	}
	if err := rows.Close(); err != nil {
		return nil, err
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return items, nil
}
