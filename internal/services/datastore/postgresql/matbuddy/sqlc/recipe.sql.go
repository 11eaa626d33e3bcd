package db

import (
	"context"
)

const createRecipe = `-- name: CreateRecipe :one
INSERT INTO recipes (title, description, image_url, ingredients, created_by)
VALUES ($1, $2, $3, $4, $5)
RETURNING id, title, description, image_url, ingredients, created_by
`

type CreateRecipeParams struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl"`
	Ingredients string `json:"ingredients"`
	CreatedBy   int64  `json:"createdBy"`
}

func (q *Queries) CreateRecipe(ctx context.Context, arg CreateRecipeParams) (Recipe, error) {
	row := q.db.QueryRowContext(ctx, createRecipe,
		arg.Title,
		arg.Description,
		arg.ImageUrl,
		arg.Ingredients,
		arg.CreatedBy,
	)
	var i Recipe
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.ImageUrl,
		&i.Ingredients,
		&i.CreatedBy,
	)
	return i, err
}

const getRecipe = `-- name: GetRecipe :one
SELECT id, title, description, image_url, ingredients, created_by
FROM recipes
WHERE id = $1
LIMIT 1
`

func (q *Queries) GetRecipe(ctx context.Context, id int64) (Recipe, error) {
	row := q.db.QueryRowContext(ctx, getRecipe, id)
	var i Recipe
	err := row.Scan(
		&i.ID,
		&i.Title,
		&i.Description,
		&i.ImageUrl,
		&i.Ingredients,
		&i.CreatedBy,
	)
	return i, err
}

const listRecipes = `-- name: ListRecipes :many
SELECT id, title, description, image_url, ingredients, created_by
FROM recipes
ORDER BY id
`

func (q *Queries) ListRecipes(ctx context.Context) ([]Recipe, error) {
	rows, err := q.db.QueryContext(ctx, listRecipes)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	items := []Recipe{}
	for rows.Next() {
		var i Recipe
		if err := rows.Scan(
			&i.ID,
			&i.Title,
			&i.Description,
			&i.ImageUrl,
			&i.Ingredients,
			&i.CreatedBy,
		); err != nil {
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
