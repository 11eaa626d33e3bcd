package favoriteModel

type (
	ListResponse struct {
		ID       int64 `json:"id"`
		UserID   int64 `json:"userId"`
		RecipeID int64 `json:"recipeId"`
	}
)
