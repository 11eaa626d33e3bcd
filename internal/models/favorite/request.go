package favoriteModel

type (
	CreateRequest struct {
		UserID   int64 `json:"userId" binding:"required,min=1"`
		RecipeID int64 `json:"recipeId" binding:"required,min=1"`
	}

	ListRequest struct {
		UserID int64 `form:"userId" binding:"required,min=1"`
	}

	DeleteRequest struct {
		UserID   int64 `json:"userId" binding:"required,min=1"`
		RecipeID int64 `json:"recipeId" binding:"required,min=1"`
	}
)
