package recipeModel

type (
	CreateRequest struct {
		Title       string `json:"title" binding:"required"`
		Description string `json:"description"`
		Ingredients string `json:"ingredients" binding:"required"`
		ImageUrl    string `json:"imageUrl"`
		CreatedBy   int64  `json:"createdBy" binding:"required,min=1"`
	}
)
