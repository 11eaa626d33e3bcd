package recipeModel

type (
	CreateResponse struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageUrl    string `json:"imageUrl"`
		Ingredients string `json:"ingredients"`
		CreatedBy   int64  `json:"createdBy"`
	}

	ListResponse struct {
		ID          int64  `json:"id"`
		Title       string `json:"title"`
		Description string `json:"description"`
		ImageUrl    string `json:"imageUrl"`
		Ingredients string `json:"ingredients"`
		CreatedBy   int64  `json:"createdBy"`
	}
)
