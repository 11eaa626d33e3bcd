package db

type User struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type Recipe struct {
	ID          int64  `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	ImageUrl    string `json:"imageUrl"`
	Ingredients string `json:"ingredients"`
	CreatedBy   int64  `json:"createdBy"`
}

type Favorite struct {
	ID       int64 `json:"id"`
	UserID   int64 `json:"userId"`
	RecipeID int64 `json:"recipeId"`
}
