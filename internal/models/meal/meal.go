package mealModel

// SlotCount is the number of positional ingredient/measure slots the external
// meal service exposes per record.
const SlotCount = 14

type (
	// RawMeal mirrors the external meal service's record shape. Every field
	// is optional on the wire; absent fields decode to the empty string.
	RawMeal struct {
		IDMeal          string `json:"idMeal"`
		StrMeal         string `json:"strMeal"`
		StrCategory     string `json:"strCategory"`
		StrArea         string `json:"strArea"`
		StrInstructions string `json:"strInstructions"`
		StrMealThumb    string `json:"strMealThumb"`
		StrTags         string `json:"strTags"`
		StrYoutube      string `json:"strYoutube"`

		StrIngredient1  string `json:"strIngredient1"`
		StrIngredient2  string `json:"strIngredient2"`
		StrIngredient3  string `json:"strIngredient3"`
		StrIngredient4  string `json:"strIngredient4"`
		StrIngredient5  string `json:"strIngredient5"`
		StrIngredient6  string `json:"strIngredient6"`
		StrIngredient7  string `json:"strIngredient7"`
		StrIngredient8  string `json:"strIngredient8"`
		StrIngredient9  string `json:"strIngredient9"`
		StrIngredient10 string `json:"strIngredient10"`
		StrIngredient11 string `json:"strIngredient11"`
		StrIngredient12 string `json:"strIngredient12"`
		StrIngredient13 string `json:"strIngredient13"`
		StrIngredient14 string `json:"strIngredient14"`

		StrMeasure1  string `json:"strMeasure1"`
		StrMeasure2  string `json:"strMeasure2"`
		StrMeasure3  string `json:"strMeasure3"`
		StrMeasure4  string `json:"strMeasure4"`
		StrMeasure5  string `json:"strMeasure5"`
		StrMeasure6  string `json:"strMeasure6"`
		StrMeasure7  string `json:"strMeasure7"`
		StrMeasure8  string `json:"strMeasure8"`
		StrMeasure9  string `json:"strMeasure9"`
		StrMeasure10 string `json:"strMeasure10"`
		StrMeasure11 string `json:"strMeasure11"`
		StrMeasure12 string `json:"strMeasure12"`
		StrMeasure13 string `json:"strMeasure13"`
		StrMeasure14 string `json:"strMeasure14"`
	}

	// IngredientMeasure is one ingredient/quantity pair of a canonical meal.
	IngredientMeasure struct {
		Ingredient string `json:"ingredient"`
		Measure    string `json:"measure"`
	}

	// Meal is the canonical, application-internal meal representation.
	// Ingredients preserves the positional slot order of the raw record.
	Meal struct {
		ID           string              `json:"id"`
		Name         string              `json:"name"`
		Category     string              `json:"category"`
		Area         string              `json:"area"`
		Instructions string              `json:"instructions"`
		Thumbnail    string              `json:"thumbnail"`
		Tags         []string            `json:"tags,omitempty"`
		Youtube      string              `json:"youtube,omitempty"`
		Ingredients  []IngredientMeasure `json:"ingredients"`
	}
)

// IngredientSlots returns the 14 positional {ingredient, measure} slots in
// their wire order, including blank ones.
func (r RawMeal) IngredientSlots() [SlotCount][2]string {
	return [SlotCount][2]string{
		{r.StrIngredient1, r.StrMeasure1},
		{r.StrIngredient2, r.StrMeasure2},
		{r.StrIngredient3, r.StrMeasure3},
		{r.StrIngredient4, r.StrMeasure4},
		{r.StrIngredient5, r.StrMeasure5},
		{r.StrIngredient6, r.StrMeasure6},
		{r.StrIngredient7, r.StrMeasure7},
		{r.StrIngredient8, r.StrMeasure8},
		{r.StrIngredient9, r.StrMeasure9},
		{r.StrIngredient10, r.StrMeasure10},
		{r.StrIngredient11, r.StrMeasure11},
		{r.StrIngredient12, r.StrMeasure12},
		{r.StrIngredient13, r.StrMeasure13},
		{r.StrIngredient14, r.StrMeasure14},
	}
}
