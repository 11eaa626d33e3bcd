package mealdb

import (
	"strings"

	mealModel "github.com/matbuddy/go-matbuddy/internal/models/meal"
)

// Normalize converts a raw meal record into its canonical form. Pure: the
// same raw record always yields the same canonical meal.
//
// The 14 positional ingredient/measure slots are walked in order; a slot
// whose ingredient name is blank after trimming is skipped entirely. The
// ingredient is kept as given, the measure is trimmed, and a missing measure
// becomes the empty string.
func Normalize(raw mealModel.RawMeal) mealModel.Meal {
	meal := mealModel.Meal{
		ID:           raw.IDMeal,
		Name:         raw.StrMeal,
		Category:     raw.StrCategory,
		Area:         raw.StrArea,
		Instructions: raw.StrInstructions,
		Thumbnail:    raw.StrMealThumb,
		Tags:         parseTags(raw.StrTags),
		Youtube:      raw.StrYoutube,
		Ingredients:  []mealModel.IngredientMeasure{},
	}

	for _, slot := range raw.IngredientSlots() {
		ingredient, measure := slot[0], slot[1]
		if strings.TrimSpace(ingredient) == "" {
			continue
		}
		meal.Ingredients = append(meal.Ingredients, mealModel.IngredientMeasure{
			Ingredient: ingredient,
			Measure:    strings.TrimSpace(measure),
		})
	}

	return meal
}

// NormalizeAll converts a list of raw meal records, one canonical meal per
// input, preserving order.
func NormalizeAll(raws []mealModel.RawMeal) []mealModel.Meal {
	meals := make([]mealModel.Meal, 0, len(raws))
	for _, raw := range raws {
		meals = append(meals, Normalize(raw))
	}
	return meals
}

// parseTags splits a comma-separated tag string, trimming each piece and
// dropping empty ones. An absent tag string yields nil, which is distinct
// from an explicit empty list.
func parseTags(rawTags string) []string {
	if rawTags == "" {
		return nil
	}

	pieces := strings.Split(rawTags, ",")
	tags := make([]string, 0, len(pieces))
	for _, piece := range pieces {
		tag := strings.TrimSpace(piece)
		if tag == "" {
			continue
		}
		tags = append(tags, tag)
	}
	if len(tags) == 0 {
		return nil
	}
	return tags
}
