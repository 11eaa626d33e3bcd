package favorites

import (
	"encoding/json"
	"log"

	mealModel "github.com/matbuddy/go-matbuddy/internal/models/meal"
)

// StorageKey is the fixed key the favorites list is persisted under.
const StorageKey = "matbuddy:favorites"

// Store keeps a user's favorite meals as one ordered list behind a storage
// Port. Storage faults are logged and degraded, never propagated: the
// in-memory list stays authoritative for the session.
type Store struct {
	port Port
}

// NewStore creates a pointer to a Store over the given port
func NewStore(port Port) *Store {
	return &Store{
		port: port,
	}
}

// Load reads the persisted favorites list. An absent key or a corrupt
// payload yields an empty list, never an error.
func (s *Store) Load() []mealModel.Meal {
	raw, ok, err := s.port.Get(StorageKey)
	if err != nil {
		log.Println("favorites: load failed:", err)
		return []mealModel.Meal{}
	}
	if !ok {
		return []mealModel.Meal{}
	}

	var meals []mealModel.Meal
	if err := json.Unmarshal([]byte(raw), &meals); err != nil {
		log.Println("favorites: corrupt data, starting empty:", err)
		return []mealModel.Meal{}
	}
	if meals == nil {
		meals = []mealModel.Meal{}
	}
	return meals
}

// Save persists the full favorites list. A write failure is logged, not
// propagated.
func (s *Store) Save(meals []mealModel.Meal) {
	data, err := json.Marshal(meals)
	if err != nil {
		log.Println("favorites: save failed:", err)
		return
	}
	if err := s.port.Set(StorageKey, string(data)); err != nil {
		log.Println("favorites: save failed:", err)
	}
}

// Toggle adds the meal to the favorites list if its id is not present and
// removes it otherwise, persisting the result before returning. The second
// return reports whether the meal was added, so callers can react (the
// original flow navigates to the favorites view on add).
func (s *Store) Toggle(meal mealModel.Meal) ([]mealModel.Meal, bool) {
	meals := s.Load()

	for i, m := range meals {
		if m.ID == meal.ID {
			updated := append(meals[:i:i], meals[i+1:]...)
			s.Save(updated)
			return updated, false
		}
	}

	updated := append(meals, meal)
	s.Save(updated)
	return updated, true
}

// Remove deletes the meal with the given id from the favorites list and
// persists the result. Removing an absent id leaves the list unchanged.
func (s *Store) Remove(id string) []mealModel.Meal {
	meals := s.Load()

	updated := make([]mealModel.Meal, 0, len(meals))
	for _, m := range meals {
		if m.ID == id {
			continue
		}
		updated = append(updated, m)
	}

	s.Save(updated)
	return updated
}
