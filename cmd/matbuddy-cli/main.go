package main

import (
	"bytes"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"log"
	"net/http"
	"os"
	"strings"

	mealModel "github.com/matbuddy/go-matbuddy/internal/models/meal"
	"github.com/matbuddy/go-matbuddy/internal/services/favorites"
	"github.com/matbuddy/go-matbuddy/internal/services/mealdb"
	"github.com/matbuddy/go-matbuddy/pkg/config/env"
)

const usage = `usage: matbuddy-cli <command> [flags]

commands:
  search <term>              search meals by name
  toggle <term>              toggle the first match as a local favorite
  favorites                  list local favorites
  login -email <email>       look up or create a backend user
  publish <term> -user <id>  publish the first match as a backend recipe
  fav -user <id> -recipe <id>    add a backend favorite
  unfav -user <id> -recipe <id>  remove a backend favorite
  favs -user <id>            list backend favorites
`

func main() {
	log.SetFlags(0)

	config, err := env.NewConfig()
	if err != nil {
		log.Fatalln("cannot load env variables:", err)
	}

	flags := flag.NewFlagSet("matbuddy-cli", flag.ExitOnError)
	apiURL := flags.String("api", "http://localhost:8080", "backend base URL")
	email := flags.String("email", "", "email for login")
	name := flags.String("name", "", "display name for login")
	userID := flags.Int64("user", 0, "backend user id")
	recipeID := flags.Int64("recipe", 0, "backend recipe id")

	if len(os.Args) < 2 {
		fmt.Print(usage)
		os.Exit(2)
	}
	command := os.Args[1]

	args := os.Args[2:]
	var term string
	if len(args) > 0 && !strings.HasPrefix(args[0], "-") {
		term = args[0]
		args = args[1:]
	}
	if err := flags.Parse(args); err != nil {
		log.Fatalln(err)
	}

	client := mealdb.New(config.MealApiURL)
	store := favorites.NewStore(favorites.NewFilePort(config.FavoritesDir))
	backend := &backendClient{baseURL: *apiURL}

	ctx := context.Background()

	switch command {
	case "search":
		runSearch(ctx, client, term)
	case "toggle":
		runToggle(ctx, client, store, term)
	case "favorites":
		printMeals(store.Load())
	case "login":
		runLogin(backend, *name, *email)
	case "publish":
		runPublish(ctx, client, backend, term, *userID)
	case "fav":
		runFavorite(backend, http.MethodPost, *userID, *recipeID)
	case "unfav":
		runFavorite(backend, http.MethodDelete, *userID, *recipeID)
	case "favs":
		runListFavorites(backend, *userID)
	default:
		fmt.Print(usage)
		os.Exit(2)
	}
}

func runSearch(ctx context.Context, client *mealdb.Client, term string) {
	if term == "" {
		log.Fatalln("search: missing term")
	}

	meals, err := client.Search(ctx, term)
	if err != nil {
		log.Fatalln("search failed:", err)
	}
	if len(meals) == 0 {
		fmt.Println("no meals found")
		return
	}
	printMeals(meals)
}

func runToggle(ctx context.Context, client *mealdb.Client, store *favorites.Store, term string) {
	if term == "" {
		log.Fatalln("toggle: missing term")
	}

	meals, err := client.Search(ctx, term)
	if err != nil {
		log.Fatalln("search failed:", err)
	}
	if len(meals) == 0 {
		log.Fatalln("no meals found for", term)
	}

	updated, wasAdded := store.Toggle(meals[0])
	if wasAdded {
		fmt.Printf("added %q to favorites (%d total)\n", meals[0].Name, len(updated))
	} else {
		fmt.Printf("removed %q from favorites (%d total)\n", meals[0].Name, len(updated))
	}
}

func runLogin(backend *backendClient, name, email string) {
	if email == "" {
		log.Fatalln("login: missing -email")
	}

	var user struct {
		ID    int64  `json:"id"`
		Name  string `json:"name"`
		Email string `json:"email"`
	}
	body := map[string]interface{}{"name": name, "email": email}
	if err := backend.do(http.MethodPost, "/api/login", body, &user); err != nil {
		log.Fatalln("login failed:", err)
	}
	fmt.Printf("logged in as %s <%s> (user %d)\n", user.Name, user.Email, user.ID)
}

func runPublish(ctx context.Context, client *mealdb.Client, backend *backendClient, term string, userID int64) {
	if term == "" {
		log.Fatalln("publish: missing term")
	}
	if userID == 0 {
		log.Fatalln("publish: missing -user")
	}

	meals, err := client.Search(ctx, term)
	if err != nil {
		log.Fatalln("search failed:", err)
	}
	if len(meals) == 0 {
		log.Fatalln("no meals found for", term)
	}
	meal := meals[0]

	var recipe struct {
		ID    int64  `json:"id"`
		Title string `json:"title"`
	}
	body := map[string]interface{}{
		"title":       meal.Name,
		"description": meal.Instructions,
		"ingredients": formatIngredients(meal.Ingredients),
		"imageUrl":    meal.Thumbnail,
		"createdBy":   userID,
	}
	if err := backend.do(http.MethodPost, "/api/recipes", body, &recipe); err != nil {
		log.Fatalln("publish failed:", err)
	}
	fmt.Printf("published %q as recipe %d\n", recipe.Title, recipe.ID)
}

func runFavorite(backend *backendClient, method string, userID, recipeID int64) {
	if userID == 0 || recipeID == 0 {
		log.Fatalln("missing -user or -recipe")
	}

	body := map[string]interface{}{"userId": userID, "recipeId": recipeID}
	if err := backend.do(method, "/api/favorites", body, nil); err != nil {
		log.Fatalln("favorite update failed:", err)
	}
	fmt.Println("ok")
}

func runListFavorites(backend *backendClient, userID int64) {
	if userID == 0 {
		log.Fatalln("favs: missing -user")
	}

	var favs []struct {
		ID       int64 `json:"id"`
		RecipeID int64 `json:"recipeId"`
	}
	path := fmt.Sprintf("/api/favorites?userId=%d", userID)
	if err := backend.do(http.MethodGet, path, nil, &favs); err != nil {
		log.Fatalln("favs failed:", err)
	}
	for _, fav := range favs {
		fmt.Printf("favorite %d: recipe %d\n", fav.ID, fav.RecipeID)
	}
	if len(favs) == 0 {
		fmt.Println("no favorites")
	}
}

func printMeals(meals []mealModel.Meal) {
	for _, meal := range meals {
		fmt.Printf("%s  %s (%s, %s)\n", meal.ID, meal.Name, meal.Area, meal.Category)
		for _, im := range meal.Ingredients {
			fmt.Printf("    %s: %s\n", im.Ingredient, im.Measure)
		}
		if len(meal.Tags) > 0 {
			fmt.Printf("    tags: %s\n", strings.Join(meal.Tags, ", "))
		}
	}
}

func formatIngredients(pairs []mealModel.IngredientMeasure) string {
	parts := make([]string, 0, len(pairs))
	for _, im := range pairs {
		if im.Measure == "" {
			parts = append(parts, im.Ingredient)
			continue
		}
		parts = append(parts, fmt.Sprintf("%s (%s)", im.Ingredient, im.Measure))
	}
	return strings.Join(parts, ", ")
}

type backendClient struct {
	baseURL string
}

func (b *backendClient) do(method, path string, body interface{}, out interface{}) error {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return err
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, b.baseURL+path, reader)
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/json")

	res, err := http.DefaultClient.Do(req)
	if err != nil {
		return err
	}
	defer res.Body.Close()

	if res.StatusCode >= http.StatusBadRequest {
		var apiErr struct {
			Error string `json:"error"`
		}
		if err := json.NewDecoder(res.Body).Decode(&apiErr); err == nil && apiErr.Error != "" {
			return fmt.Errorf("%s: %s", res.Status, apiErr.Error)
		}
		return fmt.Errorf("unexpected status %s", res.Status)
	}

	if out == nil {
		return nil
	}
	return json.NewDecoder(res.Body).Decode(out)
}
