package recipeController

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	recipeModel "github.com/matbuddy/go-matbuddy/internal/models/recipe"
	db "github.com/matbuddy/go-matbuddy/internal/services/datastore/postgresql/matbuddy/sqlc"
	"github.com/matbuddy/go-matbuddy/pkg/tools/parseErrors"
	"github.com/matbuddy/go-matbuddy/pkg/tools/validators"
	"log"
	"net/http"
	"strings"
)

type Controller struct {
	store db.Store
}

// New creates a pointer to a Controller
func New(store db.Store) *Controller {
	return &Controller{
		store: store,
	}
}

// Create handles the request to create a new recipe
func (c *Controller) Create(ctx *gin.Context) {
	var req recipeModel.CreateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	if strings.TrimSpace(req.Ingredients) == "" {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(errors.New("ingredients must not be empty")))
		return
	}

	if req.ImageUrl != "" && !validators.URL(req.ImageUrl) {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(errors.New("invalid image url")))
		return
	}

	createArgs := db.CreateRecipeParams{
		Title:       req.Title,
		Description: req.Description,
		ImageUrl:    req.ImageUrl,
		Ingredients: req.Ingredients,
		CreatedBy:   req.CreatedBy,
	}

	recipe, err := c.store.CreateRecipe(ctx, createArgs)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code.Name() {
			case "foreign_key_violation":
				ctx.JSON(http.StatusForbidden, parseErrors.ErrorResponse(pqErr))
				return
			}
		}
		log.Println("create recipe failed:", err)
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(errors.New("failed to create recipe")))
		return
	}

	res := recipeModel.CreateResponse(recipe)
	ctx.JSON(http.StatusCreated, res)
}

// List handles the request to list all recipes
func (c *Controller) List(ctx *gin.Context) {
	recipes, err := c.store.ListRecipes(ctx)
	if err != nil {
		log.Println("list recipes failed:", err)
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(errors.New("failed to load recipes")))
		return
	}

	k := len(recipes)
	res := make([]recipeModel.ListResponse, 0, k)
	for _, recipe := range recipes {
		res = append(res, recipeModel.ListResponse(recipe))
	}

	ctx.JSON(http.StatusOK, res)
}
