package favoriteController

import (
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	favoriteModel "github.com/matbuddy/go-matbuddy/internal/models/favorite"
	db "github.com/matbuddy/go-matbuddy/internal/services/datastore/postgresql/matbuddy/sqlc"
	"github.com/matbuddy/go-matbuddy/pkg/tools/parseErrors"
	"log"
	"net/http"
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

// Create handles the request to mark a recipe as a favorite of a user.
// Duplicate pairs are rejected by the favorites uniqueness constraint,
// never pre-checked here.
func (c *Controller) Create(ctx *gin.Context) {
	var req favoriteModel.CreateRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	createArgs := db.CreateFavoriteParams{
		UserID:   req.UserID,
		RecipeID: req.RecipeID,
	}

	_, err := c.store.CreateFavorite(ctx, createArgs)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok {
			switch pqErr.Code.Name() {
			case "foreign_key_violation":
				ctx.JSON(http.StatusForbidden, parseErrors.ErrorResponse(pqErr))
				return
			}
		}
		log.Println("add favorite failed:", err)
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(errors.New("failed to add favorite")))
		return
	}

	ctx.JSON(http.StatusCreated, gin.H{"ok": true})
}

// List handles the request to list a user's favorites
func (c *Controller) List(ctx *gin.Context) {
	var req favoriteModel.ListRequest

	if err := ctx.ShouldBindQuery(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	favorites, err := c.store.ListFavoritesByUser(ctx, req.UserID)
	if err != nil {
		log.Println("list favorites failed:", err)
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(errors.New("failed to load favorites")))
		return
	}

	k := len(favorites)
	res := make([]favoriteModel.ListResponse, 0, k)
	for _, favorite := range favorites {
		res = append(res, favoriteModel.ListResponse(favorite))
	}

	ctx.JSON(http.StatusOK, res)
}

// Delete handles the request to remove a favorite link. Removing a link
// that does not exist is a success.
func (c *Controller) Delete(ctx *gin.Context) {
	var req favoriteModel.DeleteRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	deleteArgs := db.DeleteFavoriteParams{
		UserID:   req.UserID,
		RecipeID: req.RecipeID,
	}

	if err := c.store.DeleteFavorite(ctx, deleteArgs); err != nil {
		log.Println("remove favorite failed:", err)
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(errors.New("failed to remove favorite")))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"ok": true})
}
