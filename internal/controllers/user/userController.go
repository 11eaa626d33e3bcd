package userController

import (
	"database/sql"
	"errors"
	"github.com/gin-gonic/gin"
	"github.com/lib/pq"
	userModel "github.com/matbuddy/go-matbuddy/internal/models/user"
	db "github.com/matbuddy/go-matbuddy/internal/services/datastore/postgresql/matbuddy/sqlc"
	"github.com/matbuddy/go-matbuddy/pkg/tools/parseErrors"
	"github.com/matbuddy/go-matbuddy/pkg/tools/validators"
	"log"
	"net/http"
	"strings"
)

const defaultUserName = "User"

type Controller struct {
	store db.Store
}

// New creates a pointer to a Controller
func New(store db.Store) *Controller {
	return &Controller{
		store: store,
	}
}

// Login handles the request to look up a user by email, creating the user
// on first login
func (c *Controller) Login(ctx *gin.Context) {
	var req userModel.LoginRequest

	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(err))
		return
	}

	if !validators.Email(req.Email) {
		ctx.JSON(http.StatusBadRequest, parseErrors.ErrorResponse(errors.New("invalid email")))
		return
	}

	user, err := c.store.GetUserByEmail(ctx, req.Email)
	if err == nil {
		ctx.JSON(http.StatusOK, userModel.LoginResponse(user))
		return
	}
	if err != sql.ErrNoRows {
		log.Println("login: get user failed:", err)
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(errors.New("login failed")))
		return
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		name = defaultUserName
	}

	createArgs := db.CreateUserParams{
		Name:  name,
		Email: req.Email,
	}

	user, err = c.store.CreateUser(ctx, createArgs)
	if err != nil {
		if pqErr, ok := err.(*pq.Error); ok && pqErr.Code.Name() == "unique_violation" {
			// lost a create race; the row exists now
			user, err = c.store.GetUserByEmail(ctx, req.Email)
			if err == nil {
				ctx.JSON(http.StatusOK, userModel.LoginResponse(user))
				return
			}
		}
		log.Println("login: create user failed:", err)
		ctx.JSON(http.StatusInternalServerError, parseErrors.ErrorResponse(errors.New("login failed")))
		return
	}

	ctx.JSON(http.StatusOK, userModel.LoginResponse(user))
}
