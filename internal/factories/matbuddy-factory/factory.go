package matbuddyFactory

import (
	"github.com/gin-gonic/gin"
	favoriteController "github.com/matbuddy/go-matbuddy/internal/controllers/favorite"
	healthController "github.com/matbuddy/go-matbuddy/internal/controllers/health"
	requestIDMiddleware "github.com/matbuddy/go-matbuddy/internal/controllers/middlewares/requestid"
	recipeController "github.com/matbuddy/go-matbuddy/internal/controllers/recipe"
	userController "github.com/matbuddy/go-matbuddy/internal/controllers/user"
	db "github.com/matbuddy/go-matbuddy/internal/services/datastore/postgresql/matbuddy/sqlc"
)

type (
	Factory struct {
		store           db.Store
		matbuddyHandler matbuddyHandler
		Router          *gin.Engine
	}

	matbuddyHandler struct {
		healthController   *healthController.Controller
		userController     *userController.Controller
		recipeController   *recipeController.Controller
		favoriteController *favoriteController.Controller
	}
)

func New(store db.Store) *Factory {
	factory := &Factory{
		store: store,
		matbuddyHandler: matbuddyHandler{
			healthController:   healthController.New(),
			userController:     userController.New(store),
			recipeController:   recipeController.New(store),
			favoriteController: favoriteController.New(store),
		},
	}
	router := gin.Default()
	router.Use(requestIDMiddleware.RequestID())

	factory.setupRoutes(router)

	factory.Router = router
	return factory
}

func (f *Factory) setupRoutes(router *gin.Engine) {
	api := router.Group("/api")
	{
		api.GET("/health", f.matbuddyHandler.healthController.Health)
		api.POST("/login", f.matbuddyHandler.userController.Login)

		api.GET("/recipes", f.matbuddyHandler.recipeController.List)
		api.POST("/recipes", f.matbuddyHandler.recipeController.Create)

		api.GET("/favorites", f.matbuddyHandler.favoriteController.List)
		api.POST("/favorites", f.matbuddyHandler.favoriteController.Create)
		api.DELETE("/favorites", f.matbuddyHandler.favoriteController.Delete)
	}
}

func (f *Factory) Start(address string) error {
	return f.Router.Run(address)
}
