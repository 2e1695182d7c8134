// Package http wires repositories, use cases, handlers, and middleware into
// a gin engine.
package http

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	catalogUsecases "fixmate/internal/application/catalog/usecases"
	userUsecases "fixmate/internal/application/user/usecases"
	"fixmate/internal/infrastructure/auth"
	"fixmate/internal/infrastructure/config"
	"fixmate/internal/infrastructure/repository"
	"fixmate/internal/interfaces/http/handlers"
	"fixmate/internal/interfaces/http/middleware"
	"fixmate/internal/interfaces/http/routes"
	"fixmate/internal/shared/logger"
)

// Router owns the gin engine and everything mounted on it.
type Router struct {
	engine *gin.Engine
	cfg    *config.Config
	log    logger.Interface

	catalogHandler *handlers.CatalogHandler
	authHandler    *handlers.AuthHandler
}

// NewRouter builds the full handler graph on top of the given database.
func NewRouter(db *gorm.DB, cfg *config.Config, log logger.Interface) *Router {
	catalogRepo := repository.NewCatalogRepository(db, log.With("component", "repository.catalog"))
	userRepo := repository.NewUserRepository(db, log.With("component", "repository.user"))
	hasher := auth.NewBcryptPasswordHasher(cfg.Auth.BcryptCost)

	catalogHandler := handlers.NewCatalogHandler(
		catalogUsecases.NewListBrandsUseCase(catalogRepo, log),
		catalogUsecases.NewListAppliancesUseCase(catalogRepo, log),
		catalogUsecases.NewListIssuesUseCase(catalogRepo, log),
		catalogUsecases.NewGetSolutionUseCase(catalogRepo, log),
		catalogUsecases.NewSearchIssuesUseCase(catalogRepo, log),
		log.With("component", "handler.catalog"),
	)

	authHandler := handlers.NewAuthHandler(
		userUsecases.NewSignupUseCase(userRepo, hasher, log),
		userUsecases.NewLoginUseCase(userRepo, hasher, log),
		log.With("component", "handler.auth"),
	)

	return &Router{
		engine:         gin.New(),
		cfg:            cfg,
		log:            log,
		catalogHandler: catalogHandler,
		authHandler:    authHandler,
	}
}

// SetupRoutes mounts middleware and all route groups.
func (r *Router) SetupRoutes() {
	r.engine.Use(middleware.Recovery())
	r.engine.Use(middleware.RequestLogger(r.log))
	r.engine.Use(middleware.CORS(r.cfg.Server.AllowedOrigins))

	r.engine.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	routes.SetupCatalogRoutes(r.engine, r.catalogHandler)
	routes.SetupAuthRoutes(r.engine, r.authHandler)
}

// GetEngine returns the underlying gin engine.
func (r *Router) GetEngine() *gin.Engine {
	return r.engine
}
