package router

import (
	"github.com/flogin/flogin-api/internal/application"
	"github.com/flogin/flogin-api/internal/container"
	pginfra "github.com/flogin/flogin-api/internal/infrastructure/postgres"
	handlers "github.com/flogin/flogin-api/internal/interface/http"
	"github.com/flogin/flogin-api/internal/router/modules"
)

// InitModules builds every feature module from the container singletons and
// registers it with the router registry. Called once during startup.
func InitModules(r *Registry) {
	pool := container.GetPGPool()
	logger := container.GetLogger()

	userRepo := pginfra.NewUserRepository(pool)
	categoryRepo := pginfra.NewCategoryRepository(pool)
	productRepo := pginfra.NewProductRepository(pool)

	authSvc := application.NewAuthService(userRepo, container.GetJWT(), logger)
	categorySvc := application.NewCategoryService(categoryRepo)
	productSvc := application.NewProductService(productRepo, categoryRepo)

	r.Add(modules.NewAuthModule(handlers.NewAuthHandler(authSvc, logger)))
	r.Add(modules.NewCatalogModule(
		handlers.NewProductHandler(productSvc, logger),
		handlers.NewCategoryHandler(categorySvc, logger),
	))
}
