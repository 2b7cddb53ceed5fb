package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flogin/flogin-api/internal/container"
	handlers "github.com/flogin/flogin-api/internal/interface/http"
	"github.com/flogin/flogin-api/internal/interface/middleware"
)

// CatalogModule registers the product and category CRUD routes. Every route
// requires an authenticated principal.
type CatalogModule struct {
	Products   *handlers.ProductHandler
	Categories *handlers.CategoryHandler
}

func NewCatalogModule(p *handlers.ProductHandler, c *handlers.CategoryHandler) *CatalogModule {
	return &CatalogModule{Products: p, Categories: c}
}

func (m *CatalogModule) Register(rg *gin.RouterGroup) {
	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth())
	auth.Use(middleware.RateLimit(container.GetRedis(), 120, time.Minute, middleware.KeyByUsername(), middleware.AllowPrivateIP()))
	{
		auth.POST("/products", m.Products.Create)
		auth.GET("/products", m.Products.GetAll)
		auth.GET("/products/:id", m.Products.Get)
		auth.PUT("/products/:id", m.Products.Update)
		auth.DELETE("/products/:id", m.Products.Delete)

		auth.POST("/categories", m.Categories.Create)
		auth.GET("/categories", m.Categories.GetAll)
		auth.GET("/categories/:id", m.Categories.Get)
		auth.DELETE("/categories/:id", m.Categories.Delete)
	}
}
