package router

import "github.com/gin-gonic/gin"

type Registry struct {
	Engine      *gin.Engine
	Base        *gin.RouterGroup
	middlewares []gin.HandlerFunc
	modules     []Module
}

// NewRegistry groups routes at the engine root so the public paths stay
// exactly /auth/..., /products/... and /categories/...
func NewRegistry(engine *gin.Engine) *Registry {
	return &Registry{Engine: engine, Base: engine.Group("/")}
}

func (r *Registry) Use(mw ...gin.HandlerFunc) {
	r.middlewares = append(r.middlewares, mw...)
}

func (r *Registry) Add(mod Module) {
	r.modules = append(r.modules, mod)
}

func (r *Registry) RegisterAll() {
	if len(r.middlewares) > 0 {
		r.Base.Use(r.middlewares...)
	}
	for _, m := range r.modules {
		m.Register(r.Base)
	}
}
