package modules

import (
	"time"

	"github.com/gin-gonic/gin"

	"github.com/flogin/flogin-api/internal/container"
	handlers "github.com/flogin/flogin-api/internal/interface/http"
	"github.com/flogin/flogin-api/internal/interface/middleware"
)

// AuthModule registers the authentication routes.
// Public: POST /auth/login, POST /auth/register (rate limited per IP).
// Protected: GET /auth/profile.
type AuthModule struct {
	Handler *handlers.AuthHandler
}

func NewAuthModule(h *handlers.AuthHandler) *AuthModule {
	return &AuthModule{Handler: h}
}

func (m *AuthModule) Register(rg *gin.RouterGroup) {
	loginLimiter := middleware.RateLimit(container.GetRedis(), 10, time.Minute, middleware.KeyByIPAndPath(), nil)
	registerLimiter := middleware.RateLimit(container.GetRedis(), 5, time.Minute, middleware.KeyByIPAndPath(), nil)

	rg.POST("/auth/login", loginLimiter, m.Handler.Login)
	rg.POST("/auth/register", registerLimiter, m.Handler.Register)

	auth := rg.Group("/")
	auth.Use(middleware.RequireAuth())
	{
		auth.GET("/auth/profile", m.Handler.Profile)
	}
}
