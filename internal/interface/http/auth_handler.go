package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/flogin/flogin-api/internal/application"
	"github.com/flogin/flogin-api/internal/interface/middleware"
	"github.com/flogin/flogin-api/pkg/response"
	"github.com/flogin/flogin-api/pkg/validation"
)

type AuthHandler struct {
	Svc    *application.AuthService
	Logger *logrus.Logger
}

func NewAuthHandler(svc *application.AuthService, logger *logrus.Logger) *AuthHandler {
	return &AuthHandler{Svc: svc, Logger: logger}
}

type loginRequest struct {
	Username string `json:"username" binding:"required,min=3,max=50,username"`
	Password string `json:"password" binding:"required,min=6,max=100,pwd"`
}

type registerRequest struct {
	FullName string `json:"fullName" binding:"required"`
	Username string `json:"username" binding:"required,min=3,max=50,username"`
	Password string `json:"password" binding:"required,min=6,max=100,pwd"`
}

// Login POST /auth/login
func (h *AuthHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Login(c.Request.Context(), req.Username, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Register POST /auth/register
func (h *AuthHandler) Register(c *gin.Context) {
	var req registerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToDetails(err))
		return
	}

	res, err := h.Svc.Register(c.Request.Context(), req.FullName, req.Username, req.Password)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Profile GET /auth/profile
// The username comes from the verified token; the store lookup here is the
// only point where a stale subject (user deleted after issuance) surfaces.
func (h *AuthHandler) Profile(c *gin.Context) {
	username := c.GetString(middleware.CtxUsernameKey)

	u, err := h.Svc.GetUserByUsername(c.Request.Context(), username)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"fullName": u.FullName,
		"username": u.Username,
	})
}
