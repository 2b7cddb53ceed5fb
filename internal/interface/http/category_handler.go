package handlers

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/flogin/flogin-api/internal/application"
	"github.com/flogin/flogin-api/pkg/response"
	"github.com/flogin/flogin-api/pkg/validation"
)

type CategoryHandler struct {
	Svc    *application.CategoryService
	Logger *logrus.Logger
}

func NewCategoryHandler(svc *application.CategoryService, logger *logrus.Logger) *CategoryHandler {
	return &CategoryHandler{Svc: svc, Logger: logger}
}

type categoryRequest struct {
	Name string `json:"name" binding:"required"`
}

func parseID(c *gin.Context) (int64, bool) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		response.Message(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return id, true
}

// Create POST /categories
func (h *CategoryHandler) Create(c *gin.Context) {
	var req categoryRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Create(c.Request.Context(), req.Name)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Get GET /categories/:id
func (h *CategoryHandler) Get(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.Svc.Get(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// GetAll GET /categories
func (h *CategoryHandler) GetAll(c *gin.Context) {
	res, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete DELETE /categories/:id
func (h *CategoryHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	if err := h.Svc.Delete(c.Request.Context(), id); err != nil {
		writeError(c, h.Logger, err)
		return
	}
	response.Message(c, http.StatusOK, fmt.Sprintf("category with id %d deleted", id))
}
