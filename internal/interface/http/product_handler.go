package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"github.com/flogin/flogin-api/internal/application"
	"github.com/flogin/flogin-api/pkg/response"
	"github.com/flogin/flogin-api/pkg/validation"
)

type ProductHandler struct {
	Svc    *application.ProductService
	Logger *logrus.Logger
}

func NewProductHandler(svc *application.ProductService, logger *logrus.Logger) *ProductHandler {
	return &ProductHandler{Svc: svc, Logger: logger}
}

type productRequest struct {
	ProductName string  `json:"productName" binding:"required,min=3,max=100"`
	Price       float64 `json:"price" binding:"gte=0,lte=999999999"`
	Quantity    int     `json:"quantity" binding:"gte=0,lte=99999"`
	Description string  `json:"description" binding:"max=500"`
	CategoryID  int64   `json:"category_id" binding:"required"`
}

func (r *productRequest) toInput() application.ProductInput {
	return application.ProductInput{
		Name:        r.ProductName,
		Price:       r.Price,
		Quantity:    r.Quantity,
		Description: r.Description,
		CategoryID:  r.CategoryID,
	}
}

// Create POST /products
func (h *ProductHandler) Create(c *gin.Context) {
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Create(c.Request.Context(), req.toInput())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Update PUT /products/:id
func (h *ProductHandler) Update(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	var req productRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.ValidationFailed(c, validation.ToDetails(err))
		return
	}
	res, err := h.Svc.Update(c.Request.Context(), id, req.toInput())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Get GET /products/:id
func (h *ProductHandler) Get(c *gin.Context) {
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

// GetAll GET /products
func (h *ProductHandler) GetAll(c *gin.Context) {
	res, err := h.Svc.GetAll(c.Request.Context())
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

// Delete DELETE /products/:id returns the deleted product.
func (h *ProductHandler) Delete(c *gin.Context) {
	id, ok := parseID(c)
	if !ok {
		return
	}
	res, err := h.Svc.Delete(c.Request.Context(), id)
	if err != nil {
		writeError(c, h.Logger, err)
		return
	}
	c.JSON(http.StatusOK, res)
}
