package handlers_test

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/flogin/flogin-api/internal/application"
	"github.com/flogin/flogin-api/internal/domain/entity"
	repo "github.com/flogin/flogin-api/internal/domain/repository"
	handlers "github.com/flogin/flogin-api/internal/interface/http"
	"github.com/flogin/flogin-api/internal/interface/middleware"
	"github.com/flogin/flogin-api/internal/router/modules"
	"github.com/flogin/flogin-api/pkg/helpers"
	"github.com/flogin/flogin-api/pkg/validation"
)

type memCategoryRepo struct {
	mu   sync.Mutex
	byID map[int64]entity.Category
	next int64
}

func (m *memCategoryRepo) Save(_ context.Context, c *entity.Category) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.byID {
		if existing.Name == c.Name {
			return repo.ErrDuplicate
		}
	}
	m.next++
	c.ID = m.next
	m.byID[c.ID] = *c
	return nil
}

func (m *memCategoryRepo) FindByID(_ context.Context, id int64) (*entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	c, ok := m.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &c, nil
}

func (m *memCategoryRepo) FindAll(_ context.Context) ([]entity.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Category, 0, len(m.byID))
	for id := int64(1); id <= m.next; id++ {
		if c, ok := m.byID[id]; ok {
			out = append(out, c)
		}
	}
	return out, nil
}

func (m *memCategoryRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

type memProductRepo struct {
	mu   sync.Mutex
	byID map[int64]entity.Product
	next int64
}

func (m *memProductRepo) Save(_ context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.next++
	p.ID = m.next
	m.byID[p.ID] = *p
	return nil
}

func (m *memProductRepo) FindByID(_ context.Context, id int64) (*entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.byID[id]
	if !ok {
		return nil, repo.ErrNotFound
	}
	return &p, nil
}

func (m *memProductRepo) FindAll(_ context.Context) ([]entity.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]entity.Product, 0, len(m.byID))
	for id := int64(1); id <= m.next; id++ {
		if p, ok := m.byID[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memProductRepo) Update(_ context.Context, p *entity.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[p.ID]; !ok {
		return repo.ErrNotFound
	}
	m.byID[p.ID] = *p
	return nil
}

func (m *memProductRepo) Delete(_ context.Context, id int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.byID[id]; !ok {
		return repo.ErrNotFound
	}
	delete(m.byID, id)
	return nil
}

func newCatalogTestServer(t *testing.T) (*gin.Engine, string) {
	t.Helper()
	gin.SetMode(gin.TestMode)
	validation.Init()

	jwt := helpers.NewJWTManager("test-secret", time.Hour)
	categoryRepo := &memCategoryRepo{byID: map[int64]entity.Category{}}
	productRepo := &memProductRepo{byID: map[int64]entity.Product{}}

	r := gin.New()
	r.Use(middleware.Authenticate(jwt))
	modules.NewCatalogModule(
		handlers.NewProductHandler(application.NewProductService(productRepo, categoryRepo), nil),
		handlers.NewCategoryHandler(application.NewCategoryService(categoryRepo), nil),
	).Register(r.Group("/"))

	token, _, err := jwt.GenerateAccessToken("admin123")
	require.NoError(t, err)
	return r, token
}

func TestCatalogRequiresAuthentication(t *testing.T) {
	r, _ := newCatalogTestServer(t)

	for _, path := range []string{"/products", "/categories"} {
		w := doJSON(r, http.MethodGet, path, "", "")
		assert.Equal(t, http.StatusUnauthorized, w.Code, path)
	}
}

func TestCategoryLifecycle(t *testing.T) {
	r, token := newCatalogTestServer(t)

	w := doJSON(r, http.MethodPost, "/categories", `{"name":"Drinks"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.JSONEq(t, `{"id":1,"name":"Drinks"}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/categories/1", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"id":1,"name":"Drinks"}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/categories", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[{"id":1,"name":"Drinks"}]`, w.Body.String())

	w = doJSON(r, http.MethodDelete, "/categories/1", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"message":"category with id 1 deleted"}`, w.Body.String())

	w = doJSON(r, http.MethodGet, "/categories/1", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"category not found"}`, w.Body.String())
}

func TestCategoryDuplicateName(t *testing.T) {
	r, token := newCatalogTestServer(t)

	w := doJSON(r, http.MethodPost, "/categories", `{"name":"Books"}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	w = doJSON(r, http.MethodPost, "/categories", `{"name":"Books"}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"category name already exists"}`, w.Body.String())
}

func TestProductLifecycle(t *testing.T) {
	r, token := newCatalogTestServer(t)

	w := doJSON(r, http.MethodPost, "/categories", `{"name":"Drinks"}`, token)
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(r, http.MethodPost, "/products",
		`{"productName":"Coffee","price":3.5,"quantity":10,"description":"beans","category_id":1}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var created struct {
		ID          int64   `json:"id"`
		ProductName string  `json:"productName"`
		Price       float64 `json:"price"`
		Category    struct {
			Name string `json:"name"`
		} `json:"category"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	assert.Equal(t, "Coffee", created.ProductName)
	assert.Equal(t, "Drinks", created.Category.Name)

	w = doJSON(r, http.MethodPut, "/products/1",
		`{"productName":"Espresso","price":4,"quantity":5,"description":"","category_id":1}`, token)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Contains(t, w.Body.String(), "Espresso")

	w = doJSON(r, http.MethodDelete, "/products/1", "", token)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Espresso")

	w = doJSON(r, http.MethodGet, "/products/1", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"product not found"}`, w.Body.String())
}

func TestProductValidation(t *testing.T) {
	r, token := newCatalogTestServer(t)

	w := doJSON(r, http.MethodPost, "/products",
		`{"productName":"ab","price":-1,"quantity":-2,"description":"x","category_id":0}`, token)
	require.Equal(t, http.StatusBadRequest, w.Code)

	var resp struct {
		Messages map[string]string `json:"messages"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Contains(t, resp.Messages, "productName")
	assert.Contains(t, resp.Messages, "price")
	assert.Contains(t, resp.Messages, "quantity")
	assert.Contains(t, resp.Messages, "category_id")
}

func TestProductUnknownCategory(t *testing.T) {
	r, token := newCatalogTestServer(t)

	w := doJSON(r, http.MethodPost, "/products",
		`{"productName":"Coffee","price":1,"quantity":1,"description":"","category_id":42}`, token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"category not found"}`, w.Body.String())
}

func TestProductInvalidID(t *testing.T) {
	r, token := newCatalogTestServer(t)

	w := doJSON(r, http.MethodGet, "/products/abc", "", token)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"message":"invalid id"}`, w.Body.String())
}
