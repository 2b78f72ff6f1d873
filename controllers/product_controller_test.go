package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"transparencyhub/db"
	"transparencyhub/models"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type memoryRepo struct {
	mu       sync.Mutex
	order    []primitive.ObjectID
	products map[primitive.ObjectID]models.Product
	failWith error
}

func newMemoryRepo() *memoryRepo {
	return &memoryRepo{products: map[primitive.ObjectID]models.Product{}}
}

func (m *memoryRepo) List(ctx context.Context) ([]models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	out := []models.Product{}
	for _, id := range m.order {
		if p, ok := m.products[id]; ok {
			out = append(out, p)
		}
	}
	return out, nil
}

func (m *memoryRepo) Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, ok := m.products[id]
	if !ok {
		return nil, db.ErrProductNotFound
	}
	return &p, nil
}

func (m *memoryRepo) Create(ctx context.Context, product models.Product) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWith != nil {
		return nil, m.failWith
	}
	product.ID = primitive.NewObjectID()
	m.products[product.ID] = product
	m.order = append(m.order, product.ID)
	return &product, nil
}

func (m *memoryRepo) Update(ctx context.Context, id primitive.ObjectID, product models.Product) (*models.Product, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return nil, db.ErrProductNotFound
	}
	product.ID = id
	m.products[id] = product
	return &product, nil
}

func (m *memoryRepo) Delete(ctx context.Context, id primitive.ObjectID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.products[id]; !ok {
		return db.ErrProductNotFound
	}
	delete(m.products, id)
	return nil
}

func setupProductRouter(repo ProductRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)
	pc := NewProductController(repo, zerolog.Nop())

	r := gin.New()
	r.GET("/api/products", pc.ListProducts)
	r.GET("/api/products/:id", pc.GetProduct)
	r.POST("/api/products", pc.CreateProduct)
	r.PUT("/api/products/:id", pc.UpdateProduct)
	r.DELETE("/api/products/:id", pc.DeleteProduct)
	return r
}

func do(r http.Handler, method, path, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

type productEnvelope struct {
	Message string         `json:"message"`
	Product models.Product `json:"product"`
}

func TestCreateProduct(t *testing.T) {
	repo := newMemoryRepo()
	r := setupProductRouter(repo)

	w := do(r, http.MethodPost, "/api/products", `{"name":"Laptop","brand":"Dell","price":799,"description":"A powerful laptop for developers"}`)
	require.Equal(t, http.StatusCreated, w.Code)

	var resp productEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Product added", resp.Message)
	assert.False(t, resp.Product.ID.IsZero())
	assert.Equal(t, "Laptop", resp.Product.Name)
	assert.Equal(t, 799.0, resp.Product.Price)
	assert.True(t, resp.Product.InStock)
}

func TestCreateProduct_Validation(t *testing.T) {
	r := setupProductRouter(newMemoryRepo())

	tests := []struct {
		name string
		body string
	}{
		{"missing name", `{"brand":"Dell"}`},
		{"negative price", `{"name":"Phone","price":-1}`},
		{"malformed", `{"name":`},
		{"wrong type", `{"name":"Phone","price":"cheap"}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w := do(r, http.MethodPost, "/api/products", tt.body)
			assert.Equal(t, http.StatusBadRequest, w.Code)
		})
	}
}

func TestCreateProduct_StoreFailure(t *testing.T) {
	repo := newMemoryRepo()
	repo.failWith = errors.New("connection reset")
	r := setupProductRouter(repo)

	w := do(r, http.MethodPost, "/api/products", `{"name":"Phone"}`)
	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"error":"Failed to add product"}`, w.Body.String())
}

func TestListProducts(t *testing.T) {
	repo := newMemoryRepo()
	r := setupProductRouter(repo)

	w := do(r, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, w.Body.String())

	do(r, http.MethodPost, "/api/products", `{"name":"A"}`)
	do(r, http.MethodPost, "/api/products", `{"name":"B","inStock":false}`)

	w = do(r, http.MethodGet, "/api/products", "")
	require.Equal(t, http.StatusOK, w.Code)
	var products []models.Product
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &products))
	require.Len(t, products, 2)
	assert.Equal(t, "A", products[0].Name)
	assert.False(t, products[1].InStock)

	repo.failWith = errors.New("timeout")
	w = do(r, http.MethodGet, "/api/products", "")
	assert.Equal(t, http.StatusInternalServerError, w.Code)
}

func TestGetUpdateDeleteProduct(t *testing.T) {
	r := setupProductRouter(newMemoryRepo())

	w := do(r, http.MethodPost, "/api/products", `{"name":"Phone","price":499}`)
	require.Equal(t, http.StatusCreated, w.Code)
	var created productEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &created))
	path := "/api/products/" + created.Product.ID.Hex()

	w = do(r, http.MethodGet, path, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodPut, path, `{"name":"Phone 2","price":549,"inStock":false}`)
	require.Equal(t, http.StatusOK, w.Code)
	var updated productEnvelope
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &updated))
	assert.Equal(t, "Product updated", updated.Message)
	assert.Equal(t, "Phone 2", updated.Product.Name)
	assert.Equal(t, 549.0, updated.Product.Price)
	assert.False(t, updated.Product.InStock)

	w = do(r, http.MethodDelete, path, "")
	require.Equal(t, http.StatusOK, w.Code)

	w = do(r, http.MethodGet, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(r, http.MethodPut, path, `{"name":"Ghost"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
	w = do(r, http.MethodDelete, path, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestProductID_Invalid(t *testing.T) {
	r := setupProductRouter(newMemoryRepo())

	for _, method := range []string{http.MethodGet, http.MethodPut, http.MethodDelete} {
		w := do(r, method, "/api/products/not-an-id", `{"name":"x"}`)
		assert.Equal(t, http.StatusBadRequest, w.Code, method)
		assert.JSONEq(t, `{"error":"Invalid product ID"}`, w.Body.String())
	}
}
