package controllers

import (
	"context"
	"errors"
	"net/http"
	"time"

	"transparencyhub/db"
	"transparencyhub/models"
	"transparencyhub/structs"

	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

const productTimeout = 10 * time.Second

// ProductRepository is the storage used by ProductController.
// db.ProductStore is the MongoDB implementation.
type ProductRepository interface {
	List(ctx context.Context) ([]models.Product, error)
	Get(ctx context.Context, id primitive.ObjectID) (*models.Product, error)
	Create(ctx context.Context, product models.Product) (*models.Product, error)
	Update(ctx context.Context, id primitive.ObjectID, product models.Product) (*models.Product, error)
	Delete(ctx context.Context, id primitive.ObjectID) error
}

// ProductController serves the product catalog endpoints.
type ProductController struct {
	repo ProductRepository
	log  zerolog.Logger
}

func NewProductController(repo ProductRepository, log zerolog.Logger) *ProductController {
	return &ProductController{
		repo: repo,
		log:  log.With().Str("component", "products").Logger(),
	}
}

// ListProducts returns the whole catalog
func (pc *ProductController) ListProducts(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), productTimeout)
	defer cancel()

	products, err := pc.repo.List(ctx)
	if err != nil {
		pc.log.Error().Err(err).Msg("Failed to fetch products")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch products"})
		return
	}
	c.JSON(http.StatusOK, products)
}

// GetProduct returns a single product by ID
func (pc *ProductController) GetProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), productTimeout)
	defer cancel()

	product, err := pc.repo.Get(ctx, id)
	if err != nil {
		pc.respondStoreError(c, err, "Failed to fetch product")
		return
	}
	c.JSON(http.StatusOK, product)
}

// CreateProduct adds a product to the catalog
func (pc *ProductController) CreateProduct(c *gin.Context) {
	var req structs.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), productTimeout)
	defer cancel()

	product, err := pc.repo.Create(ctx, productFromRequest(req))
	if err != nil {
		pc.log.Error().Err(err).Msg("Failed to add product")
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to add product"})
		return
	}
	c.JSON(http.StatusCreated, gin.H{"message": "Product added", "product": product})
}

// UpdateProduct replaces the fields of an existing product
func (pc *ProductController) UpdateProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	var req structs.ProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request payload"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), productTimeout)
	defer cancel()

	product, err := pc.repo.Update(ctx, id, productFromRequest(req))
	if err != nil {
		pc.respondStoreError(c, err, "Failed to update product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product updated", "product": product})
}

// DeleteProduct removes a product from the catalog
func (pc *ProductController) DeleteProduct(c *gin.Context) {
	id, ok := productID(c)
	if !ok {
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), productTimeout)
	defer cancel()

	if err := pc.repo.Delete(ctx, id); err != nil {
		pc.respondStoreError(c, err, "Failed to delete product")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Product deleted successfully"})
}

func (pc *ProductController) respondStoreError(c *gin.Context, err error, msg string) {
	if errors.Is(err, db.ErrProductNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}
	pc.log.Error().Err(err).Str("product_id", c.Param("id")).Msg(msg)
	c.JSON(http.StatusInternalServerError, gin.H{"error": msg})
}

func productID(c *gin.Context) (primitive.ObjectID, bool) {
	id, err := primitive.ObjectIDFromHex(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product ID"})
		return primitive.NilObjectID, false
	}
	return id, true
}

// productFromRequest applies the catalog defaults: products are in stock
// unless stated otherwise.
func productFromRequest(req structs.ProductRequest) models.Product {
	product := models.Product{
		Name:        req.Name,
		Brand:       req.Brand,
		Description: req.Description,
		InStock:     true,
	}
	if req.Price != nil {
		product.Price = *req.Price
	}
	if req.InStock != nil {
		product.InStock = *req.InStock
	}
	return product
}
