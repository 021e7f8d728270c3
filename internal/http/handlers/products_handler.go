// Product HTTP handlers.
//
// This file exposes the REST endpoints for product resources:
//   - GET    /api/products        (list, filtered + paginated)
//   - GET    /api/products/stats  (aggregate statistics)
//   - GET    /api/products/:id    (lookup)
//   - POST   /api/products        (create)
//   - PUT    /api/products/:id    (update, merge semantics)
//   - DELETE /api/products/:id    (delete)
//
// Handlers are transport-thin: they decode input, call the product service,
// and translate results into HTTP responses. All failure paths go through
// the centralized responder in response.go.
package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tbourn/go-inventory-backend/internal/apperr"
	"github.com/tbourn/go-inventory-backend/internal/domain"
	"github.com/tbourn/go-inventory-backend/internal/services"
	"github.com/tbourn/go-inventory-backend/internal/utils"
)

// ProductService defines the product operations consumed by the HTTP layer.
// Implementations must be safe for concurrent use.
type ProductService interface {
	// ListPage returns one page of products after applying the optional
	// category and search filters.
	ListPage(ctx context.Context, opts services.ListOptions) services.ListResult
	// Stats aggregates the entire unfiltered store.
	Stats(ctx context.Context) services.StatsResult
	// Get returns the product with the given id or a NotFoundError.
	Get(ctx context.Context, id string) (domain.Product, error)
	// Create validates payload and inserts a new product.
	Create(ctx context.Context, payload map[string]any) (domain.Product, error)
	// Update validates payload and overlays it onto the stored product.
	Update(ctx context.Context, id string, payload map[string]any) (domain.Product, error)
	// Delete removes the product with the given id or returns NotFoundError.
	Delete(ctx context.Context, id string) error
}

// Handlers groups the HTTP endpoints for product resources.
type Handlers struct {
	svc ProductService
}

// New constructs a Handlers instance bound to the given service.
func New(svc ProductService) *Handlers {
	return &Handlers{svc: svc}
}

// bindPayload decodes the request body into a raw JSON object. Malformed
// JSON is reported as a ValidationError so clients receive the standard
// envelope rather than a transport-level binding failure.
func bindPayload(c *gin.Context) (map[string]any, error) {
	var payload map[string]any
	if err := c.ShouldBindJSON(&payload); err != nil {
		return nil, apperr.Validation("invalid JSON body")
	}
	return payload, nil
}

// ListProducts godoc
// @ID          listProducts
// @Summary     List products
// @Description Returns a page of products, optionally filtered by category (case-insensitive match) and name search (case-insensitive substring).
// @Tags        Products
// @Produce     json
//
// @Param       X-API-Key  header  string  true  "API key"
// @Param       category   query   string  false "Filter by category"
// @Param       search     query   string  false "Filter by name substring"
// @Param       page       query   int     false "Page number"     default(1)
// @Param       limit      query   int     false "Items per page"  default(10)
//
// @Success     200  {object}  services.ListResult
// @Failure     401  {object}  apperr.Envelope  "Missing or invalid API key"
// @Router      /products [get]
func (h *Handlers) ListProducts(c *gin.Context) {
	opts := services.ListOptions{
		Category: c.Query("category"),
		Search:   c.Query("search"),
		Page:     utils.AtoiDefault(c.Query("page"), services.DefaultPage),
		Limit:    utils.AtoiDefault(c.Query("limit"), services.DefaultLimit),
	}
	ok(c, http.StatusOK, h.svc.ListPage(c.Request.Context(), opts))
}

// ProductStats godoc
// @ID          productStats
// @Summary     Product statistics
// @Description Returns per-category counts, the in-stock count, and the total value of in-stock inventory over the whole store.
// @Tags        Products
// @Produce     json
//
// @Param       X-API-Key  header  string  true  "API key"
//
// @Success     200  {object}  services.StatsResult
// @Failure     401  {object}  apperr.Envelope  "Missing or invalid API key"
// @Router      /products/stats [get]
func (h *Handlers) ProductStats(c *gin.Context) {
	ok(c, http.StatusOK, h.svc.Stats(c.Request.Context()))
}

// GetProduct godoc
// @ID          getProduct
// @Summary     Get a product by id
// @Tags        Products
// @Produce     json
//
// @Param       X-API-Key  header  string  true  "API key"
// @Param       id         path    string  true  "Product ID"
//
// @Success     200  {object}  domain.Product
// @Failure     401  {object}  apperr.Envelope  "Missing or invalid API key"
// @Failure     404  {object}  apperr.Envelope  "Product not found"
// @Router      /products/{id} [get]
func (h *Handlers) GetProduct(c *gin.Context) {
	p, err := h.svc.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// CreateProduct godoc
// @ID          createProduct
// @Summary     Create a product
// @Description Validates the payload and stores a new product. The id is generated by the store; inStock defaults to true when omitted.
// @Tags        Products
// @Accept      json
// @Produce     json
//
// @Param       X-API-Key  header  string  true  "API key"
// @Param       body       body    map[string]any  true  "Product payload (name, description, price, category, inStock?)"
//
// @Success     201  {object}  domain.Product
// @Failure     400  {object}  apperr.Envelope  "Validation failure"
// @Failure     401  {object}  apperr.Envelope  "Missing or invalid API key"
// @Router      /products [post]
func (h *Handlers) CreateProduct(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		respondErr(c, err)
		return
	}
	p, err := h.svc.Create(c.Request.Context(), payload)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, http.StatusCreated, p)
}

// UpdateProduct godoc
// @ID          updateProduct
// @Summary     Update a product
// @Description Validates the payload and overlays it onto the stored product. The id is pinned to the path value regardless of the payload.
// @Tags        Products
// @Accept      json
// @Produce     json
//
// @Param       X-API-Key  header  string  true  "API key"
// @Param       id         path    string  true  "Product ID"
// @Param       body       body    map[string]any  true  "Product payload (name, description, price, category, inStock?)"
//
// @Success     200  {object}  domain.Product
// @Failure     400  {object}  apperr.Envelope  "Validation failure"
// @Failure     401  {object}  apperr.Envelope  "Missing or invalid API key"
// @Failure     404  {object}  apperr.Envelope  "Product not found"
// @Router      /products/{id} [put]
func (h *Handlers) UpdateProduct(c *gin.Context) {
	payload, err := bindPayload(c)
	if err != nil {
		respondErr(c, err)
		return
	}
	p, err := h.svc.Update(c.Request.Context(), c.Param("id"), payload)
	if err != nil {
		respondErr(c, err)
		return
	}
	ok(c, http.StatusOK, p)
}

// DeleteProduct godoc
// @ID          deleteProduct
// @Summary     Delete a product
// @Tags        Products
//
// @Param       X-API-Key  header  string  true  "API key"
// @Param       id         path    string  true  "Product ID"
//
// @Success     204  {string}  string  "No Content"
// @Failure     401  {object}  apperr.Envelope  "Missing or invalid API key"
// @Failure     404  {object}  apperr.Envelope  "Product not found"
// @Router      /products/{id} [delete]
func (h *Handlers) DeleteProduct(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		respondErr(c, err)
		return
	}
	noContent(c)
}
