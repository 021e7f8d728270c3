// This file implements the ProductService, which owns every read and write
// path over the product store: listing with category/search filters and
// pagination, aggregate statistics, lookup, create, update (merge), and
// delete. Handlers stay transport-thin; all branching logic lives here.
//
// Failures are returned as taxonomy errors (internal/apperr) so the HTTP
// layer can translate them uniformly.
package services

import (
	"context"
	"strings"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/text/cases"

	"github.com/tbourn/go-inventory-backend/internal/apperr"
	"github.com/tbourn/go-inventory-backend/internal/domain"
	"github.com/tbourn/go-inventory-backend/internal/store"
	"github.com/tbourn/go-inventory-backend/internal/utils"
)

// tracerName identifies service-level spans emitted below otelgin's
// per-request span.
const tracerName = "inventory.services"

// Default pagination applied when the client omits or mangles the
// corresponding query parameters.
const (
	DefaultPage  = 1
	DefaultLimit = 10
)

// ListOptions carries the optional query parameters of the list endpoint.
// Zero or negative Page/Limit fall back to the defaults.
type ListOptions struct {
	Category string // keep only products in this category (case-insensitive)
	Search   string // keep only products whose name contains this (case-insensitive)
	Page     int
	Limit    int
}

// ListResult is a single page of filtered products plus pagination metadata.
// TotalProducts counts the filtered set before slicing.
type ListResult struct {
	TotalProducts int              `json:"totalProducts"`
	CurrentPage   int              `json:"currentPage"`
	TotalPages    int              `json:"totalPages"`
	Products      []domain.Product `json:"products"`
}

// StatsResult aggregates the entire unfiltered store. TotalValue sums the
// price of in-stock products only; out-of-stock products contribute zero.
type StatsResult struct {
	TotalProducts  int            `json:"totalProducts"`
	InStockCount   int            `json:"inStockCount"`
	TotalValue     float64        `json:"totalValue"`
	CategoryCounts map[string]int `json:"categoryCounts"`
}

// ProductService provides product-level operations over the injected store.
// It is safe for concurrent use; the store serializes access internally.
type ProductService struct {
	Store *store.Store
}

// NewProductService constructs a ProductService bound to st.
func NewProductService(st *store.Store) *ProductService {
	return &ProductService{Store: st}
}

// ListPage filters the product sequence by category and name search (both
// optional, AND-ed when both present), then returns the requested page.
// Filtering never fails: an out-of-range page simply yields an empty page.
func (s *ProductService) ListPage(ctx context.Context, opts ListOptions) ListResult {
	_, span := s.startSpan(ctx, "products.list",
		attribute.String("filter.category", opts.Category),
		attribute.String("filter.search", opts.Search),
	)
	defer span.End()

	page := opts.Page
	if page < 1 {
		page = DefaultPage
	}
	limit := opts.Limit
	if limit < 1 {
		limit = DefaultLimit
	}

	filtered := s.Store.List()
	if opts.Category != "" {
		want := fold(opts.Category)
		filtered = keep(filtered, func(p domain.Product) bool {
			return fold(p.Category) == want
		})
	}
	if opts.Search != "" {
		term := fold(opts.Search)
		filtered = keep(filtered, func(p domain.Product) bool {
			return strings.Contains(fold(p.Name), term)
		})
	}

	total := len(filtered)
	start, end := utils.PageBounds(page, limit, total)

	return ListResult{
		TotalProducts: total,
		CurrentPage:   page,
		TotalPages:    utils.TotalPages(total, limit),
		Products:      filtered[start:end],
	}
}

// Stats computes aggregate statistics over the whole store: per-category
// counts (case-folded keys), the number of in-stock products, and the summed
// value of in-stock inventory.
func (s *ProductService) Stats(ctx context.Context) StatsResult {
	_, span := s.startSpan(ctx, "products.stats")
	defer span.End()

	products := s.Store.List()
	res := StatsResult{
		TotalProducts:  len(products),
		CategoryCounts: make(map[string]int),
	}
	for _, p := range products {
		res.CategoryCounts[fold(p.Category)]++
		if p.InStock {
			res.InStockCount++
			res.TotalValue += p.Price
		}
	}
	return res
}

// Get returns the product with the given id or a NotFoundError.
func (s *ProductService) Get(ctx context.Context, id string) (domain.Product, error) {
	_, span := s.startSpan(ctx, "products.get", attribute.String("product.id", id))
	defer span.End()

	p, ok := s.Store.Get(id)
	if !ok {
		return domain.Product{}, apperr.NotFound("Product not found.")
	}
	return p, nil
}

// Create validates payload and inserts the resulting product. The stored
// product (with generated id and defaulted inStock) is returned.
func (s *ProductService) Create(ctx context.Context, payload map[string]any) (domain.Product, error) {
	_, span := s.startSpan(ctx, "products.create")
	defer span.End()

	in, err := ValidateProductPayload(payload)
	if err != nil {
		return domain.Product{}, err
	}
	return s.Store.Insert(in), nil
}

// Update validates payload and overlays it onto the product with the given
// id, keeping the id pinned to the path value. Returns NotFoundError when
// the id does not exist.
func (s *ProductService) Update(ctx context.Context, id string, payload map[string]any) (domain.Product, error) {
	_, span := s.startSpan(ctx, "products.update", attribute.String("product.id", id))
	defer span.End()

	in, err := ValidateProductPayload(payload)
	if err != nil {
		return domain.Product{}, err
	}
	p, err := s.Store.Replace(id, in)
	if err != nil {
		return domain.Product{}, apperr.NotFound("Product not found.")
	}
	return p, nil
}

// Delete removes the product with the given id. A miss is an explicit
// NotFoundError rather than a silent no-op, so clients can distinguish a
// deletion from a typo.
func (s *ProductService) Delete(ctx context.Context, id string) error {
	_, span := s.startSpan(ctx, "products.delete", attribute.String("product.id", id))
	defer span.End()

	if !s.Store.Remove(id) {
		return apperr.NotFound("Product not found.")
	}
	return nil
}

// startSpan opens a service-level span carrying the given attributes.
func (s *ProductService) startSpan(ctx context.Context, name string, attrs ...attribute.KeyValue) (context.Context, trace.Span) {
	ctx, span := otel.Tracer(tracerName).Start(ctx, name)
	if len(attrs) > 0 {
		span.SetAttributes(attrs...)
	}
	return ctx, span
}

// fold case-folds s for caseless comparison of categories, names, and search
// terms. A fresh Caser per call: cases.Caser is stateful and not safe for
// concurrent use.
func fold(s string) string {
	return cases.Fold().String(s)
}

// keep filters products in place-order, returning those matching pred.
func keep(products []domain.Product, pred func(domain.Product) bool) []domain.Product {
	out := products[:0:0]
	for _, p := range products {
		if pred(p) {
			out = append(out, p)
		}
	}
	return out
}
