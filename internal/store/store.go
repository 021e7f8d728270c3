// Package store implements the authoritative in-memory product collection.
//
// The store owns an insertion-ordered slice of products guarded by a mutex.
// It is constructed once at process start, seeded with fixed sample data,
// and injected into the service layer; nothing reaches it through globals.
// There is no persistence: restarting the process rebuilds the seed set.
package store

import (
	"errors"
	"sync"

	"github.com/google/uuid"

	"github.com/tbourn/go-inventory-backend/internal/domain"
)

// ErrProductNotFound is returned by Replace when no product carries the
// requested id. Lookup (Get) and removal (Remove) report absence through a
// boolean instead, leaving the error decision to callers.
var ErrProductNotFound = errors.New("product not found")

// ProductInput is a validated, id-less product payload. InStock is a pointer
// so that an omitted flag can default to true on insert and leave the stored
// value untouched on replace (merge semantics).
type ProductInput struct {
	Name        string
	Description string
	Price       float64
	Category    string
	InStock     *bool
}

// Store is the process-lifetime product collection. All methods are safe for
// concurrent use; each operation completes under the lock, so no request can
// observe a torn read or write.
type Store struct {
	mu       sync.Mutex
	products []domain.Product
}

// New returns an empty store.
func New() *Store {
	return &Store{}
}

// Seed replaces the collection with the fixed sample data set. It is called
// once per process start; calling it again resets the collection, which is
// also how tests obtain a known state.
func (s *Store) Seed() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = []domain.Product{
		{
			ID:          uuid.NewString(),
			Name:        "Laptop",
			Description: "High-performance laptop with 16GB RAM",
			Price:       1200,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Smartphone",
			Description: "Latest model with 128GB storage",
			Price:       800,
			Category:    "electronics",
			InStock:     true,
		},
		{
			ID:          uuid.NewString(),
			Name:        "Coffee Maker",
			Description: "Programmable coffee maker with timer",
			Price:       50,
			Category:    "kitchen",
			InStock:     false,
		},
	}
}

// List returns the products in insertion order. The returned slice is a copy;
// callers may filter or reslice it freely without holding the lock.
func (s *Store) List() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.Product, len(s.products))
	copy(out, s.products)
	return out
}

// Get returns the product with the given id, or ok=false when absent.
func (s *Store) Get(id string) (domain.Product, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if i := s.indexOf(id); i >= 0 {
		return s.products[i], true
	}
	return domain.Product{}, false
}

// Insert stores a new product built from in, assigning a fresh UUID and
// defaulting InStock to true when the flag was omitted. The product is
// appended at the end of the sequence and returned as stored.
func (s *Store) Insert(in ProductInput) domain.Product {
	p := domain.Product{
		ID:          uuid.NewString(),
		Name:        in.Name,
		Description: in.Description,
		Price:       in.Price,
		Category:    in.Category,
		InStock:     true,
	}
	if in.InStock != nil {
		p.InStock = *in.InStock
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = append(s.products, p)
	return p
}

// Replace overlays in onto the product with the given id, keeping the id and
// the product's position in the sequence. An omitted InStock retains the
// stored value. Returns ErrProductNotFound when id does not exist.
func (s *Store) Replace(id string, in ProductInput) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return domain.Product{}, ErrProductNotFound
	}

	p := s.products[i]
	p.Name = in.Name
	p.Description = in.Description
	p.Price = in.Price
	p.Category = in.Category
	if in.InStock != nil {
		p.InStock = *in.InStock
	}
	// The id is pinned to the stored value regardless of the payload.
	p.ID = id

	s.products[i] = p
	return p, nil
}

// Remove deletes the product with the given id, reporting whether a product
// was actually removed.
func (s *Store) Remove(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	i := s.indexOf(id)
	if i < 0 {
		return false
	}
	s.products = append(s.products[:i], s.products[i+1:]...)
	return true
}

// Len reports the current number of stored products.
func (s *Store) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.products)
}

// indexOf returns the position of id in the sequence, or -1. Callers must
// hold s.mu.
func (s *Store) indexOf(id string) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}
