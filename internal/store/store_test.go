package store

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func boolPtr(b bool) *bool { return &b }

func TestSeed(t *testing.T) {
	s := New()
	s.Seed()

	products := s.List()
	require.Len(t, products, 3)

	assert.Equal(t, "Laptop", products[0].Name)
	assert.Equal(t, "Smartphone", products[1].Name)
	assert.Equal(t, "Coffee Maker", products[2].Name)
	assert.False(t, products[2].InStock)

	// Every seeded product carries a unique id.
	seen := map[string]bool{}
	for _, p := range products {
		require.NotEmpty(t, p.ID)
		require.False(t, seen[p.ID], "duplicate id %s", p.ID)
		seen[p.ID] = true
	}

	// Re-seeding resets rather than appends.
	s.Seed()
	assert.Equal(t, 3, s.Len())
}

func TestInsertDefaultsInStock(t *testing.T) {
	s := New()

	p := s.Insert(ProductInput{Name: "Desk", Description: "Standing desk", Price: 300, Category: "furniture"})
	assert.NotEmpty(t, p.ID)
	assert.True(t, p.InStock, "omitted inStock must default to true")

	q := s.Insert(ProductInput{Name: "Chair", Description: "Office chair", Price: 120, Category: "furniture", InStock: boolPtr(false)})
	assert.False(t, q.InStock)
	assert.NotEqual(t, p.ID, q.ID)

	// Insertion order is preserved.
	products := s.List()
	require.Len(t, products, 2)
	assert.Equal(t, "Desk", products[0].Name)
	assert.Equal(t, "Chair", products[1].Name)
}

func TestGet(t *testing.T) {
	s := New()
	p := s.Insert(ProductInput{Name: "Desk", Description: "d", Price: 1, Category: "c"})

	got, ok := s.Get(p.ID)
	require.True(t, ok)
	assert.Equal(t, p, got)

	_, ok = s.Get("nope")
	assert.False(t, ok)
}

func TestReplace(t *testing.T) {
	s := New()
	s.Seed()
	original := s.List()[1] // Smartphone, middle of the sequence

	updated, err := s.Replace(original.ID, ProductInput{
		Name:        "Smartphone Pro",
		Description: original.Description,
		Price:       999,
		Category:    original.Category,
	})
	require.NoError(t, err)

	assert.Equal(t, original.ID, updated.ID, "id must never change on replace")
	assert.Equal(t, "Smartphone Pro", updated.Name)
	assert.Equal(t, float64(999), updated.Price)
	assert.True(t, updated.InStock, "omitted inStock must retain the stored value")

	// Position in the sequence is preserved.
	assert.Equal(t, updated, s.List()[1])

	_, err = s.Replace("nope", ProductInput{Name: "n", Description: "d", Price: 1, Category: "c"})
	assert.ErrorIs(t, err, ErrProductNotFound)
}

func TestReplaceOverridesInStock(t *testing.T) {
	s := New()
	p := s.Insert(ProductInput{Name: "Desk", Description: "d", Price: 1, Category: "c"})

	updated, err := s.Replace(p.ID, ProductInput{
		Name: "Desk", Description: "d", Price: 1, Category: "c", InStock: boolPtr(false),
	})
	require.NoError(t, err)
	assert.False(t, updated.InStock)
}

func TestRemove(t *testing.T) {
	s := New()
	s.Seed()
	id := s.List()[0].ID

	assert.True(t, s.Remove(id))
	assert.Equal(t, 2, s.Len())
	_, ok := s.Get(id)
	assert.False(t, ok)

	assert.False(t, s.Remove(id), "second removal must report a miss")
}

func TestListReturnsCopy(t *testing.T) {
	s := New()
	s.Seed()

	products := s.List()
	products[0].Name = "mutated"

	assert.Equal(t, "Laptop", s.List()[0].Name, "mutating the returned slice must not affect the store")
}
