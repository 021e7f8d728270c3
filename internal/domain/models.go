// Package domain defines the core data model of the inventory API. The
// store, services, and HTTP layer all exchange these types; there is no
// persistence mapping because the collection lives in process memory for
// the lifetime of the server.
package domain

// Product represents one inventory item.
//
// Fields:
//   - ID: unique token assigned by the store on insert; immutable afterwards.
//     Updates pin the path-supplied id even when the payload carries one.
//   - Name / Description: non-empty free text.
//   - Price: strictly positive; the store never holds a product violating this.
//   - Category: non-empty; matched case-insensitively by filters and stats.
//   - InStock: availability flag; defaults to true when omitted on creation.
type Product struct {
	ID          string  `json:"id" example:"141add05-4415-4938-b5a1-17e0d3171aff"`
	Name        string  `json:"name" example:"Laptop"`
	Description string  `json:"description" example:"High-performance laptop with 16GB RAM"`
	Price       float64 `json:"price" example:"1200"`
	Category    string  `json:"category" example:"electronics"`
	InStock     bool    `json:"inStock" example:"true"`
}
