// Package services implements the business logic of the inventory API:
// payload validation, list filtering and pagination, statistics, and CRUD
// orchestration over the product store. Services return taxonomy errors
// (internal/apperr) so the HTTP layer can map every failure in one place.
package services

import (
	"github.com/tbourn/go-inventory-backend/internal/apperr"
	"github.com/tbourn/go-inventory-backend/internal/store"
)

// ValidateProductPayload checks a decoded JSON object against the product
// field rules and converts it into a store.ProductInput.
//
// The five checks run in a fixed order — name, description, price, category,
// inStock — and the first failing check determines the reported message;
// errors are never aggregated. The payload is a raw map (not a bound struct)
// so that type mismatches surface as ValidationError rather than as a JSON
// binding failure, and so that an absent inStock can be told apart from an
// explicit false.
func ValidateProductPayload(raw map[string]any) (store.ProductInput, error) {
	var in store.ProductInput

	name, ok := raw["name"].(string)
	if !ok || name == "" {
		return in, apperr.Validation("Name is required and must be a string.")
	}
	description, ok := raw["description"].(string)
	if !ok || description == "" {
		return in, apperr.Validation("Description is required and must be a string.")
	}
	// encoding/json decodes every JSON number into float64.
	price, ok := raw["price"].(float64)
	if !ok || price <= 0 {
		return in, apperr.Validation("Price is required and must be a positive number.")
	}
	category, ok := raw["category"].(string)
	if !ok || category == "" {
		return in, apperr.Validation("Category is required and must be a string.")
	}
	if v, present := raw["inStock"]; present {
		b, ok := v.(bool)
		if !ok {
			return in, apperr.Validation("inStock must be a boolean if provided.")
		}
		in.InStock = &b
	}

	in.Name = name
	in.Description = description
	in.Price = price
	in.Category = category
	return in, nil
}
