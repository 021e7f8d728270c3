package services

import (
	"errors"
	"testing"

	"github.com/tbourn/go-inventory-backend/internal/apperr"
)

// payload returns a fully valid product payload; tests mutate it per case.
func payload() map[string]any {
	return map[string]any{
		"name":        "Desk",
		"description": "Standing desk",
		"price":       float64(300),
		"category":    "furniture",
	}
}

func assertValidation(t *testing.T, err error, wantMsg string) {
	t.Helper()
	var ae *apperr.Error
	if !errors.As(err, &ae) {
		t.Fatalf("expected *apperr.Error, got %v", err)
	}
	if ae.Kind != apperr.KindValidation {
		t.Fatalf("kind = %s, want %s", ae.Kind, apperr.KindValidation)
	}
	if ae.Message != wantMsg {
		t.Fatalf("message = %q, want %q", ae.Message, wantMsg)
	}
}

func TestValidateProductPayload_Valid(t *testing.T) {
	in, err := ValidateProductPayload(payload())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.Name != "Desk" || in.Description != "Standing desk" || in.Price != 300 || in.Category != "furniture" {
		t.Fatalf("input not carried through: %+v", in)
	}
	if in.InStock != nil {
		t.Fatalf("omitted inStock must stay nil")
	}
}

func TestValidateProductPayload_InStockCarried(t *testing.T) {
	p := payload()
	p["inStock"] = false
	in, err := ValidateProductPayload(p)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if in.InStock == nil || *in.InStock {
		t.Fatalf("explicit false must be carried through, got %v", in.InStock)
	}
}

func TestValidateProductPayload_FieldRules(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(map[string]any)
		wantMsg string
	}{
		{"missing_name", func(p map[string]any) { delete(p, "name") }, "Name is required and must be a string."},
		{"empty_name", func(p map[string]any) { p["name"] = "" }, "Name is required and must be a string."},
		{"numeric_name", func(p map[string]any) { p["name"] = float64(7) }, "Name is required and must be a string."},
		{"missing_description", func(p map[string]any) { delete(p, "description") }, "Description is required and must be a string."},
		{"missing_price", func(p map[string]any) { delete(p, "price") }, "Price is required and must be a positive number."},
		{"zero_price", func(p map[string]any) { p["price"] = float64(0) }, "Price is required and must be a positive number."},
		{"negative_price", func(p map[string]any) { p["price"] = float64(-5) }, "Price is required and must be a positive number."},
		{"string_price", func(p map[string]any) { p["price"] = "12" }, "Price is required and must be a positive number."},
		{"missing_category", func(p map[string]any) { delete(p, "category") }, "Category is required and must be a string."},
		{"non_bool_instock", func(p map[string]any) { p["inStock"] = "yes" }, "inStock must be a boolean if provided."},
		{"null_instock", func(p map[string]any) { p["inStock"] = nil }, "inStock must be a boolean if provided."},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			p := payload()
			tc.mutate(p)
			_, err := ValidateProductPayload(p)
			assertValidation(t, err, tc.wantMsg)
		})
	}
}

// The checks run in a fixed order and the first failure wins: a payload
// missing name AND carrying a negative price must report the name error.
func TestValidateProductPayload_FirstFailureWins(t *testing.T) {
	p := payload()
	delete(p, "name")
	p["price"] = float64(-5)

	_, err := ValidateProductPayload(p)
	assertValidation(t, err, "Name is required and must be a string.")
}
