package apperr

import (
	"encoding/json"
	"errors"
	"net/http"
	"testing"
)

func TestStatusMapping(t *testing.T) {
	tests := []struct {
		name string
		err  *Error
		want int
	}{
		{"not_found", NotFound("x"), http.StatusNotFound},
		{"validation", Validation("x"), http.StatusBadRequest},
		{"unauthorized", Unauthorized("x"), http.StatusUnauthorized},
		{"internal", Internal(), http.StatusInternalServerError},
		{"unknown_kind", &Error{Kind: "weird", Message: "x"}, http.StatusInternalServerError},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.err.Status(); got != tc.want {
				t.Fatalf("Status() = %d, want %d", got, tc.want)
			}
		})
	}
}

func TestClassify(t *testing.T) {
	if Classify(nil) != nil {
		t.Fatalf("Classify(nil) should be nil")
	}

	ae := NotFound("gone")
	if got := Classify(ae); got != ae {
		t.Fatalf("Classify should return taxonomy errors unchanged")
	}

	got := Classify(errors.New("disk on fire"))
	if got.Kind != KindInternal {
		t.Fatalf("unclassified error should map to %s, got %s", KindInternal, got.Kind)
	}
	if got.Message != "Something went wrong!" {
		t.Fatalf("internal message must stay generic, got %q", got.Message)
	}
}

func TestWireEnvelopeShape(t *testing.T) {
	b, err := json.Marshal(Wire(Validation("Name is required and must be a string.")))
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}

	var decoded struct {
		Error struct {
			Message string `json:"message"`
			Type    string `json:"type"`
		} `json:"error"`
	}
	if err := json.Unmarshal(b, &decoded); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if decoded.Error.Type != "ValidationError" {
		t.Fatalf("type = %q, want ValidationError", decoded.Error.Type)
	}
	if decoded.Error.Message == "" {
		t.Fatalf("message must not be empty")
	}
}
