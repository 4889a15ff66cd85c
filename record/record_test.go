package record

import (
	"encoding/json"
	"testing"
)

func TestNewCanonicalizesKeys(t *testing.T) {
	r := New(map[string]any{
		"Title": "Widget",
		"PRICE": "79.99 USD",
	})

	if got, _ := r.GetString("title"); got != "Widget" {
		t.Errorf("title = %q, want Widget", got)
	}
	if got, _ := r.GetString("Price"); got != "79.99 USD" {
		t.Errorf("price lookup via mixed case = %q", got)
	}
	if r.Len() != 2 {
		t.Errorf("Len() = %d, want 2", r.Len())
	}
}

func TestNewCaseCollisionIsDeterministic(t *testing.T) {
	// "ID" sorts before "id", so "ID" wins regardless of map iteration
	// order.
	for i := 0; i < 20; i++ {
		r := New(map[string]any{
			"ID": "upper",
			"id": "lower",
		})
		if got, _ := r.GetString("id"); got != "upper" {
			t.Fatalf("iteration %d: id = %q, want upper", i, got)
		}
	}
}

func TestFirst(t *testing.T) {
	r := New(map[string]any{
		"category": "Apparel > Shoes",
	})

	got, ok := r.First("product_category", "category", "google_product_category")
	if !ok || got != "Apparel > Shoes" {
		t.Errorf("First = %q, %v", got, ok)
	}

	if _, ok := r.First("brand", "manufacturer"); ok {
		t.Error("expected no match among absent aliases")
	}
}

func TestIsPresent(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"string", "x", true},
		{"empty string", "", false},
		{"nil", nil, false},
		{"empty list", []any{}, false},
		{"list", []any{"a"}, true},
		{"zero number", json.Number("0"), true},
		{"false bool", false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsPresent(tt.in); got != tt.want {
				t.Errorf("IsPresent(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestIsTruthy(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"bool true", true, true},
		{"bool false", false, false},
		{"string true", "true", true},
		{"string false", "false", false},
		{"string True", "True", false},
		{"string yes", "yes", false},
		{"number", json.Number("1"), false},
		{"nil", nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTruthy(tt.in); got != tt.want {
				t.Errorf("IsTruthy(%v) = %v, want %v", tt.in, got, tt.want)
			}
		})
	}
}

func TestStringify(t *testing.T) {
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"string", "Widget", "Widget"},
		{"json number", json.Number("79.99"), "79.99"},
		{"float", 79.99, "79.99"},
		{"int", 42, "42"},
		{"bool", true, "true"},
		{"nil", nil, ""},
		{"map", map[string]any{"value": json.Number("79.99")}, `{"value":79.99}`},
		{"list", []any{"a", "b"}, `["a","b"]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Stringify(tt.in); got != tt.want {
				t.Errorf("Stringify(%v) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestGetStringAbsentAndEmpty(t *testing.T) {
	r := New(map[string]any{"color": ""})

	if _, ok := r.GetString("color"); ok {
		t.Error("empty string field should not be present")
	}
	if _, ok := r.GetString("size"); ok {
		t.Error("absent field should not be present")
	}
	if r.Has("color") {
		t.Error("Has should be false for empty value")
	}
}
