package phase

import (
	"context"
	"testing"

	fv "github.com/deepakgargct/productfeedreview"
)

func TestAvailabilityRuleEnum(t *testing.T) {
	tests := []struct {
		name  string
		value string
		want  string
	}{
		{"in_stock", "in_stock", ""},
		{"out_of_stock", "out_of_stock", ""},
		{"case matters", "In_Stock", "availability must be one of 'in_stock', 'out_of_stock', 'preorder'"},
		{"free text", "available", "availability must be one of 'in_stock', 'out_of_stock', 'preorder'"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rctx := evalContext(t, map[string]any{
				"availability":       tt.value,
				"inventory_quantity": "5",
			})

			issues := NewAvailabilityRule().Evaluate(context.Background(), rctx)
			if tt.want == "" {
				if len(issues) != 0 {
					t.Errorf("expected no issues, got %v", messages(issues))
				}
				return
			}
			if got := severityOf(t, issues, tt.want); got != fv.SeverityError {
				t.Errorf("severity = %s, want error", got)
			}
		})
	}
}

func TestAvailabilityRuleMissing(t *testing.T) {
	rctx := evalContext(t, map[string]any{"inventory_quantity": "5"})

	issues := NewAvailabilityRule().Evaluate(context.Background(), rctx)
	if !hasMessage(issues, "Missing required field: availability") {
		t.Errorf("missing availability error in %v", messages(issues))
	}
}

func TestAvailabilityRulePreorderDate(t *testing.T) {
	// testNow is 2026-03-01T12:00:00Z.
	tests := []struct {
		name string
		date any
		want string
	}{
		{
			name: "future date",
			date: "2026-06-01",
		},
		{
			name: "missing",
			date: nil,
			want: "availability_date is required when availability='preorder'",
		},
		{
			name: "not a date",
			date: "soon",
			want: "availability_date must be a valid ISO 8601 date",
		},
		{
			name: "past date",
			date: "2025-01-01",
			want: "availability_date must be a future date for preorder items",
		},
		{
			name: "same day midnight is not future",
			date: "2026-03-01",
			want: "availability_date must be a future date for preorder items",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]any{
				"availability":       "preorder",
				"inventory_quantity": "0",
			}
			if tt.date != nil {
				fields["availability_date"] = tt.date
			}
			rctx := evalContext(t, fields)

			issues := NewAvailabilityRule().Evaluate(context.Background(), rctx)
			if tt.want == "" {
				if countErrors(issues) != 0 {
					t.Errorf("expected no errors, got %v", messages(issues))
				}
				return
			}
			if got := severityOf(t, issues, tt.want); got != fv.SeverityError {
				t.Errorf("severity = %s, want error", got)
			}
		})
	}
}

func TestAvailabilityRuleInventoryQuantity(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
	}{
		{"zero", "0", ""},
		{"positive", "42", ""},
		{"negative", "-1", "inventory_quantity must be a non-negative integer"},
		{"fraction", "2.5", "inventory_quantity must be a non-negative integer"},
		{"words", "many", "inventory_quantity must be a non-negative integer"},
		{"absent", nil, "Missing required field: inventory_quantity"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]any{"availability": "in_stock"}
			if tt.value != nil {
				fields["inventory_quantity"] = tt.value
			}
			rctx := evalContext(t, fields)

			issues := NewAvailabilityRule().Evaluate(context.Background(), rctx)
			if tt.want == "" {
				if len(issues) != 0 {
					t.Errorf("expected no issues, got %v", messages(issues))
				}
				return
			}
			if !hasMessage(issues, tt.want) {
				t.Errorf("missing %q in %v", tt.want, messages(issues))
			}
		})
	}
}

func TestAvailabilityRuleExpirationDate(t *testing.T) {
	rctx := evalContext(t, map[string]any{
		"availability":       "in_stock",
		"inventory_quantity": "1",
		"expiration_date":    "next month",
	})

	issues := NewAvailabilityRule().Evaluate(context.Background(), rctx)
	want := "expiration_date should be an ISO 8601 date"
	if got := severityOf(t, issues, want); got != fv.SeverityWarning {
		t.Errorf("severity = %s, want warning", got)
	}
}
