package phase

import (
	"context"
	"strings"
	"testing"

	fv "github.com/deepakgargct/productfeedreview"
)

func TestVariantsRuleConditionalGroupID(t *testing.T) {
	groupMsg := "item_group_id is required when variant rows are present (e.g., color/size/offer_id)"

	tests := []struct {
		name   string
		fields map[string]any
		want   bool
	}{
		{
			name:   "no variant fields",
			fields: map[string]any{"title": "Widget"},
			want:   false,
		},
		{
			name:   "color without group",
			fields: map[string]any{"color": "red"},
			want:   true,
		},
		{
			name:   "size without group",
			fields: map[string]any{"size": "M"},
			want:   true,
		},
		{
			name:   "offer_id without group",
			fields: map[string]any{"offer_id": "o-1"},
			want:   true,
		},
		{
			name:   "color with group",
			fields: map[string]any{"color": "red", "item_group_id": "grp-1"},
			want:   false,
		},
		{
			name:   "empty color does not trigger",
			fields: map[string]any{"color": ""},
			want:   false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rctx := evalContext(t, tt.fields)

			issues := NewVariantsRule().Evaluate(context.Background(), rctx)
			if got := hasMessage(issues, groupMsg); got != tt.want {
				t.Errorf("group error = %v, want %v (issues: %v)", got, tt.want, messages(issues))
			}
		})
	}
}

func TestVariantsRuleLengthCaps(t *testing.T) {
	rctx := evalContext(t, map[string]any{
		"item_group_id": "grp-1",
		"color":         strings.Repeat("c", 41),
		"size":          strings.Repeat("s", 21),
	})

	issues := NewVariantsRule().Evaluate(context.Background(), rctx)
	for _, want := range []string{
		"color exceeds recommended max length 40 characters",
		"size exceeds recommended max length 20 characters",
	} {
		if got := severityOf(t, issues, want); got != fv.SeverityWarning {
			t.Errorf("%q severity = %s, want warning", want, got)
		}
	}
}

func TestFlagsRuleImplication(t *testing.T) {
	implicationMsg := "enable_checkout cannot be true when enable_search is not true"

	tests := []struct {
		name     string
		search   any
		checkout any
		want     bool
	}{
		{"both true strings", "true", "true", false},
		{"both bool true", true, true, false},
		{"checkout without search", nil, "true", true},
		{"checkout true search false", "false", "true", true},
		{"string False is not truthy", "False", "true", true},
		{"checkout false", "false", "false", false},
		{"neither set", nil, nil, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]any{}
			if tt.search != nil {
				fields["enable_search"] = tt.search
			}
			if tt.checkout != nil {
				fields["enable_checkout"] = tt.checkout
			}
			rctx := evalContext(t, fields)

			issues := NewFlagsRule().Evaluate(context.Background(), rctx)
			if got := hasMessage(issues, implicationMsg); got != tt.want {
				t.Errorf("implication error = %v, want %v (issues: %v)", got, tt.want, messages(issues))
			}
		})
	}
}

func TestFlagsRuleRecommendsBothFlags(t *testing.T) {
	rctx := evalContext(t, map[string]any{})

	issues := NewFlagsRule().Evaluate(context.Background(), rctx)
	for _, want := range []string{
		"enable_search is recommended; use lower-case string 'true' or 'false'",
		"enable_checkout is recommended; use lower-case string 'true' or 'false'",
	} {
		if got := severityOf(t, issues, want); got != fv.SeverityWarning {
			t.Errorf("%q severity = %s, want warning", want, got)
		}
	}
}
