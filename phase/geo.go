package phase

import (
	"context"
	"unicode"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
)

// GeoRule validates the regional pricing and availability fields with
// light shape checks. All warning-tier.
type GeoRule struct{}

// NewGeoRule creates the geo rule module.
func NewGeoRule() *GeoRule {
	return &GeoRule{}
}

// Name returns the rule name.
func (r *GeoRule) Name() string {
	return "geo"
}

// Evaluate performs geo validation.
func (r *GeoRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	if gp, ok := rec.GetString("geo_price"); ok && !containsLetter(gp) {
		issues = append(issues, WarningIssue(fv.KindFormat,
			"geo_price expected to include a currency code or region note", "geo_price", r.Name()))
	}
	rctx.Observe("geo_price")

	if v, ok := rec.Get("geo_availability"); ok {
		if _, isString := v.(string); !isString {
			issues = append(issues, WarningIssue(fv.KindFormat,
				"geo_availability should be a string like 'US:in_stock'", "geo_availability", r.Name()))
		}
	}
	rctx.Observe("geo_availability")

	return issues
}

// containsLetter reports whether s has at least one letter, the weak
// signal that a currency code or region note is attached.
func containsLetter(s string) bool {
	for _, c := range s {
		if unicode.IsLetter(c) {
			return true
		}
	}
	return false
}
