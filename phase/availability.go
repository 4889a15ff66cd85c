package phase

import (
	"context"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
	"github.com/deepakgargct/productfeedreview/pkg/scalar"
)

// allowedAvailability is the closed, case-sensitive availability enum.
// No normalization: "In_Stock" is invalid.
var allowedAvailability = map[string]bool{
	"in_stock":     true,
	"out_of_stock": true,
	"preorder":     true,
}

// AvailabilityRule validates availability, the conditional
// availability_date (required for preorder and strictly in the future
// relative to the run's injected now), inventory_quantity and
// expiration_date.
type AvailabilityRule struct{}

// NewAvailabilityRule creates the availability rule module.
func NewAvailabilityRule() *AvailabilityRule {
	return &AvailabilityRule{}
}

// Name returns the rule name.
func (r *AvailabilityRule) Name() string {
	return "availability"
}

// Evaluate performs availability and inventory validation.
func (r *AvailabilityRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	availability, hasAvail := rec.GetString("availability")
	if !hasAvail {
		issues = append(issues, MissingRequired("availability", r.Name()))
	} else if !allowedAvailability[availability] {
		issues = append(issues, ErrorIssue(fv.KindValue,
			"availability must be one of 'in_stock', 'out_of_stock', 'preorder'", "availability", r.Name()))
	}
	rctx.Observe("availability")

	if availability == "preorder" {
		date, hasDate := rec.GetString("availability_date")
		switch {
		case !hasDate:
			issues = append(issues, ErrorIssue(fv.KindRequired,
				"availability_date is required when availability='preorder'", "availability_date", r.Name()))
		default:
			dt, ok := scalar.ParseISODate(date)
			if !ok {
				issues = append(issues, ErrorIssue(fv.KindFormat,
					"availability_date must be a valid ISO 8601 date", "availability_date", r.Name()))
			} else if !dt.After(rctx.Now) {
				issues = append(issues, ErrorIssue(fv.KindValue,
					"availability_date must be a future date for preorder items", "availability_date", r.Name()))
			}
		}
	}
	rctx.Observe("availability_date")

	inv, hasInv := rec.GetString("inventory_quantity")
	if !hasInv {
		issues = append(issues, MissingRequired("inventory_quantity", r.Name()))
	} else if !scalar.IsNonNegativeInt(inv) {
		issues = append(issues, ErrorIssue(fv.KindFormat,
			"inventory_quantity must be a non-negative integer", "inventory_quantity", r.Name()))
	}
	rctx.Observe("inventory_quantity")

	if exp, ok := rec.GetString("expiration_date"); ok && !scalar.IsISODate(exp) {
		issues = append(issues, WarningIssue(fv.KindFormat,
			"expiration_date should be an ISO 8601 date", "expiration_date", r.Name()))
	}
	rctx.Observe("expiration_date")

	return issues
}
