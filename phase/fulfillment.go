package phase

import (
	"context"
	"fmt"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
	"github.com/deepakgargct/productfeedreview/pkg/scalar"
)

// FulfillmentRule validates shipping entries and the delivery estimate.
// A shipping entry is well-formed with at least four colon-delimited
// parts (country:region:service_class:price); a malformed entry is
// reported with the literal offending substring.
type FulfillmentRule struct{}

// NewFulfillmentRule creates the fulfillment rule module.
func NewFulfillmentRule() *FulfillmentRule {
	return &FulfillmentRule{}
}

// Name returns the rule name.
func (r *FulfillmentRule) Name() string {
	return "fulfillment"
}

// Evaluate performs fulfillment validation.
func (r *FulfillmentRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	if v, ok := rec.Get("shipping"); ok {
		for _, entry := range multiValues(v) {
			parts := scalar.SplitShippingEntry(entry)
			if len(parts) < scalar.ShippingTupleMinParts {
				issues = append(issues, WarningIssue(fv.KindFormat,
					fmt.Sprintf("shipping entry '%s' expected 'country:region:service_class:price'", entry),
					"shipping", r.Name()))
				continue
			}
			if _, priceOK := scalar.ParsePrice(parts[3]); !priceOK {
				issues = append(issues, WarningIssue(fv.KindFormat,
					fmt.Sprintf("shipping entry price not parseable in '%s'", entry),
					"shipping", r.Name()))
			}
		}
	}
	rctx.Observe("shipping")

	if de, ok := rec.GetString("delivery_estimate"); ok && !scalar.IsISODate(de) {
		issues = append(issues, WarningIssue(fv.KindFormat,
			"delivery_estimate should be an ISO 8601 date", "delivery_estimate", r.Name()))
	}
	rctx.Observe("delivery_estimate")

	return issues
}
