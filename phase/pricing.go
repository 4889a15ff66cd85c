package phase

import (
	"context"
	"regexp"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
	"github.com/deepakgargct/productfeedreview/pkg/scalar"
)

// dateRangeSeparator splits "start / end" with optional surrounding
// whitespace around the slash.
var dateRangeSeparator = regexp.MustCompile(`\s*/\s*`)

// PricingRule validates price, sale_price and their effective date range.
//
// The scalar parser treats a missing currency as legal; this rule does
// not: a price without an ISO 4217 currency code is an error. The parser
// stays reusable infrastructure, the rule encodes the stricter feed
// requirement.
type PricingRule struct{}

// NewPricingRule creates the pricing rule module.
func NewPricingRule() *PricingRule {
	return &PricingRule{}
}

// Name returns the rule name.
func (r *PricingRule) Name() string {
	return "pricing"
}

// Evaluate performs pricing validation.
func (r *PricingRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	var price scalar.Price
	priceOK := false
	if raw, ok := rec.GetString("price"); ok {
		price, priceOK = scalar.ParsePrice(raw)
	}
	if !priceOK {
		issues = append(issues, ErrorIssue(fv.KindRequired,
			"Missing or invalid required field: price (expected 'number CUR', e.g., '79.99 USD')", "price", r.Name()))
	} else {
		if price.Amount.IsNegative() {
			issues = append(issues, ErrorIssue(fv.KindValue,
				"price must be a non-negative number", "price", r.Name()))
		}
		if price.Currency == "" {
			issues = append(issues, ErrorIssue(fv.KindValue,
				"price must include an ISO 4217 currency code (e.g., USD)", "price", r.Name()))
		}
	}
	rctx.Observe("price")

	if raw, ok := rec.GetString("sale_price"); ok {
		sale, saleOK := scalar.ParsePrice(raw)
		if !saleOK {
			issues = append(issues, ErrorIssue(fv.KindFormat,
				"sale_price provided but not parseable as a number with optional currency", "sale_price", r.Name()))
		} else {
			if sale.Amount.IsNegative() {
				issues = append(issues, ErrorIssue(fv.KindValue,
					"sale_price must be a non-negative number", "sale_price", r.Name()))
			}
			if priceOK && sale.Amount.GreaterThan(price.Amount) {
				issues = append(issues, ErrorIssue(fv.KindBusinessRule,
					"sale_price must be less than or equal to price", "sale_price", r.Name()))
			}
		}

		if !rec.Has("sale_price_effective_date") {
			issues = append(issues, WarningIssue(fv.KindRequired,
				"sale_price provided but sale_price_effective_date is missing (recommended)", "sale_price_effective_date", r.Name()))
		}
	}
	rctx.Observe("sale_price")

	if raw, ok := rec.GetString("sale_price_effective_date"); ok {
		issues = append(issues, r.checkEffectiveDate(raw)...)
	}
	rctx.Observe("sale_price_effective_date")

	if v, ok := rec.Get("unit_pricing_measure"); ok {
		if _, isString := v.(string); !isString {
			issues = append(issues, WarningIssue(fv.KindFormat,
				"unit_pricing_measure should be a string like '16 oz / 1 oz'", "unit_pricing_measure", r.Name()))
		}
	}
	rctx.Observe("unit_pricing_measure")

	return issues
}

// checkEffectiveDate validates the "start / end" ISO date range.
func (r *PricingRule) checkEffectiveDate(raw string) []fv.Issue {
	parts := dateRangeSeparator.Split(raw, -1)
	if len(parts) != 2 {
		return []fv.Issue{ErrorIssue(fv.KindFormat,
			"sale_price_effective_date must be a start/end ISO date range 'YYYY-MM-DD / YYYY-MM-DD'",
			"sale_price_effective_date", r.Name())}
	}

	start, startOK := scalar.ParseISODate(parts[0])
	end, endOK := scalar.ParseISODate(parts[1])
	if !startOK || !endOK {
		return []fv.Issue{ErrorIssue(fv.KindFormat,
			"sale_price_effective_date start or end is not a valid ISO date",
			"sale_price_effective_date", r.Name())}
	}
	if !start.Before(end) {
		return []fv.Issue{ErrorIssue(fv.KindValue,
			"sale_price_effective_date start must be before end",
			"sale_price_effective_date", r.Name())}
	}
	return nil
}
