package phase

import (
	"context"
	"strings"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
)

const maxBrandLength = 70

var allowedConditions = map[string]bool{
	"new":         true,
	"refurbished": true,
	"used":        true,
}

var allowedAgeGroups = map[string]bool{
	"newborn": true,
	"infant":  true,
	"toddler": true,
	"kids":    true,
	"adult":   true,
}

// ItemInfoRule validates descriptive item fields: condition, category
// (with its aliases), brand, material, weight and age_group. All checks
// here are warning-tier.
type ItemInfoRule struct{}

// NewItemInfoRule creates the item-info rule module.
func NewItemInfoRule() *ItemInfoRule {
	return &ItemInfoRule{}
}

// Name returns the rule name.
func (r *ItemInfoRule) Name() string {
	return "item-info"
}

// Evaluate performs item-info validation.
func (r *ItemInfoRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	if condition, ok := rec.GetString("condition"); ok && !allowedConditions[condition] {
		issues = append(issues, WarningIssue(fv.KindValue,
			"condition should be one of 'new', 'refurbished', 'used' (lower-case)", "condition", r.Name()))
	}
	rctx.Observe("condition")

	// product_category has two accepted aliases from older feed dialects.
	if _, ok := rec.First("product_category", "category", "google_product_category"); !ok {
		issues = append(issues, WarningIssue(fv.KindRequired,
			"product_category (category) is recommended: helps classification and relevance", "product_category", r.Name()))
	}
	rctx.Observe("product_category")

	brand, hasBrand := rec.GetString("brand")
	if !hasBrand {
		issues = append(issues, WarningIssue(fv.KindRequired,
			"brand is recommended for most products (max 70 chars)", "brand", r.Name()))
	} else if runeLen(brand) > maxBrandLength {
		issues = append(issues, WarningIssue(fv.KindValue,
			"brand exceeds recommended max length 70 characters", "brand", r.Name()))
	}
	rctx.Observe("brand")

	if !rec.Has("material") {
		issues = append(issues, WarningIssue(fv.KindRequired,
			"material is recommended", "material", r.Name()))
	}
	rctx.Observe("material")

	weight, hasWeight := rec.First("weight", "shipping_weight")
	if !hasWeight {
		issues = append(issues, WarningIssue(fv.KindRequired,
			"weight (or shipping_weight) is recommended (positive number + unit)", "weight", r.Name()))
	} else if !parsesLeadingNumber(weight) {
		issues = append(issues, WarningIssue(fv.KindFormat,
			"weight provided but could not parse numeric part", "weight", r.Name()))
	}
	rctx.Observe("weight")

	if age, ok := rec.GetString("age_group"); ok && !allowedAgeGroups[age] {
		issues = append(issues, WarningIssue(fv.KindValue,
			"age_group should be one of newborn, infant, toddler, kids, adult", "age_group", r.Name()))
	}
	rctx.Observe("age_group")

	return issues
}

// parsesLeadingNumber reports whether the first whitespace token of s is
// numeric, e.g. "1.5 kg".
func parsesLeadingNumber(s string) bool {
	fields := strings.Fields(s)
	if len(fields) == 0 {
		return false
	}
	return isFloat(fields[0])
}
