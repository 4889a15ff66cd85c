package phase

import (
	"context"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
)

const (
	maxColorLength = 40
	maxSizeLength  = 20
)

// variantTriggerFields make item_group_id conditionally required: a
// record carrying any of them is a variant row.
var variantTriggerFields = []string{"color", "size", "item_group_title", "offer_id"}

// VariantsRule validates variant grouping. item_group_id is not on the
// static required list; its mandatoriness is computed from the presence
// of sibling variant fields.
type VariantsRule struct{}

// NewVariantsRule creates the variants rule module.
func NewVariantsRule() *VariantsRule {
	return &VariantsRule{}
}

// Name returns the rule name.
func (r *VariantsRule) Name() string {
	return "variants"
}

// Evaluate performs variant-grouping validation.
func (r *VariantsRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	hasVariantFields := false
	for _, f := range variantTriggerFields {
		if rec.Has(f) {
			hasVariantFields = true
			break
		}
	}
	if hasVariantFields && !rec.Has("item_group_id") {
		issues = append(issues, ErrorIssue(fv.KindBusinessRule,
			"item_group_id is required when variant rows are present (e.g., color/size/offer_id)", "item_group_id", r.Name()))
	}
	rctx.Observe("item_group_id")

	if color, ok := rec.GetString("color"); ok && runeLen(color) > maxColorLength {
		issues = append(issues, WarningIssue(fv.KindValue,
			"color exceeds recommended max length 40 characters", "color", r.Name()))
	}
	rctx.Observe("color")

	if size, ok := rec.GetString("size"); ok && runeLen(size) > maxSizeLength {
		issues = append(issues, WarningIssue(fv.KindValue,
			"size exceeds recommended max length 20 characters", "size", r.Name()))
	}
	rctx.Observe("size")
	rctx.Observe("offer_id")

	return issues
}
