package phase

import (
	"context"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
)

// allowedRelationshipTypes is the closed enumeration for
// relationship_type.
var allowedRelationshipTypes = map[string]bool{
	"part_of_set":       true,
	"required_part":     true,
	"often_bought_with": true,
	"substitute":        true,
	"different_brand":   true,
	"accessory":         true,
}

// RelatedRule validates related-product references. related_product_id
// accepts a single id or a comma-joined list without further checks;
// relationship_type must come from the closed enumeration.
type RelatedRule struct{}

// NewRelatedRule creates the related-products rule module.
func NewRelatedRule() *RelatedRule {
	return &RelatedRule{}
}

// Name returns the rule name.
func (r *RelatedRule) Name() string {
	return "related"
}

// Evaluate performs related-product validation.
func (r *RelatedRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	rctx.Observe("related_product_id")

	if rt, ok := rec.GetString("relationship_type"); ok && !allowedRelationshipTypes[rt] {
		issues = append(issues, WarningIssue(fv.KindValue,
			"relationship_type value unexpected", "relationship_type", r.Name()))
	}
	rctx.Observe("relationship_type")

	return issues
}
