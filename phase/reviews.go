package phase

import (
	"context"
	"strconv"
	"strings"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
)

// ReviewsRule validates the review signal fields: count non-negative,
// rating within [0, 5]. All warning-tier.
type ReviewsRule struct{}

// NewReviewsRule creates the reviews rule module.
func NewReviewsRule() *ReviewsRule {
	return &ReviewsRule{}
}

// Name returns the rule name.
func (r *ReviewsRule) Name() string {
	return "reviews"
}

// Evaluate performs review validation.
func (r *ReviewsRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	if raw, ok := rec.GetString("product_review_count"); ok {
		count, err := strconv.Atoi(strings.TrimSpace(raw))
		switch {
		case err != nil:
			issues = append(issues, WarningIssue(fv.KindFormat,
				"product_review_count should be an integer", "product_review_count", r.Name()))
		case count < 0:
			issues = append(issues, WarningIssue(fv.KindValue,
				"product_review_count must be non-negative", "product_review_count", r.Name()))
		}
	}
	rctx.Observe("product_review_count")

	if raw, ok := rec.GetString("product_review_rating"); ok {
		rating, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		switch {
		case err != nil:
			issues = append(issues, WarningIssue(fv.KindFormat,
				"product_review_rating should be numeric", "product_review_rating", r.Name()))
		case rating < 0 || rating > 5:
			issues = append(issues, WarningIssue(fv.KindValue,
				"product_review_rating should be between 0 and 5", "product_review_rating", r.Name()))
		}
	}
	rctx.Observe("product_review_rating")

	rctx.Observe("q_and_a")
	rctx.Observe("raw_review_data")

	return issues
}
