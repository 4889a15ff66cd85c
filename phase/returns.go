package phase

import (
	"context"
	"strconv"
	"strings"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
)

// ReturnsRule validates the return policy fields. return_window is the
// one error-tier check outside the core required set: a non-positive or
// non-integer window denotes an unusable policy.
type ReturnsRule struct{}

// NewReturnsRule creates the returns rule module.
func NewReturnsRule() *ReturnsRule {
	return &ReturnsRule{}
}

// Name returns the rule name.
func (r *ReturnsRule) Name() string {
	return "returns"
}

// Evaluate performs returns validation.
func (r *ReturnsRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	if v, ok := rec.Get("return_policy"); ok {
		if _, isString := v.(string); !isString {
			issues = append(issues, WarningIssue(fv.KindFormat,
				"return_policy should be a URL string", "return_policy", r.Name()))
		}
	}
	rctx.Observe("return_policy")

	if raw, ok := rec.GetString("return_window"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		switch {
		case err != nil:
			issues = append(issues, ErrorIssue(fv.KindFormat,
				"return_window must be an integer representing days", "return_window", r.Name()))
		case n <= 0:
			issues = append(issues, ErrorIssue(fv.KindValue,
				"return_window must be a positive integer", "return_window", r.Name()))
		}
	}
	rctx.Observe("return_window")

	return issues
}
