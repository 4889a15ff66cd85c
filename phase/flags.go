package phase

import (
	"context"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
	"github.com/deepakgargct/productfeedreview/record"
)

// FlagsRule validates the boolean surface flags. A flag is enabled only
// when it is boolean true or the lower-case string "true". The cross-flag
// implication is evaluated after both flags are read: checkout cannot be
// enabled without search, regardless of field order in the record.
type FlagsRule struct{}

// NewFlagsRule creates the flags rule module.
func NewFlagsRule() *FlagsRule {
	return &FlagsRule{}
}

// Name returns the rule name.
func (r *FlagsRule) Name() string {
	return "flags"
}

// Evaluate performs flag validation.
func (r *FlagsRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	search, hasSearch := rec.Get("enable_search")
	checkout, hasCheckout := rec.Get("enable_checkout")

	if !hasSearch {
		issues = append(issues, WarningIssue(fv.KindRequired,
			"enable_search is recommended; use lower-case string 'true' or 'false'", "enable_search", r.Name()))
	}
	if !hasCheckout {
		issues = append(issues, WarningIssue(fv.KindRequired,
			"enable_checkout is recommended; use lower-case string 'true' or 'false'", "enable_checkout", r.Name()))
	}

	if record.IsTruthy(checkout) && !record.IsTruthy(search) {
		issues = append(issues, ErrorIssue(fv.KindBusinessRule,
			"enable_checkout cannot be true when enable_search is not true", "enable_checkout", r.Name()))
	}

	rctx.Observe("enable_search")
	rctx.Observe("enable_checkout")

	return issues
}
