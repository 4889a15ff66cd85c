package phase

import (
	"context"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
)

// FreshnessRule checks feed freshness tracking: a timestamp is
// recommended, and structured data presence is reported as a neutral
// observation.
type FreshnessRule struct{}

// NewFreshnessRule creates the freshness rule module.
func NewFreshnessRule() *FreshnessRule {
	return &FreshnessRule{}
}

// Name returns the rule name.
func (r *FreshnessRule) Name() string {
	return "freshness"
}

// Evaluate performs freshness validation.
func (r *FreshnessRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	if !rec.Has("updated_at") && !rec.Has("created_at") {
		issues = append(issues, WarningIssue(fv.KindRequired,
			"updated_at or created_at recommended for feed freshness tracking", "updated_at", r.Name()))
	}
	rctx.Observe("updated_at")
	rctx.Observe("created_at")

	if rec.Has("schema_org_json_ld") {
		issues = append(issues, InformationIssue(fv.KindInformational,
			"schema_org_json_ld present: good for structured data", "schema_org_json_ld", r.Name()))
	}
	rctx.Observe("schema_org_json_ld")

	return issues
}
