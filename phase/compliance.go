package phase

import (
	"context"
	"strconv"
	"strings"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
	"github.com/deepakgargct/productfeedreview/pkg/scalar"
)

// ComplianceRule validates the regulatory fields: warning text and URL,
// and age_restriction. All warning-tier.
type ComplianceRule struct{}

// NewComplianceRule creates the compliance rule module.
func NewComplianceRule() *ComplianceRule {
	return &ComplianceRule{}
}

// Name returns the rule name.
func (r *ComplianceRule) Name() string {
	return "compliance"
}

// Evaluate performs compliance validation.
func (r *ComplianceRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	rctx.Observe("warning")

	if warningURL, ok := rec.GetString("warning_url"); ok && !scalar.IsURL(warningURL) {
		issues = append(issues, WarningIssue(fv.KindFormat,
			"warning_url should be a valid URL", "warning_url", r.Name()))
	}
	rctx.Observe("warning_url")

	if raw, ok := rec.GetString("age_restriction"); ok {
		n, err := strconv.Atoi(strings.TrimSpace(raw))
		switch {
		case err != nil:
			issues = append(issues, WarningIssue(fv.KindFormat,
				"age_restriction should be an integer", "age_restriction", r.Name()))
		case n <= 0:
			issues = append(issues, WarningIssue(fv.KindValue,
				"age_restriction should be a positive integer", "age_restriction", r.Name()))
		}
	}
	rctx.Observe("age_restriction")

	return issues
}
