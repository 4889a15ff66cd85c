package phase

import (
	"context"
	"strconv"
	"strings"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
)

// PerformanceRule validates the merchandising signal fields:
// popularity_score and return_rate. return_rate tolerates a trailing
// percent sign.
type PerformanceRule struct{}

// NewPerformanceRule creates the performance rule module.
func NewPerformanceRule() *PerformanceRule {
	return &PerformanceRule{}
}

// Name returns the rule name.
func (r *PerformanceRule) Name() string {
	return "performance"
}

// Evaluate performs performance-signal validation.
func (r *PerformanceRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	if pop, ok := rec.GetString("popularity_score"); ok && !isFloat(pop) {
		issues = append(issues, WarningIssue(fv.KindFormat,
			"popularity_score should be numeric", "popularity_score", r.Name()))
	}
	rctx.Observe("popularity_score")

	if raw, ok := rec.GetString("return_rate"); ok {
		trimmed := strings.TrimSuffix(strings.TrimSpace(raw), "%")
		rate, err := strconv.ParseFloat(trimmed, 64)
		switch {
		case err != nil:
			issues = append(issues, WarningIssue(fv.KindFormat,
				"return_rate should be numeric or a percent string", "return_rate", r.Name()))
		case rate < 0 || rate > 100:
			issues = append(issues, WarningIssue(fv.KindValue,
				"return_rate should be 0-100%", "return_rate", r.Name()))
		}
	}
	rctx.Observe("return_rate")

	return issues
}
