package pipeline

import (
	"context"
	"fmt"
	"time"

	fv "github.com/deepakgargct/productfeedreview"
)

// Pipeline runs all registered rule modules over one record, in
// registration order. The order is fixed and deterministic: it affects the
// sequence of field-report rows, never the meaning of the diagnostics.
// The pipeline never short-circuits on a rule failure; a rule that panics
// on an unexpected value shape degrades to a warning on that record.
type Pipeline struct {
	rules   []Rule
	metrics *fv.Metrics

	// reportFields are backfilled into the field report after the rules
	// ran, so the report covers the full fields-of-interest list.
	reportFields []string

	collectMetrics bool
}

// New creates an empty pipeline.
func New(metrics *fv.Metrics, collectMetrics bool) *Pipeline {
	return &Pipeline{
		rules:          make([]Rule, 0, 16),
		metrics:        metrics,
		collectMetrics: collectMetrics && metrics != nil,
	}
}

// SetReportFields sets the fields-of-interest list backfilled into every
// record's field report.
func (p *Pipeline) SetReportFields(fields []string) {
	p.reportFields = fields
}

// Register appends a rule module. Rules run in registration order.
func (p *Pipeline) Register(rules ...Rule) {
	p.rules = append(p.rules, rules...)
}

// Rules returns the registered rules in execution order.
func (p *Pipeline) Rules() []Rule {
	return p.rules
}

// RuleCount returns the number of registered rules.
func (p *Pipeline) RuleCount() int {
	return len(p.rules)
}

// Run evaluates every rule against the record in the context and derives
// the field report. The context's result is returned for convenience.
func (p *Pipeline) Run(ctx context.Context, rctx *Context) *fv.RecordResult {
	if id, ok := rctx.Record.GetString("id"); ok {
		rctx.Result.RecordID = id
	}

	for _, rule := range p.rules {
		select {
		case <-ctx.Done():
			rctx.Result.AddIssue(fv.Warning(fv.KindProcessing).
				Message("validation cancelled: " + ctx.Err().Error()).
				Build())
			rctx.Result.FinishFieldReport()
			return rctx.Result
		default:
		}

		p.runRule(ctx, rctx, rule)
	}

	rctx.EnsureObserved(p.reportFields)
	rctx.Result.FinishFieldReport()
	return rctx.Result
}

// runRule executes one rule with timing and panic degradation.
func (p *Pipeline) runRule(ctx context.Context, rctx *Context, rule Rule) {
	start := time.Now()
	issues := p.safeEvaluate(ctx, rctx, rule)

	if p.collectMetrics {
		p.metrics.RecordRule(rule.Name(), time.Since(start), len(issues))
	}

	rctx.Result.AddIssues(issues)
}

// safeEvaluate converts a rule panic into a processing warning so that
// one malformed value shape never aborts whole-record evaluation.
func (p *Pipeline) safeEvaluate(ctx context.Context, rctx *Context, rule Rule) (issues []fv.Issue) {
	defer func() {
		if r := recover(); r != nil {
			issues = append(issues, fv.Warning(fv.KindProcessing).
				Message(fmt.Sprintf("%s rule could not evaluate a field with an unexpected type: %v", rule.Name(), r)).
				Rule(rule.Name()).
				Build())
		}
	}()
	return rule.Evaluate(ctx, rctx)
}
