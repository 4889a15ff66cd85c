package pipeline

import (
	"context"

	fv "github.com/deepakgargct/productfeedreview"
)

// Rule represents a single validation rule module. Each module covers one
// field cluster (pricing, media, availability, ...).
//
// Rules must be:
//   - Stateless: all state lives in the Context
//   - Independent: rules never read each other's output
//   - Total: a rule returns issues, it never fails
type Rule interface {
	// Name returns the unique identifier for this rule module.
	Name() string

	// Evaluate inspects the record and returns any issues found. Field
	// sightings for the field report are recorded via rctx.Observe.
	Evaluate(ctx context.Context, rctx *Context) []fv.Issue
}

// RuleFunc adapts a function to the Rule interface.
// Useful for simple rules that don't need a full struct.
type RuleFunc struct {
	name string
	fn   func(ctx context.Context, rctx *Context) []fv.Issue
}

// NewRuleFunc creates a Rule from a function.
func NewRuleFunc(name string, fn func(ctx context.Context, rctx *Context) []fv.Issue) Rule {
	return &RuleFunc{name: name, fn: fn}
}

// Name returns the rule name.
func (r *RuleFunc) Name() string {
	return r.name
}

// Evaluate calls the wrapped function.
func (r *RuleFunc) Evaluate(ctx context.Context, rctx *Context) []fv.Issue {
	return r.fn(ctx, rctx)
}
