// Package pipeline provides the per-record rule orchestration
// infrastructure: the Rule interface, the evaluation context and the
// ordered pipeline that runs every rule module over one record.
package pipeline

import (
	"strings"
	"time"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/record"
)

// Context holds all state needed while validating a single record. It is
// passed to every rule module; rules read the record and write issues and
// field observations into the result, never into each other.
type Context struct {
	// Record is the normalized record being validated.
	Record record.Record

	// Index is the record's zero-based position in the feed.
	Index int

	// Now is the feed-wide reference time, captured once per run.
	// Time-relative rules must use it instead of sampling the clock.
	Now time.Time

	// Result accumulates issues and field observations.
	Result *fv.RecordResult

	// seen tracks observed field names so each field gets one report row.
	seen map[string]bool
}

// NewContext creates an evaluation context for one record.
func NewContext(rec record.Record, index int, now time.Time) *Context {
	return NewContextInto(rec, index, now, fv.NewRecordResult(index))
}

// NewContextInto creates a context accumulating into an existing result,
// e.g. one drawn from the result pool.
func NewContextInto(rec record.Record, index int, now time.Time, result *fv.RecordResult) *Context {
	result.Index = index
	return &Context{
		Record: rec,
		Index:  index,
		Now:    now,
		Result: result,
		seen:   make(map[string]bool, 64),
	}
}

// Observe records a field sighting for the field report, stringifying the
// raw value the way reports display it. A field already observed for this
// record is skipped, so every field holds exactly one report row.
func (c *Context) Observe(field string) {
	key := strings.ToLower(field)
	if c.seen[key] {
		return
	}
	c.seen[key] = true

	v, ok := c.Record.Get(field)
	if !ok || !record.IsPresent(v) {
		c.Result.Observe(field, "", false)
		return
	}
	c.Result.Observe(field, record.Stringify(v), true)
}

// EnsureObserved backfills report rows for fields of interest no rule
// inspected. Already-observed fields keep their rule-order position.
func (c *Context) EnsureObserved(fields []string) {
	for _, field := range fields {
		c.Observe(field)
	}
}
