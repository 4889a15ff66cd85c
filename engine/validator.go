// Package engine provides the main feed validation engine. It wires the
// loader, the rule pipeline and the record fan-out together behind one
// facade.
package engine

import (
	"context"
	"fmt"
	"io"
	"time"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/loader"
	"github.com/deepakgargct/productfeedreview/phase"
	"github.com/deepakgargct/productfeedreview/pipeline"
	"github.com/deepakgargct/productfeedreview/pkg/logger"
	"github.com/deepakgargct/productfeedreview/record"
	"github.com/deepakgargct/productfeedreview/worker"
)

// Validator is the main product feed validator. It is safe for
// concurrent use; each feed run is a pure function of the input bytes
// and one reference time captured at the start of the run.
type Validator struct {
	options *fv.Options
	pipe    *pipeline.Pipeline
	metrics *fv.Metrics
}

// New creates a Validator with the given options.
func New(opts ...fv.Option) (*Validator, error) {
	options := fv.DefaultOptions()
	for _, opt := range opts {
		opt(options)
	}
	if !options.Mode.IsValid() {
		return nil, fmt.Errorf("unsupported severity mode %q", options.Mode)
	}

	v := &Validator{
		options: options,
		metrics: fv.NewMetrics(),
	}
	v.buildPipeline()

	return v, nil
}

// buildPipeline registers all rule modules in the canonical order.
// The order fixes the field-report row sequence; diagnostics are
// order-independent in meaning.
func (v *Validator) buildPipeline() {
	v.pipe = pipeline.New(v.metrics, v.options.CollectMetrics)

	fields := v.options.Fields
	if fields == nil {
		fields = fv.DefaultReportFields
	}
	v.pipe.SetReportFields(fields)

	v.pipe.Register(
		phase.NewBasicRule(),
		phase.NewItemInfoRule(),
		phase.NewMediaRule(),
		phase.NewPricingRule(),
		phase.NewAvailabilityRule(),
		phase.NewVariantsRule(),
		phase.NewFulfillmentRule(),
		phase.NewMerchantRule(),
		phase.NewReturnsRule(),
		phase.NewPerformanceRule(),
		phase.NewReviewsRule(),
		phase.NewComplianceRule(),
		phase.NewRelatedRule(),
		phase.NewGeoRule(),
		phase.NewFlagsRule(),
		phase.NewFreshnessRule(),
	)
}

// ValidateFeed parses raw feed bytes in the declared format and
// validates every record. Malformed input returns an error and no
// partial diagnostics; every record-level problem lands in the result as
// an issue.
func (v *Validator) ValidateFeed(ctx context.Context, data []byte, format loader.Format) (*fv.FeedResult, error) {
	now := v.referenceTime()
	start := time.Now()

	records, err := loader.Load(data, format)
	if err != nil {
		return nil, err
	}
	logger.Debug("parsed %d %s records", len(records), format)

	bv := worker.NewBatchValidator(
		func(ctx context.Context, index int, rec record.Record) *fv.RecordResult {
			return v.validateRecord(ctx, index, rec, now)
		},
		v.options.WorkerCount,
		v.options.MaxErrors,
	)

	results := bv.ValidateAll(ctx, records, v.options.ParallelRecords)

	if v.options.CollectMetrics {
		v.metrics.RecordFeed()
	}

	fr := fv.NewFeedResult(len(records), results)
	logger.Debug("validated %d/%d records in %s: %d errors, %d warnings",
		fr.EvaluatedRecords, fr.TotalRecords, time.Since(start).Round(time.Millisecond),
		fr.TotalErrors, fr.TotalWarnings)
	return fr, nil
}

// ValidateFeedReader reads the full stream and validates it as one feed.
// The read is the only blocking I/O of a run; evaluation never touches
// the network.
func (v *Validator) ValidateFeedReader(ctx context.Context, r io.Reader, format loader.Format) (*fv.FeedResult, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	return v.ValidateFeed(ctx, data, format)
}

// ValidateRecord validates a single normalized record as a one-record
// feed, using the validator's reference time. Evaluation scratch state is
// drawn from the result pool; the returned result is an independent copy,
// safe to retain.
func (v *Validator) ValidateRecord(ctx context.Context, rec record.Record) *fv.RecordResult {
	start := time.Now()

	pooled := fv.AcquireRecordResult()
	if v.options.CollectMetrics {
		v.metrics.RecordPoolAcquire()
	}

	rctx := pipeline.NewContextInto(rec, 0, v.referenceTime(), pooled)
	v.pipe.Run(ctx, rctx)

	result := pooled.Clone()
	pooled.Release()

	if v.options.CollectMetrics {
		v.metrics.RecordPoolRelease()
		v.metrics.RecordValidation(time.Since(start), result.Valid)
		for _, issue := range result.Issues {
			v.metrics.RecordIssue(issue.Severity)
		}
	}
	return result
}

func (v *Validator) validateRecord(ctx context.Context, index int, rec record.Record, now time.Time) *fv.RecordResult {
	start := time.Now()
	rctx := pipeline.NewContext(rec, index, now)
	result := v.pipe.Run(ctx, rctx)

	if v.options.CollectMetrics {
		v.metrics.RecordValidation(time.Since(start), result.Valid)
		for _, issue := range result.Issues {
			v.metrics.RecordIssue(issue.Severity)
		}
	}
	return result
}

// referenceTime returns the injected now, or samples the clock once for
// this run when no now was injected.
func (v *Validator) referenceTime() time.Time {
	if !v.options.Now.IsZero() {
		return v.options.Now
	}
	return time.Now().UTC()
}

// Metrics returns the validator's metrics collector.
func (v *Validator) Metrics() *fv.Metrics {
	return v.metrics
}

// RuleCount returns the number of registered rule modules.
func (v *Validator) RuleCount() int {
	return v.pipe.RuleCount()
}
