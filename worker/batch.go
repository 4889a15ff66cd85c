// Package worker provides record-level fan-out for feed validation.
// Results are written into a pre-sized, index-addressed slice, so no
// locks are needed and input order is preserved regardless of which
// goroutine finishes first.
package worker

import (
	"context"
	"runtime"
	"sync"
	"sync/atomic"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/record"
)

// ValidateFunc validates a single record at the given feed index.
type ValidateFunc func(ctx context.Context, index int, rec record.Record) *fv.RecordResult

// BatchValidator validates the records of one feed, sequentially or in
// parallel. An optional error budget aborts the run early; records
// already evaluated keep their results, so partial output stays
// order-consistent.
type BatchValidator struct {
	validate  ValidateFunc
	workers   int
	maxErrors int
}

// NewBatchValidator creates a batch validator. workers <= 0 defaults to
// runtime.NumCPU(); maxErrors 0 means unlimited.
func NewBatchValidator(validate ValidateFunc, workers, maxErrors int) *BatchValidator {
	if workers <= 0 {
		workers = runtime.NumCPU()
	}
	return &BatchValidator{
		validate:  validate,
		workers:   workers,
		maxErrors: maxErrors,
	}
}

// ValidateAll evaluates every record and returns one result per input
// index. Entries are nil only for records skipped by cancellation or the
// error budget.
func (bv *BatchValidator) ValidateAll(ctx context.Context, records []record.Record, parallel bool) []*fv.RecordResult {
	if len(records) == 0 {
		return nil
	}

	// Parallelism doesn't pay off for tiny feeds.
	if !parallel || len(records) <= 2 || bv.workers == 1 {
		return bv.validateSequential(ctx, records)
	}
	return bv.validateParallel(ctx, records)
}

func (bv *BatchValidator) validateSequential(ctx context.Context, records []record.Record) []*fv.RecordResult {
	results := make([]*fv.RecordResult, len(records))
	errorCount := 0

	for i, rec := range records {
		select {
		case <-ctx.Done():
			return results
		default:
		}
		if bv.maxErrors > 0 && errorCount >= bv.maxErrors {
			return results
		}

		results[i] = bv.validate(ctx, i, rec)
		errorCount += results[i].ErrorCount()
	}
	return results
}

func (bv *BatchValidator) validateParallel(ctx context.Context, records []record.Record) []*fv.RecordResult {
	results := make([]*fv.RecordResult, len(records))

	var (
		wg         sync.WaitGroup
		errorCount atomic.Int64
		sem        = make(chan struct{}, bv.workers)
	)

dispatch:
	for i, rec := range records {
		select {
		case <-ctx.Done():
			break dispatch
		default:
		}
		// Stop dispatching once the error budget is spent; in-flight
		// records still complete so their results stay intact.
		if bv.maxErrors > 0 && errorCount.Load() >= int64(bv.maxErrors) {
			break
		}

		wg.Add(1)
		sem <- struct{}{}
		go func(i int, rec record.Record) {
			defer wg.Done()
			defer func() { <-sem }()

			results[i] = bv.validate(ctx, i, rec)
			errorCount.Add(int64(results[i].ErrorCount()))
		}(i, rec)
	}

	wg.Wait()
	return results
}
