// Package feedvalidator provides commerce product feed validation.
//
// Feeds are validated in Balanced Mode: required and conditionally-required
// fields produce errors, recommended fields produce warnings. The package is
// designed around small composable pieces: stateless rule modules, a
// deterministic per-record pipeline, and record-level fan-out with
// goroutines for large feeds.
//
// # Quick Start
//
//	import (
//	    fv "github.com/deepakgargct/productfeedreview"
//	    "github.com/deepakgargct/productfeedreview/engine"
//	    "github.com/deepakgargct/productfeedreview/loader"
//	)
//
//	validator, err := engine.New()
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	result, err := validator.ValidateFeed(ctx, feedBytes, loader.FormatJSON)
//	if err != nil {
//	    log.Fatal(err) // malformed feed, nothing was validated
//	}
//	fmt.Printf("%d records, %d errors, %d warnings\n",
//	    result.TotalRecords, result.TotalErrors, result.TotalWarnings)
//
// Validation of a record is a pure function of the record and a single
// "now" reference captured once per run, so the same feed always produces
// the same diagnostics. Use fv.WithNow to pin the clock in tests.
package feedvalidator
