package feedvalidator

import (
	"sort"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

// IssueCount is one entry of the issue-frequency table.
type IssueCount struct {
	// Message is the exact diagnostic message text.
	Message string `json:"message"`

	// Count is how many times the message occurred across the feed.
	Count int `json:"count"`
}

// FeedResult aggregates validation results over all records of a feed.
type FeedResult struct {
	// ReportID correlates this validation run.
	ReportID string `json:"reportId"`

	// TotalRecords is the number of records discovered in the feed.
	TotalRecords int `json:"totalRecords"`

	// EvaluatedRecords is the number of records actually validated. It is
	// lower than TotalRecords only when an error budget aborted the run.
	EvaluatedRecords int `json:"evaluatedRecords"`

	// TotalErrors is the number of error issues across all records.
	TotalErrors int `json:"totalErrors"`

	// TotalWarnings is the number of warning issues across all records.
	TotalWarnings int `json:"totalWarnings"`

	// Records holds per-record results in input order.
	Records []*RecordResult `json:"records"`
}

// NewFeedResult builds a FeedResult from per-record results. The input
// slice is index-addressed; nil entries (records skipped by an early
// abort) are dropped while preserving input order.
func NewFeedResult(total int, results []*RecordResult) *FeedResult {
	fr := &FeedResult{
		ReportID:     uuid.NewString(),
		TotalRecords: total,
		Records:      make([]*RecordResult, 0, len(results)),
	}

	for _, r := range results {
		if r == nil {
			continue
		}
		fr.Records = append(fr.Records, r)
		fr.TotalErrors += r.ErrorCount()
		fr.TotalWarnings += r.WarningCount()
	}
	fr.EvaluatedRecords = len(fr.Records)

	return fr
}

// HasErrors returns true if any record has an error issue.
func (fr *FeedResult) HasErrors() bool {
	return fr.TotalErrors > 0
}

// IssueFrequency builds the issue-frequency table: distinct message text to
// occurrence count, over errors and warnings of every record. Entries are
// sorted by count descending, ties broken by message ascending so the
// table is deterministic.
func (fr *FeedResult) IssueFrequency() []IssueCount {
	counts := make(map[string]int)
	for _, r := range fr.Records {
		for _, issue := range r.Issues {
			if issue.IsError() || issue.IsWarning() {
				counts[issue.Message]++
			}
		}
	}

	table := make([]IssueCount, 0, len(counts))
	for msg, n := range counts {
		table = append(table, IssueCount{Message: msg, Count: n})
	}
	sort.Slice(table, func(i, j int) bool {
		if table[i].Count != table[j].Count {
			return table[i].Count > table[j].Count
		}
		return table[i].Message < table[j].Message
	})

	return table
}

// ExportHeader is the column header for ExportRows.
var ExportHeader = []string{
	"index", "id", "title", "price", "availability", "inventory_quantity",
	"errors", "warnings",
}

// ExportRows flattens the feed result into one row per record for tabular
// or CSV export. Indexes are one-based; error and warning messages are
// joined with " | ".
func (fr *FeedResult) ExportRows() [][]string {
	rows := make([][]string, 0, len(fr.Records))
	for _, r := range fr.Records {
		errs := make([]string, 0, len(r.Issues))
		warns := make([]string, 0, len(r.Issues))
		for _, issue := range r.Issues {
			switch {
			case issue.IsError():
				errs = append(errs, issue.Message)
			case issue.IsWarning():
				warns = append(warns, issue.Message)
			}
		}

		rows = append(rows, []string{
			strconv.Itoa(r.Index + 1),
			r.exportValue("id"),
			r.exportValue("title"),
			r.exportValue("price"),
			r.exportValue("availability"),
			r.exportValue("inventory_quantity"),
			strings.Join(errs, " | "),
			strings.Join(warns, " | "),
		})
	}
	return rows
}

// exportValue returns the observed raw value for a field, or "" if the
// field is absent. Unlike the field report there is no placeholder.
func (r *RecordResult) exportValue(field string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, obs := range r.observed {
		if obs.field == field {
			if !obs.present {
				return ""
			}
			return obs.value
		}
	}
	return ""
}
