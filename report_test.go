package feedvalidator

import (
	"reflect"
	"testing"
)

func resultWithIssues(index int, issues ...Issue) *RecordResult {
	r := NewRecordResult(index)
	for _, issue := range issues {
		r.AddIssue(issue)
	}
	return r
}

func TestNewFeedResultAggregation(t *testing.T) {
	results := []*RecordResult{
		resultWithIssues(0,
			Error(KindRequired).Message("Missing required field: title").Build(),
			Warning(KindValue).Message("brand is recommended for most products (max 70 chars)").Build()),
		resultWithIssues(1),
		nil, // skipped by an early abort
	}

	fr := NewFeedResult(3, results)

	if fr.ReportID == "" {
		t.Error("ReportID should be set")
	}
	if fr.TotalRecords != 3 {
		t.Errorf("TotalRecords = %d, want 3", fr.TotalRecords)
	}
	if fr.EvaluatedRecords != 2 {
		t.Errorf("EvaluatedRecords = %d, want 2", fr.EvaluatedRecords)
	}
	if fr.TotalErrors != 1 || fr.TotalWarnings != 1 {
		t.Errorf("totals = %d errors, %d warnings", fr.TotalErrors, fr.TotalWarnings)
	}
	if !fr.HasErrors() {
		t.Error("HasErrors should be true")
	}
}

func TestIssueFrequency(t *testing.T) {
	missingTitle := "Missing required field: title"
	badPrice := "price must include an ISO 4217 currency code (e.g., USD)"

	fr := NewFeedResult(3, []*RecordResult{
		resultWithIssues(0, Error(KindRequired).Message(missingTitle).Build()),
		resultWithIssues(1,
			Error(KindRequired).Message(missingTitle).Build(),
			Error(KindValue).Message(badPrice).Build()),
		resultWithIssues(2, Info(KindInformational).Message("schema_org_json_ld present: good for structured data").Build()),
	})

	table := fr.IssueFrequency()

	// Identical messages collapse into one entry; informational issues
	// are excluded from the table.
	want := []IssueCount{
		{Message: missingTitle, Count: 2},
		{Message: badPrice, Count: 1},
	}
	if !reflect.DeepEqual(table, want) {
		t.Errorf("IssueFrequency = %v, want %v", table, want)
	}
}

func TestIssueFrequencyTieBreak(t *testing.T) {
	fr := NewFeedResult(1, []*RecordResult{
		resultWithIssues(0,
			Warning(KindValue).Message("b message").Build(),
			Warning(KindValue).Message("a message").Build()),
	})

	table := fr.IssueFrequency()
	if len(table) != 2 || table[0].Message != "a message" {
		t.Errorf("ties should sort by message: %v", table)
	}
}

func TestExportRows(t *testing.T) {
	r := NewRecordResult(0)
	r.RecordID = "sku-1"
	r.Observe("id", "sku-1", true)
	r.Observe("title", "Widget", true)
	r.Observe("price", "79.99", true)
	r.Observe("availability", "", false)
	r.Observe("inventory_quantity", "5", true)
	r.AddIssue(Error(KindRequired).Message("Missing required field: availability").Build())
	r.AddIssue(Error(KindValue).Message("price must include an ISO 4217 currency code (e.g., USD)").Build())
	r.AddIssue(Warning(KindRequired).Message("material is recommended").Build())

	fr := NewFeedResult(1, []*RecordResult{r})
	rows := fr.ExportRows()

	if len(rows) != 1 {
		t.Fatalf("got %d rows, want 1", len(rows))
	}
	row := rows[0]
	if len(row) != len(ExportHeader) {
		t.Fatalf("row has %d columns, header has %d", len(row), len(ExportHeader))
	}
	if row[0] != "1" {
		t.Errorf("index column = %q, want 1-based", row[0])
	}
	if row[1] != "sku-1" || row[2] != "Widget" || row[3] != "79.99" {
		t.Errorf("value columns = %v", row[:4])
	}
	if row[4] != "" {
		t.Errorf("absent availability should export empty, got %q", row[4])
	}
	wantErrs := "Missing required field: availability | price must include an ISO 4217 currency code (e.g., USD)"
	if row[6] != wantErrs {
		t.Errorf("errors column = %q", row[6])
	}
	if row[7] != "material is recommended" {
		t.Errorf("warnings column = %q", row[7])
	}
}
