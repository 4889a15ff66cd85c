package feedvalidator

import "testing"

func TestIssueBuilder(t *testing.T) {
	issue := Error(KindFormat).
		Message("link must be a valid http(s) URL").
		Field("link").
		Rule("basic").
		Build()

	if issue.Severity != SeverityError || issue.Kind != KindFormat {
		t.Errorf("issue = %+v", issue)
	}
	if issue.Field != "link" || issue.Rule != "basic" {
		t.Errorf("issue = %+v", issue)
	}
	if !issue.IsError() || issue.IsWarning() || issue.IsInfo() {
		t.Error("severity predicates disagree with SeverityError")
	}
}

func TestIssueSeverityPredicates(t *testing.T) {
	tests := []struct {
		severity IssueSeverity
		isError  bool
		isWarn   bool
		isInfo   bool
	}{
		{SeverityFatal, true, false, false},
		{SeverityError, true, false, false},
		{SeverityWarning, false, true, false},
		{SeverityInformation, false, false, true},
	}

	for _, tt := range tests {
		issue := Issue{Severity: tt.severity}
		if issue.IsError() != tt.isError || issue.IsWarning() != tt.isWarn || issue.IsInfo() != tt.isInfo {
			t.Errorf("%s predicates wrong", tt.severity)
		}
	}
}

func TestIssueString(t *testing.T) {
	issue := Warning(KindValue).Message("title exceeds recommended max length 150 characters").Build()
	want := "warning: title exceeds recommended max length 150 characters"
	if issue.String() != want {
		t.Errorf("String() = %q, want %q", issue.String(), want)
	}
}
