package phase

import (
	"testing"
	"time"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
	"github.com/deepakgargct/productfeedreview/record"
)

// testNow is the fixed reference time used by all rule tests.
var testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func evalContext(t *testing.T, raw map[string]any) *pipeline.Context {
	t.Helper()
	return pipeline.NewContext(record.New(raw), 0, testNow)
}

func hasMessage(issues []fv.Issue, msg string) bool {
	for _, issue := range issues {
		if issue.Message == msg {
			return true
		}
	}
	return false
}

func severityOf(t *testing.T, issues []fv.Issue, msg string) fv.IssueSeverity {
	t.Helper()
	for _, issue := range issues {
		if issue.Message == msg {
			return issue.Severity
		}
	}
	t.Fatalf("no issue with message %q; got %v", msg, messages(issues))
	return ""
}

func messages(issues []fv.Issue) []string {
	out := make([]string, 0, len(issues))
	for _, issue := range issues {
		out = append(out, issue.Message)
	}
	return out
}

func countErrors(issues []fv.Issue) int {
	n := 0
	for _, issue := range issues {
		if issue.IsError() {
			n++
		}
	}
	return n
}
