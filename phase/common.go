// Package phase implements the Balanced Mode rule modules, one per field
// cluster. Every rule is a stateless pure function of one record: errors
// for required and conditionally-required fields, warnings for
// recommended fields.
package phase

import (
	"strconv"
	"strings"
	"unicode/utf8"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/record"
)

// BaseIssue creates an issue with common fields set.
func BaseIssue(severity fv.IssueSeverity, kind fv.IssueKind, message, field, rule string) fv.Issue {
	return fv.Issue{
		Severity: severity,
		Kind:     kind,
		Message:  message,
		Field:    field,
		Rule:     rule,
	}
}

// ErrorIssue creates an error issue.
func ErrorIssue(kind fv.IssueKind, message, field, rule string) fv.Issue {
	return BaseIssue(fv.SeverityError, kind, message, field, rule)
}

// WarningIssue creates a warning issue.
func WarningIssue(kind fv.IssueKind, message, field, rule string) fv.Issue {
	return BaseIssue(fv.SeverityWarning, kind, message, field, rule)
}

// InformationIssue creates an informational issue.
func InformationIssue(kind fv.IssueKind, message, field, rule string) fv.Issue {
	return BaseIssue(fv.SeverityInformation, kind, message, field, rule)
}

// MissingRequired creates the canonical missing-required-field error.
func MissingRequired(field, rule string) fv.Issue {
	return ErrorIssue(fv.KindRequired, "Missing required field: "+field, field, rule)
}

// runeLen counts characters, not bytes; length caps are character caps.
func runeLen(s string) int {
	return utf8.RuneCountInString(s)
}

// isFloat reports whether s parses as a float.
func isFloat(s string) bool {
	_, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	return err == nil
}

// isInt reports whether s parses as an integer.
func isInt(s string) bool {
	_, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil
}

// multiValues normalizes a field that may hold a single string, a
// comma-joined string or a list into individual string values.
func multiValues(v any) []string {
	switch t := v.(type) {
	case []any:
		out := make([]string, 0, len(t))
		for _, item := range t {
			out = append(out, record.Stringify(item))
		}
		return out
	case string:
		if strings.Contains(t, ",") {
			parts := strings.Split(t, ",")
			out := make([]string, 0, len(parts))
			for _, p := range parts {
				if p = strings.TrimSpace(p); p != "" {
					out = append(out, p)
				}
			}
			return out
		}
		return []string{t}
	default:
		return []string{record.Stringify(t)}
	}
}
