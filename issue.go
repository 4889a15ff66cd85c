package feedvalidator

// IssueSeverity represents the severity of a validation issue.
type IssueSeverity string

const (
	// SeverityFatal indicates the feed could not be processed at all.
	SeverityFatal IssueSeverity = "fatal"
	// SeverityError indicates a violation that blocks feed acceptance.
	SeverityError IssueSeverity = "error"
	// SeverityWarning indicates a recommended-field gap or soft format issue.
	SeverityWarning IssueSeverity = "warning"
	// SeverityInformation indicates a neutral observation.
	SeverityInformation IssueSeverity = "information"
)

// IssueKind categorizes what a validation issue is about.
type IssueKind string

const (
	// KindRequired indicates a required field is missing or empty.
	KindRequired IssueKind = "required"
	// KindValue indicates a field value is out of range or not allowed.
	KindValue IssueKind = "value"
	// KindFormat indicates a field value does not parse as its expected shape.
	KindFormat IssueKind = "format"
	// KindBusinessRule indicates a cross-field rule violation.
	KindBusinessRule IssueKind = "business-rule"
	// KindProcessing indicates a rule could not evaluate a field.
	KindProcessing IssueKind = "processing"
	// KindInformational indicates informational content.
	KindInformational IssueKind = "informational"
)

// Issue represents a single validation issue for one record.
//
// Message always contains the offending field name as a substring; the
// field report and any downstream presentation rely on that for
// field-to-message attribution.
type Issue struct {
	// Severity of the issue (error, warning, information)
	Severity IssueSeverity `json:"severity"`

	// Kind identifying the type of issue
	Kind IssueKind `json:"kind"`

	// Message contains human-readable details, naming the field
	Message string `json:"message"`

	// Field is the primary field the issue refers to
	Field string `json:"field,omitempty"`

	// Rule is the rule module that generated this issue
	Rule string `json:"rule,omitempty"`
}

// IsError returns true if this is an error or fatal issue.
func (i Issue) IsError() bool {
	return i.Severity == SeverityError || i.Severity == SeverityFatal
}

// IsWarning returns true if this is a warning.
func (i Issue) IsWarning() bool {
	return i.Severity == SeverityWarning
}

// IsInfo returns true if this is an informational issue.
func (i Issue) IsInfo() bool {
	return i.Severity == SeverityInformation
}

// String returns a human-readable representation of the issue.
func (i Issue) String() string {
	return string(i.Severity) + ": " + i.Message
}

// IssueBuilder provides a fluent API for building issues.
type IssueBuilder struct {
	issue Issue
}

// NewIssue creates a new IssueBuilder.
func NewIssue(severity IssueSeverity, kind IssueKind) *IssueBuilder {
	return &IssueBuilder{
		issue: Issue{
			Severity: severity,
			Kind:     kind,
		},
	}
}

// Error creates an error issue builder.
func Error(kind IssueKind) *IssueBuilder {
	return NewIssue(SeverityError, kind)
}

// Warning creates a warning issue builder.
func Warning(kind IssueKind) *IssueBuilder {
	return NewIssue(SeverityWarning, kind)
}

// Info creates an informational issue builder.
func Info(kind IssueKind) *IssueBuilder {
	return NewIssue(SeverityInformation, kind)
}

// Message sets the diagnostic message.
func (b *IssueBuilder) Message(msg string) *IssueBuilder {
	b.issue.Message = msg
	return b
}

// Field sets the field the issue refers to.
func (b *IssueBuilder) Field(field string) *IssueBuilder {
	b.issue.Field = field
	return b
}

// Rule sets the rule module name.
func (b *IssueBuilder) Rule(rule string) *IssueBuilder {
	b.issue.Rule = rule
	return b
}

// Build returns the constructed issue.
func (b *IssueBuilder) Build() Issue {
	return b.issue
}
