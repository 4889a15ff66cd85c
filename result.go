package feedvalidator

import (
	"strings"
	"sync"
)

// FieldStatus is the derived status of a field in the field report.
type FieldStatus string

const (
	// FieldPresent means the field is present and no error references it.
	FieldPresent FieldStatus = "present"
	// FieldMissing means the field is absent or empty.
	FieldMissing FieldStatus = "missing"
	// FieldInvalid means at least one error message references the field.
	// Invalid wins over Present.
	FieldInvalid FieldStatus = "invalid"
)

// MissingValuePlaceholder is shown for absent field values in reports.
const MissingValuePlaceholder = "—"

// DefaultReportFields is the fields-of-interest list for the field
// report. Every listed field gets a row even when no rule inspects it;
// rows for fields a rule did inspect keep their rule-order position.
var DefaultReportFields = []string{
	"id", "title", "description", "link", "image_link", "additional_image_link",
	"price", "sale_price", "sale_price_effective_date", "unit_pricing_measure", "pricing_trend",
	"availability", "availability_date", "inventory_quantity", "expiration_date",
	"condition", "product_category", "brand", "material", "dimensions", "length", "width", "height", "weight",
	"item_group_id", "item_group_title", "color", "size", "size_system", "gender", "offer_id",
	"custom_variant1_category", "custom_variant1_option", "custom_variant2_category", "custom_variant2_option",
	"shipping", "shipping_weight", "shipping_label", "tax", "seller_name", "seller_tos", "seller_privacy_policy",
	"enable_search", "enable_checkout", "geo_availability", "geo_price", "language", "updated_at", "created_at",
	"video_link", "model_3d_link", "raw_review_data", "q_and_a", "schema_org_json_ld", "metadata",
}

// FieldRow is one row of the per-record field report.
type FieldRow struct {
	// Field is the field name.
	Field string `json:"field"`

	// Present is true if the record carried a non-empty value.
	Present bool `json:"present"`

	// Value is the raw value, or MissingValuePlaceholder if absent.
	Value string `json:"value"`

	// Status is the derived field status.
	Status FieldStatus `json:"status"`

	// Note holds the first matching diagnostic message, errors first.
	Note string `json:"note,omitempty"`
}

// fieldObservation is a raw field sighting recorded by a rule module,
// before issue attribution derives the final row.
type fieldObservation struct {
	field   string
	value   string
	present bool
}

// RecordResult contains the outcome of validating a single product record.
// Use Release() to return it to the pool when done for better performance.
type RecordResult struct {
	// Valid is true if no errors were found (warnings are allowed)
	Valid bool `json:"valid"`

	// Index is the zero-based position of the record in the feed
	Index int `json:"index"`

	// RecordID is the record's id field value, if present
	RecordID string `json:"recordId,omitempty"`

	// Issues contains all validation issues found
	Issues []Issue `json:"issues,omitempty"`

	// Fields is the derived field report; populated by FinishFieldReport
	Fields []FieldRow `json:"fields,omitempty"`

	// observed holds raw field sightings in rule order
	observed []fieldObservation

	// mu protects concurrent access to Issues
	mu sync.Mutex
}

// recordResultPool holds reusable RecordResult instances.
var recordResultPool = sync.Pool{
	New: func() any {
		return &RecordResult{
			Issues:   make([]Issue, 0, 16),
			observed: make([]fieldObservation, 0, 32),
		}
	},
}

// AcquireRecordResult gets a RecordResult from the pool.
// The result starts as valid with no issues.
func AcquireRecordResult() *RecordResult {
	r := recordResultPool.Get().(*RecordResult)
	r.Reset()
	return r
}

// Release returns the RecordResult to the pool.
// After calling Release, the RecordResult should not be used.
func (r *RecordResult) Release() {
	if r == nil {
		return
	}
	// Don't return results with oversized issue slices
	if cap(r.Issues) <= 1024 {
		recordResultPool.Put(r)
	}
}

// Reset clears the result for reuse.
func (r *RecordResult) Reset() {
	r.Valid = true
	r.Index = 0
	r.RecordID = ""
	r.Issues = r.Issues[:0]
	r.Fields = nil
	r.observed = r.observed[:0]
}

// NewRecordResult creates a new (non-pooled) result. Results retained in a
// FeedResult should be created with this rather than AcquireRecordResult.
func NewRecordResult(index int) *RecordResult {
	return &RecordResult{
		Valid:    true,
		Index:    index,
		Issues:   make([]Issue, 0, 8),
		observed: make([]fieldObservation, 0, 32),
	}
}

// AddIssue adds a validation issue to the result.
// This method is thread-safe.
func (r *RecordResult) AddIssue(issue Issue) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Issues = append(r.Issues, issue)
	if issue.IsError() {
		r.Valid = false
	}
}

// AddIssues adds multiple issues to the result.
// This method is thread-safe.
func (r *RecordResult) AddIssues(issues []Issue) {
	if len(issues) == 0 {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	r.Issues = append(r.Issues, issues...)
	for _, issue := range issues {
		if issue.IsError() {
			r.Valid = false
			break
		}
	}
}

// Observe records a raw field sighting for the field report.
// value should already be stringified; present is false for absent or
// empty values. Rules call this once per field they cover, in rule order.
func (r *RecordResult) Observe(field, value string, present bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.observed = append(r.observed, fieldObservation{
		field:   field,
		value:   value,
		present: present,
	})
}

// FinishFieldReport derives the field report from the observed fields and
// the accumulated issues. An error message referencing a field name makes
// that field Invalid regardless of presence; the note is the first matching
// error, else the first matching warning.
func (r *RecordResult) FinishFieldReport() {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.Fields = make([]FieldRow, 0, len(r.observed))
	for _, obs := range r.observed {
		row := FieldRow{
			Field:   obs.field,
			Present: obs.present,
			Value:   obs.value,
		}
		if !obs.present {
			row.Value = MissingValuePlaceholder
			row.Status = FieldMissing
		} else {
			row.Status = FieldPresent
		}

		needle := strings.ToLower(obs.field)
		for _, issue := range r.Issues {
			if issue.IsError() && strings.Contains(strings.ToLower(issue.Message), needle) {
				row.Status = FieldInvalid
				row.Note = issue.Message
				break
			}
		}
		if row.Note == "" {
			for _, issue := range r.Issues {
				if issue.IsWarning() && strings.Contains(strings.ToLower(issue.Message), needle) {
					row.Note = issue.Message
					break
				}
			}
		}

		r.Fields = append(r.Fields, row)
	}
}

// HasErrors returns true if there are any error or fatal issues.
func (r *RecordResult) HasErrors() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, issue := range r.Issues {
		if issue.IsError() {
			return true
		}
	}
	return false
}

// HasWarnings returns true if there are any warning issues.
func (r *RecordResult) HasWarnings() bool {
	r.mu.Lock()
	defer r.mu.Unlock()

	for _, issue := range r.Issues {
		if issue.IsWarning() {
			return true
		}
	}
	return false
}

// ErrorCount returns the number of error and fatal issues.
func (r *RecordResult) ErrorCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, issue := range r.Issues {
		if issue.IsError() {
			count++
		}
	}
	return count
}

// WarningCount returns the number of warning issues.
func (r *RecordResult) WarningCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	count := 0
	for _, issue := range r.Issues {
		if issue.IsWarning() {
			count++
		}
	}
	return count
}

// Errors returns all error and fatal issues.
func (r *RecordResult) Errors() []Issue {
	r.mu.Lock()
	defer r.mu.Unlock()

	var errors []Issue
	for _, issue := range r.Issues {
		if issue.IsError() {
			errors = append(errors, issue)
		}
	}
	return errors
}

// Warnings returns all warning issues.
func (r *RecordResult) Warnings() []Issue {
	r.mu.Lock()
	defer r.mu.Unlock()

	var warnings []Issue
	for _, issue := range r.Issues {
		if issue.IsWarning() {
			warnings = append(warnings, issue)
		}
	}
	return warnings
}

// Infos returns all informational issues.
func (r *RecordResult) Infos() []Issue {
	r.mu.Lock()
	defer r.mu.Unlock()

	var infos []Issue
	for _, issue := range r.Issues {
		if issue.IsInfo() {
			infos = append(infos, issue)
		}
	}
	return infos
}

// Clone creates a copy of the result (not pooled).
func (r *RecordResult) Clone() *RecordResult {
	r.mu.Lock()
	defer r.mu.Unlock()

	clone := &RecordResult{
		Valid:    r.Valid,
		Index:    r.Index,
		RecordID: r.RecordID,
		Issues:   make([]Issue, len(r.Issues)),
		Fields:   make([]FieldRow, len(r.Fields)),
		observed: make([]fieldObservation, len(r.observed)),
	}
	copy(clone.Issues, r.Issues)
	copy(clone.Fields, r.Fields)
	copy(clone.observed, r.observed)
	return clone
}
