// Package record defines the normalized product record: a flat,
// case-insensitive field-value mapping produced by the loader and read by
// the rule modules. Records are read-only after construction.
package record

import (
	"encoding/json"
	"sort"
	"strconv"
	"strings"
)

// Record is one product's field-value mapping. Keys are canonicalized to
// lower case once at construction, so lookups are O(1) and
// case-insensitive. Values are strings, numbers (json.Number or float64),
// booleans, nested mappings or lists. Unknown fields are preserved but
// ignored by rules that do not reference them.
type Record struct {
	fields map[string]any
}

// New builds a Record from raw fields. Keys are lower-cased; when two keys
// differ only by case, the first in sorted original-key order wins, which
// keeps construction deterministic.
func New(raw map[string]any) Record {
	fields := make(map[string]any, len(raw))

	keys := make([]string, 0, len(raw))
	for k := range raw {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	for _, k := range keys {
		lk := strings.ToLower(k)
		if _, exists := fields[lk]; !exists {
			fields[lk] = raw[k]
		}
	}
	return Record{fields: fields}
}

// Get returns the raw value for a field, matched case-insensitively.
func (r Record) Get(key string) (any, bool) {
	v, ok := r.fields[strings.ToLower(key)]
	return v, ok
}

// GetString returns the field value rendered as a string. ok is false when
// the field is absent or empty.
func (r Record) GetString(key string) (string, bool) {
	v, ok := r.Get(key)
	if !ok || !IsPresent(v) {
		return "", false
	}
	return Stringify(v), true
}

// First returns the value of the first present field among the given
// aliases, e.g. ("product_category", "category", "google_product_category").
func (r Record) First(keys ...string) (string, bool) {
	for _, k := range keys {
		if s, ok := r.GetString(k); ok {
			return s, true
		}
	}
	return "", false
}

// Has reports whether the field is present with a non-empty value.
func (r Record) Has(key string) bool {
	v, ok := r.Get(key)
	return ok && IsPresent(v)
}

// Len returns the number of fields.
func (r Record) Len() int {
	return len(r.fields)
}

// Keys returns all field names in sorted order.
func (r Record) Keys() []string {
	keys := make([]string, 0, len(r.fields))
	for k := range r.fields {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// IsPresent reports whether a raw value counts as present: everything
// except nil, the empty string and the empty list.
func IsPresent(v any) bool {
	switch t := v.(type) {
	case nil:
		return false
	case string:
		return t != ""
	case []any:
		return len(t) > 0
	default:
		return true
	}
}

// IsTruthy reports whether a flag value is enabled: boolean true or the
// lower-case string "true". Anything else, including the string "false"
// and absent values, is not truthy.
func IsTruthy(v any) bool {
	switch t := v.(type) {
	case bool:
		return t
	case string:
		return t == "true"
	default:
		return false
	}
}

// Stringify renders a raw field value for parsing and display. Nested
// mappings and lists render as compact JSON so that structured values
// (e.g. {"value": 79.99, "currency": "USD"}) survive the round trip into
// the scalar parsers.
func Stringify(v any) string {
	switch t := v.(type) {
	case nil:
		return ""
	case string:
		return t
	case json.Number:
		return t.String()
	case bool:
		return strconv.FormatBool(t)
	case float64:
		return strconv.FormatFloat(t, 'f', -1, 64)
	case int:
		return strconv.Itoa(t)
	case int64:
		return strconv.FormatInt(t, 10)
	default:
		b, err := json.Marshal(t)
		if err != nil {
			return ""
		}
		return string(b)
	}
}
