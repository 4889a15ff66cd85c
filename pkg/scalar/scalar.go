// Package scalar provides tolerant parsers for the ambiguous scalar
// encodings that appear in product feeds: URLs, ISO-8601 dates, prices
// with optional currency codes, integers and colon-delimited shipping
// tuples. All functions are pure; policy (which fields are required, which
// formats are errors) lives in the rule modules, not here.
package scalar

import (
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/buger/jsonparser"
	"github.com/shopspring/decimal"
)

// IsURL reports whether s parses as an absolute URL with scheme http or
// https and a non-empty host.
func IsURL(s string) bool {
	if s == "" {
		return false
	}
	u, err := url.Parse(s)
	if err != nil {
		return false
	}
	return (u.Scheme == "http" || u.Scheme == "https") && u.Host != ""
}

// IsHTTPS reports whether s is an https URL. Callers should check IsURL
// first; a non-URL is trivially not https.
func IsHTTPS(s string) bool {
	return strings.HasPrefix(strings.ToLower(s), "https")
}

// isoLayouts is the exact accept set for ISO-8601 values: a full
// date-time with or without zone offset, or a plain date.
var isoLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02",
}

// ParseISODate parses a full ISO-8601 date-time or a plain YYYY-MM-DD
// date. Values without a zone offset are interpreted as UTC.
func ParseISODate(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range isoLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// IsISODate reports whether s would parse with ParseISODate. The two
// functions accept exactly the same input set.
func IsISODate(s string) bool {
	_, ok := ParseISODate(s)
	return ok
}

// Price is a parsed price. Currency is empty when the input carried no
// currency code; whether that is acceptable is up to the caller.
type Price struct {
	Amount   decimal.Decimal
	Currency string
}

// pricePattern matches "<number>[ <CUR>]" with an optional 3-letter
// uppercase currency code.
var pricePattern = regexp.MustCompile(`^\s*([0-9]+(?:\.[0-9]+)?)\s*([A-Z]{3})?\s*$`)

// currencyPattern matches a bare 3-letter uppercase currency code.
var currencyPattern = regexp.MustCompile(`^[A-Z]{3}$`)

// ParsePrice parses a price string, trying three tiers in order:
//
//  1. "<number>[ ]<CUR>?" — amount required, currency optional.
//  2. A structured object with a "value" key and optional "currency" key,
//     e.g. {"value": 79.99, "currency": "USD"}.
//  3. Whitespace tokens: first token as the amount, second token as the
//     currency if it is a 3-letter uppercase code.
//
// Returns ok=false if all three tiers fail.
func ParsePrice(s string) (Price, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Price{}, false
	}

	if m := pricePattern.FindStringSubmatch(s); m != nil {
		amount, err := decimal.NewFromString(m[1])
		if err == nil {
			return Price{Amount: amount, Currency: m[2]}, true
		}
	}

	if p, ok := parseStructuredPrice([]byte(s)); ok {
		return p, true
	}

	parts := strings.Fields(s)
	if len(parts) == 0 {
		return Price{}, false
	}
	amount, err := decimal.NewFromString(parts[0])
	if err != nil {
		return Price{}, false
	}
	p := Price{Amount: amount}
	if len(parts) > 1 && currencyPattern.MatchString(parts[1]) {
		p.Currency = parts[1]
	}
	return p, true
}

// parseStructuredPrice handles the {"value": ..., "currency": ...} shape.
// The value may be a JSON number or a numeric string.
func parseStructuredPrice(data []byte) (Price, bool) {
	raw, typ, _, err := jsonparser.Get(data, "value")
	if err != nil {
		return Price{}, false
	}

	var amount decimal.Decimal
	switch typ {
	case jsonparser.Number, jsonparser.String:
		amount, err = decimal.NewFromString(string(raw))
		if err != nil {
			return Price{}, false
		}
	default:
		return Price{}, false
	}

	p := Price{Amount: amount}
	if cur, err := jsonparser.GetString(data, "currency"); err == nil {
		p.Currency = cur
	}
	return p, true
}

// IsNonNegativeInt reports whether s converts to an integer >= 0.
// Negative integers, fractions and non-numeric strings fail.
func IsNonNegativeInt(s string) bool {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	return err == nil && n >= 0
}

// ShippingTupleMinParts is the minimum number of colon-delimited parts of
// a well-formed shipping entry: country:region:service_class:price.
const ShippingTupleMinParts = 4

// SplitShippingEntry splits a shipping entry on ":". Callers validate the
// part count against ShippingTupleMinParts and report the literal
// offending substring on failure.
func SplitShippingEntry(s string) []string {
	return strings.Split(s, ":")
}
