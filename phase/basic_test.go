package phase

import (
	"context"
	"strings"
	"testing"

	fv "github.com/deepakgargct/productfeedreview"
)

func validIdentityFields() map[string]any {
	return map[string]any{
		"id":          "sku-1",
		"gtin":        "01234567890123",
		"title":       "Widget",
		"description": "A fine widget.",
		"link":        "https://example.com/p/sku-1",
	}
}

func TestBasicRuleCleanRecord(t *testing.T) {
	rctx := evalContext(t, validIdentityFields())

	issues := NewBasicRule().Evaluate(context.Background(), rctx)
	if len(issues) != 0 {
		t.Errorf("expected no issues, got %v", messages(issues))
	}
}

func TestBasicRuleRequiredFields(t *testing.T) {
	rctx := evalContext(t, map[string]any{})

	issues := NewBasicRule().Evaluate(context.Background(), rctx)

	for _, want := range []string{
		"Missing required field: id",
		"Missing required field: title",
		"Missing required field: description",
		"Missing required field: link",
		"Either 'gtin' or 'mpn' must be provided",
	} {
		if !hasMessage(issues, want) {
			t.Errorf("missing %q in %v", want, messages(issues))
		}
		if got := severityOf(t, issues, want); got != fv.SeverityError {
			t.Errorf("%q severity = %s, want error", want, got)
		}
	}
	// gtin absence also warns on its own.
	if !hasMessage(issues, "gtin is recommended (8-14 digits); if absent, mpn must be provided") {
		t.Errorf("missing gtin recommendation warning in %v", messages(issues))
	}
}

func TestBasicRuleMPNSatisfiesIdentityCode(t *testing.T) {
	fields := validIdentityFields()
	delete(fields, "gtin")
	fields["mpn"] = "WDG-100"
	rctx := evalContext(t, fields)

	issues := NewBasicRule().Evaluate(context.Background(), rctx)
	if hasMessage(issues, "Either 'gtin' or 'mpn' must be provided") {
		t.Errorf("mpn present should satisfy the identity code requirement: %v", messages(issues))
	}
}

func TestBasicRuleGTINFormat(t *testing.T) {
	tests := []struct {
		name string
		gtin string
		warn bool
	}{
		{"8 digits", "12345678", false},
		{"14 digits", "12345678901234", false},
		{"too short", "1234567", true},
		{"too long", "123456789012345", true},
		{"dashes", "1234-5678-9012", true},
		{"letters", "12345678A", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validIdentityFields()
			fields["gtin"] = tt.gtin
			rctx := evalContext(t, fields)

			issues := NewBasicRule().Evaluate(context.Background(), rctx)
			got := hasMessage(issues, "gtin should be 8-14 digits with no spaces or dashes")
			if got != tt.warn {
				t.Errorf("gtin %q warn = %v, want %v", tt.gtin, got, tt.warn)
			}
		})
	}
}

func TestBasicRuleLengthCaps(t *testing.T) {
	fields := validIdentityFields()
	fields["title"] = strings.Repeat("x", 151)
	fields["description"] = strings.Repeat("y", 5001)
	rctx := evalContext(t, fields)

	issues := NewBasicRule().Evaluate(context.Background(), rctx)

	titleMsg := "title exceeds recommended max length 150 characters"
	if got := severityOf(t, issues, titleMsg); got != fv.SeverityWarning {
		t.Errorf("long title severity = %s, want warning", got)
	}
	// The description cap is the one length limit that is a hard error.
	descMsg := "description exceeds max length 5000 characters"
	if got := severityOf(t, issues, descMsg); got != fv.SeverityError {
		t.Errorf("long description severity = %s, want error", got)
	}
}

func TestBasicRuleLengthCapsCountRunes(t *testing.T) {
	fields := validIdentityFields()
	// 150 multi-byte characters is exactly at the cap, not over it.
	fields["title"] = strings.Repeat("ü", 150)
	rctx := evalContext(t, fields)

	issues := NewBasicRule().Evaluate(context.Background(), rctx)
	if hasMessage(issues, "title exceeds recommended max length 150 characters") {
		t.Error("150 runes should not exceed the 150-character cap")
	}
}

func TestBasicRuleLink(t *testing.T) {
	tests := []struct {
		name string
		link string
		want string
	}{
		{"https", "https://example.com/p", ""},
		{"http warns", "http://example.com/p", "link should use HTTPS (preferred)"},
		{"not a URL", "example.com/p", "link must be a valid http(s) URL"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := validIdentityFields()
			fields["link"] = tt.link
			rctx := evalContext(t, fields)

			issues := NewBasicRule().Evaluate(context.Background(), rctx)
			if tt.want == "" {
				if len(issues) != 0 {
					t.Errorf("expected no issues, got %v", messages(issues))
				}
				return
			}
			if !hasMessage(issues, tt.want) {
				t.Errorf("missing %q in %v", tt.want, messages(issues))
			}
		})
	}
}
