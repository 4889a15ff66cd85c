package phase

import (
	"context"
	"regexp"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
	"github.com/deepakgargct/productfeedreview/pkg/scalar"
)

// Soft and hard length caps for the identity fields.
const (
	maxIDLength          = 100
	maxTitleLength       = 150
	maxDescriptionLength = 5000
	maxMPNLength         = 70
)

// gtinPattern is 8-14 digits, no separators.
var gtinPattern = regexp.MustCompile(`^[0-9]{8,14}$`)

// BasicRule validates the identity fields: id, title, description, link,
// and the gtin/mpn identity codes. description is the one recommended-tier
// length cap promoted to a hard error: a 5000+ character description is
// unusable downstream, not merely unusual.
type BasicRule struct{}

// NewBasicRule creates the identity rule module.
func NewBasicRule() *BasicRule {
	return &BasicRule{}
}

// Name returns the rule name.
func (r *BasicRule) Name() string {
	return "basic"
}

// Evaluate performs identity validation.
func (r *BasicRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	id, hasID := rec.GetString("id")
	if !hasID {
		issues = append(issues, MissingRequired("id", r.Name()))
	} else if runeLen(id) > maxIDLength {
		issues = append(issues, WarningIssue(fv.KindValue,
			"id exceeds recommended max length 100 characters", "id", r.Name()))
	}
	rctx.Observe("id")

	gtin, hasGTIN := rec.GetString("gtin")
	if !hasGTIN {
		issues = append(issues, WarningIssue(fv.KindRequired,
			"gtin is recommended (8-14 digits); if absent, mpn must be provided", "gtin", r.Name()))
	} else if !gtinPattern.MatchString(gtin) {
		issues = append(issues, WarningIssue(fv.KindFormat,
			"gtin should be 8-14 digits with no spaces or dashes", "gtin", r.Name()))
	}
	rctx.Observe("gtin")

	mpn, hasMPN := rec.GetString("mpn")
	if !hasGTIN && !hasMPN {
		issues = append(issues, ErrorIssue(fv.KindRequired,
			"Either 'gtin' or 'mpn' must be provided", "mpn", r.Name()))
	}
	if hasMPN && runeLen(mpn) > maxMPNLength {
		issues = append(issues, WarningIssue(fv.KindValue,
			"mpn exceeds recommended max length 70 characters", "mpn", r.Name()))
	}
	rctx.Observe("mpn")

	title, hasTitle := rec.GetString("title")
	if !hasTitle {
		issues = append(issues, MissingRequired("title", r.Name()))
	} else if runeLen(title) > maxTitleLength {
		issues = append(issues, WarningIssue(fv.KindValue,
			"title exceeds recommended max length 150 characters", "title", r.Name()))
	}
	rctx.Observe("title")

	desc, hasDesc := rec.GetString("description")
	if !hasDesc {
		issues = append(issues, MissingRequired("description", r.Name()))
	} else if runeLen(desc) > maxDescriptionLength {
		issues = append(issues, ErrorIssue(fv.KindValue,
			"description exceeds max length 5000 characters", "description", r.Name()))
	}
	rctx.Observe("description")

	link, hasLink := rec.GetString("link")
	switch {
	case !hasLink:
		issues = append(issues, MissingRequired("link", r.Name()))
	case !scalar.IsURL(link):
		issues = append(issues, ErrorIssue(fv.KindFormat,
			"link must be a valid http(s) URL", "link", r.Name()))
	case !scalar.IsHTTPS(link):
		issues = append(issues, WarningIssue(fv.KindFormat,
			"link should use HTTPS (preferred)", "link", r.Name()))
	}
	rctx.Observe("link")

	return issues
}
