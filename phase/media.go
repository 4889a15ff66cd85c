package phase

import (
	"context"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
	"github.com/deepakgargct/productfeedreview/pkg/scalar"
)

// MediaRule validates the media link fields. image_link is required; the
// optional link fields accept a single URL, a comma-joined string or a
// list, and the first invalid element produces one warning for the whole
// field rather than one per element.
type MediaRule struct{}

// NewMediaRule creates the media rule module.
func NewMediaRule() *MediaRule {
	return &MediaRule{}
}

// Name returns the rule name.
func (r *MediaRule) Name() string {
	return "media"
}

// Evaluate performs media validation.
func (r *MediaRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	img, hasImg := rec.GetString("image_link")
	switch {
	case !hasImg:
		issues = append(issues, MissingRequired("image_link", r.Name()))
	case !scalar.IsURL(img):
		issues = append(issues, ErrorIssue(fv.KindFormat,
			"image_link must be a valid http(s) URL", "image_link", r.Name()))
	case !scalar.IsHTTPS(img):
		issues = append(issues, WarningIssue(fv.KindFormat,
			"image_link should use HTTPS (preferred)", "image_link", r.Name()))
	}
	rctx.Observe("image_link")

	if v, ok := rec.Get("additional_image_link"); ok {
		if _, broken := firstInvalidURL(v); broken {
			issues = append(issues, WarningIssue(fv.KindFormat,
				"additional_image_link contains an invalid URL", "additional_image_link", r.Name()))
		}
	}
	rctx.Observe("additional_image_link")

	if v, ok := rec.Get("video_link"); ok {
		if _, broken := firstInvalidURL(v); broken {
			issues = append(issues, WarningIssue(fv.KindFormat,
				"video_link contains an invalid URL", "video_link", r.Name()))
		}
	}
	rctx.Observe("video_link")

	if m3d, ok := rec.GetString("model_3d_link"); ok && !scalar.IsURL(m3d) {
		issues = append(issues, WarningIssue(fv.KindFormat,
			"model_3d_link is not a valid URL", "model_3d_link", r.Name()))
	}
	rctx.Observe("model_3d_link")

	return issues
}

// firstInvalidURL checks every element of a multi-valued link field and
// returns the first element failing the URL parser, short-circuiting.
func firstInvalidURL(v any) (string, bool) {
	for _, candidate := range multiValues(v) {
		if !scalar.IsURL(candidate) {
			return candidate, true
		}
	}
	return "", false
}
