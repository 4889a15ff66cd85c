package phase

import (
	"context"
	"testing"

	fv "github.com/deepakgargct/productfeedreview"
)

func TestMediaRuleImageLink(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  string
		sev   fv.IssueSeverity
	}{
		{"https", "https://cdn.example.com/1.jpg", "", ""},
		{"absent", nil, "Missing required field: image_link", fv.SeverityError},
		{"not a URL", "1.jpg", "image_link must be a valid http(s) URL", fv.SeverityError},
		{"http", "http://cdn.example.com/1.jpg", "image_link should use HTTPS (preferred)", fv.SeverityWarning},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fields := map[string]any{}
			if tt.value != nil {
				fields["image_link"] = tt.value
			}
			rctx := evalContext(t, fields)

			issues := NewMediaRule().Evaluate(context.Background(), rctx)
			if tt.want == "" {
				if len(issues) != 0 {
					t.Errorf("expected no issues, got %v", messages(issues))
				}
				return
			}
			if got := severityOf(t, issues, tt.want); got != tt.sev {
				t.Errorf("severity = %s, want %s", got, tt.sev)
			}
		})
	}
}

func TestMediaRuleAdditionalImages(t *testing.T) {
	tests := []struct {
		name  string
		value any
		want  bool
	}{
		{"single valid", "https://cdn.example.com/2.jpg", false},
		{"comma list valid", "https://cdn.example.com/2.jpg, https://cdn.example.com/3.jpg", false},
		{"comma list one bad", "https://cdn.example.com/2.jpg, not-a-url", true},
		{"json list one bad", []any{"https://cdn.example.com/2.jpg", "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rctx := evalContext(t, map[string]any{
				"image_link":            "https://cdn.example.com/1.jpg",
				"additional_image_link": tt.value,
			})

			issues := NewMediaRule().Evaluate(context.Background(), rctx)
			got := hasMessage(issues, "additional_image_link contains an invalid URL")
			if got != tt.want {
				t.Errorf("invalid URL warning = %v, want %v (issues: %v)", got, tt.want, messages(issues))
			}
		})
	}
}

func TestMediaRuleVideoAndModelLinks(t *testing.T) {
	rctx := evalContext(t, map[string]any{
		"image_link":    "https://cdn.example.com/1.jpg",
		"video_link":    "watch me",
		"model_3d_link": "model.glb",
	})

	issues := NewMediaRule().Evaluate(context.Background(), rctx)
	for _, want := range []string{
		"video_link contains an invalid URL",
		"model_3d_link is not a valid URL",
	} {
		if got := severityOf(t, issues, want); got != fv.SeverityWarning {
			t.Errorf("%q severity = %s, want warning", want, got)
		}
	}
}
