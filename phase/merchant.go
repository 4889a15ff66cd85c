package phase

import (
	"context"

	fv "github.com/deepakgargct/productfeedreview"
	"github.com/deepakgargct/productfeedreview/pipeline"
	"github.com/deepakgargct/productfeedreview/pkg/scalar"
)

// MerchantRule validates the seller fields. All warning-tier.
type MerchantRule struct{}

// NewMerchantRule creates the merchant rule module.
func NewMerchantRule() *MerchantRule {
	return &MerchantRule{}
}

// Name returns the rule name.
func (r *MerchantRule) Name() string {
	return "merchant"
}

// Evaluate performs merchant validation.
func (r *MerchantRule) Evaluate(ctx context.Context, rctx *pipeline.Context) []fv.Issue {
	var issues []fv.Issue
	rec := rctx.Record

	if !rec.Has("seller_name") {
		issues = append(issues, WarningIssue(fv.KindRequired,
			"seller_name is recommended (merchant display name)", "seller_name", r.Name()))
	}
	rctx.Observe("seller_name")

	if sellerURL, ok := rec.GetString("seller_url"); ok && !scalar.IsURL(sellerURL) {
		issues = append(issues, WarningIssue(fv.KindFormat,
			"seller_url should be a valid URL", "seller_url", r.Name()))
	}
	rctx.Observe("seller_url")

	rctx.Observe("seller_tos")
	rctx.Observe("seller_privacy_policy")

	return issues
}
