package reportkit

import (
	"go.uber.org/zap"

	"github.com/tsawler/reportkit/metrics"
	"github.com/tsawler/reportkit/policy"
)

// RewriteOptions holds configuration for a rewrite.
type RewriteOptions struct {
	// Text for the details table; empty means the policy default
	detailsText string

	// Template policy, compiled on first use
	policy  policy.Policy
	variant policy.Variant

	logger  *zap.Logger
	metrics *metrics.Metrics
}

// defaultOptions returns the default rewrite options.
func defaultOptions() RewriteOptions {
	return RewriteOptions{
		policy: policy.Default(),
	}
}

// clone creates a copy of RewriteOptions. Policies hold slices, so the
// policy is copied through its marker and bullet lists.
func (o RewriteOptions) clone() RewriteOptions {
	n := o
	n.policy.Markers.CollapsibleStarts = append([]policy.Matcher(nil), o.policy.Markers.CollapsibleStarts...)
	n.policy.Markers.MonthlyReport = append([]policy.Matcher(nil), o.policy.Markers.MonthlyReport...)
	n.policy.Scaffold.Bullets = append([]string(nil), o.policy.Scaffold.Bullets...)
	return n
}
