// SPDX-License-Identifier: Apache-2.0

package aggregate

import (
	"github.com/simreport/simreport/pkg/logger"
)

type options struct {
	logger logger.Logger
	html   bool
}

type OptionFn func(*options)

// WithLogger sets the logger used by the aggregator.
func WithLogger(l logger.Logger) OptionFn {
	return func(o *options) {
		o.logger = l
	}
}

// WithHTML enables or disables the interactive charts.html page.
func WithHTML(enabled bool) OptionFn {
	return func(o *options) {
		o.html = enabled
	}
}
