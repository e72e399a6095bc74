// SPDX-License-Identifier: Apache-2.0

package histogram

import (
	"github.com/simreport/simreport/pkg/logger"
)

type options struct {
	logger logger.Logger
	mode   Mode
}

type OptionFn func(*options)

// WithLogger sets the logger used by the generator.
func WithLogger(l logger.Logger) OptionFn {
	return func(o *options) {
		o.logger = l
	}
}

// WithMode sets how groups are split into charts.
func WithMode(m Mode) OptionFn {
	return func(o *options) {
		o.mode = m
	}
}
