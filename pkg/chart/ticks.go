// SPDX-License-Identifier: Apache-2.0

package chart

import (
	"fmt"

	"gonum.org/v1/plot"
)

// HumanizeValue formats v with an M or K suffix for values of at least a
// million or a thousand.
func HumanizeValue(v float64) string {
	switch {
	case v >= 1e6:
		return fmt.Sprintf("%.1fM", v/1e6)
	case v >= 1e3:
		return fmt.Sprintf("%.1fK", v/1e3)
	default:
		return fmt.Sprintf("%.0f", v)
	}
}

// humanTicks relabels the major ticks of another ticker.
type humanTicks struct {
	plot.Ticker
}

func (h humanTicks) Ticks(min, max float64) []plot.Tick {
	ticks := h.Ticker.Ticks(min, max)
	for i := range ticks {
		if ticks[i].Label != "" {
			ticks[i].Label = HumanizeValue(ticks[i].Value)
		}
	}
	return ticks
}
