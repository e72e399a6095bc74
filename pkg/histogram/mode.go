// SPDX-License-Identifier: Apache-2.0

package histogram

import (
	"fmt"
)

// Mode selects how groups are split into charts.
type Mode string

const (
	// ModePerPath ranks (path, branch) groups and draws a local, a non-local
	// and a combined chart.
	ModePerPath Mode = "per-path"
	// ModeBranchAverage averages every branch across paths and draws a
	// single chart.
	ModeBranchAverage Mode = "branch-average"
)

func ParseMode(s string) (Mode, error) {
	switch m := Mode(s); m {
	case ModePerPath, ModeBranchAverage:
		return m, nil
	default:
		return "", fmt.Errorf("unknown histogram mode %q (want %q or %q)", s, ModePerPath, ModeBranchAverage)
	}
}
