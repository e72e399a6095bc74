// SPDX-License-Identifier: Apache-2.0

package latex

import "strings"

var escaper = strings.NewReplacer(
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\^{}`,
	`\`, `\textbackslash{}`,
)

// Escape makes s safe to use as LaTeX text.
func Escape(s string) string {
	return escaper.Replace(s)
}
