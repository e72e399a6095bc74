// SPDX-License-Identifier: Apache-2.0

// Package naming holds the small string rules shared by the charting and
// report commands: run directory timestamps and output file stems.
package naming

import (
	"path/filepath"
	"regexp"
	"strings"
)

// Run directories are suffixed with `_YYYYMMDDHHMMSS` when they are created.
var timestampSuffix = regexp.MustCompile(`_\d{14}$`)

// StripTimestamp removes a trailing `_` followed by exactly 14 digits from
// name. Any other numeric suffix is left untouched.
func StripTimestamp(name string) string {
	return timestampSuffix.ReplaceAllString(name, "")
}

// StripPathTimestamps applies StripTimestamp to every element of a slash or
// OS separated relative path and returns the cleaned elements.
func StripPathTimestamps(rel string) []string {
	parts := strings.Split(filepath.ToSlash(rel), "/")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p == "" || p == "." {
			continue
		}
		out = append(out, StripTimestamp(p))
	}
	return out
}

// FileStem turns a chart title into something that can be used as a file
// name. Path separators are the only characters that are not allowed.
func FileStem(title string) string {
	return strings.NewReplacer("/", "_", "\\", "_").Replace(title)
}
