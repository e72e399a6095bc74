// SPDX-License-Identifier: Apache-2.0

package migrate

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"
)

// DefaultPrefix is the directory the report images live in once uploaded.
const DefaultPrefix = "completed_logs_big"

var includeSVG = regexp.MustCompile(`(\\includesvg\[.*?\]\{)(.*?\})`)

// RewriteIncludeSVGPaths prefixes the path of every \includesvg command in
// content with prefix.
func RewriteIncludeSVGPaths(content, prefix string) string {
	return includeSVG.ReplaceAllStringFunc(content, func(m string) string {
		sub := includeSVG.FindStringSubmatch(m)
		return sub[1] + prefix + "/" + sub[2]
	})
}

// ModifiedPath returns the output path for a rewritten file.
func ModifiedPath(path string) string {
	return strings.TrimSuffix(path, filepath.Ext(path)) + "_modified.tex"
}

// RewriteFile rewrites the \includesvg paths of the LaTeX file at path and
// writes the result to ModifiedPath(path), which it returns.
func RewriteFile(path, prefix string) (string, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("%w: %s", ErrSourceNotFound, path)
		}
		return "", err
	}

	out := ModifiedPath(path)
	if err := os.WriteFile(out, []byte(RewriteIncludeSVGPaths(string(content), prefix)), 0o644); err != nil {
		return "", err
	}
	return out, nil
}
