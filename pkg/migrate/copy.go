// SPDX-License-Identifier: Apache-2.0

// Package migrate prepares a generated report for upload: it copies the
// files the report needs into a clean tree and rewrites include paths.
package migrate

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"slices"
	"strings"

	"github.com/simreport/simreport/pkg/logger"
)

// inkscapeDir is regenerated by the svg package and never migrated.
const inkscapeDir = "svg-inkscape"

// linkedSVG matches the id prefixed names of SVG links.
var linkedSVG = regexp.MustCompile(`(?i)^[a-zA-Z0-9]+_.*\.svg$`)

// Result lists what a migration did.
type Result struct {
	Copied []string
	Pruned []string
}

// Wanted reports whether a file named name is part of a report.
func Wanted(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".svg":
		return linkedSVG.MatchString(name)
	case ".tex", ".pdf":
		return true
	default:
		return false
	}
}

// Copy copies the wanted files under src to the same relative paths under
// dst and then prunes the empty directories of dst. File symlinks are
// followed. Modes and modification times are preserved.
func Copy(src, dst string, l logger.Logger) (*Result, error) {
	info, err := os.Stat(src)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, fmt.Errorf("%w: %s", ErrSourceNotFound, src)
		}
		return nil, err
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("source %s is not a directory", src)
	}

	res := &Result{}
	err = filepath.WalkDir(src, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(src, path)
		if err != nil {
			return err
		}
		target := filepath.Join(dst, rel)

		if d.IsDir() {
			if d.Name() == inkscapeDir {
				return filepath.SkipDir
			}
			return os.MkdirAll(target, 0o755)
		}

		if d.Type()&fs.ModeSymlink != 0 {
			resolved, err := os.Stat(path)
			if err != nil {
				l.Warn("skipping broken link", "path", path, "error", err)
				return nil
			}
			if resolved.IsDir() {
				return nil
			}
		}
		if !Wanted(d.Name()) {
			return nil
		}

		if err := copyFile(path, target); err != nil {
			return fmt.Errorf("copying %s: %w", rel, err)
		}
		l.LogFileWritten("copy", target)
		res.Copied = append(res.Copied, target)
		return nil
	})
	if err != nil {
		return res, err
	}

	res.Pruned, err = PruneEmpty(dst, l)
	return res, err
}

// copyFile copies the contents, mode and modification time of src, following
// symlinks.
func copyFile(src, dst string) (err error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	info, err := in.Stat()
	if err != nil {
		return err
	}

	out, err := os.OpenFile(dst, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, info.Mode().Perm())
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && err == nil {
			err = cerr
		}
	}()

	if _, err := io.Copy(out, in); err != nil {
		return err
	}
	if err := out.Chmod(info.Mode().Perm()); err != nil {
		return err
	}
	return os.Chtimes(dst, info.ModTime(), info.ModTime())
}

// PruneEmpty removes the empty directories below root, deepest first, so
// that directories holding only empty directories are removed too. root
// itself and svg-inkscape directories are kept.
func PruneEmpty(root string, l logger.Logger) ([]string, error) {
	var dirs []string
	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if !d.IsDir() || path == root {
			return nil
		}
		if d.Name() == inkscapeDir {
			return filepath.SkipDir
		}
		dirs = append(dirs, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	var removed []string
	for _, dir := range slices.Backward(dirs) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return removed, err
		}
		if len(entries) > 0 {
			continue
		}
		if err := os.Remove(dir); err != nil {
			return removed, err
		}
		l.Debug("removed empty directory", "path", dir)
		removed = append(removed, dir)
	}
	return removed, nil
}
