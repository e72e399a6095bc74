// SPDX-License-Identifier: Apache-2.0

package latex

import (
	"os"
	"path/filepath"
	"strings"
)

// inkscapeDir holds the svg package's conversion cache.
const inkscapeDir = "svg-inkscape"

// Section is a directory holding images, relative to the report root.
type Section struct {
	Rel    string
	Images []string
}

// IsRoot reports whether the section is the report root itself.
func (s Section) IsRoot() bool {
	return s.Rel == "."
}

// Collect walks root depth first in lexical order and returns every
// directory with images of the given format. A directory's images come
// before its subdirectories. Symlinks and svg-inkscape directories are
// skipped.
func Collect(root string, format Format) ([]Section, error) {
	var sections []Section
	err := collect(root, ".", format.Extension(), &sections)
	return sections, err
}

func collect(root, rel, ext string, out *[]Section) error {
	entries, err := os.ReadDir(filepath.Join(root, rel))
	if err != nil {
		return err
	}

	s := Section{Rel: rel}
	var dirs []string
	for _, e := range entries {
		switch {
		case e.Type()&os.ModeSymlink != 0:
		case e.IsDir():
			if e.Name() != inkscapeDir {
				dirs = append(dirs, e.Name())
			}
		case e.Type().IsRegular() && strings.EqualFold(filepath.Ext(e.Name()), ext):
			s.Images = append(s.Images, e.Name())
		}
	}
	if len(s.Images) > 0 {
		*out = append(*out, s)
	}

	for _, d := range dirs {
		if err := collect(root, filepath.Join(rel, d), ext, out); err != nil {
			return err
		}
	}
	return nil
}
