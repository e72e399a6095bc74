// SPDX-License-Identifier: Apache-2.0

package latex

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// linkNamespace scopes the name based ids of SVG links.
var linkNamespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://simreport.dev/svg-link"))

// LinkID returns the 8 character id of the SVG name in directory rel. The
// svg package caches conversions by base name, so equal names in different
// directories need distinct links.
func LinkID(rel, name string) string {
	id := uuid.NewSHA1(linkNamespace, []byte(filepath.ToSlash(rel)+"/"+name))
	return id.String()[:8]
}

// LinkName is the file name of the link to name.
func LinkName(rel, name string) string {
	return LinkID(rel, name) + "_" + name
}

// EnsureLink creates the link to the SVG name in dir, replacing whatever
// was there before. It returns the link file name.
func EnsureLink(dir, rel, name string) (string, error) {
	link := LinkName(rel, name)
	path := filepath.Join(dir, link)

	if _, err := os.Lstat(path); err == nil {
		if err := os.Remove(path); err != nil {
			return "", err
		}
	} else if !errors.Is(err, fs.ErrNotExist) {
		return "", err
	}

	if err := os.Symlink(name, path); err != nil {
		return "", err
	}
	return link, nil
}
