// SPDX-License-Identifier: Apache-2.0

package latex

import (
	"errors"
	"fmt"
)

// ErrToolNotFound is returned when the typesetting engine or bibtex is not
// installed.
var ErrToolNotFound = errors.New("tool not found in PATH")

// CompileError is returned when a typesetting pass exits unsuccessfully.
type CompileError struct {
	Tool     string
	Pass     int
	ExitCode int
	Err      error
}

func (e *CompileError) Error() string {
	return fmt.Sprintf("%s pass %d failed with exit code %d: %v", e.Tool, e.Pass, e.ExitCode, e.Err)
}

func (e *CompileError) Unwrap() error {
	return e.Err
}

type InvalidFormatError struct {
	Format string
}

func (e InvalidFormatError) Error() string {
	return fmt.Sprintf("invalid image format %q (want png or svg)", e.Format)
}
