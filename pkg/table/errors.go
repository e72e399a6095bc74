// SPDX-License-Identifier: Apache-2.0

package table

import (
	"fmt"
	"strings"
)

// MissingColumnsError is returned by Table.Require when columns are absent.
type MissingColumnsError struct {
	Missing   []string
	Available []string
}

func (e *MissingColumnsError) Error() string {
	quoted := make([]string, len(e.Missing))
	for i, m := range e.Missing {
		quoted[i] = fmt.Sprintf("%q", m)
	}
	return fmt.Sprintf("missing column(s) %s; available columns are: [%s]",
		strings.Join(quoted, ", "), strings.Join(e.Available, ", "))
}

// ParseError is returned when a numeric cell cannot be parsed.
type ParseError struct {
	Column string
	Row    int
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("column %q row %d: cannot parse %q as a number", e.Column, e.Row, e.Value)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
