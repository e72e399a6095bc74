// SPDX-License-Identifier: Apache-2.0

package latex

import "strings"

// Format is the image format collected into a report.
type Format string

const (
	FormatPNG Format = "png"
	FormatSVG Format = "svg"
)

func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatPNG, FormatSVG:
		return f, nil
	default:
		return "", InvalidFormatError{Format: s}
	}
}

// Extension returns the file extension of images, including the dot.
func (f Format) Extension() string {
	return "." + string(f)
}

// BaseName is the report file name without extension.
func (f Format) BaseName() string {
	return string(f) + "_collection"
}
