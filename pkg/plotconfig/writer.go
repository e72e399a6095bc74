// SPDX-License-Identifier: Apache-2.0

package plotconfig

import (
	"encoding/json"
	"errors"
	"fmt"
	"io"

	"sigs.k8s.io/yaml"
)

type Format int

const (
	InvalidFormat Format = iota
	YAMLFormat
	JSONFormat
)

var ErrInvalidFormat = errors.New("invalid configuration format")

// NewFormat returns YAML or JSON format
func NewFormat(useJSON bool) Format {
	if useJSON {
		return JSONFormat
	}
	return YAMLFormat
}

// Extension returns the file extension for the format
func (f Format) Extension() string {
	switch f {
	case YAMLFormat:
		return "yaml"
	case JSONFormat:
		return "json"
	}
	return ""
}

// Writer writes configurations to an io.Writer in either YAML or JSON.
type Writer struct {
	writer io.Writer
	format Format
}

func NewWriter(w io.Writer, f Format) *Writer {
	return &Writer{
		writer: w,
		format: f,
	}
}

func (w *Writer) Write(cfg *Config) error {
	switch w.format {
	case YAMLFormat:
		yml, err := yaml.Marshal(cfg)
		if err != nil {
			return fmt.Errorf("encode yaml configuration: %w", err)
		}
		if _, err := w.writer.Write(yml); err != nil {
			return fmt.Errorf("write yaml configuration: %w", err)
		}
	case JSONFormat:
		enc := json.NewEncoder(w.writer)
		enc.SetIndent("", "  ")
		if err := enc.Encode(cfg); err != nil {
			return fmt.Errorf("encode json configuration: %w", err)
		}
	default:
		return ErrInvalidFormat
	}
	return nil
}
