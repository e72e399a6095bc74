// SPDX-License-Identifier: Apache-2.0

package logger_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/pterm/pterm"
	"github.com/stretchr/testify/assert"

	"github.com/simreport/simreport/pkg/logger"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		Name     string
		Level    string
		Expected pterm.LogLevel
	}{
		{Name: "trace", Level: "trace", Expected: pterm.LogLevelTrace},
		{Name: "debug", Level: "debug", Expected: pterm.LogLevelDebug},
		{Name: "warning alias", Level: "warning", Expected: pterm.LogLevelWarn},
		{Name: "error", Level: "error", Expected: pterm.LogLevelError},
		{Name: "unknown falls back to info", Level: "loud", Expected: pterm.LogLevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.Name, func(t *testing.T) {
			assert.Equal(t, tt.Expected, logger.ParseLevel(tt.Level))
		})
	}
}

func TestLoggerRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	l := logger.NewLoggerWithWriter(pterm.LogLevelWarn, &buf)

	l.LogSourceLoaded("runs/a/results.csv", 10)
	l.Info("hidden")
	assert.Empty(t, buf.String())

	l.LogPlotSkipped("Memory vs Branch", errors.New("missing column"))
	assert.Contains(t, buf.String(), "skipping plot")
	assert.Contains(t, buf.String(), "Memory vs Branch")
}
