// SPDX-License-Identifier: Apache-2.0

// Package benchmarks measures the aggregation pipeline and records the results
// so they can be tracked across commits.
package benchmarks

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
	"time"
)

type ReportRecorder struct {
	mu        sync.Mutex
	GitSHA    string
	GoVersion string
	Timestamp int64
	Reports   []Report
}

func (r *ReportRecorder) AddReport(report Report) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.Reports = append(r.Reports, report)
}

func newReportRecorder(goVersion string) *ReportRecorder {
	return &ReportRecorder{
		GitSHA:    os.Getenv("GITHUB_SHA"),
		GoVersion: goVersion,
		Timestamp: time.Now().Unix(),
		Reports:   []Report{},
	}
}

// AppendTo appends the recorded reports as one JSON line to path.
func (r *ReportRecorder) AppendTo(path string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	line, err := json.Marshal(r)
	if err != nil {
		return fmt.Errorf("marshalling reports: %w", err)
	}

	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("opening file: %w", err)
	}
	defer f.Close()

	_, err = f.Write(append(line, '\n'))
	return err
}

type Report struct {
	Name          string
	RowCount      int
	RowsPerSecond float64
}
