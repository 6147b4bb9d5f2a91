// Package domain holds the core types and ports for the sift pipeline
package domain

import (
	"path/filepath"
	"strings"

	"dumpsift/internal/adapters/sink/tablesink"
	"dumpsift/internal/core/records"
	"dumpsift/internal/core/sieve"
)

// Report re-exports the report shape consumed by the stats writer
type Report = tablesink.Report

// ArchiveJob names one archive to process and where its outputs go
type ArchiveJob struct {
	InputPath string
	OutputDir string
	Kind      records.Kind
}

// OutputPaths are the files one archive run produces. Marker is written
// by the orchestrator after a successful run, never by the pipeline
type OutputPaths struct {
	CSV     string
	Parquet string
	Stats   string
	Marker  string
}

// Outputs derives the deterministic output names from the archive's base
// name, with the compression extension stripped
func (j ArchiveJob) Outputs() OutputPaths {
	base := filepath.Base(j.InputPath)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	join := func(suffix string) string {
		return filepath.Join(j.OutputDir, base+suffix)
	}
	return OutputPaths{
		CSV:     join(".csv"),
		Parquet: join(".parquet"),
		Stats:   join("_stats.txt"),
		Marker:  join("_completed.txt"),
	}
}

// RunStats accumulates one archive run's counters. A single driver owns
// the value; workers never share one
type RunStats struct {
	LinesRead   int64
	Kept        int64
	BytesRead   int64
	Flushes     int
	Rejected    map[sieve.Reason]int64
	SeenByForum map[string]int64
	KeptByForum map[string]int64

	order []sieve.Reason
}

// NewRunStats seeds zero counts for the full reason enumeration so the
// final report always lists every reason
func NewRunStats(reasons []sieve.Reason) *RunStats {
	s := &RunStats{
		Rejected:    make(map[sieve.Reason]int64, len(reasons)),
		SeenByForum: make(map[string]int64),
		KeptByForum: make(map[string]int64),
		order:       reasons,
	}
	for _, r := range reasons {
		s.Rejected[r] = 0
	}
	return s
}

// Filtered is the sum of all per-reason counts
func (s *RunStats) Filtered() int64 {
	var n int64
	for _, c := range s.Rejected {
		n += c
	}
	return n
}

// Consistent reports whether every line read is accounted for as either
// kept or rejected
func (s *RunStats) Consistent() bool {
	return s.LinesRead == s.Kept+s.Filtered()
}

// Report renders the counters for the stats writer, reasons in their
// seeded order
func (s *RunStats) Report() Report {
	reasons := make([]tablesink.ReasonCount, 0, len(s.order))
	for _, r := range s.order {
		reasons = append(reasons, tablesink.ReasonCount{Name: string(r), Count: s.Rejected[r]})
	}
	return Report{
		LinesRead:   s.LinesRead,
		Kept:        s.Kept,
		Filtered:    s.Filtered(),
		Reasons:     reasons,
		SeenByForum: s.SeenByForum,
		KeptByForum: s.KeptByForum,
	}
}
