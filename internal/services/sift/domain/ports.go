package domain

import (
	"context"

	"dumpsift/internal/core/tabular"
)

// RunnerPort is the public port exposed by the module
type RunnerPort interface {
	RunArchive(ctx context.Context, job ArchiveJob) (*RunStats, error)
}

// LineReader yields decompressed archive lines. Next returns io.EOF at
// end of input and surfaces blank lines so the caller can count them
type LineReader interface {
	Next() (string, error)
	Close() error
	Stats() (lines int, bytes int64)
}

// ArchiveOpener opens one compressed archive for line reading
type ArchiveOpener interface {
	Open(path string) (LineReader, error)
}

// BatchSink persists projected row batches. Close finalizes the file
type BatchSink interface {
	WriteRows(rows []tabular.Row) error
	Close() error
}

// SinkFactory opens the two data sinks and writes the final report
type SinkFactory interface {
	OpenRow(path string, header []string) (BatchSink, error)
	OpenColumn(path string, sc tabular.Schema) (BatchSink, error)
	WriteReport(path string, rep Report) error
}
