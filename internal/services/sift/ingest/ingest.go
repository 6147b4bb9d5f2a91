// Package ingest adapts the archive reader, list files, and sinks to the
// sift domain ports
package ingest

import (
	"dumpsift/internal/adapters/ingest/zstarchive"
	"dumpsift/internal/adapters/sink/tablesink"
	"dumpsift/internal/core/listfile"
	"dumpsift/internal/core/tabular"
	"dumpsift/internal/services/sift/domain"
)

// Opener opens zstd archives as domain line readers
type Opener struct {
	opt zstarchive.Options
}

// NewOpener constructs an Opener with the given decoder window log
func NewOpener(windowLog int) *Opener {
	return &Opener{opt: zstarchive.Options{WindowLog: windowLog}}
}

// Open implements domain.ArchiveOpener
func (o *Opener) Open(path string) (domain.LineReader, error) {
	return zstarchive.OpenFile(path, o.opt)
}

// LoadLists loads the forum allow-list and identity block-list
func LoadLists(allowPath, blockPath string) (allow, block listfile.Set, err error) {
	if allow, err = listfile.Load(allowPath); err != nil {
		return nil, nil, err
	}
	if block, err = listfile.Load(blockPath); err != nil {
		return nil, nil, err
	}
	return allow, block, nil
}

// Sinks is the production sink factory backed by tablesink
type Sinks struct{}

// NewSinks constructs the sink factory
func NewSinks() Sinks { return Sinks{} }

// OpenRow implements domain.SinkFactory
func (Sinks) OpenRow(path string, header []string) (domain.BatchSink, error) {
	return tablesink.OpenCSV(path, header)
}

// OpenColumn implements domain.SinkFactory
func (Sinks) OpenColumn(path string, sc tabular.Schema) (domain.BatchSink, error) {
	return tablesink.OpenParquet(path, sc)
}

// WriteReport implements domain.SinkFactory
func (Sinks) WriteReport(path string, rep domain.Report) error {
	return tablesink.WriteReport(path, rep)
}
