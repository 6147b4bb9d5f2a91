// Package tablesink persists projected rows to the row-oriented and
// columnar output files, and writes the end-of-run statistics report
package tablesink

import (
	"encoding/csv"
	"os"

	"dumpsift/internal/core/tabular"
	perr "dumpsift/internal/platform/errors"
)

// CSVSink appends rows as delimited text. The run owns the file: opening
// truncates any partial leftovers from an interrupted run so the row and
// columnar sinks always start from the same empty state, and the header
// is written exactly once per file
type CSVSink struct {
	f *os.File
	w *csv.Writer
}

// OpenCSV opens path fresh and writes the header
func OpenCSV(path string, header []string) (*CSVSink, error) {
	f, err := os.OpenFile(path, os.O_TRUNC|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeSink, "open csv sink")
	}
	s := &CSVSink{f: f, w: csv.NewWriter(f)}
	if err := s.w.Write(header); err != nil {
		f.Close()
		return nil, perr.Wrap(err, perr.ErrorCodeSink, "write csv header")
	}
	return s, nil
}

// WriteRows appends one batch. Rows reach disk before return
func (s *CSVSink) WriteRows(rows []tabular.Row) error {
	rec := make([]string, 0, 16)
	for _, row := range rows {
		rec = rec[:0]
		for _, cell := range row {
			rec = append(rec, cell.CSV())
		}
		if err := s.w.Write(rec); err != nil {
			return perr.Wrap(err, perr.ErrorCodeSink, "write csv row")
		}
	}
	s.w.Flush()
	if err := s.w.Error(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeSink, "flush csv batch")
	}
	return nil
}

func (s *CSVSink) Close() error {
	s.w.Flush()
	werr := s.w.Error()
	cerr := s.f.Close()
	if werr != nil {
		return perr.Wrap(werr, perr.ErrorCodeSink, "flush csv sink")
	}
	if cerr != nil {
		return perr.Wrap(cerr, perr.ErrorCodeSink, "close csv sink")
	}
	return nil
}
