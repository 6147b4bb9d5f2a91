package tablesink

import (
	"fmt"

	json "github.com/goccy/go-json"
	"github.com/xitongsys/parquet-go-source/local"
	"github.com/xitongsys/parquet-go/parquet"
	"github.com/xitongsys/parquet-go/source"
	"github.com/xitongsys/parquet-go/writer"

	"dumpsift/internal/core/tabular"
	perr "dumpsift/internal/platform/errors"
)

// ParquetSink writes the columnar output. The writer stays open for the
// whole run and each flushed batch seals its own row group, so batches
// append without rereading what is already on disk. The file footer is
// written once at Close; the sink owns the file for the run and starts
// it fresh
type ParquetSink struct {
	fw source.ParquetFile
	pw *writer.JSONWriter
	sc tabular.Schema
}

// OpenParquet creates path and prepares a writer for the given schema
func OpenParquet(path string, sc tabular.Schema) (*ParquetSink, error) {
	fw, err := local.NewLocalFileWriter(path)
	if err != nil {
		return nil, perr.Wrap(err, perr.ErrorCodeSink, "open parquet sink")
	}
	pw, err := writer.NewJSONWriter(schemaJSON(sc), fw, 1)
	if err != nil {
		fw.Close()
		return nil, perr.Wrap(err, perr.ErrorCodeSink, "create parquet writer")
	}
	pw.CompressionType = parquet.CompressionCodec_SNAPPY
	return &ParquetSink{fw: fw, pw: pw, sc: sc}, nil
}

// WriteRows appends one batch as a single row group
func (s *ParquetSink) WriteRows(rows []tabular.Row) error {
	obj := make(map[string]any, len(s.sc))
	for _, row := range rows {
		for i, col := range s.sc {
			obj[col.Name] = row[i].Parquet()
		}
		line, err := json.Marshal(obj)
		if err != nil {
			return perr.Wrap(err, perr.ErrorCodeSink, "encode parquet row")
		}
		if err := s.pw.Write(string(line)); err != nil {
			return perr.Wrap(err, perr.ErrorCodeSink, "write parquet row")
		}
	}
	if err := s.pw.Flush(true); err != nil {
		return perr.Wrap(err, perr.ErrorCodeSink, "flush parquet row group")
	}
	return nil
}

// Close finalizes the footer and releases the file
func (s *ParquetSink) Close() error {
	werr := s.pw.WriteStop()
	cerr := s.fw.Close()
	if werr != nil {
		return perr.Wrap(werr, perr.ErrorCodeSink, "finalize parquet sink")
	}
	if cerr != nil {
		return perr.Wrap(cerr, perr.ErrorCodeSink, "close parquet sink")
	}
	return nil
}

// schemaJSON renders the schema in the JSON form the parquet writer
// expects. Every field is OPTIONAL; nulls come from absent source values
func schemaJSON(sc tabular.Schema) string {
	fields := make([]map[string]string, 0, len(sc))
	for _, col := range sc {
		fields = append(fields, map[string]string{
			"Tag": fmt.Sprintf("name=%s, %s, repetitiontype=OPTIONAL", col.Name, parquetType(col.Kind)),
		})
	}
	out := map[string]any{
		"Tag":    "name=parquet_go_root, repetitiontype=REQUIRED",
		"Fields": fields,
	}
	b, _ := json.Marshal(out)
	return string(b)
}

func parquetType(k tabular.Kind) string {
	switch k {
	case tabular.Timestamp:
		return "type=INT64, convertedtype=TIMESTAMP_MILLIS"
	case tabular.Bool:
		return "type=BOOLEAN"
	case tabular.Numeric:
		return "type=DOUBLE"
	default:
		return "type=BYTE_ARRAY, convertedtype=UTF8"
	}
}
