// Package service drives one archive through read, classify, project,
// and flush
package service

import (
	"context"
	"errors"
	"io"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"dumpsift/internal/core/listfile"
	"dumpsift/internal/core/sieve"
	"dumpsift/internal/core/tabular"
	perr "dumpsift/internal/platform/errors"
	"dumpsift/internal/platform/logger"
	"dumpsift/internal/services/sift/domain"
)

// DefaultBatchSize matches the upstream dump tooling
const DefaultBatchSize = 10000

// Config holds the service tunables
type Config struct {
	BatchSize int // rows buffered per flush; <=0 -> DefaultBatchSize
}

// Service implements domain.RunnerPort
type Service struct {
	Opener domain.ArchiveOpener
	Sinks  domain.SinkFactory
	Allow  listfile.Set
	Block  listfile.Set
	Cfg    Config
}

// New constructs the sift service
func New(opener domain.ArchiveOpener, sinks domain.SinkFactory, allow, block listfile.Set, cfg Config) *Service {
	if opener == nil {
		panic("sift.Service requires a non nil ArchiveOpener")
	}
	if sinks == nil {
		panic("sift.Service requires a non nil SinkFactory")
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	return &Service{Opener: opener, Sinks: sinks, Allow: allow, Block: block, Cfg: cfg}
}

// RunArchive processes one archive end to end. Line-level problems are
// absorbed into the statistics; open, decode-stream, and write failures
// end the run with already-flushed batches left intact on disk. The
// returned stats are valid even when err is non-nil
func (s *Service) RunArchive(ctx context.Context, job domain.ArchiveJob) (*domain.RunStats, error) {
	chain := job.Kind.Chain(s.Allow, s.Block)
	reasons := append([]sieve.Reason{sieve.ReasonBadLine}, chain.Reasons()...)
	stats := domain.NewRunStats(reasons)

	ctx = logger.WithRun(ctx, uuid.NewString(), filepath.Base(job.InputPath))
	log := logger.C(ctx)
	start := time.Now()

	rd, err := s.Opener.Open(job.InputPath)
	if err != nil {
		return stats, perr.Wrap(err, perr.ErrorCodeArchive, "open archive")
	}
	defer rd.Close()

	outs := job.Outputs()
	row, err := s.Sinks.OpenRow(outs.CSV, job.Kind.Columns.Names())
	if err != nil {
		return stats, err
	}
	col, err := s.Sinks.OpenColumn(outs.Parquet, job.Kind.Columns)
	if err != nil {
		row.Close()
		return stats, err
	}

	batch := make([]tabular.Row, 0, s.Cfg.BatchSize)
	flush := func() error {
		if len(batch) == 0 {
			return nil
		}
		if err := row.WriteRows(batch); err != nil {
			return err
		}
		if err := col.WriteRows(batch); err != nil {
			return err
		}
		stats.Flushes++
		log.Debug().Int("rows", len(batch)).Int("flushes", stats.Flushes).Msg("batch flushed")
		batch = batch[:0]
		return nil
	}

	runErr := func() error {
		for {
			if err := ctx.Err(); err != nil {
				return err
			}
			line, err := rd.Next()
			if errors.Is(err, io.EOF) {
				break
			}
			if err != nil {
				return perr.Wrap(err, perr.ErrorCodeArchive, "read archive")
			}
			stats.LinesRead++

			if line == "" {
				stats.Rejected[sieve.ReasonBadLine]++
				continue
			}
			rec, ok := sieve.DecodeLine(line)
			if !ok {
				stats.Rejected[sieve.ReasonBadLine]++
				continue
			}

			forum := rec.FoldedStr(job.Kind.ForumField)
			stats.SeenByForum[forum]++

			out := chain.Classify(rec)
			if !out.Kept {
				stats.Rejected[out.Reason]++
				continue
			}
			stats.Kept++
			stats.KeptByForum[forum]++

			batch = append(batch, job.Kind.Columns.Project(rec))
			if len(batch) >= s.Cfg.BatchSize {
				if err := flush(); err != nil {
					return err
				}
			}
		}
		// drain; a no-op for an empty trailing batch
		return flush()
	}()

	_, stats.BytesRead = rd.Stats()

	// close sinks even on failure so flushed batches stay valid
	rowErr := row.Close()
	colErr := col.Close()
	if runErr == nil {
		runErr = rowErr
	}
	if runErr == nil {
		runErr = colErr
	}
	if runErr != nil {
		return stats, runErr
	}

	if err := s.Sinks.WriteReport(outs.Stats, stats.Report()); err != nil {
		return stats, err
	}

	log.Info().
		Int64("lines", stats.LinesRead).
		Int64("kept", stats.Kept).
		Int64("filtered", stats.Filtered()).
		Str("bytes", humanize.Bytes(uint64(stats.BytesRead))).
		Dur("elapsed", time.Since(start)).
		Str("csv", outs.CSV).
		Str("parquet", outs.Parquet).
		Msg("archive complete")
	return stats, nil
}
