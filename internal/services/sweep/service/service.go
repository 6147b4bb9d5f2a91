// Package service orchestrates archive runs across a dataset tree.
// Archives are independent: each worker owns its own reader, batch, and
// output files, so the pool needs no shared state beyond the task list
package service

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"
	"sync/atomic"

	"dumpsift/internal/core/records"
	"dumpsift/internal/platform/logger"
	siftdomain "dumpsift/internal/services/sift/domain"
)

// markerBody is the completion marker content, kept stable for tooling
// that greps output trees
const markerBody = "Processing completed successfully."

// Config holds the sweep tunables
type Config struct {
	Workers int // parallel archives; <=0 -> 1
}

// Service implements domain.TreeRunnerPort
type Service struct {
	Runner siftdomain.RunnerPort
	Cfg    Config
}

// New constructs the sweep service
func New(runner siftdomain.RunnerPort, cfg Config) *Service {
	if runner == nil {
		panic("sweep.Service requires a non nil RunnerPort")
	}
	if cfg.Workers <= 0 {
		cfg.Workers = 1
	}
	return &Service{Runner: runner, Cfg: cfg}
}

// RunTree processes <datasetRoot>/submissions and <datasetRoot>/comments
// into mirrored directories under outputRoot. Archives whose completion
// marker exists are skipped; archives whose outputs all exist non-empty
// get their marker backfilled and are skipped. One failed archive does
// not stop the others; the error reports that some failed
func (s *Service) RunTree(ctx context.Context, datasetRoot, outputRoot string) error {
	if err := os.MkdirAll(outputRoot, 0o755); err != nil {
		return err
	}

	var jobs []siftdomain.ArchiveJob
	for _, kind := range []records.Kind{records.Submissions(), records.Comments()} {
		found, err := s.planKind(datasetRoot, outputRoot, kind)
		if err != nil {
			return err
		}
		jobs = append(jobs, found...)
	}

	tasks := make(chan siftdomain.ArchiveJob)
	var fails int64
	var wg sync.WaitGroup

	for i := 0; i < s.Cfg.Workers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for job := range tasks {
				if err := s.runOne(ctx, job); err != nil {
					logger.C(ctx).Error().Err(err).Str("archive", job.InputPath).Msg("sweep: archive failed")
					atomic.AddInt64(&fails, 1)
				}
			}
		}()
	}

feed:
	for _, job := range jobs {
		select {
		case <-ctx.Done():
			break feed
		case tasks <- job:
		}
	}
	close(tasks)
	wg.Wait()

	if err := ctx.Err(); err != nil {
		return err
	}
	if fails > 0 {
		return errors.New("some archives failed")
	}
	return nil
}

// planKind lists the kind's archives, newest layout first. A missing
// kind directory is logged and skipped, not an error
func (s *Service) planKind(datasetRoot, outputRoot string, kind records.Kind) ([]siftdomain.ArchiveJob, error) {
	inDir := filepath.Join(datasetRoot, kind.Name)
	entries, err := os.ReadDir(inDir)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Named("sweep").Warn().Str("dir", inDir).Msg("kind directory not found")
			return nil, nil
		}
		return nil, err
	}

	outDir := filepath.Join(outputRoot, kind.Name)
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return nil, err
	}

	var names []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".zst") {
			names = append(names, e.Name())
		}
	}
	sort.Strings(names)

	jobs := make([]siftdomain.ArchiveJob, 0, len(names))
	for _, name := range names {
		jobs = append(jobs, siftdomain.ArchiveJob{
			InputPath: filepath.Join(inDir, name),
			OutputDir: outDir,
			Kind:      kind,
		})
	}
	return jobs, nil
}

func (s *Service) runOne(ctx context.Context, job siftdomain.ArchiveJob) error {
	log := logger.C(ctx)
	outs := job.Outputs()

	if fileExists(outs.Marker) {
		log.Info().Str("archive", job.InputPath).Msg("sweep: already completed, skipping")
		return nil
	}
	if nonEmpty(outs.CSV) && nonEmpty(outs.Parquet) && nonEmpty(outs.Stats) {
		log.Info().Str("archive", job.InputPath).Msg("sweep: outputs exist, backfilling marker")
		return writeMarker(outs.Marker)
	}

	if _, err := s.Runner.RunArchive(ctx, job); err != nil {
		return err
	}
	return writeMarker(outs.Marker)
}

func writeMarker(path string) error {
	return os.WriteFile(path, []byte(markerBody), 0o644)
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}

func nonEmpty(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir() && info.Size() > 0
}
