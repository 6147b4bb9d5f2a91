package service

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"

	perr "dumpsift/internal/platform/errors"
	siftdomain "dumpsift/internal/services/sift/domain"
)

type fakeRunner struct {
	mu   sync.Mutex
	ran  []string
	fail map[string]bool
}

func (r *fakeRunner) RunArchive(_ context.Context, job siftdomain.ArchiveJob) (*siftdomain.RunStats, error) {
	r.mu.Lock()
	r.ran = append(r.ran, filepath.Base(job.InputPath))
	r.mu.Unlock()
	if r.fail[filepath.Base(job.InputPath)] {
		return siftdomain.NewRunStats(nil), perr.Archivef("boom")
	}
	return siftdomain.NewRunStats(nil), nil
}

func writeFile(t *testing.T, path, body string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatal(err)
	}
}

func setupTree(t *testing.T, comments, submissions []string) (string, string) {
	t.Helper()
	dataset := t.TempDir()
	output := t.TempDir()
	for _, name := range comments {
		dir := filepath.Join(dataset, "comments")
		os.MkdirAll(dir, 0o755)
		writeFile(t, filepath.Join(dir, name), "x")
	}
	for _, name := range submissions {
		dir := filepath.Join(dataset, "submissions")
		os.MkdirAll(dir, 0o755)
		writeFile(t, filepath.Join(dir, name), "x")
	}
	return dataset, output
}

func TestRunTreeProcessesBothKinds(t *testing.T) {
	dataset, output := setupTree(t,
		[]string{"RC_2023-01.zst", "RC_2023-02.zst", "notes.txt"},
		[]string{"RS_2023-01.zst"},
	)
	runner := &fakeRunner{}
	svc := New(runner, Config{Workers: 2})

	if err := svc.RunTree(context.Background(), dataset, output); err != nil {
		t.Fatalf("RunTree: %v", err)
	}

	if len(runner.ran) != 3 {
		t.Fatalf("ran %v", runner.ran)
	}
	for _, marker := range []string{
		filepath.Join(output, "comments", "RC_2023-01_completed.txt"),
		filepath.Join(output, "comments", "RC_2023-02_completed.txt"),
		filepath.Join(output, "submissions", "RS_2023-01_completed.txt"),
	} {
		if _, err := os.Stat(marker); err != nil {
			t.Fatalf("missing marker %s: %v", marker, err)
		}
	}
}

func TestRunTreeSkipsCompleted(t *testing.T) {
	dataset, output := setupTree(t, []string{"RC_2023-01.zst"}, nil)
	os.MkdirAll(filepath.Join(output, "comments"), 0o755)
	writeFile(t, filepath.Join(output, "comments", "RC_2023-01_completed.txt"), markerBody)

	runner := &fakeRunner{}
	svc := New(runner, Config{Workers: 1})
	if err := svc.RunTree(context.Background(), dataset, output); err != nil {
		t.Fatalf("RunTree: %v", err)
	}
	if len(runner.ran) != 0 {
		t.Fatalf("completed archive was reprocessed: %v", runner.ran)
	}
}

func TestRunTreeBackfillsMarkerWhenOutputsExist(t *testing.T) {
	dataset, output := setupTree(t, []string{"RC_2023-01.zst"}, nil)
	outDir := filepath.Join(output, "comments")
	os.MkdirAll(outDir, 0o755)
	for _, name := range []string{"RC_2023-01.csv", "RC_2023-01.parquet", "RC_2023-01_stats.txt"} {
		writeFile(t, filepath.Join(outDir, name), "data")
	}

	runner := &fakeRunner{}
	svc := New(runner, Config{Workers: 1})
	if err := svc.RunTree(context.Background(), dataset, output); err != nil {
		t.Fatalf("RunTree: %v", err)
	}
	if len(runner.ran) != 0 {
		t.Fatalf("archive with complete outputs was reprocessed: %v", runner.ran)
	}
	if _, err := os.Stat(filepath.Join(outDir, "RC_2023-01_completed.txt")); err != nil {
		t.Fatalf("marker not backfilled: %v", err)
	}
}

func TestRunTreeIsolatesFailures(t *testing.T) {
	dataset, output := setupTree(t, []string{"RC_2023-01.zst", "RC_2023-02.zst"}, nil)
	runner := &fakeRunner{fail: map[string]bool{"RC_2023-01.zst": true}}
	svc := New(runner, Config{Workers: 1})

	err := svc.RunTree(context.Background(), dataset, output)
	if err == nil {
		t.Fatal("expected failure error")
	}
	if len(runner.ran) != 2 {
		t.Fatalf("sibling archive not processed: %v", runner.ran)
	}
	if _, serr := os.Stat(filepath.Join(output, "comments", "RC_2023-01_completed.txt")); serr == nil {
		t.Fatal("failed archive has a completion marker")
	}
	if _, serr := os.Stat(filepath.Join(output, "comments", "RC_2023-02_completed.txt")); serr != nil {
		t.Fatal("successful sibling missing its marker")
	}
}

func TestRunTreeMissingKindDirIsNotAnError(t *testing.T) {
	dataset, output := setupTree(t, []string{"RC_2023-01.zst"}, nil)
	runner := &fakeRunner{}
	svc := New(runner, Config{Workers: 1})
	if err := svc.RunTree(context.Background(), dataset, output); err != nil {
		t.Fatalf("RunTree: %v", err)
	}
	if len(runner.ran) != 1 {
		t.Fatalf("ran %v", runner.ran)
	}
}
