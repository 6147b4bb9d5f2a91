// Command dumpsift-filter processes a single compressed dump archive into
// row-oriented, columnar, and statistics outputs
package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"dumpsift/internal/core/records"
	"dumpsift/internal/core/version"
	"dumpsift/internal/modkit"
	"dumpsift/internal/modkit/module"
	"dumpsift/internal/platform/config"
	"dumpsift/internal/platform/logger"
	siftdomain "dumpsift/internal/services/sift/domain"
	siftmod "dumpsift/internal/services/sift/module"
)

func mustSetEnv(key, val string) {
	if val != "" {
		_ = os.Setenv(key, val)
	}
}

func main() {
	var (
		fInput  = flag.String("input", "", "path to the input .zst archive")
		fKind   = flag.String("kind", "comments", "archive kind: comments | submissions")
		fAllow  = flag.String("allow", "", "path to the subreddit allow-list file")
		fBlock  = flag.String("block", "", "path to the bot username block-list file")
		fOutDir = flag.String("out", ".", "output directory")
		fBatch  = flag.Int("batch", 0, "rows per flush (default from SIFT_BATCH_SIZE)")
	)
	flag.Parse()

	l := logger.Get()
	bi := version.Info("dumpsift-filter")
	l.Info().Str("version", bi.Version).Str("commit", bi.Commit).Msg("starting")

	if *fInput == "" || *fAllow == "" || *fBlock == "" {
		l.Panic().Msg("must provide -input, -allow, and -block")
	}
	kind, ok := records.Kinds()[*fKind]
	if !ok {
		l.Panic().Str("kind", *fKind).Msg("unknown archive kind")
	}
	if err := os.MkdirAll(*fOutDir, 0o755); err != nil {
		l.Panic().Err(err).Msg("cannot create output directory")
	}

	// Surface flags to the module, which reads FromConfig
	mustSetEnv("SIFT_ALLOW_FILE", *fAllow)
	mustSetEnv("SIFT_BLOCK_FILE", *fBlock)
	if *fBatch > 0 {
		mustSetEnv("SIFT_BATCH_SIZE", strconv.Itoa(*fBatch))
	}

	deps := modkit.Deps{Cfg: config.New(), Log: *l}
	sm := siftmod.New(deps)
	module.Register(sm.Name(), sm.Ports())

	ports := module.MustPortsOf[siftmod.Ports](sm)
	stats, err := ports.Runner.RunArchive(context.Background(), siftdomain.ArchiveJob{
		InputPath: *fInput,
		OutputDir: *fOutDir,
		Kind:      kind,
	})
	if err != nil {
		l.Fatal().Err(err).Str("archive", *fInput).Msg("filter run failed")
	}
	l.Info().
		Int64("lines", stats.LinesRead).
		Int64("kept", stats.Kept).
		Int64("filtered", stats.Filtered()).
		Msg("filter run complete")
}
