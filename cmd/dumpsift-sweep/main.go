// Command dumpsift-sweep walks a dump dataset tree and filters every
// archive in it, in parallel, skipping archives already completed
package main

import (
	"context"
	"flag"
	"os"
	"strconv"

	"dumpsift/internal/core/version"
	"dumpsift/internal/modkit"
	"dumpsift/internal/modkit/module"
	"dumpsift/internal/platform/config"
	"dumpsift/internal/platform/logger"
	siftmod "dumpsift/internal/services/sift/module"
	sweepmod "dumpsift/internal/services/sweep/module"
)

func mustSetEnv(key, val string) {
	if val != "" {
		_ = os.Setenv(key, val)
	}
}

func main() {
	var (
		fDataset = flag.String("dataset", "", "dataset root with comments/ and submissions/ subdirectories")
		fOut     = flag.String("out", "", "output root; mirrors the dataset layout")
		fAllow   = flag.String("allow", "", "path to the subreddit allow-list file")
		fBlock   = flag.String("block", "", "path to the bot username block-list file")
		fWorkers = flag.Int("workers", 0, "parallel archives (default from SWEEP_WORKERS)")
		fBatch   = flag.Int("batch", 0, "rows per flush (default from SIFT_BATCH_SIZE)")
	)
	flag.Parse()

	l := logger.Get()
	bi := version.Info("dumpsift-sweep")
	l.Info().Str("version", bi.Version).Str("commit", bi.Commit).Msg("starting")

	if *fDataset == "" || *fOut == "" || *fAllow == "" || *fBlock == "" {
		l.Panic().Msg("must provide -dataset, -out, -allow, and -block")
	}

	mustSetEnv("SIFT_ALLOW_FILE", *fAllow)
	mustSetEnv("SIFT_BLOCK_FILE", *fBlock)
	if *fBatch > 0 {
		mustSetEnv("SIFT_BATCH_SIZE", strconv.Itoa(*fBatch))
	}
	if *fWorkers > 0 {
		mustSetEnv("SWEEP_WORKERS", strconv.Itoa(*fWorkers))
	}

	deps := modkit.Deps{Cfg: config.New(), Log: *l}

	sm := siftmod.New(deps)
	module.Register(sm.Name(), sm.Ports())

	sw := sweepmod.New(deps, module.MustPortsOf[siftmod.Ports](sm).Runner)
	module.Register(sw.Name(), sw.Ports())

	if err := module.MustPortsOf[sweepmod.Ports](sw).Runner.RunTree(context.Background(), *fDataset, *fOut); err != nil {
		l.Fatal().Err(err).Msg("sweep failed")
	}
	l.Info().Str("dataset", *fDataset).Str("out", *fOut).Msg("sweep complete")
}
