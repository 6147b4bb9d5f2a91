package module

import (
	"dumpsift/internal/adapters/ingest/zstarchive"
	"dumpsift/internal/platform/config"
	"dumpsift/internal/services/sift/service"
)

// Options holds the sift module configuration
type Options struct {
	AllowFile string
	BlockFile string
	BatchSize int
	WindowLog int
}

// FromConfig reads the sift options from config with SIFT_ prefix
func FromConfig(cfg config.Conf) Options {
	sf := cfg.Prefix("SIFT_")
	return Options{
		AllowFile: sf.MustString("ALLOW_FILE"),
		BlockFile: sf.MustString("BLOCK_FILE"),
		BatchSize: sf.MayInt("BATCH_SIZE", service.DefaultBatchSize),
		WindowLog: sf.MayInt("WINDOW_LOG", zstarchive.DefaultWindowLog),
	}
}
