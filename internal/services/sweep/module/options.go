package module

import "dumpsift/internal/platform/config"

// Options holds the sweep module configuration
type Options struct {
	Workers int
}

// FromConfig reads the sweep options from config with SWEEP_ prefix
func FromConfig(cfg config.Conf) Options {
	sw := cfg.Prefix("SWEEP_")
	return Options{
		Workers: sw.MayInt("WORKERS", 4),
	}
}
