// Package module wires the sift pipeline from config
package module

import (
	"dumpsift/internal/modkit"
	"dumpsift/internal/services/sift/domain"
	"dumpsift/internal/services/sift/ingest"
	"dumpsift/internal/services/sift/service"
)

// Ports defines the sift module ports
type Ports struct {
	Runner domain.RunnerPort
}

// Module implements the sift module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the sift module, loading the membership lists and
// wiring the archive reader and sinks. Panics on unreadable list files
func New(deps modkit.Deps) *Module {
	opts := FromConfig(deps.Cfg)

	allow, block, err := ingest.LoadLists(opts.AllowFile, opts.BlockFile)
	if err != nil {
		deps.Log.Panic().Err(err).Msg("sift: cannot load membership lists")
	}

	svc := service.New(
		ingest.NewOpener(opts.WindowLog),
		ingest.NewSinks(),
		allow, block,
		service.Config{BatchSize: opts.BatchSize},
	)

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "sift" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
