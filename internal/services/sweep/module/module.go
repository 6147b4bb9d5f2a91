// Package module wires the sweep orchestrator
package module

import (
	"dumpsift/internal/modkit"
	siftdomain "dumpsift/internal/services/sift/domain"
	"dumpsift/internal/services/sweep/domain"
	"dumpsift/internal/services/sweep/service"
)

// Ports defines the sweep module ports
type Ports struct {
	Runner domain.TreeRunnerPort
}

// Module implements the sweep module
type Module struct {
	deps  modkit.Deps
	ports Ports
}

// New constructs the sweep module around an archive runner port
func New(deps modkit.Deps, runner siftdomain.RunnerPort) *Module {
	opts := FromConfig(deps.Cfg)
	svc := service.New(runner, service.Config{Workers: opts.Workers})

	m := &Module{deps: deps}
	m.ports = Ports{Runner: svc}
	return m
}

// Name returns the module name
func (m *Module) Name() string { return "sweep" }

// Ports returns the module ports
func (m *Module) Ports() any { return m.ports }
