package app

import (
	"context"
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/arkinmodi/add-license-header/internal/config"
	"github.com/arkinmodi/add-license-header/internal/header"
)

// Outcome pairs a per-file result with the error that stopped it, so one
// broken file never hides the others.
type Outcome struct {
	Path   string
	Result header.Result
	Err    error
}

// Manager defines the business logic for license header operations.
type Manager interface {
	// ProcessFiles synchronizes headers for paths, running up to jobs
	// files concurrently. Outcomes are returned in input order.
	ProcessFiles(ctx context.Context, job header.Job, paths []string, jobs int) []Outcome
	Styles() *header.Registry
	// Config returns the loaded repository config, or nil when none was
	// found.
	Config() *config.Config
}

// Ensure the interface is satisfied.
var _ Manager = (*LazyManager)(nil)

// LazyManager acts as a placeholder for a real Manager implementation,
// allowing for deferred initialization of dependencies.
type LazyManager struct {
	inner Manager
}

func (l *LazyManager) SetInner(m Manager) {
	l.inner = m
}

// HasInner returns true if the inner manager has been set. This is used by
// PersistentPreRunE to skip initialization if already configured (e.g., in
// tests).
func (l *LazyManager) HasInner() bool {
	return l.inner != nil
}

func (l *LazyManager) check() Manager {
	if l.inner == nil {
		panic("LazyManager accessed before initialization; check command wiring.")
	}
	return l.inner
}

func (l *LazyManager) ProcessFiles(ctx context.Context, job header.Job, paths []string, jobs int) []Outcome {
	return l.check().ProcessFiles(ctx, job, paths, jobs)
}

func (l *LazyManager) Styles() *header.Registry {
	return l.check().Styles()
}

func (l *LazyManager) Config() *config.Config {
	return l.check().Config()
}

// Ensure the interface is satisfied.
var _ Manager = (*CLIManager)(nil)

// CLIManager is the concrete implementation of the Manager interface.
type CLIManager struct {
	logger    *slog.Logger
	processor *header.Processor
	styles    *header.Registry
	cfg       *config.Config
}

func NewCLIManager(
	l *slog.Logger,
	p *header.Processor,
	s *header.Registry,
	c *config.Config,
) *CLIManager {
	return &CLIManager{
		logger:    l,
		processor: p,
		styles:    s,
		cfg:       c,
	}
}

func (m *CLIManager) Styles() *header.Registry {
	return m.styles
}

func (m *CLIManager) Config() *config.Config {
	return m.cfg
}

func (m *CLIManager) ProcessFiles(ctx context.Context, job header.Job, paths []string, jobs int) []Outcome {
	m.logger.Debug("processing files", "count", len(paths), "jobs", jobs,
		"check", job.Check, "unmanaged", job.Unmanaged)

	if jobs < 1 {
		jobs = 1
	}

	outcomes := make([]Outcome, len(paths))
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(jobs)

	for i, path := range paths {
		i, path := i, path
		g.Go(func() error {
			res, err := m.processor.Process(ctx, job, path)
			outcomes[i] = Outcome{Path: path, Result: res, Err: err}
			return nil
		})
	}

	// Per-file errors are carried in the outcomes, never by the group.
	_ = g.Wait()

	return outcomes
}
