package app

import (
	"context"

	"github.com/stretchr/testify/mock"

	"github.com/arkinmodi/add-license-header/internal/config"
	"github.com/arkinmodi/add-license-header/internal/header"
)

// MockManager is a testify mock of the Manager interface.
type MockManager struct {
	mock.Mock
	styles *header.Registry
	cfg    *config.Config
}

func (m *MockManager) ProcessFiles(ctx context.Context, job header.Job, paths []string, jobs int) []Outcome {
	args := m.Called(ctx, job, paths, jobs)
	outcomes, _ := args.Get(0).([]Outcome)
	return outcomes
}

func (m *MockManager) Styles() *header.Registry {
	if m.styles == nil {
		m.styles = header.NewRegistry()
	}
	return m.styles
}

func (m *MockManager) Config() *config.Config {
	return m.cfg
}
