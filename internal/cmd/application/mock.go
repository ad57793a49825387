package application

import (
	"github.com/rs/zerolog"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/export"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/library"
)

// Mock provides a mock implementation of Application for testing.
// If a function field is nil, the method returns a default/zero value.
type Mock struct {
	ServiceFunc      func() (library.Service, error)
	ExporterFunc     func() *export.Exporter
	LoggerFunc       func() *zerolog.Logger
	OutputFormatFunc func() string
	VersionFunc      func() string
}

// Service returns a service using the mock function or nil.
func (m *Mock) Service() (library.Service, error) {
	if m.ServiceFunc != nil {
		return m.ServiceFunc()
	}
	return nil, nil
}

// Exporter returns an exporter using the mock function or nil.
func (m *Mock) Exporter() *export.Exporter {
	if m.ExporterFunc != nil {
		return m.ExporterFunc()
	}
	return nil
}

// Logger returns a logger using the mock function or a no-op logger.
func (m *Mock) Logger() *zerolog.Logger {
	if m.LoggerFunc != nil {
		return m.LoggerFunc()
	}
	logger := zerolog.Nop()
	return &logger
}

// OutputFormat returns output format using the mock function or "table".
func (m *Mock) OutputFormat() string {
	if m.OutputFormatFunc != nil {
		return m.OutputFormatFunc()
	}
	return "table"
}

// Version returns version using the mock function or "dev".
func (m *Mock) Version() string {
	if m.VersionFunc != nil {
		return m.VersionFunc()
	}
	return "dev"
}

// Ensure Mock implements Application at compile time.
var _ Application = (*Mock)(nil)
