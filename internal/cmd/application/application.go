// Package application provides the application interface for library commands.
//
// Commands accept an Application rather than the concrete App type so they
// can be tested against a Mock:
//
//	mock := &application.Mock{
//	    ServiceFunc: func() (library.Service, error) {
//	        return svc, nil
//	    },
//	}
//	cmd := list.NewCommand(mock)
package application

import (
	"github.com/rs/zerolog"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/export"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/library"
)

// Application provides what commands need from the running app.
// All methods must be safe for concurrent use.
type Application interface {
	// Service returns the catalog service, opening storage on first use.
	Service() (library.Service, error)

	// Exporter returns the exporter bound to the configured export dir.
	Exporter() *export.Exporter

	// Logger returns the configured logger instance.
	Logger() *zerolog.Logger

	// OutputFormat returns the configured output format (table, json, yaml, wide).
	OutputFormat() string

	// Version returns the application version string.
	Version() string
}
