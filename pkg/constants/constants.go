// Package constants provides shared constants used throughout the media
// library: timeouts, file permissions, file names and input formats that
// must agree between the CLI, persistence and export layers.
package constants

import "time"

// Timeout constants
const (
	// DefaultShutdownTimeout bounds how long the batch processor waits for
	// in-flight work when the application exits
	DefaultShutdownTimeout = 5 * time.Second
)

// File permission constants define standard Unix file permissions
const (
	// DirPermissions is the default permission for created directories (rwxr-xr-x)
	DirPermissions = 0755

	// FilePermissions is the default permission for created files (rw-r--r--)
	FilePermissions = 0644
)

// Storage and export locations
const (
	// DefaultDataDir holds the catalog file when no data dir is configured
	DefaultDataDir = "data"

	// CatalogYAMLFile is the file name used by the YAML backend
	CatalogYAMLFile = "catalog.yaml"

	// CatalogBoltFile is the file name used by the bolt backend
	CatalogBoltFile = "catalog.db"

	// ExportSuffix is appended to the item kind to form export file names
	ExportSuffix = "_list"

	// DefaultExportDirName is the directory under $HOME receiving exports
	DefaultExportDirName = "Downloads"
)

// Date layouts
const (
	// DateLayout is the canonical date layout for storage and exports
	DateLayout = "2006-01-02"

	// InputDateLayout is the day-first layout typed at the console (dd/MM/yyyy)
	InputDateLayout = "02/01/2006"
)

// Input limits
const (
	// MaxTitleLength caps titles, authors and publishers typed by users
	MaxTitleLength = 256

	// MaxPages caps the page count accepted for a book
	MaxPages = 100000
)

// StorageVersion is written into persisted catalogs
const StorageVersion = 1
