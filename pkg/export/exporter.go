// Package export writes the items of one kind to a file in the export
// directory. Items are classified and flattened on the batch processor;
// the file is named "<Kind>_list.<ext>".
package export

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/catalogs/persistence"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/batch"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/constants"
	pkgerrors "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// ErrNothingToExport is returned when no item matches the requested kind.
var ErrNothingToExport = errors.New("nothing to export")

// Format is an export file format.
type Format string

// Supported formats.
const (
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatMarkdown Format = "markdown"
	FormatParquet  Format = "parquet"
)

// Formats lists every supported format.
func Formats() []Format {
	return []Format{FormatJSON, FormatYAML, FormatMarkdown, FormatParquet}
}

// ParseFormat resolves a format name or file extension.
func ParseFormat(s string) (Format, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "json":
		return FormatJSON, nil
	case "yaml", "yml":
		return FormatYAML, nil
	case "markdown", "md":
		return FormatMarkdown, nil
	case "parquet":
		return FormatParquet, nil
	}
	return "", pkgerrors.NewValidationError("format", s, "want json, yaml, markdown or parquet")
}

// Extension returns the file extension without the dot.
func (f Format) Extension() string {
	switch f {
	case FormatYAML:
		return "yaml"
	case FormatMarkdown:
		return "md"
	case FormatParquet:
		return "parquet"
	default:
		return "json"
	}
}

// writer encodes records of one kind.
type writer func(w io.Writer, kind media.Kind, records []persistence.Record) error

var writers = map[Format]writer{
	FormatJSON:     writeJSON,
	FormatYAML:     writeYAML,
	FormatMarkdown: writeMarkdown,
	FormatParquet:  writeParquet,
}

// Exporter writes exports into a directory.
type Exporter struct {
	dir       string
	processor *batch.Processor
	logger    *zerolog.Logger
}

// Option configures an Exporter.
type Option func(*Exporter)

// WithLogger sets the exporter logger.
func WithLogger(logger *zerolog.Logger) Option {
	return func(e *Exporter) {
		if logger != nil {
			e.logger = logger
		}
	}
}

// New returns an Exporter writing into dir using processor for the
// classification pass.
func New(dir string, processor *batch.Processor, opts ...Option) *Exporter {
	e := &Exporter{dir: dir, processor: processor, logger: logging.Default()}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Dir returns the export directory.
func (e *Exporter) Dir() string { return e.dir }

// InDir returns a copy of e writing into dir.
func (e *Exporter) InDir(dir string) *Exporter {
	c := *e
	c.dir = dir
	return &c
}

// FileName returns the name of the export file for kind and format.
func FileName(kind media.Kind, format Format) string {
	return kind.Label() + constants.ExportSuffix + "." + format.Extension()
}

// Export writes every item of kind to the export directory and returns the
// file path. items must be a snapshot the caller does not mutate while the
// export runs.
func (e *Exporter) Export(ctx context.Context, items []media.Item, kind media.Kind, format Format) (string, error) {
	write, ok := writers[format]
	if !ok {
		return "", pkgerrors.NewValidationError("format", format, "unsupported export format")
	}

	classified, err := batch.Process(ctx, e.processor, items, func(item media.Item) (*persistence.Record, error) {
		if media.IsNil(item) || item.Kind() != kind {
			return nil, nil
		}
		rec := persistence.NewRecord(item)
		return &rec, nil
	})
	if err != nil {
		return "", fmt.Errorf("classifying items: %w", err)
	}

	records := make([]persistence.Record, 0, len(classified))
	for _, rec := range classified {
		if rec != nil {
			records = append(records, *rec)
		}
	}
	if len(records) == 0 {
		return "", fmt.Errorf("%w: no %s items", ErrNothingToExport, kind)
	}

	if err := os.MkdirAll(e.dir, constants.DirPermissions); err != nil {
		return "", pkgerrors.WrapIO("create", e.dir, err)
	}
	path := filepath.Join(e.dir, FileName(kind, format))
	f, err := os.OpenFile(path, os.O_CREATE|os.O_TRUNC|os.O_WRONLY, constants.FilePermissions)
	if err != nil {
		return "", pkgerrors.WrapIO("create", path, err)
	}

	if err := write(f, kind, records); err != nil {
		_ = f.Close()
		return "", pkgerrors.WrapIO("write", path, err)
	}
	if err := f.Close(); err != nil {
		return "", pkgerrors.WrapIO("write", path, err)
	}

	logging.FromContextOr(ctx, e.logger).Info().
		Str("kind", kind.String()).
		Str("format", string(format)).
		Int("count", len(records)).
		Str("path", path).
		Msg("Exported items")
	return path, nil
}
