package persistence

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/internal/catalogs/memory"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/constants"
	pkgerrors "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// Backend names a storage implementation.
type Backend string

// Supported backends.
const (
	BackendYAML   Backend = "yaml"
	BackendBolt   Backend = "bolt"
	BackendMemory Backend = "memory"
)

// ParseBackend resolves a backend name.
func ParseBackend(s string) (Backend, error) {
	switch b := Backend(strings.ToLower(strings.TrimSpace(s))); b {
	case "":
		return BackendYAML, nil
	case BackendYAML, BackendBolt, BackendMemory:
		return b, nil
	}
	return "", pkgerrors.NewConfigError("storage", fmt.Sprintf("unknown backend %q (want yaml, bolt or memory)", s), nil)
}

// Storage is a persistence backend that must be closed after use.
type Storage interface {
	LoadAll() ([]media.Item, error)
	SaveAll(items []media.Item) error
	io.Closer
}

// Open returns the backend for kind, storing its files under dir.
func Open(kind Backend, dir string, logger *zerolog.Logger) (Storage, error) {
	if dir == "" {
		dir = constants.DefaultDataDir
	}
	switch kind {
	case BackendYAML, "":
		return NewYAMLStorage(filepath.Join(dir, constants.CatalogYAMLFile), logger), nil
	case BackendBolt:
		return OpenBoltStorage(filepath.Join(dir, constants.CatalogBoltFile), logger)
	case BackendMemory:
		return memory.NewStorage(), nil
	}
	return nil, pkgerrors.NewConfigError("storage", fmt.Sprintf("unknown backend %q", kind), nil)
}
