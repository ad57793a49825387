package persistence

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/goccy/go-yaml"
	"github.com/rs/zerolog"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/constants"
	pkgerrors "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// document is the top-level layout of the YAML catalog file.
type document struct {
	Version int      `yaml:"version"`
	Items   []Record `yaml:"items"`
}

// YAMLStorage keeps the catalog in a single YAML file.
type YAMLStorage struct {
	path   string
	logger *zerolog.Logger
}

// NewYAMLStorage returns a backend for the file at path. The file is
// created on the first save.
func NewYAMLStorage(path string, logger *zerolog.Logger) *YAMLStorage {
	if logger == nil {
		logger = logging.Default()
	}
	return &YAMLStorage{path: path, logger: logger}
}

// Path returns the backing file.
func (s *YAMLStorage) Path() string { return s.path }

// LoadAll reads every item. A missing file is an empty catalog.
func (s *YAMLStorage) LoadAll() ([]media.Item, error) {
	data, err := os.ReadFile(s.path)
	if errors.Is(err, fs.ErrNotExist) {
		s.logger.Debug().Str("path", s.path).Msg("No catalog file, starting empty")
		return []media.Item{}, nil
	}
	if err != nil {
		return nil, pkgerrors.WrapStorage("yaml", "load", pkgerrors.WrapIO("read", s.path, err))
	}

	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, pkgerrors.WrapStorage("yaml", "load", pkgerrors.WrapParse("yaml", s.path, err))
	}

	items, err := FromRecords(doc.Items, s.logger)
	if err != nil {
		return nil, pkgerrors.WrapStorage("yaml", "load", err)
	}
	return items, nil
}

// SaveAll writes every item, replacing the file atomically.
func (s *YAMLStorage) SaveAll(items []media.Item) error {
	data, err := yaml.Marshal(document{
		Version: constants.StorageVersion,
		Items:   ToRecords(items),
	})
	if err != nil {
		return pkgerrors.WrapStorage("yaml", "save", err)
	}

	if err := os.MkdirAll(filepath.Dir(s.path), constants.DirPermissions); err != nil {
		return pkgerrors.WrapStorage("yaml", "save", pkgerrors.WrapIO("create", filepath.Dir(s.path), err))
	}

	tmp := s.path + ".tmp"
	if err := os.WriteFile(tmp, data, constants.FilePermissions); err != nil {
		return pkgerrors.WrapStorage("yaml", "save", pkgerrors.WrapIO("write", tmp, err))
	}
	if err := os.Rename(tmp, s.path); err != nil {
		_ = os.Remove(tmp)
		return pkgerrors.WrapStorage("yaml", "save", pkgerrors.WrapIO("rename", s.path, err))
	}
	return nil
}

// Close implements io.Closer.
func (s *YAMLStorage) Close() error { return nil }
