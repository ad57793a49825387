package persistence

import (
	"cmp"
	"os"
	"path/filepath"
	"slices"
	"time"

	"github.com/rs/zerolog"
	"github.com/timshannon/bolthold"
	bolt "go.etcd.io/bbolt"

	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/constants"
	pkgerrors "github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/errors"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/logging"
	"github.com/DI-LEO-GIUSEPPE-GABRIELE/medialibrary/pkg/media"
)

// boltOpenTimeout bounds the wait for the file lock held by another process.
const boltOpenTimeout = time.Second

// boltRecord is the value stored per item. Seq keeps insertion order,
// which bolt's key ordering would otherwise lose.
type boltRecord struct {
	Seq    int
	Record Record
}

// BoltStorage keeps the catalog in a bbolt database through bolthold.
type BoltStorage struct {
	store  *bolthold.Store
	path   string
	logger *zerolog.Logger
}

// OpenBoltStorage opens or creates the database at path.
func OpenBoltStorage(path string, logger *zerolog.Logger) (*BoltStorage, error) {
	if logger == nil {
		logger = logging.Default()
	}
	if err := os.MkdirAll(filepath.Dir(path), constants.DirPermissions); err != nil {
		return nil, pkgerrors.WrapStorage("bolt", "open", pkgerrors.WrapIO("create", filepath.Dir(path), err))
	}

	store, err := bolthold.Open(path, constants.FilePermissions, &bolthold.Options{
		Options: &bolt.Options{Timeout: boltOpenTimeout},
	})
	if err != nil {
		return nil, pkgerrors.WrapStorage("bolt", "open", err)
	}
	return &BoltStorage{store: store, path: path, logger: logger}, nil
}

// Path returns the database file.
func (s *BoltStorage) Path() string { return s.path }

// LoadAll reads every item in insertion order.
func (s *BoltStorage) LoadAll() ([]media.Item, error) {
	var stored []boltRecord
	if err := s.store.Find(&stored, &bolthold.Query{}); err != nil {
		return nil, pkgerrors.WrapStorage("bolt", "load", err)
	}
	slices.SortFunc(stored, func(a, b boltRecord) int {
		return cmp.Compare(a.Seq, b.Seq)
	})

	records := make([]Record, len(stored))
	for i, br := range stored {
		records[i] = br.Record
	}
	items, err := FromRecords(records, s.logger)
	if err != nil {
		return nil, pkgerrors.WrapStorage("bolt", "load", err)
	}
	return items, nil
}

// SaveAll replaces the stored item set in a single transaction.
func (s *BoltStorage) SaveAll(items []media.Item) error {
	records := ToRecords(items)
	err := s.store.Bolt().Update(func(tx *bolt.Tx) error {
		if err := s.store.TxDeleteMatching(tx, &boltRecord{}, &bolthold.Query{}); err != nil {
			return err
		}
		for i, rec := range records {
			if err := s.store.TxInsert(tx, rec.ID, &boltRecord{Seq: i, Record: rec}); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return pkgerrors.WrapStorage("bolt", "save", err)
	}
	return nil
}

// Close releases the database file lock.
func (s *BoltStorage) Close() error {
	if err := s.store.Close(); err != nil {
		return pkgerrors.WrapStorage("bolt", "close", err)
	}
	return nil
}
