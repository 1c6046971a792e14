package bbolt_engine

import (
	"github.com/wmsdemo/wms/pkg/port"
)

var _ port.KeyValueStore = (*LocalStorage)(nil)

var localStorageBucket = []byte("local_storage")

// LocalStorage is a string key value store inside a single bucket
// of a bbolt database. Every write is committed before returning.
type LocalStorage struct {
	db *DB
}

func OpenLocalStorage(path string) (*LocalStorage, error) {
	db, err := Open(path)
	if err != nil {
		return nil, err
	}

	err = db.WriteTransaction(func(tx port.EngineWriteTransaction) error {
		tx.EnsureBucket(localStorageBucket)
		return nil
	})
	if err != nil {
		db.Close() // nolint: errcheck
		return nil, err
	}

	return &LocalStorage{db: db}, nil
}

func (s *LocalStorage) String() string {
	return "<LocalStorage db=" + s.db.String() + ">"
}

func (s *LocalStorage) Get(key string) (string, error) {
	var value []byte
	err := s.db.ReadTransaction(func(tx port.EngineReadTransaction) error {
		var err error
		value, err = tx.Get(localStorageBucket, []byte(key))
		return err
	})
	if err != nil {
		return "", err
	}
	return string(value), nil
}

func (s *LocalStorage) Set(key, value string) error {
	return s.db.WriteTransaction(func(tx port.EngineWriteTransaction) error {
		tx.Put(localStorageBucket, []byte(key), []byte(value))
		return nil
	})
}

func (s *LocalStorage) Delete(key string) error {
	return s.db.WriteTransaction(func(tx port.EngineWriteTransaction) error {
		tx.Delete(localStorageBucket, []byte(key))
		return nil
	})
}

func (s *LocalStorage) Close() error {
	return s.db.Close()
}
