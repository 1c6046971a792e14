package port

import (
	"errors"
)

var ErrUnknownBucket = errors.New("bucket is unknown")
var ErrNotFound = errors.New("resource not found")

// KeyValueStore is a durable string key value store, the server side
// equivalent of the browsers local storage.
type KeyValueStore interface {
	// Get returns ErrNotFound if the key is absent
	Get(key string) (string, error)
	Set(key, value string) error
	// Delete of an absent key is not an error
	Delete(key string) error
	Close() error
}

type DatabaseEngine interface {
	ReadTransaction(fn func(tx EngineReadTransaction) error) error
	WriteTransaction(fn func(tx EngineWriteTransaction) error) error
	Close() error
}

type EngineWriteTransaction interface {
	EnsureBucket(bucket []byte)
	Put(bucket, k, v []byte)
	Delete(bucket, k []byte)
	EngineReadTransaction
}

type EngineReadTransaction interface {
	Get(bucket, key []byte) ([]byte, error)
}
