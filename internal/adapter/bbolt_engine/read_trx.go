package bbolt_engine

import (
	"github.com/wmsdemo/wms/pkg/port"
	"go.etcd.io/bbolt"
)

var _ port.EngineReadTransaction = (*ReadTransaction)(nil)

type ReadTransaction struct {
	tx *bbolt.Tx
}

func NewReadTransaction(tx *bbolt.Tx) *ReadTransaction {
	return &ReadTransaction{
		tx: tx,
	}
}

// Get returns a copy of the stored value, bbolt values are
// only valid for the lifetime of the transaction.
func (tx *ReadTransaction) Get(bucket, key []byte) ([]byte, error) {
	b := tx.tx.Bucket(bucket)
	if b == nil {
		return nil, port.ErrNotFound
	}
	value := b.Get(key)
	if value == nil {
		return nil, port.ErrNotFound
	}
	return append([]byte(nil), value...), nil
}
