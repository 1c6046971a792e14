package port

import (
	"context"
	"errors"
)

var ErrInvalidQuery = errors.New("invalid query")

// SearchIndex is a full text index over records of a single collection,
// documents are addressed by a key that is unique within the collection.
type SearchIndex interface {
	Index(key int, data interface{}) error
	Delete(key int) error
	// Search returns the keys of all matching documents, best match first.
	// A malformed query is reported as an error wrapping ErrInvalidQuery.
	Search(ctx context.Context, query string) ([]int, error)
	Close() error
}
