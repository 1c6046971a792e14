package search

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/blevesearch/bleve/v2"
	"github.com/wmsdemo/wms/pkg/port"
)

var _ port.SearchIndex = (*Index)(nil)

// Index is an in memory bleve index, it is rebuilt from the
// collection on every start.
type Index struct {
	name string
	idx  bleve.Index
}

func NewIndex(name string) (*Index, error) {
	mapping := bleve.NewIndexMapping()
	idx, err := bleve.NewMemOnly(mapping)
	if err != nil {
		return nil, fmt.Errorf("failed to create search index %q: %w", name, err)
	}
	return &Index{name: name, idx: idx}, nil
}

func (si *Index) String() string {
	return "<SearchIndex name=" + si.name + ">"
}

func (si *Index) Index(key int, data interface{}) error {
	return si.idx.Index(strconv.Itoa(key), data)
}

func (si *Index) Delete(key int) error {
	return si.idx.Delete(strconv.Itoa(key))
}

func (si *Index) Search(ctx context.Context, query string) ([]int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, nil
	}

	q := bleve.NewQueryStringQuery(query)
	_, err := q.Parse()
	if err != nil {
		return nil, fmt.Errorf("%w %q: %v", port.ErrInvalidQuery, query, err)
	}

	count, err := si.idx.DocCount()
	if err != nil {
		return nil, err
	}
	if count == 0 {
		return nil, nil
	}

	req := bleve.NewSearchRequestOptions(q, int(count), 0, false)
	res, err := si.idx.SearchInContext(ctx, req)
	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("search %q in %s failed: %w", query, si.name, err)
		}
		// searchers are built from the parsed query, regexp and
		// similar terms are only compiled at this point
		return nil, fmt.Errorf("%w %q: %v", port.ErrInvalidQuery, query, err)
	}

	keys := make([]int, 0, len(res.Hits))
	for _, hit := range res.Hits {
		key, err := strconv.Atoi(hit.ID)
		if err != nil {
			return nil, err
		}
		keys = append(keys, key)
	}
	return keys, nil
}

func (si *Index) Close() error {
	return si.idx.Close()
}
