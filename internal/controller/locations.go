package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/wmsdemo/wms/pkg/model"
	"github.com/wmsdemo/wms/pkg/port"
)

// Locations manages the storage locations of the warehouse.
type Locations struct {
	locations *Collection[model.StorageLocation]
	index     port.SearchIndex
}

func NewLocations(index port.SearchIndex) (*Locations, error) {
	c := &Locations{
		locations: NewCollection(seedLocations(), locationID, setLocationID),
		index:     index,
	}
	for _, e := range c.locations.Entries() {
		err := c.index.Index(e.Key, e.Item)
		if err != nil {
			return nil, fmt.Errorf("failed to index %s: %w", e.Item, err)
		}
	}
	return c, nil
}

func (c *Locations) List(ctx context.Context, query string) ([]model.StorageLocation, error) {
	if query == "" {
		return c.locations.All(), nil
	}
	keys, err := c.index.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return c.locations.Select(keys), nil
}

func (c *Locations) Get(id int) (*model.StorageLocation, error) {
	l, ok := c.locations.Find(id)
	if !ok {
		return nil, port.ErrNotFound
	}
	return &l, nil
}

// Add creates an empty and available location
func (c *Locations) Add(l model.StorageLocation) (*model.StorageLocation, error) {
	l.Occupied = 0
	l.Status = model.LocationAvailable
	err := l.Validate()
	if err != nil {
		return nil, err
	}
	e := c.locations.Add(l)
	c.reindex(e)
	log.Printf("Added %s", e.Item)
	return &e.Item, nil
}

func (c *Locations) Update(id int, in model.StorageLocation) ([]model.StorageLocation, error) {
	err := in.Validate()
	if err != nil {
		return nil, err
	}
	updated, err := c.locations.Update(id, func(l *model.StorageLocation) error {
		l.Zone = in.Zone
		l.Aisle = in.Aisle
		l.Shelf = in.Shelf
		l.Capacity = in.Capacity
		l.Occupied = in.Occupied
		l.Status = in.Status
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, port.ErrNotFound
	}
	locations := make([]model.StorageLocation, len(updated))
	for i, e := range updated {
		c.reindex(e)
		locations[i] = e.Item
	}
	return locations, nil
}

func (c *Locations) Delete(id int) error {
	keys := c.locations.Delete(id)
	if len(keys) == 0 {
		return port.ErrNotFound
	}
	for _, key := range keys {
		err := c.index.Delete(key)
		if err != nil {
			log.Printf("Failed to remove location %d from search index: %v", id, err)
		}
	}
	return nil
}

func (c *Locations) reindex(e Entry[model.StorageLocation]) {
	err := c.index.Index(e.Key, e.Item)
	if err != nil {
		log.Printf("Failed to index %s: %v", e.Item, err)
	}
}
