package controller

import (
	"context"
	"fmt"
	"log"

	"github.com/wmsdemo/wms/pkg/model"
	"github.com/wmsdemo/wms/pkg/port"
)

// Users manages the warehouse personnel list.
type Users struct {
	users *Collection[model.User]
	index port.SearchIndex
}

func NewUsers(index port.SearchIndex) (*Users, error) {
	c := &Users{
		users: NewCollection(seedUsers(), userID, setUserID),
		index: index,
	}
	for _, e := range c.users.Entries() {
		err := c.index.Index(e.Key, e.Item)
		if err != nil {
			return nil, fmt.Errorf("failed to index %s: %w", e.Item, err)
		}
	}
	return c, nil
}

// List returns all users, or the users matching the query if one is given
func (c *Users) List(ctx context.Context, query string) ([]model.User, error) {
	if query == "" {
		return c.users.All(), nil
	}
	keys, err := c.index.Search(ctx, query)
	if err != nil {
		return nil, err
	}
	return c.users.Select(keys), nil
}

func (c *Users) Get(id int) (*model.User, error) {
	u, ok := c.users.Find(id)
	if !ok {
		return nil, port.ErrNotFound
	}
	return &u, nil
}

func (c *Users) Add(u model.User) (*model.User, error) {
	err := u.Validate()
	if err != nil {
		return nil, err
	}
	e := c.users.Add(u)
	c.reindex(e)
	log.Printf("Added %s", e.Item)
	return &e.Item, nil
}

// Update replaces name, role and department of the user
func (c *Users) Update(id int, in model.User) ([]model.User, error) {
	err := in.Validate()
	if err != nil {
		return nil, err
	}
	updated, err := c.users.Update(id, func(u *model.User) error {
		u.Name = in.Name
		u.Role = in.Role
		u.Department = in.Department
		return nil
	})
	if err != nil {
		return nil, err
	}
	if len(updated) == 0 {
		return nil, port.ErrNotFound
	}
	users := make([]model.User, len(updated))
	for i, e := range updated {
		c.reindex(e)
		users[i] = e.Item
	}
	return users, nil
}

func (c *Users) Delete(id int) error {
	keys := c.users.Delete(id)
	if len(keys) == 0 {
		return port.ErrNotFound
	}
	for _, key := range keys {
		err := c.index.Delete(key)
		if err != nil {
			log.Printf("Failed to remove user %d from search index: %v", id, err)
		}
	}
	return nil
}

func (c *Users) reindex(e Entry[model.User]) {
	err := c.index.Index(e.Key, e.Item)
	if err != nil {
		log.Printf("Failed to index %s: %v", e.Item, err)
	}
}
