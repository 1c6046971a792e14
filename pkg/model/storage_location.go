package model

import "fmt"

type LocationStatus string

const (
	LocationAvailable   LocationStatus = "available"
	LocationFull        LocationStatus = "full"
	LocationMaintenance LocationStatus = "maintenance"
)

func (s LocationStatus) Valid() bool {
	switch s {
	case LocationAvailable, LocationFull, LocationMaintenance:
		return true
	}
	return false
}

// StorageLocation is a shelf in the warehouse addressed by zone, aisle and shelf.
type StorageLocation struct {
	ID       int            `mapstructure:"id" json:"id"`
	Zone     string         `mapstructure:"zone" json:"zone"`
	Aisle    string         `mapstructure:"aisle" json:"aisle"`
	Shelf    string         `mapstructure:"shelf" json:"shelf"`
	Capacity int            `mapstructure:"capacity" json:"capacity"`
	Occupied int            `mapstructure:"occupied" json:"occupied"`
	Status   LocationStatus `mapstructure:"status" json:"status"`
}

// Code is the location label used by personnel routes, e.g. A-01-02
func (l StorageLocation) Code() string {
	return l.Zone + "-" + l.Aisle + "-" + l.Shelf
}

func (l StorageLocation) String() string {
	return fmt.Sprintf("<StorageLocation id=%d code=%s status=%s>", l.ID, l.Code(), l.Status)
}

func (l StorageLocation) Validate() error {
	err := requireFields(map[string]string{
		"zone":  l.Zone,
		"aisle": l.Aisle,
		"shelf": l.Shelf,
	})
	if err != nil {
		return err
	}
	if l.Capacity < 0 || l.Occupied < 0 {
		return fmt.Errorf("capacity and occupied must not be negative: %w", ErrInvalid)
	}
	if !l.Status.Valid() {
		return fmt.Errorf("status %q: %w", l.Status, ErrInvalid)
	}
	return nil
}
