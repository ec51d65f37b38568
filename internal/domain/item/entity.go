package item

import (
	"errors"
	"strings"
)

var ErrEmptyName = errors.New("item name cannot be empty")

// Item is a read-only catalog reference. The booking engine only needs its owner and availability flag.
type Item struct {
	id          int64
	ownerID     int64
	name        string
	description string
	available   bool
}

func NewItem(id, ownerID int64, name, description string, available bool) (*Item, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, ErrEmptyName
	}
	return &Item{
		id:          id,
		ownerID:     ownerID,
		name:        name,
		description: description,
		available:   available,
	}, nil
}

func (i *Item) IsOwnedBy(userID int64) bool {
	return i.ownerID == userID
}

func (i *Item) ID() int64           { return i.id }
func (i *Item) OwnerID() int64      { return i.ownerID }
func (i *Item) Name() string        { return i.name }
func (i *Item) Description() string { return i.description }
func (i *Item) Available() bool     { return i.available }
