//go:build unit || e2e

package builder

import (
	"shareit/internal/domain/item"
)

type ItemBuilder struct {
	ID          int64
	OwnerID     int64
	Name        string
	Description string
	Available   bool
}

func NewItemBuilder() *ItemBuilder {
	return &ItemBuilder{
		ID:          10,
		OwnerID:     1,
		Name:        "Drill",
		Description: "Cordless drill",
		Available:   true,
	}
}

func (i *ItemBuilder) With(mutate func(*ItemBuilder)) *ItemBuilder {
	mutate(i)
	return i
}

func (i *ItemBuilder) WithID(id int64) *ItemBuilder {
	i.ID = id
	return i
}

func (i *ItemBuilder) WithOwnerID(id int64) *ItemBuilder {
	i.OwnerID = id
	return i
}

func (i *ItemBuilder) Unavailable() *ItemBuilder {
	i.Available = false
	return i
}

func (i *ItemBuilder) BuildDomain() (*item.Item, error) {
	return item.NewItem(i.ID, i.OwnerID, i.Name, i.Description, i.Available)
}

func (i *ItemBuilder) MustBuild() *item.Item {
	it, err := i.BuildDomain()
	if err != nil {
		panic(err)
	}
	return it
}
