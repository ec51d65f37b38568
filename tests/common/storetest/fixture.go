//go:build unit || e2e

package storetest

import (
	"shareit/internal/infra/memstore"
	"shareit/internal/pkg/clock"
	"shareit/tests/common/builder"
)

// Ids of the users and items every Fixture starts with.
const (
	OwnerID    int64 = 1
	BookerID   int64 = 2
	StrangerID int64 = 3

	ItemID            int64 = 10
	UnavailableItemID int64 = 11
	StrangerItemID    int64 = 12
)

// Fixture is a memory store seeded with an owner, a booker and a stranger, and a clock fixed at builder.BaseTime.
type Fixture struct {
	Store    *memstore.Store
	Bookings *memstore.BookingRepository
	Items    *memstore.ItemDirectory
	Users    *memstore.UserDirectory
	Clock    *clock.MockClock
}

func NewFixture() *Fixture {
	store := memstore.NewStore()

	store.PutUser(builder.NewUserBuilder().WithID(OwnerID).WithName("Owner").WithEmail("owner@example.com").MustBuild())
	store.PutUser(builder.NewUserBuilder().WithID(BookerID).MustBuild())
	store.PutUser(builder.NewUserBuilder().WithID(StrangerID).WithName("Stranger").WithEmail("stranger@example.com").MustBuild())

	store.PutItem(builder.NewItemBuilder().WithID(ItemID).WithOwnerID(OwnerID).MustBuild())
	store.PutItem(builder.NewItemBuilder().WithID(UnavailableItemID).WithOwnerID(OwnerID).Unavailable().
		With(func(i *builder.ItemBuilder) { i.Name = "Ladder" }).MustBuild())
	store.PutItem(builder.NewItemBuilder().WithID(StrangerItemID).WithOwnerID(StrangerID).
		With(func(i *builder.ItemBuilder) { i.Name = "Tent" }).MustBuild())

	return &Fixture{
		Store:    store,
		Bookings: memstore.NewBookingRepository(store),
		Items:    memstore.NewItemDirectory(store),
		Users:    memstore.NewUserDirectory(store),
		Clock:    clock.NewMockClock(builder.BaseTime),
	}
}
