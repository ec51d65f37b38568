package shared

import (
	"errors"

	"shareit/internal/pkg/errs"
)

// Specific failures. Callers tag them with an errs category when returning.
var (
	ErrBookingNotFound = errors.New("booking not found")
	ErrItemNotFound    = errors.New("item not found")
	ErrUserNotFound    = errors.New("user not found")

	ErrOwnerCannotBook = errors.New("owner cannot book own item")
	ErrNotItemOwner    = errors.New("not the item owner")
	ErrNotBookingParty = errors.New("only the booker or the item owner can view a booking")

	ErrItemUnavailable = errors.New("item unavailable")

	ErrDatabaseOperationFailed = errs.New("database operation failed")
)
