package booking

import (
	"errors"
	"math"
	"sort"
	"time"
)

var (
	ErrInvalidPageSize  = errors.New("page size must be positive")
	ErrInvalidPageIndex = errors.New("page index must not be negative")
	ErrInvalidOffset    = errors.New("offset must not be negative")
)

// Page is a zero-based window over a start-descending booking list.
type Page struct {
	index int
	size  int
}

func NewPage(index, size int) (Page, error) {
	if size <= 0 {
		return Page{}, ErrInvalidPageSize
	}
	if index < 0 {
		return Page{}, ErrInvalidPageIndex
	}
	return Page{index: index, size: size}, nil
}

// PageFromOffset converts an element offset into the page that contains it.
func PageFromOffset(from, size int) (Page, error) {
	if size <= 0 {
		return Page{}, ErrInvalidPageSize
	}
	if from < 0 {
		return Page{}, ErrInvalidOffset
	}
	return NewPage(from/size, size)
}

func (p Page) Index() int { return p.index }
func (p Page) Size() int  { return p.size }
func (p Page) Limit() int { return p.size }

// Offset saturates at math.MaxInt so far-out pages stay empty instead of wrapping negative.
func (p Page) Offset() int {
	if p.size > 0 && p.index > math.MaxInt/p.size {
		return math.MaxInt
	}
	return p.index * p.size
}

// Slice cuts the page out of an already ordered list. Out-of-range pages are empty.
func (p Page) Slice(bookings []*Booking) []*Booking {
	offset := p.Offset()
	if offset >= len(bookings) {
		return []*Booking{}
	}
	end := len(bookings)
	if p.size < end-offset {
		end = offset + p.size
	}
	return bookings[offset:end]
}

// SortByStartDesc orders bookings newest start first, ties broken by id descending.
func SortByStartDesc(bookings []*Booking) {
	sort.SliceStable(bookings, func(i, j int) bool {
		if !bookings[i].slot.start.Equal(bookings[j].slot.start) {
			return bookings[i].slot.start.After(bookings[j].slot.start)
		}
		return bookings[i].id > bookings[j].id
	})
}

// FilterByState keeps the bookings matching s at now, preserving order.
func FilterByState(bookings []*Booking, s State, now time.Time) []*Booking {
	out := make([]*Booking, 0, len(bookings))
	for _, b := range bookings {
		if s.Matches(b, now) {
			out = append(out, b)
		}
	}
	return out
}
