package booking

import (
	"strings"
	"time"

	"github.com/shareit-go/service-shareit/internal/domain"
)

// State is a query-time view over bookings. It is never persisted.
type State string

const (
	StateAll      State = "ALL"
	StateCurrent  State = "CURRENT"
	StatePast     State = "PAST"
	StateFuture   State = "FUTURE"
	StateWaiting  State = "WAITING"
	StateRejected State = "REJECTED"
)

// Order selects how matching bookings are sorted.
type Order int

const (
	OrderStartDesc Order = iota
	OrderIDAsc
)

// Filter is the predicate and ordering half of a store query.
// Zero time bounds and a nil Status mean "no constraint". All bounds are strict.
type Filter struct {
	Status      *BookingStatus
	StartBefore time.Time
	StartAfter  time.Time
	EndBefore   time.Time
	EndAfter    time.Time
	Order       Order
}

// stateFilters maps every supported state to the filter it selects at a given instant.
var stateFilters = map[State]func(now time.Time) Filter{
	StateAll: func(time.Time) Filter {
		return Filter{Order: OrderStartDesc}
	},
	StateCurrent: func(now time.Time) Filter {
		return Filter{StartBefore: now, EndAfter: now, Order: OrderIDAsc}
	},
	StatePast: func(now time.Time) Filter {
		return Filter{EndBefore: now, Order: OrderStartDesc}
	},
	StateFuture: func(now time.Time) Filter {
		return Filter{StartAfter: now, Order: OrderStartDesc}
	},
	StateWaiting: func(time.Time) Filter {
		return Filter{Status: statusPtr(StatusWaiting), Order: OrderStartDesc}
	},
	StateRejected: func(time.Time) Filter {
		return Filter{Status: statusPtr(StatusRejected), Order: OrderStartDesc}
	},
}

// ParseState converts a request value into a State. Matching ignores case and
// surrounding whitespace; anything else is an UnknownState error carrying the raw value.
func ParseState(value string) (State, error) {
	state := State(strings.ToUpper(strings.TrimSpace(value)))
	if _, ok := stateFilters[state]; !ok {
		return "", domain.NewUnknownStateError(value)
	}
	return state, nil
}

// FilterAt returns the filter the state selects at the given instant.
func (s State) FilterAt(now time.Time) (Filter, error) {
	build, ok := stateFilters[s]
	if !ok {
		return Filter{}, domain.NewUnknownStateError(string(s))
	}
	return build(now), nil
}

// Query is the full store query: a scope (booker and/or items), a filter and an optional page.
type Query struct {
	BookerID int64
	ItemIDs  []int64
	Filter   Filter
	Page     *domain.Page
}

// ForBooker scopes a filter to one booker's bookings.
func ForBooker(bookerID int64, f Filter, page *domain.Page) Query {
	return Query{BookerID: bookerID, Filter: f, Page: page}
}

// ForItems scopes a filter to the bookings of a set of items.
func ForItems(itemIDs []int64, f Filter, page *domain.Page) Query {
	return Query{ItemIDs: itemIDs, Filter: f, Page: page}
}

// WithStatus returns a copy of the filter restricted to one status.
func (f Filter) WithStatus(status BookingStatus) Filter {
	f.Status = statusPtr(status)
	return f
}

func statusPtr(s BookingStatus) *BookingStatus {
	return &s
}
