package booking

import (
	"fmt"
	"time"

	"github.com/shareit-go/service-shareit/internal/domain"
)

// Booking is the aggregate root for the booking domain.
type Booking struct {
	id       int64
	itemID   int64
	bookerID int64
	start    time.Time
	end      time.Time
	status   BookingStatus

	version   int64
	createdAt time.Time
	updatedAt time.Time
}

// NewBooking creates a new Booking aggregate with status=WAITING.
// The id stays zero until the store assigns one.
func NewBooking(itemID, bookerID int64, start, end, now time.Time) (*Booking, error) {
	if itemID <= 0 {
		return nil, domain.NewValidationError("item ID is required")
	}
	if bookerID <= 0 {
		return nil, domain.NewValidationError("booker ID is required")
	}
	if start.IsZero() || end.IsZero() {
		return nil, domain.NewValidationError("booking start and end are required")
	}
	if end.Before(now) {
		return nil, domain.NewValidationError("booking end must not be in the past")
	}
	if start.Before(now) {
		return nil, domain.NewValidationError("booking start must not be in the past")
	}
	if !start.Before(end) {
		return nil, domain.NewValidationError(fmt.Sprintf("booking start %s must be before end %s",
			start.Format(time.RFC3339), end.Format(time.RFC3339)))
	}

	ts := now.UTC()
	return &Booking{
		itemID:    itemID,
		bookerID:  bookerID,
		start:     start.UTC(),
		end:       end.UTC(),
		status:    StatusWaiting,
		version:   1,
		createdAt: ts,
		updatedAt: ts,
	}, nil
}

// ReconstructBooking rebuilds a Booking from persistence data (no validation).
func ReconstructBooking(
	id, itemID, bookerID int64,
	start, end time.Time,
	status BookingStatus,
	version int64,
	createdAt, updatedAt time.Time,
) *Booking {
	return &Booking{
		id:        id,
		itemID:    itemID,
		bookerID:  bookerID,
		start:     start,
		end:       end,
		status:    status,
		version:   version,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}
}

// --- Getters ---

// ID returns the store-assigned identifier, zero before the first save.
func (b *Booking) ID() int64 { return b.id }

// ItemID returns the booked item's identifier.
func (b *Booking) ItemID() int64 { return b.itemID }

// BookerID returns the identifier of the user who requested the booking.
func (b *Booking) BookerID() int64 { return b.bookerID }

// Start returns the beginning of the reserved window.
func (b *Booking) Start() time.Time { return b.start }

// End returns the end of the reserved window.
func (b *Booking) End() time.Time { return b.end }

// Status returns the current booking status.
func (b *Booking) Status() BookingStatus { return b.status }

// Version returns the entity version for optimistic locking.
func (b *Booking) Version() int64 { return b.version }

// CreatedAt returns the creation timestamp.
func (b *Booking) CreatedAt() time.Time { return b.createdAt }

// UpdatedAt returns the last-updated timestamp.
func (b *Booking) UpdatedAt() time.Time { return b.updatedAt }

// --- Behavior ---

// AssignID records the identifier chosen by the store. It is a no-op once an id is set.
func (b *Booking) AssignID(id int64) {
	if b.id == 0 {
		b.id = id
	}
}

// IsBookedBy checks if the booking was requested by the given user.
func (b *Booking) IsBookedBy(userID int64) bool {
	return b.bookerID == userID
}

// Approve moves the booking to APPROVED. Re-approving an approved booking is refused.
func (b *Booking) Approve(now time.Time) error {
	if b.status == StatusApproved {
		return domain.NewValidationError(fmt.Sprintf("booking %d is already approved", b.id))
	}
	return b.transitionTo(StatusApproved, now)
}

// Reject moves the booking to REJECTED.
func (b *Booking) Reject(now time.Time) error {
	return b.transitionTo(StatusRejected, now)
}

// Decide applies an owner's approve/reject decision.
func (b *Booking) Decide(approved bool, now time.Time) error {
	if approved {
		return b.Approve(now)
	}
	return b.Reject(now)
}

// IncrementVersion bumps the version for optimistic locking.
func (b *Booking) IncrementVersion() {
	b.version++
}

func (b *Booking) transitionTo(target BookingStatus, now time.Time) error {
	if !b.status.CanTransitionTo(target) {
		return domain.NewValidationError(fmt.Sprintf("booking %d cannot move from %s to %s", b.id, b.status, target))
	}
	b.status = target
	b.updatedAt = now.UTC()
	return nil
}
