package booking

import "context"

// BookingRepository defines the persistence contract for booking aggregates.
type BookingRepository interface {
	// FindByID retrieves a booking by its identifier.
	FindByID(ctx context.Context, id int64) (*Booking, error)

	// FindByIDForUpdate retrieves a booking and locks its row until the surrounding
	// transaction ends.
	FindByIDForUpdate(ctx context.Context, id int64) (*Booking, error)

	// Find returns the bookings selected by a query, in the query's order.
	Find(ctx context.Context, q Query) ([]*Booking, error)

	// Save persists a new booking and assigns its id.
	Save(ctx context.Context, booking *Booking) error

	// Update persists changes to an existing booking with optimistic locking.
	Update(ctx context.Context, booking *Booking) error
}
