package application

import (
	"context"
	"time"

	"github.com/shareit-go/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-go/service-shareit/internal/domain/booking"
	itemDomain "github.com/shareit-go/service-shareit/internal/domain/item"
	userDomain "github.com/shareit-go/service-shareit/internal/domain/user"
	"github.com/shareit-go/service-shareit/internal/events"
	"github.com/shareit-go/service-shareit/internal/metrics"
	"go.uber.org/zap"
)

const eventSource = "service-shareit"

// BookingService owns the booking lifecycle: creation, owner decisions and single reads.
type BookingService struct {
	bookings  bookingDomain.BookingRepository
	items     itemDomain.ItemRepository
	users     userDomain.UserRepository
	tx        Transactor
	publisher EventPublisher
	topic     string
	logger    *zap.Logger
	now       func() time.Time
}

// NewBookingService creates a new BookingService.
func NewBookingService(
	bookings bookingDomain.BookingRepository,
	items itemDomain.ItemRepository,
	users userDomain.UserRepository,
	tx Transactor,
	publisher EventPublisher,
	topic string,
	logger *zap.Logger,
) *BookingService {
	return &BookingService{
		bookings:  bookings,
		items:     items,
		users:     users,
		tx:        tx,
		publisher: publisher,
		topic:     topic,
		logger:    logger,
		now:       time.Now,
	}
}

// CreateBooking registers a WAITING booking of someone else's available item.
func (s *BookingService) CreateBooking(ctx context.Context, requesterID int64, req CreateBookingRequest) (*BookingDTO, error) {
	var (
		bk     *bookingDomain.Booking
		it     *itemDomain.Item
		booker *userDomain.User
	)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		booker, err = s.users.FindByID(ctx, requesterID)
		if err != nil {
			return err
		}

		it, err = s.items.FindByID(ctx, req.ItemID)
		if err != nil {
			return err
		}
		// Owners cannot book their own items; reported as a missing item.
		if it.IsOwnedBy(requesterID) {
			return domain.NewItemNotFoundError(req.ItemID)
		}
		if !it.Available() {
			return domain.NewValidationError("item is not available for booking")
		}

		bk, err = bookingDomain.NewBooking(it.ID(), requesterID, req.Start, req.End, s.now())
		if err != nil {
			return err
		}
		return s.bookings.Save(ctx, bk)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingCreated()
	s.logger.Info("booking created",
		zap.Int64("booking_id", bk.ID()),
		zap.Int64("item_id", bk.ItemID()),
		zap.Int64("user_id", requesterID),
	)
	s.publishBookingEvent(ctx, events.BookingCreated, bk, it.OwnerID())

	result := toBookingDTO(bk, it, booker)
	return &result, nil
}

// UpdateBooking applies the item owner's approve/reject decision. The booking row is
// locked for the whole read-check-write so concurrent decisions serialize.
func (s *BookingService) UpdateBooking(ctx context.Context, requesterID, bookingID int64, approved bool) (*BookingDTO, error) {
	var (
		bk *bookingDomain.Booking
		it *itemDomain.Item
	)

	err := s.tx.WithinTransaction(ctx, func(ctx context.Context) error {
		var err error
		bk, err = s.bookings.FindByIDForUpdate(ctx, bookingID)
		if err != nil {
			return err
		}

		it, err = s.items.FindByID(ctx, bk.ItemID())
		if err != nil {
			return err
		}
		// Non-owners must not learn that the booking exists.
		if !it.IsOwnedBy(requesterID) {
			return domain.NewBookingNotFoundError(bookingID)
		}

		if err := bk.Decide(approved, s.now()); err != nil {
			return err
		}
		bk.IncrementVersion()
		return s.bookings.Update(ctx, bk)
	})
	if err != nil {
		return nil, err
	}

	metrics.IncBookingTransition(bk.Status().String())
	s.logger.Info("booking status updated",
		zap.Int64("booking_id", bk.ID()),
		zap.Int64("user_id", requesterID),
		zap.String("status", bk.Status().String()),
	)

	eventType := events.BookingRejected
	if bk.Status() == bookingDomain.StatusApproved {
		eventType = events.BookingApproved
	}
	s.publishBookingEvent(ctx, eventType, bk, it.OwnerID())

	booker, err := s.users.FindByID(ctx, bk.BookerID())
	if err != nil {
		s.logger.Warn("failed to resolve booker for response",
			zap.Int64("booking_id", bk.ID()),
			zap.Error(err),
		)
	}

	result := toBookingDTO(bk, it, booker)
	return &result, nil
}

// GetBooking returns one booking to its booker or to the owner of the booked item.
func (s *BookingService) GetBooking(ctx context.Context, requesterID, bookingID int64) (*BookingDTO, error) {
	bk, err := s.bookings.FindByID(ctx, bookingID)
	if err != nil {
		return nil, err
	}

	it, err := s.items.FindByID(ctx, bk.ItemID())
	if err != nil {
		return nil, err
	}
	if !it.IsOwnedBy(requesterID) && !bk.IsBookedBy(requesterID) {
		return nil, domain.NewBookingNotFoundError(bookingID)
	}

	booker, err := s.users.FindByID(ctx, bk.BookerID())
	if err != nil {
		return nil, err
	}

	result := toBookingDTO(bk, it, booker)
	return &result, nil
}

func (s *BookingService) publishBookingEvent(ctx context.Context, eventType string, bk *bookingDomain.Booking, ownerID int64) {
	evt := events.BookingEvent{
		BookingID:  bk.ID(),
		ItemID:     bk.ItemID(),
		BookerID:   bk.BookerID(),
		OwnerID:    ownerID,
		Status:     bk.Status().String(),
		Start:      bk.Start(),
		End:        bk.End(),
		OccurredAt: s.now().UTC(),
	}

	cloudEvent, err := events.NewCloudEvent(eventSource, eventType, evt)
	if err != nil {
		s.logger.Error("failed to create cloud event",
			zap.String("event_type", eventType),
			zap.Error(err),
		)
		return
	}

	if err := s.publisher.PublishEvent(ctx, s.topic, cloudEvent); err != nil {
		s.logger.Error("failed to publish event",
			zap.String("topic", s.topic),
			zap.String("event_type", eventType),
			zap.Int64("booking_id", bk.ID()),
			zap.Error(err),
		)
	}
}
