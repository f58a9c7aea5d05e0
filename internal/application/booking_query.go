package application

import (
	"context"
	"time"

	"github.com/shareit-go/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-go/service-shareit/internal/domain/booking"
	itemDomain "github.com/shareit-go/service-shareit/internal/domain/item"
	userDomain "github.com/shareit-go/service-shareit/internal/domain/user"
	"go.uber.org/zap"
)

// BookingQueryService answers "which bookings are in state X right now" for a booker
// or for the owner of a set of items.
type BookingQueryService struct {
	bookings bookingDomain.BookingRepository
	items    itemDomain.ItemRepository
	users    userDomain.UserRepository
	logger   *zap.Logger
	now      func() time.Time
}

// NewBookingQueryService creates a new BookingQueryService.
func NewBookingQueryService(
	bookings bookingDomain.BookingRepository,
	items itemDomain.ItemRepository,
	users userDomain.UserRepository,
	logger *zap.Logger,
) *BookingQueryService {
	return &BookingQueryService{
		bookings: bookings,
		items:    items,
		users:    users,
		logger:   logger,
		now:      time.Now,
	}
}

// BookingsForUser lists the requester's own bookings matching state, paginated by from/size.
func (s *BookingQueryService) BookingsForUser(ctx context.Context, requesterID int64, state string, from, size int) ([]BookingDTO, error) {
	filter, page, err := s.prepare(state, from, size)
	if err != nil {
		return nil, err
	}

	requester, err := s.users.FindByID(ctx, requesterID)
	if err != nil {
		return nil, err
	}

	found, err := s.bookings.Find(ctx, bookingDomain.ForBooker(requesterID, filter, &page))
	if err != nil {
		return nil, err
	}

	items, err := s.itemsByID(ctx, found)
	if err != nil {
		return nil, err
	}

	dtos := make([]BookingDTO, len(found))
	for i, bk := range found {
		dtos[i] = toBookingDTO(bk, items[bk.ItemID()], requester)
	}
	return dtos, nil
}

// BookingsForOwner lists bookings of every item the requester owns. Each item is queried
// and paginated on its own and the pages are concatenated in item id order, so the result
// may hold more than size bookings when the requester owns several items.
func (s *BookingQueryService) BookingsForOwner(ctx context.Context, requesterID int64, state string, from, size int) ([]BookingDTO, error) {
	filter, page, err := s.prepare(state, from, size)
	if err != nil {
		return nil, err
	}

	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}

	owned, err := s.items.FindByOwnerID(ctx, requesterID, nil)
	if err != nil {
		return nil, err
	}

	itemsByID := make(map[int64]*itemDomain.Item, len(owned))
	var merged []*bookingDomain.Booking
	for _, it := range owned {
		itemsByID[it.ID()] = it
		found, err := s.bookings.Find(ctx, bookingDomain.ForItems([]int64{it.ID()}, filter, &page))
		if err != nil {
			return nil, err
		}
		merged = append(merged, found...)
	}

	bookers, err := s.bookersByID(ctx, merged)
	if err != nil {
		return nil, err
	}

	s.logger.Debug("owner bookings listed",
		zap.Int64("user_id", requesterID),
		zap.String("state", state),
		zap.Int("items", len(owned)),
		zap.Int("bookings", len(merged)),
	)

	dtos := make([]BookingDTO, len(merged))
	for i, bk := range merged {
		dtos[i] = toBookingDTO(bk, itemsByID[bk.ItemID()], bookers[bk.BookerID()])
	}
	return dtos, nil
}

func (s *BookingQueryService) prepare(state string, from, size int) (bookingDomain.Filter, domain.Page, error) {
	parsed, err := bookingDomain.ParseState(state)
	if err != nil {
		return bookingDomain.Filter{}, domain.Page{}, err
	}
	if err := domain.ValidateOffset(from, size); err != nil {
		return bookingDomain.Filter{}, domain.Page{}, err
	}
	filter, err := parsed.FilterAt(s.now())
	if err != nil {
		return bookingDomain.Filter{}, domain.Page{}, err
	}
	return filter, domain.PageFromOffset(from, size), nil
}

func (s *BookingQueryService) itemsByID(ctx context.Context, bookings []*bookingDomain.Booking) (map[int64]*itemDomain.Item, error) {
	ids := uniqueIDs(bookings, (*bookingDomain.Booking).ItemID)
	if len(ids) == 0 {
		return map[int64]*itemDomain.Item{}, nil
	}
	found, err := s.items.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]*itemDomain.Item, len(found))
	for _, it := range found {
		out[it.ID()] = it
	}
	return out, nil
}

func (s *BookingQueryService) bookersByID(ctx context.Context, bookings []*bookingDomain.Booking) (map[int64]*userDomain.User, error) {
	ids := uniqueIDs(bookings, (*bookingDomain.Booking).BookerID)
	if len(ids) == 0 {
		return map[int64]*userDomain.User{}, nil
	}
	found, err := s.users.FindByIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	out := make(map[int64]*userDomain.User, len(found))
	for _, u := range found {
		out[u.ID()] = u
	}
	return out, nil
}

func uniqueIDs(bookings []*bookingDomain.Booking, key func(*bookingDomain.Booking) int64) []int64 {
	seen := make(map[int64]struct{}, len(bookings))
	ids := make([]int64, 0, len(bookings))
	for _, bk := range bookings {
		id := key(bk)
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		ids = append(ids, id)
	}
	return ids
}
