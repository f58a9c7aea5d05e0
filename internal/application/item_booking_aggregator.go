package application

import (
	"context"
	"time"

	bookingDomain "github.com/shareit-go/service-shareit/internal/domain/booking"
	itemDomain "github.com/shareit-go/service-shareit/internal/domain/item"
)

// ItemBookingAggregator decorates an arbitrary batch of items with their last and next
// approved booking and their comments.
type ItemBookingAggregator struct {
	bookings bookingDomain.BookingRepository
	comments itemDomain.CommentRepository
	now      func() time.Time
}

// NewItemBookingAggregator creates a new ItemBookingAggregator.
func NewItemBookingAggregator(bookings bookingDomain.BookingRepository, comments itemDomain.CommentRepository) *ItemBookingAggregator {
	return &ItemBookingAggregator{
		bookings: bookings,
		comments: comments,
		now:      time.Now,
	}
}

// Decorate returns one entry per input item, in input order. Last/next bookings are
// filled in only for items owned by requesterID.
func (a *ItemBookingAggregator) Decorate(ctx context.Context, items []*itemDomain.Item, requesterID int64) ([]ItemDetailsDTO, error) {
	if len(items) == 0 {
		return []ItemDetailsDTO{}, nil
	}

	ids := make([]int64, len(items))
	for i, it := range items {
		ids[i] = it.ID()
	}

	approved := bookingDomain.Filter{Order: bookingDomain.OrderStartDesc}.WithStatus(bookingDomain.StatusApproved)
	found, err := a.bookings.Find(ctx, bookingDomain.ForItems(ids, approved, nil))
	if err != nil {
		return nil, err
	}
	bookingsByItem := make(map[int64][]*bookingDomain.Booking, len(items))
	for _, bk := range found {
		bookingsByItem[bk.ItemID()] = append(bookingsByItem[bk.ItemID()], bk)
	}

	comments, err := a.comments.FindByItemIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	commentsByItem := make(map[int64][]CommentDTO, len(items))
	for _, c := range comments {
		commentsByItem[c.ItemID()] = append(commentsByItem[c.ItemID()], toCommentDTO(c))
	}

	now := a.now()
	out := make([]ItemDetailsDTO, len(items))
	for i, it := range items {
		details := ItemDetailsDTO{
			ItemDTO:  toItemDTO(it),
			Comments: commentsByItem[it.ID()],
		}
		if details.Comments == nil {
			details.Comments = []CommentDTO{}
		}
		if it.IsOwnedBy(requesterID) {
			last, next := lastAndNext(bookingsByItem[it.ID()], now)
			details.LastBooking = toBookingSummary(last)
			details.NextBooking = toBookingSummary(next)
		}
		out[i] = details
	}
	return out, nil
}

// lastAndNext picks the latest booking that started before now and the earliest one
// starting after now. A booking starting exactly at now is neither.
func lastAndNext(bookings []*bookingDomain.Booking, now time.Time) (last, next *bookingDomain.Booking) {
	for _, bk := range bookings {
		switch {
		case bk.Start().Before(now):
			if last == nil || bk.Start().After(last.Start()) {
				last = bk
			}
		case bk.Start().After(now):
			if next == nil || bk.Start().Before(next.Start()) {
				next = bk
			}
		}
	}
	return last, next
}
