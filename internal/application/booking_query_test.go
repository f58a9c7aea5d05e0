package application

import (
	"context"
	"testing"
	"time"

	"github.com/shareit-go/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-go/service-shareit/internal/domain/booking"
	itemDomain "github.com/shareit-go/service-shareit/internal/domain/item"
	userDomain "github.com/shareit-go/service-shareit/internal/domain/user"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newQueryService(t *testing.T) (*BookingQueryService, *mockBookingRepo, *mockItemRepo, *mockUserRepo) {
	t.Helper()
	bookings := &mockBookingRepo{}
	items := &mockItemRepo{}
	users := &mockUserRepo{}
	svc := NewBookingQueryService(bookings, items, users, zap.NewNop())
	svc.now = func() time.Time { return testNow }
	t.Cleanup(func() {
		bookings.AssertExpectations(t)
		items.AssertExpectations(t)
		users.AssertExpectations(t)
	})
	return svc, bookings, items, users
}

func TestBookingQueryService_BookingsForUser_Current(t *testing.T) {
	svc, bookings, items, users := newQueryService(t)
	current := testBooking(5, itemID, bookerID, testNow.Add(-time.Hour), testNow.Add(time.Hour), bookingDomain.StatusApproved)

	users.On("FindByID", mock.Anything, bookerID).Return(testUser(bookerID, "bob"), nil)
	bookings.On("Find", mock.Anything, mock.MatchedBy(func(q bookingDomain.Query) bool {
		return q.BookerID == bookerID &&
			q.Filter.Order == bookingDomain.OrderIDAsc &&
			q.Filter.StartBefore.Equal(testNow) &&
			q.Filter.EndAfter.Equal(testNow) &&
			q.Page != nil && *q.Page == domain.Page{Index: 2, Size: 5}
	})).Return([]*bookingDomain.Booking{current}, nil)
	items.On("FindByIDs", mock.Anything, []int64{itemID}).Return([]*itemDomain.Item{testItem(itemID, ownerID, true)}, nil)

	got, err := svc.BookingsForUser(context.Background(), bookerID, "current", 12, 5)

	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, int64(5), got[0].ID)
	assert.Equal(t, "drill", got[0].Item.Name)
	assert.Equal(t, "bob", got[0].Booker.Name)
}

func TestBookingQueryService_BookingsForUser_StatusStates(t *testing.T) {
	for state, want := range map[string]bookingDomain.BookingStatus{
		"WAITING":  bookingDomain.StatusWaiting,
		"REJECTED": bookingDomain.StatusRejected,
	} {
		t.Run(state, func(t *testing.T) {
			svc, bookings, _, users := newQueryService(t)

			users.On("FindByID", mock.Anything, bookerID).Return(testUser(bookerID, "bob"), nil)
			bookings.On("Find", mock.Anything, mock.MatchedBy(func(q bookingDomain.Query) bool {
				return q.Filter.Status != nil && *q.Filter.Status == want &&
					q.Filter.Order == bookingDomain.OrderStartDesc
			})).Return([]*bookingDomain.Booking{}, nil)

			got, err := svc.BookingsForUser(context.Background(), bookerID, state, 0, 10)

			require.NoError(t, err)
			assert.Empty(t, got)
		})
	}
}

func TestBookingQueryService_UnknownStateCheckedFirst(t *testing.T) {
	svc, _, _, users := newQueryService(t)

	_, err := svc.BookingsForUser(context.Background(), 999, "UNSUPPORTED_STATUS", 0, 10)
	require.Error(t, err)
	assert.True(t, domain.IsKind(err, domain.KindUnknownState))
	assert.Equal(t, "Unknown state: UNSUPPORTED_STATUS", err.Error())

	_, err = svc.BookingsForOwner(context.Background(), 999, "UNSUPPORTED_STATUS", 0, 10)
	assert.True(t, domain.IsKind(err, domain.KindUnknownState))

	users.AssertNotCalled(t, "FindByID", mock.Anything, mock.Anything)
}

func TestBookingQueryService_InvalidPaging(t *testing.T) {
	svc, _, _, _ := newQueryService(t)

	for _, tc := range []struct{ from, size int }{{-1, 10}, {0, 0}, {0, -3}} {
		_, err := svc.BookingsForUser(context.Background(), bookerID, "ALL", tc.from, tc.size)
		require.Error(t, err)
		assert.True(t, domain.IsKind(err, domain.KindValidation))
	}
}

func TestBookingQueryService_UnknownUser(t *testing.T) {
	svc, _, _, users := newQueryService(t)
	users.On("FindByID", mock.Anything, int64(999)).Return(nil, domain.NewUserNotFoundError(999))

	_, err := svc.BookingsForOwner(context.Background(), 999, "ALL", 0, 10)

	assert.True(t, domain.IsKind(err, domain.KindUserNotFound))
}

func TestBookingQueryService_BookingsForOwner_PaginatesPerItem(t *testing.T) {
	svc, bookings, items, users := newQueryService(t)
	first := testItem(10, ownerID, true)
	second := testItem(11, ownerID, true)
	page := domain.Page{Index: 0, Size: 1}

	b1 := testBooking(1, 10, bookerID, testNow.Add(time.Hour), testNow.Add(2*time.Hour), bookingDomain.StatusWaiting)
	b2 := testBooking(2, 11, strangerID, testNow.Add(3*time.Hour), testNow.Add(4*time.Hour), bookingDomain.StatusWaiting)

	users.On("FindByID", mock.Anything, ownerID).Return(testUser(ownerID, "alice"), nil)
	items.On("FindByOwnerID", mock.Anything, ownerID, (*domain.Page)(nil)).Return([]*itemDomain.Item{first, second}, nil)
	bookings.On("Find", mock.Anything, mock.MatchedBy(func(q bookingDomain.Query) bool {
		return len(q.ItemIDs) == 1 && q.ItemIDs[0] == 10 && *q.Page == page
	})).Return([]*bookingDomain.Booking{b1}, nil)
	bookings.On("Find", mock.Anything, mock.MatchedBy(func(q bookingDomain.Query) bool {
		return len(q.ItemIDs) == 1 && q.ItemIDs[0] == 11 && *q.Page == page
	})).Return([]*bookingDomain.Booking{b2}, nil)
	users.On("FindByIDs", mock.Anything, []int64{bookerID, strangerID}).
		Return([]*userDomain.User{testUser(bookerID, "bob"), testUser(strangerID, "carol")}, nil)

	got, err := svc.BookingsForOwner(context.Background(), ownerID, "ALL", 0, 1)

	require.NoError(t, err)
	require.Len(t, got, 2)
	assert.Equal(t, int64(1), got[0].ID)
	assert.Equal(t, "bob", got[0].Booker.Name)
	assert.Equal(t, int64(2), got[1].ID)
	assert.Equal(t, "carol", got[1].Booker.Name)
}

func TestBookingQueryService_BookingsForOwner_NoItems(t *testing.T) {
	svc, _, items, users := newQueryService(t)

	users.On("FindByID", mock.Anything, ownerID).Return(testUser(ownerID, "alice"), nil)
	items.On("FindByOwnerID", mock.Anything, ownerID, (*domain.Page)(nil)).Return([]*itemDomain.Item{}, nil)

	got, err := svc.BookingsForOwner(context.Background(), ownerID, "FUTURE", 0, 10)

	require.NoError(t, err)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}
