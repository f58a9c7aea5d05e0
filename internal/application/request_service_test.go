package application

import (
	"context"
	"testing"
	"time"

	"github.com/shareit-go/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-go/service-shareit/internal/domain/booking"
	itemDomain "github.com/shareit-go/service-shareit/internal/domain/item"
	requestDomain "github.com/shareit-go/service-shareit/internal/domain/request"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newRequestService(t *testing.T) (*RequestService, *mockRequestRepo, *mockItemRepo, *mockUserRepo, *mockBookingRepo, *mockCommentRepo) {
	t.Helper()
	requests := &mockRequestRepo{}
	items := &mockItemRepo{}
	users := &mockUserRepo{}
	bookings := &mockBookingRepo{}
	comments := &mockCommentRepo{}
	svc := NewRequestService(requests, items, users, NewItemBookingAggregator(bookings, comments), zap.NewNop())
	svc.now = func() time.Time { return testNow }
	t.Cleanup(func() {
		requests.AssertExpectations(t)
		items.AssertExpectations(t)
		users.AssertExpectations(t)
	})
	return svc, requests, items, users, bookings, comments
}

func TestRequestService_CreateRequest(t *testing.T) {
	svc, requests, _, users, _, _ := newRequestService(t)

	users.On("FindByID", mock.Anything, bookerID).Return(testUser(bookerID, "bob"), nil)
	requests.On("Save", mock.Anything, mock.Anything).
		Run(func(args mock.Arguments) { args.Get(1).(*requestDomain.ItemRequest).AssignID(3) }).
		Return(nil)

	dto, err := svc.CreateRequest(context.Background(), bookerID, CreateItemRequestRequest{Description: "need a ladder"})

	require.NoError(t, err)
	assert.Equal(t, int64(3), dto.ID)
	assert.Equal(t, bookerID, dto.RequestorID)
	assert.NotNil(t, dto.Items)
	assert.True(t, testNow.Equal(dto.Created))
}

func TestRequestService_CreateRequest_BlankDescription(t *testing.T) {
	svc, _, _, users, _, _ := newRequestService(t)
	users.On("FindByID", mock.Anything, bookerID).Return(testUser(bookerID, "bob"), nil)

	_, err := svc.CreateRequest(context.Background(), bookerID, CreateItemRequestRequest{Description: " "})

	assert.True(t, domain.IsKind(err, domain.KindValidation))
}

func TestRequestService_ListOwnRequests_GroupsItems(t *testing.T) {
	svc, requests, items, users, bookings, comments := newRequestService(t)
	first := requestDomain.Reconstruct(2, bookerID, "ladder", testNow)
	second := requestDomain.Reconstruct(1, bookerID, "tent", testNow.Add(-time.Hour))
	answer := itemDomain.Reconstruct(itemID, ownerID, "ladder", "tall", true, int64Ptr(2), testNow, testNow)

	users.On("FindByID", mock.Anything, bookerID).Return(testUser(bookerID, "bob"), nil)
	requests.On("FindByRequestorID", mock.Anything, bookerID).Return([]*requestDomain.ItemRequest{first, second}, nil)
	items.On("FindByRequestIDs", mock.Anything, []int64{2, 1}).Return([]*itemDomain.Item{answer}, nil)
	bookings.On("Find", mock.Anything, mock.Anything).Return([]*bookingDomain.Booking{}, nil)
	comments.On("FindByItemIDs", mock.Anything, []int64{itemID}).Return([]*itemDomain.Comment{}, nil)

	got, err := svc.ListOwnRequests(context.Background(), bookerID)

	require.NoError(t, err)
	require.Len(t, got, 2)
	require.Len(t, got[0].Items, 1)
	assert.Equal(t, itemID, got[0].Items[0].ID)
	assert.NotNil(t, got[1].Items)
	assert.Empty(t, got[1].Items)
}

func TestRequestService_ListOtherRequests_Paged(t *testing.T) {
	svc, requests, _, users, _, _ := newRequestService(t)

	users.On("FindByID", mock.Anything, bookerID).Return(testUser(bookerID, "bob"), nil)
	requests.On("FindOthers", mock.Anything, bookerID, domain.Page{Index: 1, Size: 2}).
		Return([]*requestDomain.ItemRequest{}, nil)

	got, err := svc.ListOtherRequests(context.Background(), bookerID, 3, 2)

	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestRequestService_GetRequest_Missing(t *testing.T) {
	svc, requests, _, users, _, _ := newRequestService(t)

	users.On("FindByID", mock.Anything, bookerID).Return(testUser(bookerID, "bob"), nil)
	requests.On("FindByID", mock.Anything, int64(50)).Return(nil, domain.NewRequestNotFoundError(50))

	_, err := svc.GetRequest(context.Background(), bookerID, 50)

	assert.True(t, domain.IsKind(err, domain.KindRequestNotFound))
}
