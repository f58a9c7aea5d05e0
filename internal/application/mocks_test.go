package application

import (
	"context"

	"github.com/shareit-go/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-go/service-shareit/internal/domain/booking"
	itemDomain "github.com/shareit-go/service-shareit/internal/domain/item"
	requestDomain "github.com/shareit-go/service-shareit/internal/domain/request"
	userDomain "github.com/shareit-go/service-shareit/internal/domain/user"
	"github.com/shareit-go/service-shareit/internal/events"
	"github.com/stretchr/testify/mock"
)

type mockBookingRepo struct{ mock.Mock }

func (m *mockBookingRepo) FindByID(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	args := m.Called(ctx, id)
	bk, _ := args.Get(0).(*bookingDomain.Booking)
	return bk, args.Error(1)
}

func (m *mockBookingRepo) FindByIDForUpdate(ctx context.Context, id int64) (*bookingDomain.Booking, error) {
	args := m.Called(ctx, id)
	bk, _ := args.Get(0).(*bookingDomain.Booking)
	return bk, args.Error(1)
}

func (m *mockBookingRepo) Find(ctx context.Context, q bookingDomain.Query) ([]*bookingDomain.Booking, error) {
	args := m.Called(ctx, q)
	found, _ := args.Get(0).([]*bookingDomain.Booking)
	return found, args.Error(1)
}

func (m *mockBookingRepo) Save(ctx context.Context, bk *bookingDomain.Booking) error {
	return m.Called(ctx, bk).Error(0)
}

func (m *mockBookingRepo) Update(ctx context.Context, bk *bookingDomain.Booking) error {
	return m.Called(ctx, bk).Error(0)
}

type mockItemRepo struct{ mock.Mock }

func (m *mockItemRepo) FindByID(ctx context.Context, id int64) (*itemDomain.Item, error) {
	args := m.Called(ctx, id)
	it, _ := args.Get(0).(*itemDomain.Item)
	return it, args.Error(1)
}

func (m *mockItemRepo) FindByIDs(ctx context.Context, ids []int64) ([]*itemDomain.Item, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).([]*itemDomain.Item)
	return found, args.Error(1)
}

func (m *mockItemRepo) FindByOwnerID(ctx context.Context, ownerID int64, page *domain.Page) ([]*itemDomain.Item, error) {
	args := m.Called(ctx, ownerID, page)
	found, _ := args.Get(0).([]*itemDomain.Item)
	return found, args.Error(1)
}

func (m *mockItemRepo) FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*itemDomain.Item, error) {
	args := m.Called(ctx, requestIDs)
	found, _ := args.Get(0).([]*itemDomain.Item)
	return found, args.Error(1)
}

func (m *mockItemRepo) Search(ctx context.Context, text string, page domain.Page) ([]*itemDomain.Item, error) {
	args := m.Called(ctx, text, page)
	found, _ := args.Get(0).([]*itemDomain.Item)
	return found, args.Error(1)
}

func (m *mockItemRepo) Save(ctx context.Context, it *itemDomain.Item) error {
	return m.Called(ctx, it).Error(0)
}

func (m *mockItemRepo) Update(ctx context.Context, it *itemDomain.Item) error {
	return m.Called(ctx, it).Error(0)
}

type mockCommentRepo struct{ mock.Mock }

func (m *mockCommentRepo) FindByItemIDs(ctx context.Context, itemIDs []int64) ([]*itemDomain.Comment, error) {
	args := m.Called(ctx, itemIDs)
	found, _ := args.Get(0).([]*itemDomain.Comment)
	return found, args.Error(1)
}

func (m *mockCommentRepo) Save(ctx context.Context, c *itemDomain.Comment) error {
	return m.Called(ctx, c).Error(0)
}

type mockUserRepo struct{ mock.Mock }

func (m *mockUserRepo) FindByID(ctx context.Context, id int64) (*userDomain.User, error) {
	args := m.Called(ctx, id)
	u, _ := args.Get(0).(*userDomain.User)
	return u, args.Error(1)
}

func (m *mockUserRepo) FindByIDs(ctx context.Context, ids []int64) ([]*userDomain.User, error) {
	args := m.Called(ctx, ids)
	found, _ := args.Get(0).([]*userDomain.User)
	return found, args.Error(1)
}

func (m *mockUserRepo) FindAll(ctx context.Context) ([]*userDomain.User, error) {
	args := m.Called(ctx)
	found, _ := args.Get(0).([]*userDomain.User)
	return found, args.Error(1)
}

func (m *mockUserRepo) Save(ctx context.Context, u *userDomain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) Update(ctx context.Context, u *userDomain.User) error {
	return m.Called(ctx, u).Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	return m.Called(ctx, id).Error(0)
}

type mockRequestRepo struct{ mock.Mock }

func (m *mockRequestRepo) FindByID(ctx context.Context, id int64) (*requestDomain.ItemRequest, error) {
	args := m.Called(ctx, id)
	r, _ := args.Get(0).(*requestDomain.ItemRequest)
	return r, args.Error(1)
}

func (m *mockRequestRepo) FindByRequestorID(ctx context.Context, requestorID int64) ([]*requestDomain.ItemRequest, error) {
	args := m.Called(ctx, requestorID)
	found, _ := args.Get(0).([]*requestDomain.ItemRequest)
	return found, args.Error(1)
}

func (m *mockRequestRepo) FindOthers(ctx context.Context, userID int64, page domain.Page) ([]*requestDomain.ItemRequest, error) {
	args := m.Called(ctx, userID, page)
	found, _ := args.Get(0).([]*requestDomain.ItemRequest)
	return found, args.Error(1)
}

func (m *mockRequestRepo) Save(ctx context.Context, r *requestDomain.ItemRequest) error {
	return m.Called(ctx, r).Error(0)
}

type mockPublisher struct{ mock.Mock }

func (m *mockPublisher) PublishEvent(ctx context.Context, topic string, event events.CloudEvent) error {
	return m.Called(ctx, topic, event).Error(0)
}

// passthroughTx runs the unit of work directly on the caller's context.
type passthroughTx struct{}

func (passthroughTx) WithinTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	return fn(ctx)
}
