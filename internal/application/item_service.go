package application

import (
	"context"
	"strings"
	"time"

	"github.com/shareit-go/service-shareit/internal/domain"
	bookingDomain "github.com/shareit-go/service-shareit/internal/domain/booking"
	itemDomain "github.com/shareit-go/service-shareit/internal/domain/item"
	requestDomain "github.com/shareit-go/service-shareit/internal/domain/request"
	userDomain "github.com/shareit-go/service-shareit/internal/domain/user"
	"go.uber.org/zap"
)

// ItemService implements item listing, lookup, search and comments.
type ItemService struct {
	items      itemDomain.ItemRepository
	comments   itemDomain.CommentRepository
	bookings   bookingDomain.BookingRepository
	users      userDomain.UserRepository
	requests   requestDomain.RequestRepository
	aggregator *ItemBookingAggregator
	logger     *zap.Logger
	now        func() time.Time
}

// NewItemService creates a new ItemService.
func NewItemService(
	items itemDomain.ItemRepository,
	comments itemDomain.CommentRepository,
	bookings bookingDomain.BookingRepository,
	users userDomain.UserRepository,
	requests requestDomain.RequestRepository,
	aggregator *ItemBookingAggregator,
	logger *zap.Logger,
) *ItemService {
	return &ItemService{
		items:      items,
		comments:   comments,
		bookings:   bookings,
		users:      users,
		requests:   requests,
		aggregator: aggregator,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateItem lists a new item for ownerID, optionally in answer to a request.
func (s *ItemService) CreateItem(ctx context.Context, ownerID int64, req CreateItemRequest) (*ItemDTO, error) {
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}
	if req.Available == nil {
		return nil, domain.NewValidationError("item availability is required")
	}
	if req.RequestID != nil {
		if _, err := s.requests.FindByID(ctx, *req.RequestID); err != nil {
			return nil, err
		}
	}

	it, err := itemDomain.NewItem(ownerID, req.Name, req.Description, *req.Available, req.RequestID)
	if err != nil {
		return nil, err
	}
	if err := s.items.Save(ctx, it); err != nil {
		return nil, err
	}

	s.logger.Info("item created",
		zap.Int64("item_id", it.ID()),
		zap.Int64("user_id", ownerID),
	)
	result := toItemDTO(it)
	return &result, nil
}

// UpdateItem applies a partial update. Only the owner may update; anyone else sees
// the item as missing.
func (s *ItemService) UpdateItem(ctx context.Context, requesterID, itemID int64, req UpdateItemRequest) (*ItemDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	if !it.IsOwnedBy(requesterID) {
		return nil, domain.NewItemNotFoundError(itemID)
	}
	if err := it.Update(req.Name, req.Description, req.Available); err != nil {
		return nil, err
	}
	if err := s.items.Update(ctx, it); err != nil {
		return nil, err
	}
	result := toItemDTO(it)
	return &result, nil
}

// GetItem returns one item decorated for the requester.
func (s *ItemService) GetItem(ctx context.Context, requesterID, itemID int64) (*ItemDetailsDTO, error) {
	it, err := s.items.FindByID(ctx, itemID)
	if err != nil {
		return nil, err
	}
	decorated, err := s.aggregator.Decorate(ctx, []*itemDomain.Item{it}, requesterID)
	if err != nil {
		return nil, err
	}
	return &decorated[0], nil
}

// ListOwnerItems returns a page of the requester's items, decorated.
func (s *ItemService) ListOwnerItems(ctx context.Context, ownerID int64, from, size int) ([]ItemDetailsDTO, error) {
	if err := domain.ValidateOffset(from, size); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, ownerID); err != nil {
		return nil, err
	}
	page := domain.PageFromOffset(from, size)
	owned, err := s.items.FindByOwnerID(ctx, ownerID, &page)
	if err != nil {
		return nil, err
	}
	return s.aggregator.Decorate(ctx, owned, ownerID)
}

// Search returns available items matching text. Blank text matches nothing.
func (s *ItemService) Search(ctx context.Context, text string, from, size int) ([]ItemDTO, error) {
	if err := domain.ValidateOffset(from, size); err != nil {
		return nil, err
	}
	if strings.TrimSpace(text) == "" {
		return []ItemDTO{}, nil
	}
	found, err := s.items.Search(ctx, text, domain.PageFromOffset(from, size))
	if err != nil {
		return nil, err
	}
	dtos := make([]ItemDTO, len(found))
	for i, it := range found {
		dtos[i] = toItemDTO(it)
	}
	return dtos, nil
}

// AddComment records feedback from a user who has finished an approved booking of the item.
func (s *ItemService) AddComment(ctx context.Context, authorID, itemID int64, req CreateCommentRequest) (*CommentDTO, error) {
	author, err := s.users.FindByID(ctx, authorID)
	if err != nil {
		return nil, err
	}
	if _, err := s.items.FindByID(ctx, itemID); err != nil {
		return nil, err
	}

	now := s.now()
	finished := bookingDomain.Filter{EndBefore: now, Order: bookingDomain.OrderStartDesc}.
		WithStatus(bookingDomain.StatusApproved)
	q := bookingDomain.Query{
		BookerID: authorID,
		ItemIDs:  []int64{itemID},
		Filter:   finished,
		Page:     &domain.Page{Index: 0, Size: 1},
	}
	past, err := s.bookings.Find(ctx, q)
	if err != nil {
		return nil, err
	}
	if len(past) == 0 {
		return nil, domain.NewValidationError("only users who have completed a booking of the item may comment on it")
	}

	comment, err := itemDomain.NewComment(itemID, authorID, author.Name(), req.Text, now)
	if err != nil {
		return nil, err
	}
	if err := s.comments.Save(ctx, comment); err != nil {
		return nil, err
	}

	s.logger.Info("comment added",
		zap.Int64("item_id", itemID),
		zap.Int64("user_id", authorID),
	)
	result := toCommentDTO(comment)
	return &result, nil
}
