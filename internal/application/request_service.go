package application

import (
	"context"
	"time"

	"github.com/shareit-go/service-shareit/internal/domain"
	itemDomain "github.com/shareit-go/service-shareit/internal/domain/item"
	requestDomain "github.com/shareit-go/service-shareit/internal/domain/request"
	userDomain "github.com/shareit-go/service-shareit/internal/domain/user"
	"go.uber.org/zap"
)

// RequestService implements item requests and resolves the items listed in answer to them.
type RequestService struct {
	requests   requestDomain.RequestRepository
	items      itemDomain.ItemRepository
	users      userDomain.UserRepository
	aggregator *ItemBookingAggregator
	logger     *zap.Logger
	now        func() time.Time
}

// NewRequestService creates a new RequestService.
func NewRequestService(
	requests requestDomain.RequestRepository,
	items itemDomain.ItemRepository,
	users userDomain.UserRepository,
	aggregator *ItemBookingAggregator,
	logger *zap.Logger,
) *RequestService {
	return &RequestService{
		requests:   requests,
		items:      items,
		users:      users,
		aggregator: aggregator,
		logger:     logger,
		now:        time.Now,
	}
}

// CreateRequest records a new item request from requestorID.
func (s *RequestService) CreateRequest(ctx context.Context, requestorID int64, req CreateItemRequestRequest) (*ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requestorID); err != nil {
		return nil, err
	}
	r, err := requestDomain.NewItemRequest(requestorID, req.Description, s.now())
	if err != nil {
		return nil, err
	}
	if err := s.requests.Save(ctx, r); err != nil {
		return nil, err
	}

	s.logger.Info("item request created",
		zap.Int64("request_id", r.ID()),
		zap.Int64("user_id", requestorID),
	)
	result := toItemRequestDTO(r, nil)
	return &result, nil
}

// ListOwnRequests returns the requester's requests, newest first, with answering items.
func (s *RequestService) ListOwnRequests(ctx context.Context, requesterID int64) ([]ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}
	found, err := s.requests.FindByRequestorID(ctx, requesterID)
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, found, requesterID)
}

// ListOtherRequests returns a page of requests made by other users, newest first.
func (s *RequestService) ListOtherRequests(ctx context.Context, requesterID int64, from, size int) ([]ItemRequestDTO, error) {
	if err := domain.ValidateOffset(from, size); err != nil {
		return nil, err
	}
	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}
	found, err := s.requests.FindOthers(ctx, requesterID, domain.PageFromOffset(from, size))
	if err != nil {
		return nil, err
	}
	return s.withItems(ctx, found, requesterID)
}

// GetRequest returns a single request with its answering items.
func (s *RequestService) GetRequest(ctx context.Context, requesterID, requestID int64) (*ItemRequestDTO, error) {
	if _, err := s.users.FindByID(ctx, requesterID); err != nil {
		return nil, err
	}
	r, err := s.requests.FindByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	dtos, err := s.withItems(ctx, []*requestDomain.ItemRequest{r}, requesterID)
	if err != nil {
		return nil, err
	}
	return &dtos[0], nil
}

// withItems loads the items of all requests at once and decorates them in one batch.
func (s *RequestService) withItems(ctx context.Context, reqs []*requestDomain.ItemRequest, requesterID int64) ([]ItemRequestDTO, error) {
	if len(reqs) == 0 {
		return []ItemRequestDTO{}, nil
	}

	ids := make([]int64, len(reqs))
	for i, r := range reqs {
		ids[i] = r.ID()
	}
	items, err := s.items.FindByRequestIDs(ctx, ids)
	if err != nil {
		return nil, err
	}
	decorated, err := s.aggregator.Decorate(ctx, items, requesterID)
	if err != nil {
		return nil, err
	}

	byRequest := make(map[int64][]ItemDetailsDTO, len(reqs))
	for _, d := range decorated {
		if d.RequestID != nil {
			byRequest[*d.RequestID] = append(byRequest[*d.RequestID], d)
		}
	}

	out := make([]ItemRequestDTO, len(reqs))
	for i, r := range reqs {
		out[i] = toItemRequestDTO(r, byRequest[r.ID()])
	}
	return out, nil
}
