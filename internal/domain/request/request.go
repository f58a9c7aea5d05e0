package request

import (
	"context"
	"strings"
	"time"

	"github.com/shareit-go/service-shareit/internal/domain"
)

// ItemRequest is a user's public ask for an item nobody has listed yet.
// Items created in answer to it reference its id.
type ItemRequest struct {
	id          int64
	requestorID int64
	description string
	createdAt   time.Time
}

// NewItemRequest creates a request on behalf of requestorID.
func NewItemRequest(requestorID int64, description string, now time.Time) (*ItemRequest, error) {
	if requestorID <= 0 {
		return nil, domain.NewValidationError("requestor ID is required")
	}
	if strings.TrimSpace(description) == "" {
		return nil, domain.NewValidationError("request description is required")
	}
	return &ItemRequest{
		requestorID: requestorID,
		description: description,
		createdAt:   now.UTC(),
	}, nil
}

// Reconstruct rebuilds an ItemRequest from persistence data.
func Reconstruct(id, requestorID int64, description string, createdAt time.Time) *ItemRequest {
	return &ItemRequest{
		id:          id,
		requestorID: requestorID,
		description: description,
		createdAt:   createdAt,
	}
}

func (r *ItemRequest) ID() int64            { return r.id }
func (r *ItemRequest) RequestorID() int64   { return r.requestorID }
func (r *ItemRequest) Description() string  { return r.description }
func (r *ItemRequest) CreatedAt() time.Time { return r.createdAt }

// AssignID records the identifier chosen by the store.
func (r *ItemRequest) AssignID(id int64) {
	if r.id == 0 {
		r.id = id
	}
}

// RequestRepository defines the persistence contract for item requests.
type RequestRepository interface {
	FindByID(ctx context.Context, id int64) (*ItemRequest, error)
	// FindByRequestorID returns the user's own requests, newest first.
	FindByRequestorID(ctx context.Context, requestorID int64) ([]*ItemRequest, error)
	// FindOthers returns requests made by anyone but userID, newest first.
	FindOthers(ctx context.Context, userID int64, page domain.Page) ([]*ItemRequest, error)
	Save(ctx context.Context, req *ItemRequest) error
}
