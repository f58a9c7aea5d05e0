package item

import (
	"context"

	"github.com/shareit-go/service-shareit/internal/domain"
)

// ItemRepository defines the persistence contract for items.
type ItemRepository interface {
	FindByID(ctx context.Context, id int64) (*Item, error)
	FindByIDs(ctx context.Context, ids []int64) ([]*Item, error)
	// FindByOwnerID returns the owner's items ordered by id; a nil page returns all of them.
	FindByOwnerID(ctx context.Context, ownerID int64, page *domain.Page) ([]*Item, error)
	FindByRequestIDs(ctx context.Context, requestIDs []int64) ([]*Item, error)
	// Search matches available items whose name or description contains text, ignoring case.
	Search(ctx context.Context, text string, page domain.Page) ([]*Item, error)
	Save(ctx context.Context, item *Item) error
	Update(ctx context.Context, item *Item) error
}

// CommentRepository defines the persistence contract for item comments.
type CommentRepository interface {
	FindByItemIDs(ctx context.Context, itemIDs []int64) ([]*Comment, error)
	Save(ctx context.Context, comment *Comment) error
}
