package item

import (
	"strings"
	"time"

	"github.com/shareit-go/service-shareit/internal/domain"
)

// Comment is feedback left on an item by a user who has booked it.
type Comment struct {
	id         int64
	itemID     int64
	authorID   int64
	authorName string
	text       string
	createdAt  time.Time
}

// NewComment creates a comment. authorName is a read-model field resolved by the caller.
func NewComment(itemID, authorID int64, authorName, text string, now time.Time) (*Comment, error) {
	if strings.TrimSpace(text) == "" {
		return nil, domain.NewValidationError("comment text is required")
	}
	return &Comment{
		itemID:     itemID,
		authorID:   authorID,
		authorName: authorName,
		text:       text,
		createdAt:  now.UTC(),
	}, nil
}

// ReconstructComment rebuilds a Comment from persistence data.
func ReconstructComment(id, itemID, authorID int64, authorName, text string, createdAt time.Time) *Comment {
	return &Comment{
		id:         id,
		itemID:     itemID,
		authorID:   authorID,
		authorName: authorName,
		text:       text,
		createdAt:  createdAt,
	}
}

func (c *Comment) ID() int64            { return c.id }
func (c *Comment) ItemID() int64        { return c.itemID }
func (c *Comment) AuthorID() int64      { return c.authorID }
func (c *Comment) AuthorName() string   { return c.authorName }
func (c *Comment) Text() string         { return c.text }
func (c *Comment) CreatedAt() time.Time { return c.createdAt }

// AssignID records the identifier chosen by the store.
func (c *Comment) AssignID(id int64) {
	if c.id == 0 {
		c.id = id
	}
}
