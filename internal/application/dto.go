package application

import (
	"time"

	bookingDomain "github.com/shareit-go/service-shareit/internal/domain/booking"
	itemDomain "github.com/shareit-go/service-shareit/internal/domain/item"
	requestDomain "github.com/shareit-go/service-shareit/internal/domain/request"
	userDomain "github.com/shareit-go/service-shareit/internal/domain/user"
)

// CreateBookingRequest holds the data needed to create a new booking.
type CreateBookingRequest struct {
	ItemID int64     `json:"itemId" binding:"required"`
	Start  time.Time `json:"start" binding:"required"`
	End    time.Time `json:"end" binding:"required"`
}

// UserSummary is the denormalized booker view embedded in a booking.
type UserSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// ItemSummary is the denormalized item view embedded in a booking.
type ItemSummary struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
}

// BookingDTO is the response representation of a booking.
type BookingDTO struct {
	ID     int64       `json:"id"`
	Start  time.Time   `json:"start"`
	End    time.Time   `json:"end"`
	Status string      `json:"status"`
	Item   ItemSummary `json:"item"`
	Booker UserSummary `json:"booker"`
}

// BookingSummary is the last/next booking shown on an item.
type BookingSummary struct {
	ID       int64 `json:"id"`
	BookerID int64 `json:"bookerId"`
}

// CommentDTO is the response representation of an item comment.
type CommentDTO struct {
	ID         int64     `json:"id"`
	Text       string    `json:"text"`
	AuthorName string    `json:"authorName"`
	Created    time.Time `json:"created"`
}

// ItemDTO is the plain response representation of an item.
type ItemDTO struct {
	ID          int64  `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Available   bool   `json:"available"`
	OwnerID     int64  `json:"ownerId"`
	RequestID   *int64 `json:"requestId,omitempty"`
}

// ItemDetailsDTO is an item decorated with its booking summaries and comments.
type ItemDetailsDTO struct {
	ItemDTO
	LastBooking *BookingSummary `json:"lastBooking"`
	NextBooking *BookingSummary `json:"nextBooking"`
	Comments    []CommentDTO    `json:"comments"`
}

// CreateItemRequest is the request DTO for listing a new item.
type CreateItemRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description" binding:"required"`
	Available   *bool  `json:"available" binding:"required"`
	RequestID   *int64 `json:"requestId"`
}

// UpdateItemRequest is the request DTO for a partial item update.
type UpdateItemRequest struct {
	Name        *string `json:"name"`
	Description *string `json:"description"`
	Available   *bool   `json:"available"`
}

// CreateCommentRequest is the request DTO for commenting on an item.
type CreateCommentRequest struct {
	Text string `json:"text" binding:"required"`
}

// CreateItemRequestRequest is the request DTO for asking for an item.
type CreateItemRequestRequest struct {
	Description string `json:"description" binding:"required"`
}

// ItemRequestDTO is an item request with the items listed in answer to it.
type ItemRequestDTO struct {
	ID          int64            `json:"id"`
	Description string           `json:"description"`
	RequestorID int64            `json:"requestorId"`
	Created     time.Time        `json:"created"`
	Items       []ItemDetailsDTO `json:"items"`
}

// CreateUserRequest is the request DTO for registering a user.
type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required"`
}

// UpdateUserRequest is the request DTO for a partial user update.
type UpdateUserRequest struct {
	Name  *string `json:"name"`
	Email *string `json:"email"`
}

// UserDTO is the response representation of a user.
type UserDTO struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// --- Helpers ---

func toBookingDTO(bk *bookingDomain.Booking, it *itemDomain.Item, booker *userDomain.User) BookingDTO {
	dto := BookingDTO{
		ID:     bk.ID(),
		Start:  bk.Start(),
		End:    bk.End(),
		Status: bk.Status().String(),
		Item:   ItemSummary{ID: bk.ItemID()},
		Booker: UserSummary{ID: bk.BookerID()},
	}
	if it != nil {
		dto.Item.Name = it.Name()
	}
	if booker != nil {
		dto.Booker.Name = booker.Name()
	}
	return dto
}

func toBookingSummary(bk *bookingDomain.Booking) *BookingSummary {
	if bk == nil {
		return nil
	}
	return &BookingSummary{ID: bk.ID(), BookerID: bk.BookerID()}
}

func toItemDTO(it *itemDomain.Item) ItemDTO {
	return ItemDTO{
		ID:          it.ID(),
		Name:        it.Name(),
		Description: it.Description(),
		Available:   it.Available(),
		OwnerID:     it.OwnerID(),
		RequestID:   it.RequestID(),
	}
}

func toCommentDTO(c *itemDomain.Comment) CommentDTO {
	return CommentDTO{
		ID:         c.ID(),
		Text:       c.Text(),
		AuthorName: c.AuthorName(),
		Created:    c.CreatedAt(),
	}
}

func toItemRequestDTO(r *requestDomain.ItemRequest, items []ItemDetailsDTO) ItemRequestDTO {
	if items == nil {
		items = []ItemDetailsDTO{}
	}
	return ItemRequestDTO{
		ID:          r.ID(),
		Description: r.Description(),
		RequestorID: r.RequestorID(),
		Created:     r.CreatedAt(),
		Items:       items,
	}
}

func toUserDTO(u *userDomain.User) UserDTO {
	return UserDTO{ID: u.ID(), Name: u.Name(), Email: u.Email()}
}
