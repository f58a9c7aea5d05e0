package handler

import (
	"context"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shareit-go/service-shareit/internal/application"
	"github.com/shareit-go/service-shareit/internal/response"
)

type bookingCommands interface {
	CreateBooking(ctx context.Context, requesterID int64, req application.CreateBookingRequest) (*application.BookingDTO, error)
	UpdateBooking(ctx context.Context, requesterID, bookingID int64, approved bool) (*application.BookingDTO, error)
	GetBooking(ctx context.Context, requesterID, bookingID int64) (*application.BookingDTO, error)
}

type bookingQueries interface {
	BookingsForUser(ctx context.Context, requesterID int64, state string, from, size int) ([]application.BookingDTO, error)
	BookingsForOwner(ctx context.Context, requesterID int64, state string, from, size int) ([]application.BookingDTO, error)
}

// BookingHandler handles HTTP requests for booking operations.
type BookingHandler struct {
	commands bookingCommands
	queries  bookingQueries
}

// NewBookingHandler creates a new BookingHandler.
func NewBookingHandler(commands bookingCommands, queries bookingQueries) *BookingHandler {
	return &BookingHandler{commands: commands, queries: queries}
}

// RegisterRoutes registers all booking routes on the given router group.
func (h *BookingHandler) RegisterRoutes(r *gin.RouterGroup, mw ...gin.HandlerFunc) {
	bookings := r.Group("/bookings")
	bookings.Use(mw...)
	{
		bookings.POST("", h.CreateBooking)
		bookings.GET("", h.ListBookings)
		bookings.GET("/owner", h.ListOwnerBookings)
		bookings.GET("/:id", h.GetBooking)
		bookings.PATCH("/:id", h.UpdateBooking)
	}
}

// CreateBooking handles POST /bookings.
func (h *BookingHandler) CreateBooking(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	var req application.CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.commands.CreateBooking(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateBooking handles PATCH /bookings/:id?approved=true|false.
func (h *BookingHandler) UpdateBooking(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}
	approved, err := strconv.ParseBool(c.Query("approved"))
	if err != nil {
		response.BadRequest(c, "approved must be true or false")
		return
	}

	result, err := h.commands.UpdateBooking(c.Request.Context(), userID, bookingID, approved)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetBooking handles GET /bookings/:id.
func (h *BookingHandler) GetBooking(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	bookingID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.commands.GetBooking(c.Request.Context(), userID, bookingID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListBookings handles GET /bookings?state&from&size.
func (h *BookingHandler) ListBookings(c *gin.Context) {
	h.list(c, h.queries.BookingsForUser)
}

// ListOwnerBookings handles GET /bookings/owner?state&from&size.
func (h *BookingHandler) ListOwnerBookings(c *gin.Context) {
	h.list(c, h.queries.BookingsForOwner)
}

func (h *BookingHandler) list(c *gin.Context, query func(context.Context, int64, string, int, int) ([]application.BookingDTO, error)) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	from, size, ok := parseOffset(c)
	if !ok {
		return
	}

	result, err := query(c.Request.Context(), userID, c.DefaultQuery("state", "ALL"), from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
