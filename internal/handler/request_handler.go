package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/shareit-go/service-shareit/internal/application"
	"github.com/shareit-go/service-shareit/internal/response"
)

type requestService interface {
	CreateRequest(ctx context.Context, requestorID int64, req application.CreateItemRequestRequest) (*application.ItemRequestDTO, error)
	ListOwnRequests(ctx context.Context, requesterID int64) ([]application.ItemRequestDTO, error)
	ListOtherRequests(ctx context.Context, requesterID int64, from, size int) ([]application.ItemRequestDTO, error)
	GetRequest(ctx context.Context, requesterID, requestID int64) (*application.ItemRequestDTO, error)
}

// RequestHandler handles HTTP requests for item requests.
type RequestHandler struct {
	service requestService
}

// NewRequestHandler creates a new RequestHandler.
func NewRequestHandler(service requestService) *RequestHandler {
	return &RequestHandler{service: service}
}

// RegisterRoutes registers all item request routes on the given router group.
func (h *RequestHandler) RegisterRoutes(r *gin.RouterGroup, mw ...gin.HandlerFunc) {
	requests := r.Group("/requests")
	requests.Use(mw...)
	{
		requests.POST("", h.CreateRequest)
		requests.GET("", h.ListOwnRequests)
		requests.GET("/all", h.ListOtherRequests)
		requests.GET("/:id", h.GetRequest)
	}
}

// CreateRequest handles POST /requests.
func (h *RequestHandler) CreateRequest(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	var req application.CreateItemRequestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateRequest(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// ListOwnRequests handles GET /requests.
func (h *RequestHandler) ListOwnRequests(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	result, err := h.service.ListOwnRequests(c.Request.Context(), userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListOtherRequests handles GET /requests/all?from&size.
func (h *RequestHandler) ListOtherRequests(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	from, size, ok := parseOffset(c)
	if !ok {
		return
	}

	result, err := h.service.ListOtherRequests(c.Request.Context(), userID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetRequest handles GET /requests/:id.
func (h *RequestHandler) GetRequest(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	requestID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetRequest(c.Request.Context(), userID, requestID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
