package handler

import (
	"context"

	"github.com/gin-gonic/gin"
	"github.com/shareit-go/service-shareit/internal/application"
	"github.com/shareit-go/service-shareit/internal/response"
)

type itemService interface {
	CreateItem(ctx context.Context, ownerID int64, req application.CreateItemRequest) (*application.ItemDTO, error)
	UpdateItem(ctx context.Context, requesterID, itemID int64, req application.UpdateItemRequest) (*application.ItemDTO, error)
	GetItem(ctx context.Context, requesterID, itemID int64) (*application.ItemDetailsDTO, error)
	ListOwnerItems(ctx context.Context, ownerID int64, from, size int) ([]application.ItemDetailsDTO, error)
	Search(ctx context.Context, text string, from, size int) ([]application.ItemDTO, error)
	AddComment(ctx context.Context, authorID, itemID int64, req application.CreateCommentRequest) (*application.CommentDTO, error)
}

// ItemHandler handles HTTP requests for items and their comments.
type ItemHandler struct {
	service itemService
}

// NewItemHandler creates a new ItemHandler.
func NewItemHandler(service itemService) *ItemHandler {
	return &ItemHandler{service: service}
}

// RegisterRoutes registers all item routes on the given router group.
func (h *ItemHandler) RegisterRoutes(r *gin.RouterGroup, mw ...gin.HandlerFunc) {
	items := r.Group("/items")
	items.Use(mw...)
	{
		items.POST("", h.CreateItem)
		items.GET("", h.ListOwnerItems)
		items.GET("/search", h.Search)
		items.GET("/:id", h.GetItem)
		items.PATCH("/:id", h.UpdateItem)
		items.POST("/:id/comment", h.AddComment)
	}
}

// CreateItem handles POST /items.
func (h *ItemHandler) CreateItem(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	var req application.CreateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.CreateItem(c.Request.Context(), userID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Created(c, result)
}

// UpdateItem handles PATCH /items/:id.
func (h *ItemHandler) UpdateItem(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req application.UpdateItemRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.UpdateItem(c.Request.Context(), userID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// GetItem handles GET /items/:id.
func (h *ItemHandler) GetItem(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	result, err := h.service.GetItem(c.Request.Context(), userID, itemID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// ListOwnerItems handles GET /items?from&size.
func (h *ItemHandler) ListOwnerItems(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	from, size, ok := parseOffset(c)
	if !ok {
		return
	}

	result, err := h.service.ListOwnerItems(c.Request.Context(), userID, from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// Search handles GET /items/search?text&from&size.
func (h *ItemHandler) Search(c *gin.Context) {
	from, size, ok := parseOffset(c)
	if !ok {
		return
	}

	result, err := h.service.Search(c.Request.Context(), c.Query("text"), from, size)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}

// AddComment handles POST /items/:id/comment.
func (h *ItemHandler) AddComment(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}
	itemID, ok := pathID(c, "id")
	if !ok {
		return
	}

	var req application.CreateCommentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.BadRequest(c, err.Error())
		return
	}

	result, err := h.service.AddComment(c.Request.Context(), userID, itemID, req)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, result)
}
