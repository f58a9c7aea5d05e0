package handler

import (
	"context"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shareit-go/service-shareit/internal/application"
	"github.com/shareit-go/service-shareit/internal/response"
)

type tokenIssuer interface {
	GenerateToken(userID int64) (string, error)
	TTL() time.Duration
}

type userLookup interface {
	GetUser(ctx context.Context, id int64) (*application.UserDTO, error)
}

// TokenResponse is the body returned by POST /auth/token.
type TokenResponse struct {
	Token     string `json:"token"`
	TokenType string `json:"tokenType"`
	ExpiresIn int64  `json:"expiresIn"`
}

// AuthHandler exchanges a header identity for a bearer token.
type AuthHandler struct {
	tokens tokenIssuer
	users  userLookup
}

// NewAuthHandler creates a new AuthHandler.
func NewAuthHandler(tokens tokenIssuer, users userLookup) *AuthHandler {
	return &AuthHandler{tokens: tokens, users: users}
}

// RegisterRoutes registers the token route on the given router group.
func (h *AuthHandler) RegisterRoutes(r *gin.RouterGroup, mw ...gin.HandlerFunc) {
	auth := r.Group("/auth")
	auth.Use(mw...)
	{
		auth.POST("/token", h.IssueToken)
	}
}

// IssueToken handles POST /auth/token.
func (h *AuthHandler) IssueToken(c *gin.Context) {
	userID, ok := requesterID(c)
	if !ok {
		return
	}

	if _, err := h.users.GetUser(c.Request.Context(), userID); err != nil {
		response.Error(c, err)
		return
	}

	token, err := h.tokens.GenerateToken(userID)
	if err != nil {
		response.Error(c, err)
		return
	}

	response.Success(c, TokenResponse{
		Token:     token,
		TokenType: "Bearer",
		ExpiresIn: int64(h.tokens.TTL() / time.Second),
	})
}
