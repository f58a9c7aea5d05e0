package middleware

import (
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/shareit-go/service-shareit/internal/auth"
	"github.com/shareit-go/service-shareit/internal/response"
)

// HeaderUserID carries the requester id.
const HeaderUserID = "X-Sharer-User-Id"

const userIDKey = "user_id"

// IdentityMiddleware resolves the requester from X-Sharer-User-Id or, when jwt is set,
// from a Bearer token. Requests without a usable identity are rejected with 400.
func IdentityMiddleware(jwt *auth.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		if raw := c.GetHeader(HeaderUserID); raw != "" {
			id, err := strconv.ParseInt(strings.TrimSpace(raw), 10, 64)
			if err != nil || id <= 0 {
				response.BadRequest(c, HeaderUserID+" header must be a positive integer")
				return
			}
			c.Set(userIDKey, id)
			c.Next()
			return
		}

		if jwt != nil {
			if token, ok := bearerToken(c.GetHeader("Authorization")); ok {
				id, err := jwt.ParseUserID(token)
				if err != nil {
					response.BadRequest(c, "invalid bearer token")
					return
				}
				c.Set(userIDKey, id)
				c.Next()
				return
			}
		}

		response.BadRequest(c, HeaderUserID+" header is required")
	}
}

// GetUserID returns the requester id set by IdentityMiddleware.
func GetUserID(c *gin.Context) (int64, bool) {
	v, ok := c.Get(userIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int64)
	return id, ok
}

func bearerToken(header string) (string, bool) {
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
