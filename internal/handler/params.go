package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/shareit-go/service-shareit/internal/middleware"
	"github.com/shareit-go/service-shareit/internal/response"
)

const (
	defaultFrom = 0
	defaultSize = 10
)

// pathID parses a positive int64 path parameter, writing a 400 when it is malformed.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		response.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return id, true
}

// parseOffset reads from/size query parameters. Range checks are left to the services.
func parseOffset(c *gin.Context) (from, size int, ok bool) {
	from, err := strconv.Atoi(c.DefaultQuery("from", strconv.Itoa(defaultFrom)))
	if err != nil {
		response.BadRequest(c, "from must be an integer")
		return 0, 0, false
	}
	size, err = strconv.Atoi(c.DefaultQuery("size", strconv.Itoa(defaultSize)))
	if err != nil {
		response.BadRequest(c, "size must be an integer")
		return 0, 0, false
	}
	return from, size, true
}

// requesterID returns the id set by the identity middleware.
func requesterID(c *gin.Context) (int64, bool) {
	id, ok := middleware.GetUserID(c)
	if !ok {
		response.BadRequest(c, middleware.HeaderUserID+" header is required")
	}
	return id, ok
}
