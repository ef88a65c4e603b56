package utils

import (
	"math"
	"strconv"

	"github.com/alerta-golpe/api-go/types"
	"github.com/gin-gonic/gin"
)

// ParsePagination reads page and limit from the query string.
// Invalid values fall back to the defaults and limit is capped at types.MaxLimit.
// page is capped so the row offset stays inside an int32.
func ParsePagination(c *gin.Context) (int, int) {
	page, err := strconv.Atoi(c.DefaultQuery("page", "1"))
	if err != nil || page < 1 {
		page = types.DefaultPage
	}

	limit, err := strconv.Atoi(c.DefaultQuery("limit", "10"))
	if err != nil || limit < 1 {
		limit = types.DefaultLimit
	}
	if limit > types.MaxLimit {
		limit = types.MaxLimit
	}
	if maxPage := math.MaxInt32 / limit; page > maxPage {
		page = maxPage
	}

	return page, limit
}

// ParseID parses a positive numeric path parameter.
func ParseID(c *gin.Context, name string) (uint, bool) {
	id, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}
