// internal/utils/pagination.go
package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

const (
	DefaultLimit  = 10
	DefaultOffset = 0
)

type PaginationParams struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
}

// GetPaginationParams reads limit and offset from the query string. Missing
// values take the defaults; present values must be non-negative integers.
func GetPaginationParams(c *gin.Context) (PaginationParams, error) {
	limit, err := queryInt(c, "limit", DefaultLimit)
	if err != nil {
		return PaginationParams{}, err
	}

	offset, err := queryInt(c, "offset", DefaultOffset)
	if err != nil {
		return PaginationParams{}, err
	}

	return PaginationParams{Limit: limit, Offset: offset}, nil
}

func queryInt(c *gin.Context, key string, defaultValue int) (int, error) {
	raw, ok := c.GetQuery(key)
	if !ok || raw == "" {
		return defaultValue, nil
	}

	value, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%s must be an integer", key)
	}
	if value < 0 {
		return 0, fmt.Errorf("%s must not be negative", key)
	}
	return value, nil
}
