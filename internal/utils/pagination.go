package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/workforcehq/workforce-api/internal/constants"
	"github.com/workforcehq/workforce-api/internal/repository"
)

// GetPageRequest extracts and validates paging and sorting parameters
// from the request query string.
func GetPageRequest(c *gin.Context) repository.PageRequest {
	index, _ := strconv.Atoi(c.DefaultQuery("index", strconv.Itoa(constants.DefaultPageIndex)))
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(constants.DefaultPageSize)))

	if index < constants.DefaultPageIndex {
		index = constants.DefaultPageIndex
	}
	if limit < 1 || limit > constants.MaxPageSize {
		limit = constants.DefaultPageSize
	}

	return repository.PageRequest{
		Index:    index,
		Limit:    limit,
		SortBy:   c.Query("sortBy"),
		SortType: c.Query("sortType"),
	}
}
