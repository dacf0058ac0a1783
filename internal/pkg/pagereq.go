package pkg

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/karimbh/refdata/internal/domain"
)

// Wire names for paging parameters. Every remaining query parameter maps
// 1:1 to a resource filter field.
const (
	paramPageNumber = "pageNumber"
	paramPageSize   = "pageSize"
	paramSort       = "sort"
)

// PageLimits carries the configured paging defaults. MaxPageSize of zero
// means no cap is applied.
type PageLimits struct {
	DefaultPageSize int
	MaxPageSize     int
}

// ParsePageRequest extracts pagination and sorting parameters from query
// params. Out-of-range values fall back to page 1 and the configured
// default size; the size cap applies only when one is configured.
func ParsePageRequest(c *gin.Context, limits PageLimits) domain.PageRequest {
	defaultSize := limits.DefaultPageSize
	if defaultSize < 1 {
		defaultSize = 10
	}

	page, _ := strconv.Atoi(c.DefaultQuery(paramPageNumber, "1"))
	if page < 1 {
		page = 1
	}

	size, _ := strconv.Atoi(c.DefaultQuery(paramPageSize, strconv.Itoa(defaultSize)))
	if size < 1 {
		size = defaultSize
	}
	if limits.MaxPageSize > 0 && size > limits.MaxPageSize {
		size = limits.MaxPageSize
	}

	return domain.PageRequest{
		PageNumber: page,
		PageSize:   size,
		Sort:       c.Query(paramSort),
	}
}
