package v1

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/samber/lo"

	"github.com/gymflow/gymflow/internal/types"
)

// queryFilterFromParams builds pagination from limit/offset query params,
// defaulting to the standard page size.
func queryFilterFromParams(c *gin.Context) *types.QueryFilter {
	filter := types.NewDefaultQueryFilter()
	if limit := c.Query("limit"); limit != "" {
		if v, err := strconv.Atoi(limit); err == nil && v > 0 {
			filter.Limit = lo.ToPtr(v)
		}
	}
	if offset := c.Query("offset"); offset != "" {
		if v, err := strconv.Atoi(offset); err == nil && v >= 0 {
			filter.Offset = lo.ToPtr(v)
		}
	}
	return filter
}
