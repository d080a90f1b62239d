package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/workforcehq/workforce-api/internal/apperrors"
)

// pathID parses a numeric id path parameter. On failure it writes a
// bad-request response and returns false.
func pathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil {
		apperrors.BadRequest(c, "invalid "+name+" parameter")
		return 0, false
	}
	return id, true
}
