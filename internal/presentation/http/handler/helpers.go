package handler

import (
	"github.com/gin-gonic/gin"

	"github.com/sangkips/pos-terminal/internal/domain/enum"
	"github.com/sangkips/pos-terminal/internal/presentation/http/dto/response"
)

// bindJSON decodes the request body into req and answers 400 on failure
func bindJSON(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		response.BadRequest(c, "Invalid request: "+err.Error())
		return false
	}
	return true
}

// bindQuery decodes query parameters into req and answers 400 on failure
func bindQuery(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindQuery(req); err != nil {
		response.BadRequest(c, "Invalid query parameters")
		return false
	}
	return true
}

// parsePeriod reads a period name and answers 400 when it is unknown
func parsePeriod(c *gin.Context, raw string) (enum.Period, bool) {
	period, err := enum.ParsePeriod(raw)
	if err != nil {
		response.BadRequest(c, "Invalid period. Use 'today', 'week', 'month' or 'all'")
		return "", false
	}
	return period, true
}
