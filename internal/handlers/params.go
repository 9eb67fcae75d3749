package handlers

import (
	"strconv"

	"github.com/gin-gonic/gin"

	domain "github.com/BruksfildServices01/haircut-scheduler/internal/domain/appointment"
	"github.com/BruksfildServices01/haircut-scheduler/internal/httperr"
	"github.com/BruksfildServices01/haircut-scheduler/internal/middleware"
)

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 64)
	if err != nil || v == 0 {
		httperr.BadRequest(c, "invalid_id", "Invalid id.")
		return 0, false
	}
	return uint(v), true
}

// queryInt returns def when the parameter is missing or not a number.
func queryInt(c *gin.Context, name string, def int) int {
	v, err := strconv.Atoi(c.Query(name))
	if err != nil {
		return def
	}
	return v
}

func requester(c *gin.Context) (domain.Requester, bool) {
	r, ok := middleware.RequesterFrom(c)
	if !ok {
		httperr.Unauthorized(c, "unauthorized", "Authentication required.")
	}
	return r, ok
}
