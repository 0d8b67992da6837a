package controllers

import (
	"strconv"

	"github.com/fuzziecoder/Brocode-Spot-Update-App/pkg/resp"
	"github.com/gin-gonic/gin"
)

func parseUintParam(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil || n == 0 {
		resp.BadRequest(c, "invalid "+name)
		return 0, false
	}
	return uint(n), true
}

func parseUintQuery(c *gin.Context, name string) (uint, bool) {
	n, err := strconv.ParseUint(c.Query(name), 10, 32)
	if err != nil || n == 0 {
		resp.BadRequest(c, "missing or invalid "+name)
		return 0, false
	}
	return uint(n), true
}
