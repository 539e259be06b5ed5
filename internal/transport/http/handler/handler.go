// Package handler holds the gin handlers for the three entity resources.
package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"go-service-market/internal/transport/http/response"
)

func parseID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "invalid id")
		return 0, false
	}
	return uint(id), true
}
