// Package controllers handles HTTP request handling
package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/alumnet/api/internal/app/models/dto"
	"github.com/alumnet/api/internal/middleware"
)

// callerID resolves the authenticated caller's id from the context. Writes a
// 401 response when the identity is missing, which only happens if a handler
// is registered outside the JWTAuth group by mistake.
func callerID(c *gin.Context) (int64, bool) {
	userID, ok := middleware.CurrentUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, dto.NewMessageResponse("Authentication required"))
	}
	return userID, ok
}

// parseIDParam parses a positive integer path parameter, writing a 400
// response on failure.
func parseIDParam(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		c.JSON(http.StatusBadRequest, dto.NewMessageResponse("Invalid "+name+" parameter"))
		return 0, false
	}
	return id, true
}

// writeRaw writes a pre-serialized response envelope verbatim, as returned
// by the cache-backed service reads.
func writeRaw(c *gin.Context, payload []byte) {
	c.Data(http.StatusOK, "application/json; charset=utf-8", payload)
}
