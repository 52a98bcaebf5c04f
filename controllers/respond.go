package controllers

import (
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/Jeffrey-mu/weight-loss/services"
)

// respondError maps service errors to HTTP responses. Unexpected
// failures get a generic body; the detail goes to the gin error log
// only.
func respondError(c *gin.Context, err error) {
	var validation *services.ValidationError
	var conflict *services.ConflictError

	switch {
	case errors.As(err, &validation):
		c.JSON(http.StatusBadRequest, gin.H{"message": validation.Msg})
	case errors.As(err, &conflict):
		c.JSON(http.StatusBadRequest, gin.H{"message": conflict.Msg})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Invalid Credentials"})
	case errors.Is(err, services.ErrNotOwner):
		c.JSON(http.StatusUnauthorized, gin.H{"message": "Not authorized"})
	case errors.Is(err, services.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"message": "Not found"})
	default:
		_ = c.Error(err)
		c.JSON(http.StatusInternalServerError, gin.H{"message": "Server Error"})
	}
}

// dateQuery parses an optional ?date=YYYY-MM-DD parameter. The second
// return is false after a 400 has already been written.
func dateQuery(c *gin.Context) (*time.Time, bool) {
	raw := c.Query("date")
	if raw == "" {
		return nil, true
	}
	date, err := time.ParseInLocation("2006-01-02", raw, time.Local)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Invalid date"})
		return nil, false
	}
	return &date, true
}
