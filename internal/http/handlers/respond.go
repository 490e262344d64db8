package handlers

import (
	"errors"
	"net/http"

	"taskboard/internal/domain"
	"taskboard/internal/logger"
	"taskboard/internal/validation"

	"github.com/gin-gonic/gin"
)

func fail(c *gin.Context, status int, msg string) {
	c.JSON(status, gin.H{"success": false, "message": msg})
}

func failValidation(c *gin.Context, errs []validation.FieldError) {
	c.JSON(http.StatusBadRequest, gin.H{
		"success": false,
		"message": "Validation failed",
		"errors":  errs,
	})
}

// failFromError is the single boundary translator from error kinds to HTTP
// responses. Unexpected errors are logged with detail and returned as a
// generic message, never with internals.
func failFromError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrNotFound):
		fail(c, http.StatusNotFound, "Task not found")
	case errors.Is(err, domain.ErrBadID):
		fail(c, http.StatusBadRequest, "Valid task ID is required")
	case errors.Is(err, domain.ErrInvalidCredentials):
		fail(c, http.StatusUnauthorized, "Invalid email or password")
	case errors.Is(err, domain.ErrDuplicateEmail):
		fail(c, http.StatusConflict, "User with this email already exists")
	default:
		logger.Error("request failed", "path", c.Request.URL.Path, "error", err)
		fail(c, http.StatusInternalServerError, "Internal server error")
	}
}
