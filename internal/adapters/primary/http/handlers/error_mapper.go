package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"newsfeed-service/internal/core/domain"
)

func mapDomainError(c *gin.Context, err error) {
	c.JSON(statusForError(err), gin.H{"error": err.Error()})
}

func statusForError(err error) int {
	switch {
	// Not found errors
	case errors.Is(err, domain.ErrArticleNotFound),
		errors.Is(err, domain.ErrSectionNotFound),
		errors.Is(err, domain.ErrRunNotFound):
		return http.StatusNotFound

	// Conflict errors
	case errors.Is(err, domain.ErrArticleConflict),
		errors.Is(err, domain.ErrSectionConflict),
		errors.Is(err, domain.ErrRunInProgress):
		return http.StatusConflict

	// Validation errors
	case errors.Is(err, domain.ErrMissingURI),
		errors.Is(err, domain.ErrMissingURL),
		errors.Is(err, domain.ErrMissingTitle),
		errors.Is(err, domain.ErrInvalidSectionName),
		errors.Is(err, domain.ErrInvalidSource),
		errors.Is(err, domain.ErrInvalidPopularKind),
		errors.Is(err, domain.ErrInvalidPeriod):
		return http.StatusBadRequest

	// Auth errors
	case errors.Is(err, domain.ErrMissingToken),
		errors.Is(err, domain.ErrInvalidToken):
		return http.StatusUnauthorized

	// Upstream errors
	case errors.Is(err, domain.ErrWireRejected):
		return http.StatusBadGateway
	case errors.Is(err, domain.ErrWireUnavailable):
		return http.StatusServiceUnavailable

	default:
		return http.StatusInternalServerError
	}
}
