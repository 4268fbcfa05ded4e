package domain

import "errors"

// Not found errors
var (
	ErrArticleNotFound = errors.New("article not found")
	ErrSectionNotFound = errors.New("section not found")
	ErrRunNotFound     = errors.New("ingest run not found")
)

// Conflict errors
var (
	ErrArticleConflict = errors.New("article with this uri already exists")
	ErrSectionConflict = errors.New("section with this name already exists")
	ErrRunInProgress   = errors.New("an ingest run for this section is already in progress")
)

// Validation errors
var (
	ErrMissingURI         = errors.New("article uri is required")
	ErrMissingURL         = errors.New("article url is required")
	ErrMissingTitle       = errors.New("article title is required")
	ErrInvalidSectionName = errors.New("section name is required")
	ErrInvalidSource      = errors.New("source must be one of: all, nyt, inyt")
	ErrInvalidPopularKind = errors.New("popular kind must be one of: emailed, shared, viewed")
	ErrInvalidPeriod      = errors.New("period must be 1, 7 or 30 days")
)

// Upstream errors
var (
	ErrWireUnavailable = errors.New("news wire api unavailable")
	ErrWireRejected    = errors.New("news wire api rejected the request")
)

// Auth errors
var (
	ErrMissingToken = errors.New("authorization token is required")
	ErrInvalidToken = errors.New("authorization token is invalid")
)
