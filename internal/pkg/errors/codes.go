package errors

import "net/http"

var (
	ErrNotFound = New(
		"NOT_FOUND",
		"Record not found",
		http.StatusNotFound,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInvalidServiceType = New(
		"INVALID_SERVICE_TYPE",
		"Invalid transport service type",
		http.StatusBadRequest,
	)

	ErrInvalidDirection = New(
		"INVALID_DIRECTION",
		"Invalid route direction",
		http.StatusBadRequest,
	)

	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidReference = New(
		"INVALID_REFERENCE",
		"Referenced record does not exist",
		http.StatusBadRequest,
	)

	ErrDatabaseError = New(
		"DATABASE_ERROR",
		"Database operation failed",
		http.StatusInternalServerError,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrMapDataUnavailable = New(
		"MAP_DATA_UNAVAILABLE",
		"Failed to load map data",
		http.StatusInternalServerError,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
