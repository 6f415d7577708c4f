package errors

import "net/http"

var (
	ErrInvalidCoordinates = New(
		"INVALID_COORDINATES",
		"Invalid coordinates provided",
		http.StatusBadRequest,
	)

	ErrInvalidZoom = New(
		"INVALID_ZOOM",
		"Invalid zoom level",
		http.StatusBadRequest,
	)

	ErrInvalidTileCoordinates = New(
		"INVALID_TILE_COORDINATES",
		"Invalid tile coordinates",
		http.StatusBadRequest,
	)

	ErrInvalidUTM = New(
		"INVALID_UTM",
		"Invalid UTM coordinates",
		http.StatusBadRequest,
	)

	ErrInvalidMGRS = New(
		"INVALID_MGRS",
		"Invalid MGRS reference",
		http.StatusBadRequest,
	)

	ErrOutOfCoverage = New(
		"OUT_OF_COVERAGE",
		"Latitude outside MGRS coverage",
		http.StatusUnprocessableEntity,
	)

	ErrInvalidGeometry = New(
		"INVALID_GEOMETRY",
		"Unsupported or malformed geometry",
		http.StatusBadRequest,
	)

	ErrCacheError = New(
		"CACHE_ERROR",
		"Cache operation failed",
		http.StatusInternalServerError,
	)

	ErrInvalidRequest = New(
		"INVALID_REQUEST",
		"Invalid request parameters",
		http.StatusBadRequest,
	)

	ErrInternalServer = New(
		"INTERNAL_SERVER_ERROR",
		"Internal server error",
		http.StatusInternalServerError,
	)
)
