package http

import (
	"errors"
	"net/http"

	"github.com/antonsh/stockscan/internal/adapter"
	"github.com/antonsh/stockscan/internal/service"
	"github.com/antonsh/stockscan/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrInvalidDataProvided: http.StatusBadRequest,
	service.ErrInvalidMode:         http.StatusBadRequest,
	service.ErrInvalidCredentials:  http.StatusUnauthorized,
	service.ErrTokenIsExpired:      http.StatusUnauthorized,
	service.ErrTokenInvalid:        http.StatusUnauthorized,
	service.ErrTokenCreationFailed: http.StatusInternalServerError,

	store.ErrUsernameAlreadyExists: http.StatusConflict,
	store.ErrNoUserWasFound:        http.StatusNotFound,
	store.ErrItemNotFound:          http.StatusNotFound,

	store.ErrBuildingSQLQuery:   http.StatusInternalServerError,
	store.ErrExecutingQuery:     http.StatusInternalServerError,
	store.ErrExecutingStatement: http.StatusInternalServerError,
	store.ErrScanningRow:        http.StatusInternalServerError,
	store.ErrScanningRows:       http.StatusInternalServerError,

	adapter.ErrCatalogUnavailable: http.StatusInternalServerError,
}

// mapError resolves an error from the service/store layers to an HTTP status
// code and the message to place in the JSON error body.
//
// Validation failures keep their full message because it names the missing
// field; every other matched sentinel is reported by its own message so that
// internal wrapping context does not leak to clients. Unclassified errors
// fall through to 500 with the underlying message, which is acceptable for a
// development-stage service.
func mapError(err error) (int, string) {
	for target, status := range errorStatusMap {
		if !errors.Is(err, target) {
			continue
		}
		if errors.Is(err, service.ErrInvalidDataProvided) || errors.Is(err, service.ErrInvalidMode) {
			return status, err.Error()
		}
		return status, target.Error()
	}

	return http.StatusInternalServerError, err.Error()
}
