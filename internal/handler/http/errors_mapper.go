package http

import (
	"errors"
	"net/http"

	"github.com/MKhiriev/go-user-registry/internal/service"
	"github.com/MKhiriev/go-user-registry/internal/store"
)

var errorStatusMap = map[error]int{
	service.ErrTokenIsExpired: http.StatusUnauthorized,
	service.ErrTokenIsInvalid: http.StatusUnauthorized,

	store.ErrInvalidCredentials: http.StatusUnauthorized,
	store.ErrNationalIDExists:   http.StatusBadRequest,
	store.ErrUserNotFound:       http.StatusNotFound,

	store.ErrBuildingSQLQuery: http.StatusInternalServerError,
	store.ErrExecutingQuery:   http.StatusInternalServerError,
	store.ErrScanningRow:      http.StatusInternalServerError,
	store.ErrScanningRows:     http.StatusInternalServerError,
}

func statusFromError(err error) int {
	for target, status := range errorStatusMap {
		if errors.Is(err, target) {
			return status
		}
	}
	return http.StatusInternalServerError
}
