package http

import (
	"errors"
	"net/http"

	"github.com/joycesaquino/customer/internal/service"
	"github.com/joycesaquino/customer/internal/store"
	"github.com/joycesaquino/customer/internal/utils"
	"github.com/joycesaquino/customer/models"
)

var errorStatusMap = map[error]int{
	ErrInvalidCustomerID: http.StatusBadRequest,
	ErrMissingEmailParam: http.StatusBadRequest,
	ErrAccessDenied:      http.StatusForbidden,

	utils.ErrEmptyBody:              http.StatusBadRequest,
	models.ErrInvalidCustomerStatus: http.StatusBadRequest,

	service.ErrInvalidDataProvided:     http.StatusBadRequest,
	service.ErrTokenIsExpiredOrInvalid: http.StatusUnauthorized,
	service.ErrStoreUnavailable:        http.StatusServiceUnavailable,

	store.ErrEmailAlreadyExists:   http.StatusConflict,
	store.ErrCustomerNotFound:     http.StatusNotFound,
	store.ErrRequiredFieldMissing: http.StatusBadRequest,

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
