package handlers

import (
	"net/http"

	v1 "github.com/jbjulia/mccmnc/api/v1"
	"github.com/jbjulia/mccmnc/internal/services"
	srvErrors "github.com/jbjulia/mccmnc/pkg/errors"
)

type Handler struct {
	lookupSrv *services.LookupService
	updateSrv *services.UpdateService
}

var _ v1.ServerInterface = (*Handler)(nil)

func New(lookupSrv *services.LookupService, updateSrv *services.UpdateService) *Handler {
	return &Handler{
		lookupSrv: lookupSrv,
		updateSrv: updateSrv,
	}
}

// statusFor maps service errors to HTTP status codes.
func statusFor(err error) int {
	switch {
	case srvErrors.IsInvalidInputError(err):
		return http.StatusBadRequest
	case srvErrors.IsUpdateInProgressError(err):
		return http.StatusConflict
	case srvErrors.IsStoreError(err):
		return http.StatusServiceUnavailable
	default:
		return http.StatusInternalServerError
	}
}
