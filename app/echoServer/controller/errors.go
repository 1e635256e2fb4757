package controller

import (
	"net/http"

	"github.com/Bennnhere/LendIt-app/service/svcerr"
)

// StatusFor maps a service error to an HTTP status and a client-facing
// message. ok is false for uncoded errors, which callers log and turn into 500.
func StatusFor(err error) (status int, msg string, ok bool) {
	switch svcerr.Code(err) {
	case svcerr.ErrBadInput:
		return http.StatusBadRequest, err.Error(), true
	case svcerr.ErrSessionNotFound:
		return http.StatusUnauthorized, "session expired", true
	case svcerr.ErrNotFound:
		return http.StatusNotFound, "item not found", true
	case svcerr.ErrNotAvailable:
		return http.StatusConflict, "item not available", true
	case svcerr.ErrAlreadyRenting:
		return http.StatusConflict, "already renting", true
	case svcerr.ErrNoActiveRental:
		return http.StatusConflict, "no active rental", true
	case svcerr.ErrCashNotPending:
		return http.StatusConflict, "cash handover not started", true
	default:
		return http.StatusInternalServerError, "internal error", false
	}
}
