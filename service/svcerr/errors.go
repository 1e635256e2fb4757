// Package svcerr carries the error codes controllers translate into HTTP statuses.
package svcerr

import (
	"errors"

	sessionrepo "github.com/Bennnhere/LendIt-app/repository/session"
)

type ErrCode string

const (
	ErrBadInput        ErrCode = "BAD_INPUT"
	ErrSessionNotFound ErrCode = "SESSION_NOT_FOUND"
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrNotAvailable    ErrCode = "NOT_AVAILABLE"
	ErrAlreadyRenting  ErrCode = "ALREADY_RENTING"
	ErrNoActiveRental  ErrCode = "NO_ACTIVE_RENTAL"
	ErrCashNotPending  ErrCode = "CASH_NOT_PENDING"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string {
	if e.msg == "" {
		return string(e.code)
	}
	return string(e.code) + ": " + e.msg
}
func (e codedError) Code() ErrCode { return e.code }

func Make(c ErrCode) error              { return codedError{code: c} }
func Makef(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }

// Code extracts error code
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// FromStore maps a session store miss to ErrSessionNotFound and passes
// everything else through.
func FromStore(err error) error {
	if errors.Is(err, sessionrepo.ErrNotFound) {
		return Make(ErrSessionNotFound)
	}
	return err
}
