package entity

import (
	"errors"
)

var (
	ErrNotFound        = errors.New("not found")
	ErrInvalidArgument = errors.New("invalid argument")
	ErrUnauthenticated = errors.New("unauthenticated")
	ErrBelowMinimum    = errors.New("amount below payable minimum")
	ErrResolution      = errors.New("payment method not resolved")
	ErrPaymentRequest  = errors.New("payment request failed")
	ErrPollCycle       = errors.New("status poll cycle failed")
	ErrNotReady        = errors.New("not ready")
)
