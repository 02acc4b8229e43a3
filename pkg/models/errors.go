package models

import "errors"

var (
	ErrOrderNotFound     = errors.New("order not found")
	ErrForbidden         = errors.New("forbidden, this is not your order")
	ErrNoDriverAvailable = errors.New("no available drivers at the moment")
	ErrExternalService   = errors.New("route estimator unavailable")
	ErrDuplicateRequest  = errors.New("duplicate order request")
	ErrUnauthorized      = errors.New("invalid or expired token")
)
