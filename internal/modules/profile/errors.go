package profile

import "errors"

var (
	ErrProfileNotFound      = errors.New("profile not found")
	ErrInvalidRole          = errors.New("unknown role")
	ErrNotEligibleForNumber = errors.New("mandatory sections incomplete")
)
