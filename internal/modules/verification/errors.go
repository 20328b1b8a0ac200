package verification

import "errors"

var (
	ErrProfileNotFound     = errors.New("profile not found")
	ErrMembershipNotFound  = errors.New("membership entry not found")
	ErrMembershipMalformed = errors.New("membership entry malformed")
)
