package opportunity

import "errors"

var (
	ErrValidation         = errors.New("validation error")
	ErrNotEligible        = errors.New("membership verification required")
	ErrForbidden          = errors.New("forbidden")
	ErrOpportunityClosed  = errors.New("opportunity closed")
	ErrDuplicateBid       = errors.New("bid already placed")
	ErrOpportunityMissing = errors.New("opportunity not found")
)
