package profile

import "resolvehub/internal/domain"

type SaveProfileRequest struct {
	Document domain.Document `json:"document" binding:"required"`
}

type EligibilityResponse struct {
	Eligible bool `json:"eligible"`
}

type PermanentNumberResponse struct {
	PermanentNumber string `json:"permanent_number"`
}
