package verification

import (
	"context"
	"strings"
	"time"
	"unicode"

	"resolvehub/internal/domain"
)

// SimulatedRegistry fakes the professional-body lookup. A membership
// number passes when its trimmed form is at least four characters long
// and contains at least one alphanumeric character. Rejection is a normal
// FAILED outcome, never an error; the only error path is context
// cancellation during the simulated latency.
type SimulatedRegistry struct {
	Latency time.Duration
}

func (r *SimulatedRegistry) VerifyMembership(ctx context.Context, bodyInstitute, membershipNumber string) (domain.MembershipVerification, error) {
	if r.Latency > 0 {
		select {
		case <-ctx.Done():
			return domain.MembershipVerification{}, ctx.Err()
		case <-time.After(r.Latency):
		}
	}

	source := bodyInstitute + " API"
	trimmed := strings.TrimSpace(membershipNumber)
	if len(trimmed) >= 4 && containsAlphanumeric(trimmed) {
		now := time.Now().UTC()
		return domain.MembershipVerification{
			Status:     domain.VerificationVerified,
			Message:    "Verified successfully",
			VerifiedAt: &now,
			Source:     source,
		}, nil
	}

	return domain.MembershipVerification{
		Status:  domain.VerificationFailed,
		Message: "Invalid membership number or not found",
		Source:  source,
	}, nil
}

func containsAlphanumeric(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			return true
		}
	}
	return false
}
