package verification

import (
	"context"

	"resolvehub/internal/domain"
	"resolvehub/internal/modules/notification"
)

// RegistryClient checks a membership number against a professional-body
// registry. Production swaps the simulated client for a real integration
// without touching the verification service.
type RegistryClient interface {
	VerifyMembership(ctx context.Context, bodyInstitute, membershipNumber string) (domain.MembershipVerification, error)
}

// DocumentClassifier judges an uploaded document against its declared
// type. The simulated implementation stands in for a real classifier.
type DocumentClassifier interface {
	Classify(ctx context.Context, fileName, documentType string) (domain.DocumentCheck, error)
}

// ProfileStore lists only the methods the verification service uses.
type ProfileStore interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
	Save(ctx context.Context, p *domain.Profile) error
}

// EventSender pushes verification outcomes to connected clients.
type EventSender interface {
	SendToUser(userID int64, event notification.Event) bool
}
