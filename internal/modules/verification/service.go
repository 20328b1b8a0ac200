package verification

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"resolvehub/internal/domain"
	"resolvehub/internal/modules/notification"
)

type Service struct {
	profiles   ProfileStore
	registry   RegistryClient
	classifier DocumentClassifier
	events     EventSender
}

func NewService(profiles ProfileStore, registry RegistryClient, classifier DocumentClassifier, events EventSender) *Service {
	return &Service{
		profiles:   profiles,
		registry:   registry,
		classifier: classifier,
		events:     events,
	}
}

// VerifyMembership runs the registry check for one membershipDetails
// entry of the stored profile and persists the outcome onto that entry.
// A FAILED result is persisted the same way as a VERIFIED one; it is an
// outcome, not an error.
func (s *Service) VerifyMembership(ctx context.Context, userID int64, entryIndex int) (domain.MembershipVerification, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MembershipVerification{}, ErrProfileNotFound
		}
		return domain.MembershipVerification{}, err
	}

	entries, _ := p.Document["membershipDetails"].([]any)
	if entryIndex < 0 || entryIndex >= len(entries) {
		return domain.MembershipVerification{}, ErrMembershipNotFound
	}
	entry, ok := entries[entryIndex].(map[string]any)
	if !ok {
		return domain.MembershipVerification{}, ErrMembershipMalformed
	}

	bodyInstitute, _ := entry["bodyInstitute"].(string)
	membershipNumber, _ := entry["membershipNumber"].(string)

	result, err := s.registry.VerifyMembership(ctx, bodyInstitute, membershipNumber)
	if err != nil {
		return domain.MembershipVerification{}, err
	}

	entry["verification"] = verificationToDocument(result)
	if err := s.profiles.Save(ctx, p); err != nil {
		return domain.MembershipVerification{}, err
	}

	if s.events != nil {
		eventType := notification.EventMembershipVerified
		if result.Status == domain.VerificationFailed {
			eventType = notification.EventMembershipFailed
		}
		_ = s.events.SendToUser(userID, notification.Event{
			Type:    eventType,
			Payload: result,
		})
	}

	return result, nil
}

func (s *Service) VerifyDocument(ctx context.Context, fileName, documentType string) (domain.DocumentCheck, error) {
	return s.classifier.Classify(ctx, fileName, documentType)
}

// verificationToDocument stores the result in the same plain-JSON shape
// the rest of the profile document uses.
func verificationToDocument(v domain.MembershipVerification) map[string]any {
	out := map[string]any{
		"status":  string(v.Status),
		"message": v.Message,
		"source":  v.Source,
	}
	if v.VerifiedAt != nil {
		out["verifiedAt"] = v.VerifiedAt.Format(time.RFC3339)
	}
	return out
}
