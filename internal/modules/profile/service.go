package profile

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"resolvehub/internal/domain"
)

const permanentNumberField = "permanentRegistrationNumber"

type Service struct {
	profiles ProfileRepository
}

func NewService(profiles ProfileRepository) *Service {
	return &Service{profiles: profiles}
}

func (s *Service) GetProfile(ctx context.Context, userID int64) (*domain.Profile, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrProfileNotFound
		}
		return nil, err
	}
	return p, nil
}

// SaveProfile overwrites the stored document for the user. The first save
// creates the record; the repository stamps last_updated.
func (s *Service) SaveProfile(ctx context.Context, userID int64, role domain.UserRole, doc domain.Document) (*domain.Profile, error) {
	if !role.IsValid() {
		return nil, ErrInvalidRole
	}
	if doc == nil {
		doc = domain.Document{}
	}

	p := &domain.Profile{
		UserID:   userID,
		Role:     role,
		Document: doc,
	}
	if err := s.profiles.Save(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

// GetCompletion computes the completion status for the user's stored
// profile. A missing profile degrades to an empty document rather than an
// error, so a brand-new user simply scores zero.
func (s *Service) GetCompletion(ctx context.Context, userID int64, role domain.UserRole) (CompletionStatus, error) {
	doc := domain.Document{}
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return CompletionStatus{}, err
	}
	if p != nil {
		doc = p.Document
		role = p.Role
	}
	return CalculateCompletion(doc, role), nil
}

func (s *Service) IsEligible(ctx context.Context, userID int64, role domain.UserRole) (bool, error) {
	p, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return IsEligibleForOpportunities(domain.Document{}, role), nil
		}
		return false, err
	}
	return IsEligibleForOpportunities(p.Document, p.Role), nil
}

// IssuePermanentNumber generates and persists the permanent registration
// number once every mandatory section is filled. Issuing is idempotent:
// an already-issued number is returned as is.
func (s *Service) IssuePermanentNumber(ctx context.Context, userID int64) (string, error) {
	p, err := s.GetProfile(ctx, userID)
	if err != nil {
		return "", err
	}

	if existing, ok := p.Document[permanentNumberField].(string); ok && existing != "" {
		return existing, nil
	}

	status := CalculateCompletion(p.Document, p.Role)
	if !status.CanGetPermanentNumber {
		return "", ErrNotEligibleForNumber
	}

	number := GeneratePermanentNumber(p.Role)
	p.Document[permanentNumberField] = number
	if err := s.profiles.Save(ctx, p); err != nil {
		return "", err
	}
	return number, nil
}
