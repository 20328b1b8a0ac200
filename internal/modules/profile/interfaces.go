package profile

import (
	"context"

	"resolvehub/internal/domain"
)

// ProfileRepository lists only the methods the completion engine uses.
type ProfileRepository interface {
	GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error)
	Save(ctx context.Context, p *domain.Profile) error
}
