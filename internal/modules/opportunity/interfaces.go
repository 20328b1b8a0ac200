package opportunity

import (
	"context"

	"resolvehub/internal/domain"
	"resolvehub/internal/repository"
)

// OpportunityRepository defines the interface for opportunity storage
type OpportunityRepository interface {
	List(ctx context.Context, f repository.OpportunityFilter) ([]domain.Opportunity, error)
	GetByID(ctx context.Context, id int64) (*domain.Opportunity, error)
	CreateBid(ctx context.Context, b *domain.Bid) error
	GetBidsByProvider(ctx context.Context, providerUserID int64) ([]domain.Bid, error)
}

// EligibilityChecker answers whether a user may access opportunities.
// Backed by the profile completion engine.
type EligibilityChecker interface {
	IsEligible(ctx context.Context, userID int64, role domain.UserRole) (bool, error)
}
