package opportunity

import (
	"context"
	"errors"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"

	"resolvehub/internal/domain"
	"resolvehub/internal/modules/notification"
	"resolvehub/internal/pkg/validator"
	"resolvehub/internal/repository"
)

type Service struct {
	opportunities OpportunityRepository
	eligibility   EligibilityChecker
	events        EventSender
}

// EventSender pushes bid events to connected clients.
type EventSender interface {
	SendToUser(userID int64, event notification.Event) bool
}

func NewService(opportunities OpportunityRepository, eligibility EligibilityChecker, events EventSender) *Service {
	return &Service{
		opportunities: opportunities,
		eligibility:   eligibility,
		events:        events,
	}
}

// ListOpportunities returns the filtered page. Provider roles must hold a
// verified membership; seekers browse freely. Completion percentage plays
// no part in the gate.
func (s *Service) ListOpportunities(ctx context.Context, userID int64, role domain.UserRole, q ListOpportunitiesQuery) ([]domain.Opportunity, error) {
	if role.IsProvider() {
		eligible, err := s.eligibility.IsEligible(ctx, userID, role)
		if err != nil {
			return nil, err
		}
		if !eligible {
			return nil, ErrNotEligible
		}
	}

	return s.opportunities.List(ctx, repository.OpportunityFilter{
		Category: q.Category,
		PinCode:  q.PinCode,
		Status:   q.Status,
		Limit:    q.Limit,
		Offset:   q.Offset,
	})
}

func (s *Service) PlaceBid(ctx context.Context, userID int64, role domain.UserRole, opportunityID int64, req PlaceBidRequest) (*domain.Bid, error) {
	if !role.IsProvider() {
		return nil, ErrForbidden
	}
	if errs := validator.Struct(req); errs != nil {
		return nil, ErrValidation
	}

	eligible, err := s.eligibility.IsEligible(ctx, userID, role)
	if err != nil {
		return nil, err
	}
	if !eligible {
		return nil, ErrNotEligible
	}

	opp, err := s.opportunities.GetByID(ctx, opportunityID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrOpportunityMissing
		}
		return nil, err
	}
	if opp.Status != domain.OpportunityOpen {
		return nil, ErrOpportunityClosed
	}

	b := &domain.Bid{
		OpportunityID:  opportunityID,
		ProviderUserID: userID,
		Amount:         req.Amount,
		Notes:          req.Notes,
		Status:         domain.BidSubmitted,
	}

	if err := s.opportunities.CreateBid(ctx, b); err != nil {
		if pgErr, ok := err.(*pgconn.PgError); ok {
			if pgErr.Code == "23505" && pgErr.ConstraintName == "idx_one_bid_per_provider" {
				return nil, ErrDuplicateBid
			}
		}
		return nil, err
	}

	if s.events != nil {
		_ = s.events.SendToUser(userID, notification.Event{
			Type:    notification.EventBidPlaced,
			Payload: b,
		})
	}

	return b, nil
}

func (s *Service) GetMyBids(ctx context.Context, userID int64, role domain.UserRole) ([]domain.Bid, error) {
	if !role.IsProvider() {
		return nil, ErrForbidden
	}
	return s.opportunities.GetBidsByProvider(ctx, userID)
}
