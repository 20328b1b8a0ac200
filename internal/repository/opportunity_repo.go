package repository

import (
	"context"
	"time"

	"gorm.io/gorm"

	"resolvehub/internal/domain"
)

type OpportunityRepository struct {
	db *gorm.DB
}

func NewOpportunityRepository(db *gorm.DB) *OpportunityRepository {
	return &OpportunityRepository{db: db}
}

type opportunityModel struct {
	ID              int64     `gorm:"column:id;primaryKey"`
	Title           string    `gorm:"column:title"`
	Category        string    `gorm:"column:category;index"`
	Description     string    `gorm:"column:description"`
	Budget          float64   `gorm:"column:budget"`
	LocationPinCode *string   `gorm:"column:location_pin_code"`
	Status          string    `gorm:"column:status;index"`
	Deadline        time.Time `gorm:"column:deadline"`
	CreatedAt       time.Time `gorm:"column:created_at"`
}

func (opportunityModel) TableName() string { return "opportunities" }

type bidModel struct {
	ID             int64     `gorm:"column:id;primaryKey"`
	OpportunityID  int64     `gorm:"column:opportunity_id;uniqueIndex:idx_one_bid_per_provider"`
	ProviderUserID int64     `gorm:"column:provider_user_id;uniqueIndex:idx_one_bid_per_provider"`
	Amount         float64   `gorm:"column:amount"`
	Notes          string    `gorm:"column:notes"`
	Status         string    `gorm:"column:status"`
	CreatedAt      time.Time `gorm:"column:created_at"`
}

func (bidModel) TableName() string { return "bids" }

func toDomainOpportunity(m opportunityModel) domain.Opportunity {
	var pin string
	if m.LocationPinCode != nil {
		pin = *m.LocationPinCode
	}
	return domain.Opportunity{
		ID:              m.ID,
		Title:           m.Title,
		Category:        m.Category,
		Description:     m.Description,
		Budget:          m.Budget,
		LocationPinCode: pin,
		Status:          domain.OpportunityStatus(m.Status),
		Deadline:        m.Deadline,
		CreatedAt:       m.CreatedAt,
	}
}

// OpportunityFilter narrows the listing. Zero values mean "no filter".
type OpportunityFilter struct {
	Category string
	PinCode  string
	Status   string
	Limit    int
	Offset   int
}

func (r *OpportunityRepository) List(ctx context.Context, f OpportunityFilter) ([]domain.Opportunity, error) {
	q := r.db.WithContext(ctx).Model(&opportunityModel{})
	if f.Category != "" {
		q = q.Where("category = ?", f.Category)
	}
	if f.PinCode != "" {
		q = q.Where("location_pin_code = ?", f.PinCode)
	}
	if f.Status != "" {
		q = q.Where("status = ?", f.Status)
	}

	limit := f.Limit
	if limit <= 0 || limit > 100 {
		limit = 20
	}

	var rows []opportunityModel
	tx := q.Order("created_at DESC").Limit(limit).Offset(f.Offset).Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Opportunity, 0, len(rows))
	for _, m := range rows {
		out = append(out, toDomainOpportunity(m))
	}
	return out, nil
}

func (r *OpportunityRepository) Create(ctx context.Context, o *domain.Opportunity) error {
	m := opportunityModel{
		Title:       o.Title,
		Category:    o.Category,
		Description: o.Description,
		Budget:      o.Budget,
		Status:      string(o.Status),
		Deadline:    o.Deadline,
	}
	if o.LocationPinCode != "" {
		v := o.LocationPinCode
		m.LocationPinCode = &v
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	o.ID = m.ID
	o.CreatedAt = m.CreatedAt
	return nil
}

func (r *OpportunityRepository) GetByID(ctx context.Context, id int64) (*domain.Opportunity, error) {
	var m opportunityModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	o := toDomainOpportunity(m)
	return &o, nil
}

func (r *OpportunityRepository) CreateBid(ctx context.Context, b *domain.Bid) error {
	m := bidModel{
		OpportunityID:  b.OpportunityID,
		ProviderUserID: b.ProviderUserID,
		Amount:         b.Amount,
		Notes:          b.Notes,
		Status:         string(b.Status),
	}
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}
	b.ID = m.ID
	b.CreatedAt = m.CreatedAt
	return nil
}

func (r *OpportunityRepository) GetBidsByProvider(ctx context.Context, providerUserID int64) ([]domain.Bid, error) {
	var rows []bidModel
	tx := r.db.WithContext(ctx).
		Where("provider_user_id = ?", providerUserID).
		Order("created_at DESC").
		Find(&rows)
	if tx.Error != nil {
		return nil, tx.Error
	}

	out := make([]domain.Bid, 0, len(rows))
	for _, m := range rows {
		out = append(out, domain.Bid{
			ID:             m.ID,
			OpportunityID:  m.OpportunityID,
			ProviderUserID: m.ProviderUserID,
			Amount:         m.Amount,
			Notes:          m.Notes,
			Status:         domain.BidStatus(m.Status),
			CreatedAt:      m.CreatedAt,
		})
	}
	return out, nil
}
