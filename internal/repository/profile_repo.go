package repository

import (
	"context"
	"encoding/json"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"resolvehub/internal/domain"
)

type ProfileRepository struct {
	db *gorm.DB
}

func NewProfileRepository(db *gorm.DB) *ProfileRepository {
	return &ProfileRepository{db: db}
}

// The document column holds the full role-shaped profile as JSON. The
// engine resolves fields by path, so no per-field columns are needed.
type profileModel struct {
	UserID      int64           `gorm:"column:user_id;primaryKey"`
	Role        string          `gorm:"column:role"`
	Document    json.RawMessage `gorm:"column:document;type:json"`
	LastUpdated time.Time       `gorm:"column:last_updated"`
}

func (profileModel) TableName() string { return "profiles" }

func toDomainProfile(m profileModel) (*domain.Profile, error) {
	doc := domain.Document{}
	if len(m.Document) > 0 {
		if err := json.Unmarshal(m.Document, &doc); err != nil {
			return nil, err
		}
	}
	return &domain.Profile{
		UserID:      m.UserID,
		Role:        domain.UserRole(m.Role),
		Document:    doc,
		LastUpdated: m.LastUpdated,
	}, nil
}

func (r *ProfileRepository) GetByUserID(ctx context.Context, userID int64) (*domain.Profile, error) {
	var m profileModel
	tx := r.db.WithContext(ctx).First(&m, "user_id = ?", userID)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainProfile(m)
}

// Save upserts the profile document and stamps last_updated.
// Last-writer-wins, no optimistic-concurrency check.
func (r *ProfileRepository) Save(ctx context.Context, p *domain.Profile) error {
	raw, err := json.Marshal(p.Document)
	if err != nil {
		return err
	}

	m := profileModel{
		UserID:      p.UserID,
		Role:        string(p.Role),
		Document:    raw,
		LastUpdated: time.Now().UTC(),
	}

	tx := r.db.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"role", "document", "last_updated"}),
	}).Create(&m)
	if tx.Error != nil {
		return tx.Error
	}

	p.LastUpdated = m.LastUpdated
	return nil
}
