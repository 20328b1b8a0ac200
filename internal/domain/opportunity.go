package domain

import "time"

type OpportunityStatus string

const (
	OpportunityOpen   OpportunityStatus = "open"
	OpportunityClosed OpportunityStatus = "closed"
)

// Opportunity is a biddable service request posted by a service seeker.
// Visibility for provider roles is gated by membership eligibility, not by
// profile completion percentage.
type Opportunity struct {
	ID              int64             `json:"id"`
	Title           string            `json:"title"`
	Category        string            `json:"category"`
	Description     string            `json:"description,omitempty"`
	Budget          float64           `json:"budget"`
	LocationPinCode string            `json:"location_pin_code,omitempty"`
	Status          OpportunityStatus `json:"status"`
	Deadline        time.Time         `json:"deadline"`
	CreatedAt       time.Time         `json:"created_at"`
}

type BidStatus string

const (
	BidSubmitted BidStatus = "submitted"
	BidAccepted  BidStatus = "accepted"
	BidRejected  BidStatus = "rejected"
)

type Bid struct {
	ID             int64     `json:"id"`
	OpportunityID  int64     `json:"opportunity_id"`
	ProviderUserID int64     `json:"provider_user_id"`
	Amount         float64   `json:"amount"`
	Notes          string    `json:"notes,omitempty"`
	Status         BidStatus `json:"status"`
	CreatedAt      time.Time `json:"created_at"`
}
