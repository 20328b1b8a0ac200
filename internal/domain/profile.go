package domain

import "time"

// Document is a role-shaped profile payload. Profiles are stored as JSON
// documents rather than wide columns: each role variant has its own set of
// nested optional fields (identityDocument, membershipDetails, address and
// so on), and the completion engine resolves them by path.
type Document map[string]any

type Profile struct {
	UserID      int64     `json:"user_id"`
	Role        UserRole  `json:"role"`
	Document    Document  `json:"document"`
	LastUpdated time.Time `json:"last_updated"`
}

type VerificationStatus string

const (
	VerificationUnverified VerificationStatus = "UNVERIFIED"
	VerificationPending    VerificationStatus = "PENDING"
	VerificationVerified   VerificationStatus = "VERIFIED"
	VerificationFailed     VerificationStatus = "FAILED"
)

// MembershipVerification is the outcome of checking a membership number
// against a professional-body registry. It is attached to a single
// membershipDetails entry inside the profile document.
type MembershipVerification struct {
	Status     VerificationStatus `json:"status"`
	Message    string             `json:"message"`
	VerifiedAt *time.Time         `json:"verifiedAt,omitempty"`
	Source     string             `json:"source"`
}

// DocumentCheck is the judgment returned by the document classifier.
type DocumentCheck struct {
	IsValid       bool              `json:"is_valid"`
	Confidence    float64           `json:"confidence"`
	ExtractedData map[string]string `json:"extracted_data,omitempty"`
	Errors        []string          `json:"errors,omitempty"`
}
