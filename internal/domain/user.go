package domain

import "time"

type UserRole string

const (
	RoleServiceSeekerIndividual    UserRole = "service_seeker_individual"
	RoleServiceSeekerEntity        UserRole = "service_seeker_entity"
	RoleServiceProviderIndividual  UserRole = "service_provider_individual"
	RoleServiceProviderEntityAdmin UserRole = "service_provider_entity_admin"
	RoleTeamMember                 UserRole = "team_member"
)

// IsProvider reports whether the role belongs to the service-provider
// family. Provider roles are gated on membership verification before they
// can see or bid on opportunities.
func (r UserRole) IsProvider() bool {
	switch r {
	case RoleServiceProviderIndividual, RoleServiceProviderEntityAdmin, RoleTeamMember:
		return true
	}
	return false
}

// IsValid reports whether the role is one of the known platform roles.
func (r UserRole) IsValid() bool {
	switch r {
	case RoleServiceSeekerIndividual, RoleServiceSeekerEntity,
		RoleServiceProviderIndividual, RoleServiceProviderEntityAdmin,
		RoleTeamMember:
		return true
	}
	return false
}

type User struct {
	ID                  int64      `json:"id"`
	Email               string     `json:"email" validate:"required,email"`
	PasswordHash        string     `json:"-"`
	Role                UserRole   `json:"role"`
	Name                string     `json:"name"`
	Phone               string     `json:"phone,omitempty"`
	Organization        string     `json:"organization,omitempty"`
	FailedLoginAttempts int        `json:"-"`
	LockedUntil         *time.Time `json:"-"`
	CreatedAt           time.Time  `json:"created_at"`
	UpdatedAt           time.Time  `json:"updated_at"`
}
