package profile

import (
	"strings"

	"resolvehub/internal/domain"
)

// SectionRule is one weighted completeness rule for a role.
//
// Required gates the permanent registration number and feeds the missing
// field list. Optional paths are tracked in CompletedFields only (the Tax
// section tracks tan/gst without requiring them). Complete is the section
// completion predicate used for the percentage; it is kept separate from
// Required because several sections complete on a narrower check than
// full field presence (Identity Documents completes without the uploaded
// file, which still blocks the permanent number).
type SectionRule struct {
	Name     string
	Weight   int
	Required []string
	Optional []string
	Complete func(doc domain.Document) bool
}

// Mandatory sections carry a trailing "*" on their display name.
func (r SectionRule) Mandatory() bool {
	return strings.HasSuffix(r.Name, "*")
}

func allOf(paths ...string) func(domain.Document) bool {
	return func(doc domain.Document) bool {
		for _, p := range paths {
			if !hasValue(doc, p) {
				return false
			}
		}
		return true
	}
}

func anyOf(paths ...string) func(domain.Document) bool {
	return func(doc domain.Document) bool {
		for _, p := range paths {
			if hasValue(doc, p) {
				return true
			}
		}
		return false
	}
}

func positive(path string) func(domain.Document) bool {
	return func(doc domain.Document) bool {
		return hasPositiveNumber(doc, path)
	}
}

func truthy(path string) func(domain.Document) bool {
	return func(doc domain.Document) bool {
		return isTruthy(doc, path)
	}
}

func seekerIndividualSections() []SectionRule {
	return []SectionRule{
		{
			Name:     "Basic Details*",
			Weight:   30,
			Required: []string{"name", "email", "contactNumber"},
			Complete: allOf("name", "email", "contactNumber"),
		},
		{
			Name:     "Identity Documents*",
			Weight:   25,
			Required: []string{"identityDocument.type", "identityDocument.number", "identityDocument.uploadedFile"},
			Complete: allOf("identityDocument.type", "identityDocument.number"),
		},
		{
			Name:     "Address Details*",
			Weight:   20,
			Required: []string{"address.street", "address.city", "address.pinCode"},
			Complete: allOf("address.street", "address.city", "address.pinCode"),
		},
		{
			Name:     "Tax Information",
			Weight:   15,
			Required: []string{"panNumber"},
			Optional: []string{"tanNumber", "gstNumber"},
			Complete: allOf("panNumber"),
		},
		{
			Name:     "Banking Details",
			Weight:   10,
			Required: []string{"bankingDetails.0.accountNumber"},
			Complete: allOf("bankingDetails.0.accountNumber"),
		},
	}
}

func seekerEntitySections() []SectionRule {
	return append(seekerIndividualSections(),
		SectionRule{
			Name:     "Authorized Representative*",
			Weight:   20,
			Required: []string{"authorizedRepresentative.name", "authorizedRepresentative.email"},
			Optional: []string{"authorizedRepresentative.contactNumber"},
			Complete: allOf("authorizedRepresentative.name", "authorizedRepresentative.email"),
		},
		SectionRule{
			Name:     "Resource Infrastructure",
			Weight:   15,
			Required: []string{"resourceInfra.numberOfProfessionalStaff"},
			Optional: []string{"resourceInfra.numberOfOtherStaff"},
			Complete: positive("resourceInfra.numberOfProfessionalStaff"),
		},
	)
}

func providerIndividualSections() []SectionRule {
	return []SectionRule{
		{
			Name:     "Personal Details*",
			Weight:   20,
			Required: []string{"name", "email", "mobile"},
			Complete: allOf("name", "email", "mobile"),
		},
		{
			Name:     "Identity Documents*",
			Weight:   15,
			Required: []string{"identityDocument.type", "identityDocument.number", "identityDocument.uploadedFile"},
			Complete: allOf("identityDocument.type", "identityDocument.number"),
		},
		{
			Name:     "Qualifications*",
			Weight:   15,
			Required: []string{"qualifications"},
			Complete: allOf("qualifications"),
		},
		{
			Name:     "Membership Details*",
			Weight:   15,
			Required: []string{"membershipDetails.0.membershipNumber"},
			Optional: []string{"membershipDetails.0.bodyInstitute"},
			Complete: allOf("membershipDetails.0.membershipNumber"),
		},
		{
			Name:     "Services Offered*",
			Weight:   15,
			Required: []string{"servicesOffered.0.category"},
			Complete: anyOf("servicesOffered.0.category", "servicesOffered.0.services.0"),
		},
		{
			Name:     "Languages",
			Weight:   5,
			Required: []string{"languageSkills.0.language"},
			Complete: allOf("languageSkills.0.language"),
		},
		{
			Name:     "Work Locations",
			Weight:   5,
			Required: []string{"workLocations.0.pinCode"},
			Complete: allOf("workLocations.0.pinCode"),
		},
		{
			Name:     "Banking Details",
			Weight:   10,
			Required: []string{"bankingDetails.0.accountNumber"},
			Complete: allOf("bankingDetails.0.accountNumber"),
		},
	}
}

func providerEntitySections() []SectionRule {
	return append(providerIndividualSections(),
		SectionRule{
			Name:     "Company Details*",
			Weight:   15,
			Required: []string{"personType", "dateOfIncorporation", "incorporationCertificate"},
			Complete: allOf("personType", "dateOfIncorporation"),
		},
		SectionRule{
			Name:     "Authorized Representative*",
			Weight:   15,
			Required: []string{"authorizedRepresentative.name", "authorizedRepresentative.email"},
			Complete: allOf("authorizedRepresentative.name", "authorizedRepresentative.email"),
		},
		SectionRule{
			Name:     "Remote Work Preference",
			Weight:   7,
			Required: []string{"openToRemoteWork"},
			Complete: truthy("openToRemoteWork"),
		},
	)
}

func teamMemberSections() []SectionRule {
	return []SectionRule{
		{
			Name:     "Basic Details*",
			Weight:   40,
			Required: []string{"name", "email", "contactNumber"},
			Complete: allOf("name", "email", "contactNumber"),
		},
		{
			Name:     "Identity Documents*",
			Weight:   30,
			Required: []string{"identityDocument.type", "identityDocument.number"},
			Complete: allOf("identityDocument.type", "identityDocument.number"),
		},
		{
			Name:     "Address Details*",
			Weight:   30,
			Required: []string{"address.street", "address.city", "address.pinCode"},
			Complete: allOf("address.street", "address.city", "address.pinCode"),
		},
		{
			Name:     "Remote Work Preference",
			Weight:   5,
			Required: []string{"openToRemoteWork"},
			Complete: truthy("openToRemoteWork"),
		},
	}
}

var ruleSets = map[domain.UserRole]func() []SectionRule{
	domain.RoleServiceSeekerIndividual:    seekerIndividualSections,
	domain.RoleServiceSeekerEntity:        seekerEntitySections,
	domain.RoleServiceProviderIndividual:  providerIndividualSections,
	domain.RoleServiceProviderEntityAdmin: providerEntitySections,
	domain.RoleTeamMember:                 teamMemberSections,
}

// RulesForRole returns the ordered section rules for the role, or nil for
// an unknown role.
func RulesForRole(role domain.UserRole) []SectionRule {
	if f, ok := ruleSets[role]; ok {
		return f()
	}
	return nil
}
