package profile

import (
	"math"

	"resolvehub/internal/domain"
)

type Section struct {
	Name            string   `json:"name"`
	Weight          int      `json:"weight"`
	IsCompleted     bool     `json:"is_completed"`
	RequiredFields  []string `json:"required_fields"`
	CompletedFields []string `json:"completed_fields"`
}

type CompletionStatus struct {
	OverallPercentage      int       `json:"overall_percentage"`
	Sections               []Section `json:"sections"`
	MissingMandatoryFields []string  `json:"missing_mandatory_fields"`
	CanGetPermanentNumber  bool      `json:"can_get_permanent_number"`
}

// CalculateCompletion evaluates the role's section rules against the
// document. It is pure and never fails: absent or malformed data resolves
// to incomplete sections, not errors.
//
// The percentage is the completed share of the total section weight. The
// permanent-number gate requires every mandatory section's Required paths
// to be present, independent of the section completion predicate: a
// section may count as completed on a narrower check and still hold the
// permanent number back.
func CalculateCompletion(doc domain.Document, role domain.UserRole) CompletionStatus {
	rules := RulesForRole(role)

	totalWeight := 0
	completedWeight := 0
	sections := make([]Section, 0, len(rules))
	missing := make([]string, 0)
	canGetNumber := true

	for _, rule := range rules {
		totalWeight += rule.Weight

		completedFields := make([]string, 0, len(rule.Required)+len(rule.Optional))
		missingRequired := make([]string, 0)
		for _, p := range rule.Required {
			if hasValue(doc, p) {
				completedFields = append(completedFields, normalizePath(p))
			} else {
				missingRequired = append(missingRequired, normalizePath(p))
			}
		}
		for _, p := range rule.Optional {
			if hasValue(doc, p) {
				completedFields = append(completedFields, normalizePath(p))
			}
		}

		isCompleted := len(missingRequired) == 0
		if rule.Complete != nil {
			isCompleted = rule.Complete(doc)
		}

		if isCompleted {
			completedWeight += rule.Weight
		} else {
			missing = append(missing, missingRequired...)
		}

		if rule.Mandatory() && len(missingRequired) > 0 {
			canGetNumber = false
		}

		required := make([]string, 0, len(rule.Required))
		for _, p := range rule.Required {
			required = append(required, normalizePath(p))
		}

		sections = append(sections, Section{
			Name:            rule.Name,
			Weight:          rule.Weight,
			IsCompleted:     isCompleted,
			RequiredFields:  required,
			CompletedFields: completedFields,
		})
	}

	percentage := 0
	if totalWeight > 0 {
		percentage = int(math.Round(100 * float64(completedWeight) / float64(totalWeight)))
	}

	return CompletionStatus{
		OverallPercentage:      percentage,
		Sections:               sections,
		MissingMandatoryFields: missing,
		CanGetPermanentNumber:  canGetNumber,
	}
}

// IsEligibleForOpportunities answers the paid-opportunity gate. It is
// independent of the completion percentage: provider roles qualify on a
// single membership entry with a number and a VERIFIED verification,
// non-provider roles always qualify.
func IsEligibleForOpportunities(doc domain.Document, role domain.UserRole) bool {
	if !role.IsProvider() {
		return true
	}

	entries, ok := resolve(doc, "membershipDetails")
	if !ok {
		return false
	}
	list, ok := entries.([]any)
	if !ok {
		return false
	}

	for _, e := range list {
		m, ok := e.(map[string]any)
		if !ok {
			continue
		}
		number, _ := m["membershipNumber"].(string)
		if number == "" {
			continue
		}
		verification, _ := m["verification"].(map[string]any)
		status, _ := verification["status"].(string)
		if status == string(domain.VerificationVerified) {
			return true
		}
	}
	return false
}
