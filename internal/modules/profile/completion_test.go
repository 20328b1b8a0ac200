package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resolvehub/internal/domain"
)

func seekerIndividualDoc() domain.Document {
	return domain.Document{
		"name":          "John Doe",
		"email":         "john@example.com",
		"contactNumber": "+919876543210",
		"address": map[string]any{
			"street":  "123 Main St",
			"city":    "Mumbai",
			"pinCode": "400001",
		},
		"identityDocument": map[string]any{
			"type":   "AADHAAR_CARD",
			"number": "1234-5678-9012",
		},
		"panNumber": "ABCDE1234F",
	}
}

func TestCalculateCompletion_SeekerIndividualScenario(t *testing.T) {
	status := CalculateCompletion(seekerIndividualDoc(), domain.RoleServiceSeekerIndividual)

	// Banking Details (weight 10) is the only incomplete section.
	assert.Equal(t, 90, status.OverallPercentage)
	assert.Len(t, status.Sections, 5)

	byName := map[string]Section{}
	for _, s := range status.Sections {
		byName[s.Name] = s
	}
	assert.True(t, byName["Basic Details*"].IsCompleted)
	assert.True(t, byName["Identity Documents*"].IsCompleted)
	assert.True(t, byName["Address Details*"].IsCompleted)
	assert.True(t, byName["Tax Information"].IsCompleted)
	assert.False(t, byName["Banking Details"].IsCompleted)

	assert.Contains(t, status.MissingMandatoryFields, "bankingDetails.0.accountNumber")
}

func TestCalculateCompletion_EmptyProfile(t *testing.T) {
	for _, role := range []domain.UserRole{
		domain.RoleServiceSeekerIndividual,
		domain.RoleServiceSeekerEntity,
		domain.RoleServiceProviderIndividual,
		domain.RoleServiceProviderEntityAdmin,
		domain.RoleTeamMember,
	} {
		status := CalculateCompletion(domain.Document{}, role)
		assert.Equal(t, 0, status.OverallPercentage, "role %s", role)
		assert.False(t, status.CanGetPermanentNumber, "role %s", role)
	}
}

func TestCalculateCompletion_Bounds(t *testing.T) {
	docs := []domain.Document{
		{},
		seekerIndividualDoc(),
		{"name": "x"},
		{"address": "not-an-object"},
	}
	for _, doc := range docs {
		for role := range ruleSets {
			status := CalculateCompletion(doc, role)
			assert.GreaterOrEqual(t, status.OverallPercentage, 0)
			assert.LessOrEqual(t, status.OverallPercentage, 100)
		}
	}
}

func TestCalculateCompletion_FullProfileReaches100(t *testing.T) {
	doc := seekerIndividualDoc()
	doc["identityDocument"].(map[string]any)["uploadedFile"] = "aadhaar.pdf"
	doc["bankingDetails"] = []any{
		map[string]any{"accountNumber": "0011223344"},
	}

	status := CalculateCompletion(doc, domain.RoleServiceSeekerIndividual)
	assert.Equal(t, 100, status.OverallPercentage)
	assert.True(t, status.CanGetPermanentNumber)
	assert.Empty(t, status.MissingMandatoryFields)
}

func TestCalculateCompletion_Monotonicity(t *testing.T) {
	sparse := domain.Document{"name": "John Doe"}
	richer := seekerIndividualDoc()

	p1 := CalculateCompletion(sparse, domain.RoleServiceSeekerIndividual)
	p2 := CalculateCompletion(richer, domain.RoleServiceSeekerIndividual)
	assert.GreaterOrEqual(t, p2.OverallPercentage, p1.OverallPercentage)
}

func TestCalculateCompletion_Idempotent(t *testing.T) {
	doc := seekerIndividualDoc()
	first := CalculateCompletion(doc, domain.RoleServiceSeekerIndividual)
	second := CalculateCompletion(doc, domain.RoleServiceSeekerIndividual)
	assert.Equal(t, first, second)
}

func TestCalculateCompletion_UploadGatesPermanentNumber(t *testing.T) {
	doc := seekerIndividualDoc()

	// Identity Documents completes on type+number alone, but the missing
	// upload still blocks the permanent number.
	status := CalculateCompletion(doc, domain.RoleServiceSeekerIndividual)
	for _, s := range status.Sections {
		if s.Name == "Identity Documents*" {
			assert.True(t, s.IsCompleted)
		}
	}
	assert.False(t, status.CanGetPermanentNumber)

	doc["identityDocument"].(map[string]any)["uploadedFile"] = "aadhaar.pdf"
	status = CalculateCompletion(doc, domain.RoleServiceSeekerIndividual)
	assert.True(t, status.CanGetPermanentNumber)
}

func TestCalculateCompletion_OneMissingMandatoryFieldBlocksGate(t *testing.T) {
	doc := seekerIndividualDoc()
	doc["identityDocument"].(map[string]any)["uploadedFile"] = "aadhaar.pdf"
	delete(doc["address"].(map[string]any), "city")

	status := CalculateCompletion(doc, domain.RoleServiceSeekerIndividual)
	assert.False(t, status.CanGetPermanentNumber)
	assert.Contains(t, status.MissingMandatoryFields, "address.city")
}

func TestCalculateCompletion_OptionalTaxFieldsTrackedNotRequired(t *testing.T) {
	doc := domain.Document{
		"panNumber": "ABCDE1234F",
		"tanNumber": "MUMA12345B",
	}

	status := CalculateCompletion(doc, domain.RoleServiceSeekerIndividual)
	var tax Section
	for _, s := range status.Sections {
		if s.Name == "Tax Information" {
			tax = s
		}
	}
	assert.True(t, tax.IsCompleted)
	assert.Equal(t, []string{"panNumber"}, tax.RequiredFields)
	assert.Contains(t, tax.CompletedFields, "tanNumber")
	assert.NotContains(t, tax.CompletedFields, "gstNumber")
}

func TestCalculateCompletion_SeekerEntityExtraSections(t *testing.T) {
	doc := seekerIndividualDoc()
	doc["authorizedRepresentative"] = map[string]any{
		"name":  "Jane Roe",
		"email": "jane@example.com",
	}
	doc["resourceInfra"] = map[string]any{
		"numberOfProfessionalStaff": float64(4),
	}

	status := CalculateCompletion(doc, domain.RoleServiceSeekerEntity)
	assert.Len(t, status.Sections, 7)

	// 30+25+20+15 + 20+15 complete out of 135 total.
	assert.Equal(t, 93, status.OverallPercentage)
}

func TestCalculateCompletion_ProviderServicesOfferedAnyOf(t *testing.T) {
	doc := domain.Document{
		"servicesOffered": []any{
			map[string]any{"services": []any{"CIRP advisory"}},
		},
	}

	status := CalculateCompletion(doc, domain.RoleServiceProviderIndividual)
	for _, s := range status.Sections {
		if s.Name == "Services Offered*" {
			// Completes on a service entry even without a category.
			assert.True(t, s.IsCompleted)
		}
	}
}

func TestCalculateCompletion_TeamMemberWeights(t *testing.T) {
	doc := domain.Document{
		"name":          "Sam Lee",
		"email":         "sam@example.com",
		"contactNumber": "+911112223334",
		"identityDocument": map[string]any{
			"type":   "PAN_CARD",
			"number": "FGHIJ5678K",
		},
	}

	status := CalculateCompletion(doc, domain.RoleTeamMember)
	// 40+30 complete out of 105 total -> round(66.66) = 67.
	assert.Equal(t, 67, status.OverallPercentage)
	assert.False(t, status.CanGetPermanentNumber)
}

func TestCalculateCompletion_UnknownRole(t *testing.T) {
	status := CalculateCompletion(seekerIndividualDoc(), domain.UserRole("bogus"))
	assert.Equal(t, 0, status.OverallPercentage)
	assert.Empty(t, status.Sections)
}

func TestIsEligible_NonProviderAlwaysEligible(t *testing.T) {
	assert.True(t, IsEligibleForOpportunities(domain.Document{}, domain.RoleServiceSeekerIndividual))
	assert.True(t, IsEligibleForOpportunities(nil, domain.RoleServiceSeekerEntity))
}

func TestIsEligible_IndependentOfCompletion(t *testing.T) {
	// Near-complete provider profile without a verified membership.
	complete := domain.Document{
		"name":           "Asha Verma",
		"email":          "asha@example.com",
		"mobile":         "+919000000000",
		"qualifications": "CA, IP",
		"identityDocument": map[string]any{
			"type": "PAN_CARD", "number": "KLMNO1234P", "uploadedFile": "pan.pdf",
		},
		"membershipDetails": []any{
			map[string]any{"membershipNumber": "M12345", "bodyInstitute": "ICAI"},
		},
		"servicesOffered": []any{map[string]any{"category": "Resolution"}},
	}
	assert.False(t, IsEligibleForOpportunities(complete, domain.RoleServiceProviderIndividual))

	// Sparse profile with one verified membership entry.
	sparse := domain.Document{
		"membershipDetails": []any{
			map[string]any{
				"membershipNumber": "M12345",
				"verification":     map[string]any{"status": "VERIFIED"},
			},
		},
	}
	assert.True(t, IsEligibleForOpportunities(sparse, domain.RoleServiceProviderIndividual))
}

func TestIsEligible_RequiresNumberAndVerifiedStatus(t *testing.T) {
	noNumber := domain.Document{
		"membershipDetails": []any{
			map[string]any{
				"membershipNumber": "",
				"verification":     map[string]any{"status": "VERIFIED"},
			},
		},
	}
	assert.False(t, IsEligibleForOpportunities(noNumber, domain.RoleServiceProviderEntityAdmin))

	failed := domain.Document{
		"membershipDetails": []any{
			map[string]any{
				"membershipNumber": "M12345",
				"verification":     map[string]any{"status": "FAILED"},
			},
		},
	}
	assert.False(t, IsEligibleForOpportunities(failed, domain.RoleTeamMember))

	secondEntryVerified := domain.Document{
		"membershipDetails": []any{
			map[string]any{"membershipNumber": "M00001"},
			map[string]any{
				"membershipNumber": "M12345",
				"verification":     map[string]any{"status": "VERIFIED"},
			},
		},
	}
	assert.True(t, IsEligibleForOpportunities(secondEntryVerified, domain.RoleServiceProviderIndividual))
}

func TestGeneratePermanentNumber_PrefixAndShape(t *testing.T) {
	cases := map[domain.UserRole]string{
		domain.RoleServiceSeekerIndividual:    "SSI",
		domain.RoleServiceProviderEntityAdmin: "SPE",
		domain.UserRole("bogus"):              "UNK",
	}
	for role, prefix := range cases {
		n := GeneratePermanentNumber(role)
		assert.Len(t, n, len(prefix)+9)
		assert.Equal(t, prefix, n[:len(prefix)])
	}
}
