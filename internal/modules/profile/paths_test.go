package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resolvehub/internal/domain"
)

func TestResolve_NestedAndBracketSyntax(t *testing.T) {
	doc := domain.Document{
		"address": map[string]any{
			"street": "123 Main St",
			"city":   "Mumbai",
		},
		"membershipDetails": []any{
			map[string]any{"membershipNumber": "M12345"},
		},
	}

	v, ok := resolve(doc, "address.street")
	assert.True(t, ok)
	assert.Equal(t, "123 Main St", v)

	v, ok = resolve(doc, "membershipDetails[0].membershipNumber")
	assert.True(t, ok)
	assert.Equal(t, "M12345", v)

	v, ok = resolve(doc, "membershipDetails.0.membershipNumber")
	assert.True(t, ok)
	assert.Equal(t, "M12345", v)
}

func TestResolve_MissingIntermediateObject(t *testing.T) {
	doc := domain.Document{"name": "John"}

	_, ok := resolve(doc, "address.street")
	assert.False(t, ok)

	_, ok = resolve(doc, "address.street.deeper.path")
	assert.False(t, ok)
}

func TestResolve_EmptyArrayAndOutOfRange(t *testing.T) {
	doc := domain.Document{
		"membershipDetails": []any{},
		"bankingDetails": []any{
			map[string]any{"accountNumber": "0011223344"},
		},
	}

	_, ok := resolve(doc, "membershipDetails[0].membershipNumber")
	assert.False(t, ok)

	_, ok = resolve(doc, "bankingDetails[5].accountNumber")
	assert.False(t, ok)

	_, ok = resolve(doc, "bankingDetails[-1].accountNumber")
	assert.False(t, ok)
}

func TestResolve_TraversingThroughScalar(t *testing.T) {
	doc := domain.Document{"name": "John"}

	_, ok := resolve(doc, "name.first")
	assert.False(t, ok)
}

func TestHasValue_EmptyStringAndNil(t *testing.T) {
	doc := domain.Document{
		"name":      "",
		"panNumber": nil,
		"email":     "john@example.com",
	}

	assert.False(t, hasValue(doc, "name"))
	assert.False(t, hasValue(doc, "panNumber"))
	assert.False(t, hasValue(doc, "missing"))
	assert.True(t, hasValue(doc, "email"))
}

func TestNormalizePath(t *testing.T) {
	assert.Equal(t, "membershipDetails.0.membershipNumber",
		normalizePath("membershipDetails[0].membershipNumber"))
	assert.Equal(t, "address.street", normalizePath("address.street"))
}

func TestHasPositiveNumber(t *testing.T) {
	doc := domain.Document{
		"resourceInfra": map[string]any{
			"numberOfProfessionalStaff": float64(3),
			"numberOfOtherStaff":        float64(0),
		},
	}

	assert.True(t, hasPositiveNumber(doc, "resourceInfra.numberOfProfessionalStaff"))
	assert.False(t, hasPositiveNumber(doc, "resourceInfra.numberOfOtherStaff"))
	assert.False(t, hasPositiveNumber(doc, "resourceInfra.missing"))
}

func TestIsTruthy(t *testing.T) {
	doc := domain.Document{
		"openToRemoteWork": true,
		"declined":         false,
		"flagString":       "yes",
	}

	assert.True(t, isTruthy(doc, "openToRemoteWork"))
	assert.False(t, isTruthy(doc, "declined"))
	assert.True(t, isTruthy(doc, "flagString"))
	assert.False(t, isTruthy(doc, "missing"))
}
