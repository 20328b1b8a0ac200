package profile

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"resolvehub/internal/domain"
)

func TestFormatWarnings_FlagsMalformedValues(t *testing.T) {
	doc := domain.Document{
		"email":     "not-an-email",
		"panNumber": "short",
		"address": map[string]any{
			"pinCode": "40000A",
		},
	}

	warnings := FormatWarnings(doc)

	assert.Contains(t, warnings, "email")
	assert.Contains(t, warnings, "panNumber")
	assert.Contains(t, warnings, "address.pinCode")
}

func TestFormatWarnings_MissingFieldsAreNotWarnings(t *testing.T) {
	assert.Nil(t, FormatWarnings(domain.Document{}))
	assert.Nil(t, FormatWarnings(domain.Document{"name": "John Doe"}))
}

func TestFormatWarnings_WellFormedValuesPass(t *testing.T) {
	doc := domain.Document{
		"email":     "ip@example.com",
		"panNumber": "ABCDE1234F",
		"address": map[string]any{
			"pinCode": "400001",
		},
		"taxDetails": map[string]any{
			"gstNumber": "22AAAAA0000A1Z5",
		},
	}

	assert.Nil(t, FormatWarnings(doc))
}
