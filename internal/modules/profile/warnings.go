package profile

import (
	"resolvehub/internal/domain"
	"resolvehub/internal/pkg/validator"
)

// formatRules maps well-known document paths to format constraints.
// Completion scoring only cares about presence; these rules flag values
// that are present but malformed so the client can surface a warning.
// A missing path is never a warning.
var formatRules = map[string]string{
	"email":                 "email",
	"contactNumber":         "e164",
	"mobile":                "e164",
	"address.pinCode":       "numeric,len=6",
	"panNumber":             "alphanum,len=10",
	"entityDetails.cin":     "alphanum,len=21",
	"taxDetails.gstNumber":  "alphanum,len=15",
	"taxDetails.tanNumber":  "alphanum,len=10",
	"bankingDetails.0.ifsc": "alphanum,len=11",
}

// FormatWarnings returns a path-to-tag map of present-but-malformed
// document values. An empty document yields no warnings.
func FormatWarnings(doc domain.Document) map[string]string {
	var warnings map[string]string
	for path, tag := range formatRules {
		v, ok := resolve(doc, path)
		if !ok {
			continue
		}
		s, isStr := v.(string)
		if !isStr || s == "" {
			continue
		}
		if err := validator.Var(s, tag); err != nil {
			if warnings == nil {
				warnings = make(map[string]string)
			}
			warnings[path] = tag
		}
	}
	return warnings
}
