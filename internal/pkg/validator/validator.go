package validator

import (
	"github.com/go-playground/validator/v10"
)

var validate = validator.New()

// Struct checks a tagged request struct and returns a field-to-tag map of
// the failures, or nil when everything passes. Services use it to guard
// inputs that reach them without passing through gin binding.
func Struct(v any) map[string]string {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}

	fields, ok := err.(validator.ValidationErrors)
	if !ok {
		return map[string]string{"_": err.Error()}
	}

	out := make(map[string]string, len(fields))
	for _, f := range fields {
		out[f.Field()] = f.Tag()
	}
	return out
}

// Var checks a single value against a tag expression. Profile documents
// are schemaless, so their field formats are checked one value at a time.
func Var(value any, tag string) error {
	return validate.Var(value, tag)
}
