package profile

import (
	"strconv"
	"strings"

	"resolvehub/internal/domain"
)

// splitPath normalizes mixed dot/bracket syntax into plain segments:
// "membershipDetails[0].membershipNumber" -> membershipDetails, 0,
// membershipNumber.
func splitPath(path string) []string {
	norm := strings.NewReplacer("[", ".", "]", "").Replace(path)
	raw := strings.Split(norm, ".")
	parts := raw[:0]
	for _, p := range raw {
		if p != "" {
			parts = append(parts, p)
		}
	}
	return parts
}

// normalizePath renders a path in canonical dot form.
func normalizePath(path string) string {
	return strings.Join(splitPath(path), ".")
}

// resolve walks the document along the path. The traversal is total: any
// missing key, nil node, out-of-range index or type mismatch yields
// ok=false instead of panicking.
func resolve(doc domain.Document, path string) (any, bool) {
	var cur any = map[string]any(doc)
	for _, part := range splitPath(path) {
		switch node := cur.(type) {
		case map[string]any:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			cur = v
		case domain.Document:
			v, ok := node[part]
			if !ok {
				return nil, false
			}
			cur = v
		case []any:
			idx, err := strconv.Atoi(part)
			if err != nil || idx < 0 || idx >= len(node) {
				return nil, false
			}
			cur = node[idx]
		default:
			return nil, false
		}
		if cur == nil {
			return nil, false
		}
	}
	return cur, true
}

// hasValue reports whether the path resolves to a defined, non-nil,
// non-empty-string value.
func hasValue(doc domain.Document, path string) bool {
	v, ok := resolve(doc, path)
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr && s == "" {
		return false
	}
	return true
}

// hasPositiveNumber reports whether the path resolves to a number > 0.
// JSON decoding yields float64; int variants are accepted for documents
// built in code.
func hasPositiveNumber(doc domain.Document, path string) bool {
	v, ok := resolve(doc, path)
	if !ok {
		return false
	}
	switch n := v.(type) {
	case float64:
		return n > 0
	case int:
		return n > 0
	case int64:
		return n > 0
	}
	return false
}

// isTruthy mirrors the loose truthiness the completion rules use for
// preference flags: true booleans, non-zero numbers and non-empty strings.
func isTruthy(doc domain.Document, path string) bool {
	v, ok := resolve(doc, path)
	if !ok || v == nil {
		return false
	}
	switch t := v.(type) {
	case bool:
		return t
	case float64:
		return t != 0
	case int:
		return t != 0
	case int64:
		return t != 0
	case string:
		return t != ""
	}
	return true
}
