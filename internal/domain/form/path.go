package form

import "strings"

// Lookup resolves a dotted field path ("vehicle.brand") against the JSON
// map shape of the values. Absent intermediate nodes resolve to
// (nil, false); the walker never panics.
func Lookup(m map[string]interface{}, path string) (interface{}, bool) {
	parts := strings.Split(path, ".")
	var cur interface{} = m
	for _, p := range parts {
		node, ok := cur.(map[string]interface{})
		if !ok {
			return nil, false
		}
		cur, ok = node[p]
		if !ok {
			return nil, false
		}
	}
	return cur, true
}

// Present reports whether the value at path counts as filled in.
// Numeric zero and boolean false are present; nil, absent nodes, and
// empty/blank strings are missing.
func Present(m map[string]interface{}, path string) bool {
	v, ok := Lookup(m, path)
	if !ok || v == nil {
		return false
	}
	if s, isStr := v.(string); isStr {
		return strings.TrimSpace(s) != ""
	}
	return true
}
