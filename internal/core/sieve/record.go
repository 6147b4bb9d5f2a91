package sieve

import (
	"strings"

	json "github.com/goccy/go-json"
)

// Record is one decoded archive line: an untyped key-value view over a
// heterogeneous JSON object. Any key may be absent or null
type Record map[string]any

// DecodeLine parses a single archive line; ok is false for anything that
// is not a JSON object
func DecodeLine(line string) (Record, bool) {
	var rec Record
	if err := json.Unmarshal([]byte(line), &rec); err != nil {
		return nil, false
	}
	if rec == nil {
		return nil, false
	}
	return rec, true
}

// Str returns the string value of key, or "" when absent or non-string
func (r Record) Str(key string) string {
	if v, ok := r[key]; ok {
		if s, ok := v.(string); ok {
			return s
		}
	}
	return ""
}

// FoldedStr returns Str lower-cased for case-insensitive matching
func (r Record) FoldedStr(key string) string {
	return strings.ToLower(r.Str(key))
}

// Present reports whether key exists with a non-null value
func (r Record) Present(key string) bool {
	v, ok := r[key]
	return ok && v != nil
}

// IsTrue reports whether key holds boolean true
func (r Record) IsTrue(key string) bool {
	v, ok := r[key]
	if !ok {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

// NumEquals reports whether key holds a number equal to n
func (r Record) NumEquals(key string, n float64) bool {
	v, ok := r[key]
	if !ok {
		return false
	}
	f, ok := v.(float64)
	return ok && f == n
}

// AnyPresent reports whether any of keys exists with a non-null value
func (r Record) AnyPresent(keys ...string) bool {
	for _, k := range keys {
		if r.Present(k) {
			return true
		}
	}
	return false
}
