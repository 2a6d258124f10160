// Package jpick projects lists of JSON objects down to a caller-specified
// subset of keys. Objects are modeled as ordered key-value documents so that
// field order, and duplicate keys should they occur, survive the round trip
// from input to output.
package jpick

import "strings"

// D represents a document, defined as an ordered collection of key-value
// pairs. Each entry in the document is represented by an E.
type D []E

// A represents an array, defined as a slice of values of any type.
type A []any

// E represents a single entry in a document. It consists of a string key and
// an associated value of any type.
type E struct {
	Key   string
	Value any
}

// Value returns the value of the first entry with the given key. The second
// return reports whether the key was present at all.
func (d D) Value(key string) (any, bool) {
	for _, e := range d {
		if e.Key == key {
			return e.Value, true
		}
	}
	return nil, false
}

// Has reports whether the document contains at least one entry with the
// given key.
func (d D) Has(key string) bool {
	_, ok := d.Value(key)
	return ok
}

// KeySpec is the ordered list of keys to retain when projecting documents.
// Duplicates are allowed and kept in the order given.
type KeySpec []string

// ParseKeySpec splits a comma-separated key list into a KeySpec. Each token
// is trimmed of surrounding whitespace; empty tokens are dropped. Duplicate
// keys are not collapsed.
func ParseKeySpec(raw string) KeySpec {
	var keys KeySpec
	for _, tok := range strings.Split(raw, ",") {
		if tok = strings.TrimSpace(tok); tok != "" {
			keys = append(keys, tok)
		}
	}
	return keys
}
