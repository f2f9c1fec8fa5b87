// Package jsonutil wraps github.com/go-json-experiment/json behind the
// familiar encoding/json surface. Seed lists, wordlists and run reports
// all pass through here.
package jsonutil

import (
	"io"

	"github.com/go-json-experiment/json"
	"github.com/go-json-experiment/json/jsontext"
)

// Unmarshal parses JSON-encoded data into v.
func Unmarshal(data []byte, v any) error {
	return json.Unmarshal(data, v)
}

// Marshal returns the JSON encoding of v.
func Marshal(v any) ([]byte, error) {
	return json.Marshal(v)
}

// MarshalIndent returns the JSON encoding of v indented with indent.
func MarshalIndent(v any, indent string) ([]byte, error) {
	return json.Marshal(v, jsontext.WithIndent(indent))
}

// MarshalWrite streams the JSON encoding of v to w.
func MarshalWrite(w io.Writer, v any) error {
	return json.MarshalWrite(w, v)
}

// Valid reports whether data is valid JSON.
func Valid(data []byte) bool {
	return jsontext.Value(data).IsValid()
}
