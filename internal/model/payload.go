package model

import (
	"bytes"
	"encoding/json"
)

// Payload holds an arbitrary JSON value returned by endpoints that have no
// fixed schema (health, email test, password reset acknowledgement).
type Payload json.RawMessage

// MarshalJSON returns the raw value, or null when empty.
func (p Payload) MarshalJSON() ([]byte, error) {
	if len(p) == 0 {
		return []byte("null"), nil
	}
	return p, nil
}

// UnmarshalJSON stores a copy of data.
func (p *Payload) UnmarshalJSON(data []byte) error {
	*p = append((*p)[:0], data...)
	return nil
}

// String returns the compact JSON serialization of the payload.
func (p Payload) String() string {
	if len(p) == 0 {
		return "null"
	}
	var buf bytes.Buffer
	if err := json.Compact(&buf, p); err != nil {
		return string(p)
	}
	return buf.String()
}

// Field returns the top-level member key when the payload is a JSON object.
func (p Payload) Field(key string) (any, bool) {
	var obj map[string]any
	if err := json.Unmarshal(p, &obj); err != nil {
		return nil, false
	}
	v, ok := obj[key]
	return v, ok
}
