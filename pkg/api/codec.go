// Package api defines the request and response messages of the consorcio
// Connect services and the JSON codec they are exchanged with.
package api

import (
	"encoding/json"
	"fmt"
)

// CodecName is the Connect codec name; it selects application/json bodies.
const CodecName = "json"

// Codec marshals messages as plain JSON. Messages are ordinary Go structs,
// so Connect's protobuf-based JSON codec is replaced by this one.
type Codec struct{}

func (Codec) Name() string { return CodecName }

func (Codec) Marshal(msg any) ([]byte, error) {
	data, err := json.Marshal(msg)
	if err != nil {
		return nil, fmt.Errorf("marshal %T: %w", msg, err)
	}
	return data, nil
}

func (Codec) Unmarshal(data []byte, msg any) error {
	// Connect sends an empty body for messages without fields.
	if len(data) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, msg); err != nil {
		return fmt.Errorf("unmarshal %T: %w", msg, err)
	}
	return nil
}
