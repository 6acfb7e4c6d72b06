package main

// this file defines the data structures received over the wire

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
)

var (
	errMissingField   = errors.New("missing field")
	errDuplicateField = errors.New("duplicate field")
)

// IncomingRecord is one playlist update sent by a client.
type IncomingRecord struct {
	CurrentTime      string `json:"current_time"`
	PlaylistContents string `json:"playlist_contents"`
}

// UnmarshalJSON accepts the canonical snake_case names as well as their
// camelCase aliases. A field given more than once, under either spelling,
// is rejected.
func (r *IncomingRecord) UnmarshalJSON(b []byte) error {
	fields, err := objectFields(b)
	if err != nil {
		return err
	}

	var rec IncomingRecord
	if err := stringField(fields, &rec.CurrentTime, "current_time", "currentTime"); err != nil {
		return err
	}
	if err := stringField(fields, &rec.PlaylistContents, "playlist_contents", "playlistContents"); err != nil {
		return err
	}
	*r = rec
	return nil
}

// objectFields walks the top-level object and keeps every value of every
// key, so repeated keys stay visible.
func objectFields(b []byte) (map[string][]json.RawMessage, error) {
	dec := json.NewDecoder(bytes.NewReader(b))
	tok, err := dec.Token()
	if err != nil {
		return nil, err
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, fmt.Errorf("expected a JSON object, got %v", tok)
	}

	fields := make(map[string][]json.RawMessage)
	for dec.More() {
		tok, err := dec.Token()
		if err != nil {
			return nil, err
		}
		key, ok := tok.(string)
		if !ok {
			return nil, fmt.Errorf("unexpected object key %v", tok)
		}
		var raw json.RawMessage
		if err := dec.Decode(&raw); err != nil {
			return nil, fmt.Errorf("field %q: %w", key, err)
		}
		fields[key] = append(fields[key], raw)
	}
	return fields, nil
}

func stringField(fields map[string][]json.RawMessage, dst *string, names ...string) error {
	var (
		found bool
		value json.RawMessage
		from  string
	)
	for _, name := range names {
		for _, raw := range fields[name] {
			if found {
				return fmt.Errorf("%w %q", errDuplicateField, names[0])
			}
			found, value, from = true, raw, name
		}
	}
	if !found {
		return fmt.Errorf("%w %q", errMissingField, names[0])
	}

	if bytes.Equal(bytes.TrimSpace(value), []byte("null")) {
		return fmt.Errorf("field %q: expected a string, got null", from)
	}
	if err := json.Unmarshal(value, dst); err != nil {
		return fmt.Errorf("field %q: %w", from, err)
	}
	return nil
}

// DecodeRecord parses one frame payload.
func DecodeRecord(payload []byte) (IncomingRecord, error) {
	var rec IncomingRecord
	err := json.Unmarshal(payload, &rec)
	return rec, err
}
