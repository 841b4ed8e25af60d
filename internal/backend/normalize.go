package backend

import (
	"encoding/json"

	"github.com/pkg/errors"
)

// payload is the canonical form of an API response body. The API is served
// in two variants: one wraps everything in {success, message, data: {...}},
// the other returns the payload fields at the top level. decodePayload folds
// both into this one shape so nothing past this point needs to care.
type payload struct {
	success *bool
	message string
	fields  map[string]json.RawMessage
}

// decodePayload parses a response body into the canonical payload form.
// Bodies that are not JSON objects fail with ErrUnrecognizedResponseShape.
func decodePayload(body []byte) (*payload, error) {
	var top map[string]json.RawMessage

	if err := json.Unmarshal(body, &top); err != nil {
		return nil, errors.Wrap(ErrUnrecognizedResponseShape, err.Error())
	}

	p := &payload{fields: top}

	if raw, ok := top["success"]; ok {
		var success bool
		if err := json.Unmarshal(raw, &success); err != nil {
			return nil, errors.Wrap(ErrUnrecognizedResponseShape, "success flag is not a boolean")
		}

		p.success = &success
	}

	if raw, ok := top["message"]; ok {
		// a non-string message is tolerated, the field is informational
		_ = json.Unmarshal(raw, &p.message)
	}

	if raw, ok := top["data"]; ok && string(raw) != "null" {
		var inner map[string]json.RawMessage
		if err := json.Unmarshal(raw, &inner); err != nil {
			return nil, errors.Wrap(ErrUnrecognizedResponseShape, "data is not an object")
		}

		p.fields = inner
	}

	return p, nil
}

// ok reports whether the envelope carries an explicit failure. An absent
// success flag counts as success; the HTTP status already decided that.
func (p *payload) ok() bool {
	return p.success == nil || *p.success
}

// field decodes a named payload field into dst. A missing or malformed
// field is a shape error, never a silent zero value.
func (p *payload) field(name string, dst any) error {
	raw, found := p.fields[name]
	if !found {
		return errors.Wrapf(ErrUnrecognizedResponseShape, "missing field %q", name)
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return errors.Wrapf(ErrUnrecognizedResponseShape, "field %q: %s", name, err.Error())
	}

	return nil
}

// optionalField decodes a named payload field into dst when present.
// Returns whether the field was found; a present but malformed field is
// still a shape error.
func (p *payload) optionalField(name string, dst any) (bool, error) {
	raw, found := p.fields[name]
	if !found || string(raw) == "null" {
		return false, nil
	}

	if err := json.Unmarshal(raw, dst); err != nil {
		return false, errors.Wrapf(ErrUnrecognizedResponseShape, "field %q: %s", name, err.Error())
	}

	return true, nil
}
