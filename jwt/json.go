package jwt

import (
	"bytes"
	"encoding/json"

	"github.com/cockroachdb/errors"
)

// decodeObject parses data as a JSON object and emits each member in
// declaration order. encoding/json maps lose member order, so the
// object is walked token by token. Numbers are kept as json.Number.
func decodeObject(data []byte, emit func(name string, value any) error) error {
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.UseNumber()

	tok, err := dec.Token()
	if err != nil {
		return errors.WithStack(err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return errors.Newf("expected JSON object, got %v", tok)
	}

	for dec.More() {
		tok, err = dec.Token()
		if err != nil {
			return errors.WithStack(err)
		}
		name, ok := tok.(string)
		if !ok {
			return errors.Newf("expected member name, got %v", tok)
		}

		var raw json.RawMessage
		if err = dec.Decode(&raw); err != nil {
			return errors.WithStack(err)
		}
		val, err := decodeValue(raw)
		if err != nil {
			return err
		}
		if err = emit(name, val); err != nil {
			return err
		}
	}

	// consume the closing brace and require EOF after it
	if _, err = dec.Token(); err != nil {
		return errors.WithStack(err)
	}
	if dec.More() {
		return errors.New("unexpected data after JSON object")
	}
	return nil
}

func decodeValue(raw json.RawMessage) (any, error) {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.UseNumber()

	var val any
	if err := dec.Decode(&val); err != nil {
		return nil, errors.WithStack(err)
	}
	return val, nil
}

// encodeObject serializes names in order, resolving each value through
// the provided lookup.
func encodeObject(names []string, value func(name string) any) ([]byte, error) {
	var buf bytes.Buffer
	buf.WriteByte('{')
	for i, name := range names {
		if i > 0 {
			buf.WriteByte(',')
		}
		k, err := json.Marshal(name)
		if err != nil {
			return nil, errors.WithStack(err)
		}
		buf.Write(k)
		buf.WriteByte(':')
		v, err := json.Marshal(value(name))
		if err != nil {
			return nil, errors.WithStack(err)
		}
		buf.Write(v)
	}
	buf.WriteByte('}')
	return buf.Bytes(), nil
}
