package jwt

import (
	"encoding/json"

	"github.com/effective-security/x/values"
)

// Reserved header parameter names.
const (
	HeaderAlgorithm      = "alg"
	HeaderType           = "typ"
	HeaderKeyID          = "kid"
	HeaderCertThumbprint = "x5t"
)

// Accepted values of the "typ" header parameter, compared ordinally.
const (
	TypeJWT    = "JWT"
	TypeJWTAlt = "http://openid.net/specs/jwt/1.0"
)

// AlgorithmNone is the "alg" value of an unsigned header.
const AlgorithmNone = "none"

// Header is an ordered set of JOSE header parameters. Parameter order
// is preserved through decode and encode so that a re-serialized
// header stays comparable to its source.
type Header struct {
	names  []string
	values map[string]any
}

// NewHeader returns a Header populated from the signing descriptor.
// A nil descriptor produces the unsigned header.
func NewHeader(desc *SigningDescriptor) *Header {
	h := &Header{
		values: map[string]any{},
	}
	if desc == nil {
		h.Set(HeaderAlgorithm, AlgorithmNone)
		h.Set(HeaderType, TypeJWT)
		return h
	}

	h.Set(HeaderAlgorithm, desc.Algorithm)
	h.Set(HeaderType, TypeJWT)
	if desc.KeyID != "" {
		h.Set(HeaderKeyID, desc.KeyID)
	}
	if desc.CertThumbprint != "" {
		h.Set(HeaderCertThumbprint, desc.CertThumbprint)
	}
	return h
}

// DecodeHeader parses the first compact-serialization segment.
func DecodeHeader(segment string) (*Header, error) {
	raw, err := DecodeSegment(segment)
	if err != nil {
		return nil, err
	}

	h := &Header{
		values: map[string]any{},
	}
	if err := h.UnmarshalJSON(raw); err != nil {
		return nil, formatError(err, "unable to parse header")
	}
	return h, nil
}

// Set adds or replaces a parameter. The insertion position of the
// first occurrence is kept.
func (h *Header) Set(name string, value any) {
	if _, ok := h.values[name]; !ok {
		h.names = append(h.names, name)
	}
	h.values[name] = value
}

// Get returns the parameter value, or nil when absent.
func (h *Header) Get(name string) any {
	return h.values[name]
}

// Has returns true when the parameter is present.
func (h *Header) Has(name string) bool {
	_, ok := h.values[name]
	return ok
}

// Names returns parameter names in declaration order.
func (h *Header) Names() []string {
	return h.names
}

// Len returns the number of parameters.
func (h *Header) Len() int {
	return len(h.names)
}

// String will return the named parameter as a string,
// coercing other scalar types.
func (h *Header) String(name string) string {
	v := h.values[name]
	if v == nil {
		return ""
	}
	switch tv := v.(type) {
	case string:
		return tv
	case json.Number:
		return tv.String()
	default:
		return values.String(v)
	}
}

// Algorithm returns the "alg" parameter.
func (h *Header) Algorithm() string {
	return h.String(HeaderAlgorithm)
}

// Type returns the "typ" parameter.
func (h *Header) Type() string {
	return h.String(HeaderType)
}

// KeyID returns the "kid" parameter.
func (h *Header) KeyID() string {
	return h.String(HeaderKeyID)
}

// CertThumbprint returns the "x5t" parameter.
func (h *Header) CertThumbprint() string {
	return h.String(HeaderCertThumbprint)
}

// ValidateType returns an error unless the "typ" parameter, when
// present, equals one of the accepted literals. The comparison is
// ordinal and case-sensitive.
func (h *Header) ValidateType() error {
	if !h.Has(HeaderType) {
		return nil
	}
	typ := h.String(HeaderType)
	if typ != TypeJWT && typ != TypeJWTAlt {
		return formatErrorf("unsupported token type: %q, expected %q or %q", typ, TypeJWT, TypeJWTAlt)
	}
	return nil
}

// MarshalJSON serializes parameters in declaration order.
func (h *Header) MarshalJSON() ([]byte, error) {
	return encodeObject(h.names, func(name string) any {
		return h.values[name]
	})
}

// UnmarshalJSON parses a JSON object preserving member order.
func (h *Header) UnmarshalJSON(data []byte) error {
	h.names = nil
	h.values = map[string]any{}
	return decodeObject(data, func(name string, value any) error {
		h.Set(name, value)
		return nil
	})
}

// Encode returns the base64url encoded JSON form.
func (h *Header) Encode() (string, error) {
	raw, err := h.MarshalJSON()
	if err != nil {
		return "", err
	}
	return EncodeSegment(raw), nil
}
