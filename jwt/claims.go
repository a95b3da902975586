package jwt

import (
	"encoding/json"
	"strconv"
	"time"

	"github.com/effective-security/x/values"
)

// Reserved claim names.
const (
	ClaimIssuer     = "iss"
	ClaimAudience   = "aud"
	ClaimSubject    = "sub"
	ClaimExpiration = "exp"
	ClaimNotBefore  = "nbf"
	ClaimIssuedAt   = "iat"
	ClaimID         = "jti"
	ClaimActor      = "actort"
)

// Value is a claim value: a single scalar, or an ordered list when the
// same claim name was contributed more than once.
type Value struct {
	scalar any
	list   []any
	multi  bool
}

// IsList returns true when the value was promoted to a list.
func (v *Value) IsList() bool {
	return v.multi
}

// Interface returns the scalar, or []any for a promoted value.
func (v *Value) Interface() any {
	if v.multi {
		return v.list
	}
	return v.scalar
}

// List returns all values in insertion order.
func (v *Value) List() []any {
	if v.multi {
		return v.list
	}
	return []any{v.scalar}
}

func (v *Value) append(val any) {
	if !v.multi {
		// promote in place: existing value first
		v.list = []any{v.scalar, val}
		v.scalar = nil
		v.multi = true
		return
	}
	v.list = append(v.list, val)
}

// Claims is an ordered set of payload claims. Claim order and the
// scalar vs list shape of every value survive a decode/encode round
// trip.
type Claims struct {
	names  []string
	values map[string]*Value
}

// NewClaims returns an empty claim set.
func NewClaims() *Claims {
	return &Claims{
		values: map[string]*Value{},
	}
}

// DecodeClaims parses the second compact-serialization segment.
func DecodeClaims(segment string) (*Claims, error) {
	raw, err := DecodeSegment(segment)
	if err != nil {
		return nil, err
	}

	c := NewClaims()
	if err := c.UnmarshalJSON(raw); err != nil {
		return nil, formatError(err, "unable to parse payload")
	}
	return c, nil
}

// Add merges a claim value under name: an unseen name stores a scalar,
// a second occurrence promotes the claim to a two-element list keeping
// the existing value first, further occurrences append.
func (c *Claims) Add(name string, value any) {
	if v, ok := c.values[name]; ok {
		v.append(value)
		return
	}
	c.names = append(c.names, name)
	c.values[name] = &Value{scalar: value}
}

// AddEntries merges every entry of the claims source in order.
func (c *Claims) AddEntries(src ClaimsSource) {
	if src == nil {
		return
	}
	for _, e := range src.ClaimEntries() {
		c.Add(e.Name, e.Value)
	}
}

// merge stores a decoded JSON member. Arrays keep their list shape so
// that re-encoding reproduces the original document, duplicate member
// names follow the Add promotion rule.
func (c *Claims) merge(name string, value any) {
	if list, ok := value.([]any); ok {
		if v, seen := c.values[name]; seen {
			for _, el := range list {
				v.append(el)
			}
			return
		}
		c.names = append(c.names, name)
		c.values[name] = &Value{list: list, multi: true}
		return
	}
	c.Add(name, value)
}

// Get returns the claim value as stored: a scalar, or []any for a
// promoted claim. Nil when absent.
func (c *Claims) Get(name string) any {
	if v, ok := c.values[name]; ok {
		return v.Interface()
	}
	return nil
}

// Value returns the tagged claim value, or nil when absent.
func (c *Claims) Value(name string) *Value {
	return c.values[name]
}

// Has returns true when the claim is present.
func (c *Claims) Has(name string) bool {
	_, ok := c.values[name]
	return ok
}

// Names returns claim names in declaration order.
func (c *Claims) Names() []string {
	return c.names
}

// Len returns the number of claims.
func (c *Claims) Len() int {
	return len(c.names)
}

// String will return the named claim as a string,
// if the underlying type is not a string,
// it will try and co-oerce it to a string.
func (c *Claims) String(name string) string {
	v, ok := c.values[name]
	if !ok {
		return ""
	}
	val := v.Interface()
	if v.multi {
		if len(v.list) == 0 {
			return ""
		}
		val = v.list[0]
	}
	switch tv := val.(type) {
	case nil:
		return ""
	case string:
		return tv
	case json.Number:
		return tv.String()
	default:
		return values.String(val)
	}
}

// Strings returns all values of the named claim coerced to strings.
func (c *Claims) Strings(name string) []string {
	v, ok := c.values[name]
	if !ok {
		return nil
	}
	var res []string
	for _, el := range v.List() {
		switch tv := el.(type) {
		case string:
			res = append(res, tv)
		case json.Number:
			res = append(res, tv.String())
		default:
			res = append(res, values.String(el))
		}
	}
	return res
}

// Time will return the named claim as Time, interpreting the value as
// non-negative seconds since the Unix epoch. Missing or unconvertible
// claims return nil, never an error, so that one malformed optional
// claim does not abort inspection of the token.
func (c *Claims) Time(name string) *time.Time {
	v, ok := c.values[name]
	if !ok || v.multi {
		return nil
	}

	var unix int64
	switch tv := v.scalar.(type) {
	case json.Number:
		i, err := tv.Int64()
		if err != nil {
			return nil
		}
		unix = i
	case int64:
		unix = tv
	case int:
		unix = int64(tv)
	case float64:
		unix = int64(tv)
	case string:
		i, err := strconv.ParseInt(tv, 10, 64)
		if err != nil {
			return nil
		}
		unix = i
	default:
		return nil
	}
	if unix < 0 {
		return nil
	}
	t := time.Unix(unix, 0).UTC()
	return &t
}

// Issuer returns the "iss" claim.
func (c *Claims) Issuer() string {
	return c.String(ClaimIssuer)
}

// Audience returns the first "aud" claim value.
func (c *Claims) Audience() string {
	return c.String(ClaimAudience)
}

// Audiences returns all "aud" claim values.
func (c *Claims) Audiences() []string {
	return c.Strings(ClaimAudience)
}

// Subject returns the "sub" claim.
func (c *Claims) Subject() string {
	return c.String(ClaimSubject)
}

// ID returns the "jti" claim.
func (c *Claims) ID() string {
	return c.String(ClaimID)
}

// Actor returns the "actort" claim.
func (c *Claims) Actor() string {
	return c.String(ClaimActor)
}

// Expiration returns the "exp" claim, or nil.
func (c *Claims) Expiration() *time.Time {
	return c.Time(ClaimExpiration)
}

// NotBefore returns the "nbf" claim, or nil.
func (c *Claims) NotBefore() *time.Time {
	return c.Time(ClaimNotBefore)
}

// IssuedAt returns the "iat" claim, or nil.
func (c *Claims) IssuedAt() *time.Time {
	return c.Time(ClaimIssuedAt)
}

// MarshalJSON serializes claims in declaration order. A promoted claim
// serializes as an array in insertion order, a scalar as a scalar.
func (c *Claims) MarshalJSON() ([]byte, error) {
	return encodeObject(c.names, func(name string) any {
		return c.values[name].Interface()
	})
}

// UnmarshalJSON parses a JSON object preserving member order.
func (c *Claims) UnmarshalJSON(data []byte) error {
	c.names = nil
	c.values = map[string]*Value{}
	return decodeObject(data, func(name string, value any) error {
		c.merge(name, value)
		return nil
	})
}

// Marshal returns JSON encoded string
func (c *Claims) Marshal() string {
	raw, _ := c.MarshalJSON()
	return string(raw)
}

// Encode returns the base64url encoded JSON form.
func (c *Claims) Encode() (string, error) {
	raw, err := c.MarshalJSON()
	if err != nil {
		return "", err
	}
	return EncodeSegment(raw), nil
}
