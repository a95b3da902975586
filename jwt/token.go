package jwt

import (
	"encoding/base64"
	"regexp"
	"time"
)

// segmentRE is the charset of a single encoded segment: unpadded
// base64url with no whitespace. The base64 decoder alone is lenient
// about line breaks, so the charset is checked explicitly.
var segmentRE = regexp.MustCompile(`^[A-Za-z0-9_-]*$`)

// Token is the result of parsing or constructing a JWT.
// Header and Claims are effectively immutable once the token is returned.
type Token struct {
	raw       string // original compact string, populated by Parse
	rawHeader string // first segment, verbatim
	rawClaims string // second segment, verbatim
	signature string // third segment, verbatim; empty for constructed tokens

	header *Header
	claims *Claims
}

// Header returns the decoded header parameters.
func (t *Token) Header() *Header {
	return t.header
}

// Claims returns the decoded claim set.
func (t *Token) Claims() *Claims {
	return t.claims
}

// Raw returns the original compact string the token was parsed from,
// or empty for a constructed token.
func (t *Token) Raw() string {
	return t.raw
}

// RawHeader returns the encoded header segment exactly as received.
func (t *Token) RawHeader() string {
	return t.rawHeader
}

// RawClaims returns the encoded payload segment exactly as received.
func (t *Token) RawClaims() string {
	return t.rawClaims
}

// Signature returns the encoded signature segment.
// It is opaque to the codec, a verifier decodes and checks it.
func (t *Token) Signature() string {
	return t.signature
}

// SigningAlgorithm returns the "alg" header parameter.
func (t *Token) SigningAlgorithm() string {
	return t.header.Algorithm()
}

// KeyID returns the "kid" header parameter.
func (t *Token) KeyID() string {
	return t.header.KeyID()
}

// Issuer returns the "iss" claim.
func (t *Token) Issuer() string {
	return t.claims.Issuer()
}

// Audience returns the first "aud" claim value.
func (t *Token) Audience() string {
	return t.claims.Audience()
}

// Subject returns the "sub" claim.
func (t *Token) Subject() string {
	return t.claims.Subject()
}

// ID returns the "jti" claim.
func (t *Token) ID() string {
	return t.claims.ID()
}

// Actor returns the "actort" claim.
func (t *Token) Actor() string {
	return t.claims.Actor()
}

// Expiration returns the "exp" claim, or nil.
func (t *Token) Expiration() *time.Time {
	return t.claims.Expiration()
}

// NotBefore returns the "nbf" claim, or nil.
func (t *Token) NotBefore() *time.Time {
	return t.claims.NotBefore()
}

// IssuedAt returns the "iat" claim, or nil.
func (t *Token) IssuedAt() *time.Time {
	return t.claims.IssuedAt()
}

// SigningString returns the "header.payload" two-part form, the input
// to a signature operation. For parsed tokens the original segments are
// reused so the result matches the received bytes. This form carries no
// signature, use CompactSerialization for the wire form.
func (t *Token) SigningString() (string, error) {
	if t.rawHeader != "" && t.rawClaims != "" {
		return t.rawHeader + "." + t.rawClaims, nil
	}

	return Encode(t.header, t.claims)
}

// Encode returns the "header.payload" two-part serialization of the
// given header and claim set.
func Encode(header *Header, claims *Claims) (string, error) {
	h, err := header.Encode()
	if err != nil {
		return "", err
	}
	c, err := claims.Encode()
	if err != nil {
		return "", err
	}
	return h + "." + c, nil
}

// CompactSerialization returns the three-part wire form. A token
// produced by Parse echoes the original string byte for byte. A
// constructed token has an empty signature segment until a signer
// provides one via WithSignature.
func (t *Token) CompactSerialization() (string, error) {
	if t.raw != "" {
		return t.raw, nil
	}

	sstr, err := t.SigningString()
	if err != nil {
		return "", err
	}
	return sstr + "." + t.signature, nil
}

// WithSignature sets the encoded signature segment produced by an
// external signer and returns the token. The signature is stored
// verbatim, never derived from the header or payload.
func (t *Token) WithSignature(signature string) *Token {
	t.signature = signature
	t.raw = ""
	return t
}

// DecodeSegment returns bytes of the JWT specific base64url encoding
// with padding stripped.
func DecodeSegment(seg string) ([]byte, error) {
	if !segmentRE.MatchString(seg) {
		return nil, formatErrorf("invalid character in segment: %q", seg)
	}
	b, err := base64.RawURLEncoding.DecodeString(seg)
	if err != nil {
		return nil, formatError(err, "unable to decode segment")
	}
	return b, nil
}

// EncodeSegment returns JWT specific base64url encoding with padding stripped.
func EncodeSegment(seg []byte) string {
	return base64.RawURLEncoding.EncodeToString(seg)
}
