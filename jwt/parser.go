package jwt

import (
	"regexp"
	"strings"
	"time"

	"github.com/effective-security/xjwt/metricskey"
	"github.com/effective-security/xlog"
)

var logger = xlog.NewPackageLogger("github.com/effective-security/xjwt", "jwt")

// compactRE is the compact-serialization grammar: three dot separated
// base64url segments with no padding and no whitespace. The signature
// segment may be empty, an unsigned or not-yet-signed token ends with
// a trailing dot.
var compactRE = regexp.MustCompile(`^[A-Za-z0-9_-]+\.[A-Za-z0-9_-]+\.[A-Za-z0-9_-]*$`)

// TokenParser decodes compact-serialized tokens. The zero value is
// ready to use and safe for concurrent use.
type TokenParser struct {
	// SkipTypeValidation disables the header "typ" check.
	SkipTypeValidation bool
}

// Parse decodes the compact serialization into a Token. The signature
// segment is retained verbatim for an external verifier, no
// cryptography is performed. On failure no token is returned.
func (p *TokenParser) Parse(compact string) (*Token, error) {
	defer metricskey.PerfTokenOperation.MeasureSince(time.Now(), "parse")

	if compact == "" {
		return nil, argErrorf("token is empty")
	}
	if strings.TrimSpace(compact) == "" {
		return nil, argErrorf("token is blank")
	}
	if !compactRE.MatchString(compact) {
		return nil, formatErrorf("token is not in compact serialization form: %q", compact)
	}

	parts := strings.Split(compact, ".")
	if len(parts) != 3 {
		return nil, formatErrorf("token must have 3 segments, got %d: %q", len(parts), compact)
	}

	header, err := DecodeHeader(parts[0])
	if err != nil {
		return nil, formatError(err, "unable to decode header segment %q of token %q", parts[0], compact)
	}
	if !p.SkipTypeValidation {
		if err := header.ValidateType(); err != nil {
			return nil, err
		}
	}

	claims, err := DecodeClaims(parts[1])
	if err != nil {
		return nil, formatError(err, "unable to decode payload segment %q of token %q", parts[1], compact)
	}

	logger.KV(xlog.TRACE,
		"alg", header.Algorithm(),
		"claims", claims.Len(),
	)

	return &Token{
		raw:       compact,
		rawHeader: parts[0],
		rawClaims: parts[1],
		signature: parts[2],
		header:    header,
		claims:    claims,
	}, nil
}

// Parse decodes the compact serialization with a default parser.
func Parse(compact string) (*Token, error) {
	p := new(TokenParser)
	return p.Parse(compact)
}

// CreateInfo is the input of CreateToken. All fields are optional.
type CreateInfo struct {
	// Issuer populates the "iss" claim.
	Issuer string
	// Audience populates the "aud" claim.
	Audience string
	// Claims are merged in order after the issuer and audience.
	Claims ClaimsSource
	// Validity populates the "nbf" and "exp" claims.
	Validity *ValidityWindow
	// Signing populates the header parameters. Nil produces an
	// unsigned header.
	Signing *SigningDescriptor
}

// CreateToken constructs a token for a future signature. The signature
// segment stays empty until an external signer fills it in via
// WithSignature. This path never touches the compact-string parser.
func CreateToken(info CreateInfo) *Token {
	defer metricskey.PerfTokenOperation.MeasureSince(time.Now(), "create")

	claims := NewClaims()
	if info.Issuer != "" {
		claims.Add(ClaimIssuer, info.Issuer)
	}
	if info.Audience != "" {
		claims.Add(ClaimAudience, info.Audience)
	}
	claims.AddEntries(info.Claims)
	if info.Validity != nil {
		if info.Validity.NotBefore != nil {
			claims.Add(ClaimNotBefore, info.Validity.NotBefore.Unix())
		}
		if info.Validity.Expires != nil {
			claims.Add(ClaimExpiration, info.Validity.Expires.Unix())
		}
	}

	return &Token{
		header: NewHeader(info.Signing),
		claims: claims,
	}
}
