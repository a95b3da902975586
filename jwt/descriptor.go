package jwt

import (
	"time"

	"github.com/effective-security/x/values"
)

// ClaimEntry is a single claim contributed by a claims source.
// The codec stores Name and Value; ValueType and the issuer pair are
// metadata carried for the caller's validation pipeline.
type ClaimEntry struct {
	Name           string
	Value          any
	ValueType      string
	Issuer         string
	OriginalIssuer string
}

// Origin returns the original issuer, defaulting to the issuer when
// the original was not provided.
func (e ClaimEntry) Origin() string {
	return values.StringsCoalesce(e.OriginalIssuer, e.Issuer)
}

// ClaimsSource provides an ordered sequence of claim entries.
type ClaimsSource interface {
	ClaimEntries() []ClaimEntry
}

// ClaimList is a ClaimsSource over a slice.
type ClaimList []ClaimEntry

// ClaimEntries returns the entries in order.
func (l ClaimList) ClaimEntries() []ClaimEntry {
	return l
}

// ValidityWindow carries the optional not-before and expiration
// instants of a token under construction.
type ValidityWindow struct {
	NotBefore *time.Time
	Expires   *time.Time
}

// SigningDescriptor describes a future signature: the codec uses it
// only to populate header parameters, the cryptography happens in an
// external signer.
type SigningDescriptor struct {
	Algorithm      string
	KeyID          string
	CertThumbprint string
}
