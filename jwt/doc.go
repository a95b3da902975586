// Package jwt implements the JWT compact-serialization codec: parsing
// a dot-separated, base64url encoded three-part string into a token
// with an ordered header and claim set, and serializing a constructed
// token back to the wire form.
//
// The codec performs no cryptography. The signature segment is carried
// verbatim for an external verifier, and a signing descriptor only
// populates header parameters for an external signer. Parsed tokens
// retain the original segments so the compact string can be echoed
// byte for byte.
//
// All operations are pure and safe for concurrent use, provided the
// returned Header and Claims are treated as immutable.
package jwt
