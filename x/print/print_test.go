package print_test

import (
	"bytes"
	"testing"

	"github.com/effective-security/xjwt/jwt"
	"github.com/effective-security/xjwt/x/print"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJSON(t *testing.T) {
	w := bytes.NewBuffer([]byte{})
	err := print.JSON(w, map[string]string{"a": "b"})
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"a\": \"b\"\n}\n", w.String())

	err = print.JSON(w, func() {})
	assert.Error(t, err)
}

func TestToken(t *testing.T) {
	compact := jwt.EncodeSegment([]byte(`{"alg":"RS256","typ":"JWT","kid":"key-1"}`)) +
		"." + jwt.EncodeSegment([]byte(`{"iss":"issuer.com","exp":1767225600}`)) +
		".c2ln"
	tok, err := jwt.Parse(compact)
	require.NoError(t, err)

	w := bytes.NewBuffer([]byte{})
	print.Token(w, tok)

	out := w.String()
	assert.Contains(t, out, "Algorithm: RS256\n")
	assert.Contains(t, out, "Key ID: key-1\n")
	assert.Contains(t, out, `"iss": "issuer.com"`)
	assert.Contains(t, out, "Signature: c2ln\n")
	assert.Contains(t, out, "Expires: 2026-01-01T00:00:00Z\n")
}
