// Package print provides human-readable output of tokens for CLI tools.
package print

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/effective-security/xjwt/jwt"
	"github.com/pkg/errors"
)

var newLine = []byte("\n")

// JSON prints the value to out as indented JSON. encoding/json is used
// directly so that the order-preserving MarshalJSON of Header and
// Claims is honored.
func JSON(out io.Writer, value any) error {
	raw, err := json.MarshalIndent(value, "", "  ")
	if err != nil {
		return errors.WithMessage(err, "failed to encode")
	}

	_, _ = out.Write(raw)
	_, _ = out.Write(newLine)

	return nil
}

// Token outputs the decoded header and claims of a token
func Token(w io.Writer, t *jwt.Token) {
	fmt.Fprintf(w, "Algorithm: %s\n", t.SigningAlgorithm())
	if kid := t.KeyID(); kid != "" {
		fmt.Fprintf(w, "Key ID: %s\n", kid)
	}

	fmt.Fprintln(w, "Header:")
	_ = JSON(w, t.Header())
	fmt.Fprintln(w, "Claims:")
	_ = JSON(w, t.Claims())

	if sig := t.Signature(); sig != "" {
		fmt.Fprintf(w, "Signature: %s\n", sig)
	}
	if exp := t.Expiration(); exp != nil {
		fmt.Fprintf(w, "Expires: %s\n", exp.Format("2006-01-02T15:04:05Z"))
	}
}
