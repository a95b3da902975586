package cli

import (
	"fmt"
	"strings"

	"github.com/effective-security/xjwt/jwt"
	"github.com/effective-security/xjwt/x/print"
	"github.com/pkg/errors"
)

// DecodeCmd specifies flags for the decode action
type DecodeCmd struct {
	Token   string `kong:"arg" required:"" help:"compact token, or a file name with @ prefix, or - to read stdin"`
	SkipTyp bool   `help:"optional, skip header type validation"`
	JSON    bool   `help:"optional, print the token as a single JSON document"`
}

// Run the command
func (a *DecodeCmd) Run(ctx *Cli) error {
	compact := a.Token
	if compact == "-" || strings.HasPrefix(compact, "@") {
		name := strings.TrimPrefix(compact, "@")
		if compact == "-" {
			name = "-"
		}
		raw, err := ctx.ReadFile(name)
		if err != nil {
			return errors.WithMessage(err, "unable to load token")
		}
		compact = strings.TrimSpace(string(raw))
	}

	parser := jwt.TokenParser{
		SkipTypeValidation: a.SkipTyp,
	}
	token, err := parser.Parse(compact)
	if err != nil {
		return errors.WithMessage(err, "unable to decode token")
	}

	if a.JSON {
		return ctx.WriteJSON(tokenInfo{
			Algorithm: token.SigningAlgorithm(),
			KeyID:     token.KeyID(),
			Header:    token.Header(),
			Claims:    token.Claims(),
			Signature: token.Signature(),
		})
	}

	print.Token(ctx.Writer(), token)
	fmt.Fprintln(ctx.Writer())
	return nil
}

type tokenInfo struct {
	Algorithm string      `json:"alg"`
	KeyID     string      `json:"kid,omitempty"`
	Header    *jwt.Header `json:"header"`
	Claims    *jwt.Claims `json:"claims"`
	Signature string      `json:"signature,omitempty"`
}
