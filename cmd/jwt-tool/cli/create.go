package cli

import (
	"fmt"
	"time"

	"github.com/effective-security/x/guid"
	"github.com/effective-security/x/values"
	"github.com/effective-security/xjwt/jwt"
	"github.com/pkg/errors"
)

// CreateCmd specifies flags for the create action
type CreateCmd struct {
	Issuer    string        `help:"optional, issuer claim"`
	Audience  string        `help:"optional, audience claim"`
	Claims    string        `help:"optional, JSON or YAML file with claims"`
	Expiry    time.Duration `help:"optional, expiration period, sets the exp claim"`
	NotBefore time.Duration `help:"optional, not-before offset, sets the nbf claim"`
	ID        bool          `help:"optional, generate the jti claim"`

	Alg string `help:"optional, signing algorithm for the header"`
	Kid string `help:"optional, key ID for the header"`
	X5t string `help:"optional, certificate thumbprint for the header"`
}

// Run the command
func (a *CreateCmd) Run(ctx *Cli) error {
	info := jwt.CreateInfo{
		Issuer:   a.Issuer,
		Audience: a.Audience,
	}

	var entries jwt.ClaimList
	if a.Claims != "" {
		claims, err := jwt.LoadClaims(a.Claims)
		if err != nil {
			return errors.WithMessage(err, "unable to load claims")
		}
		for _, name := range claims.Names() {
			for _, val := range claims.Value(name).List() {
				entries = append(entries, jwt.ClaimEntry{
					Name:   name,
					Value:  val,
					Issuer: a.Issuer,
				})
			}
		}
	}
	if a.ID {
		entries = append(entries, jwt.ClaimEntry{
			Name:  jwt.ClaimID,
			Value: guid.MustCreate(),
		})
	}
	info.Claims = entries

	if a.Expiry > 0 || a.NotBefore > 0 {
		now := time.Now().UTC()
		window := &jwt.ValidityWindow{}
		if a.NotBefore > 0 {
			nbf := now.Add(a.NotBefore)
			window.NotBefore = &nbf
		}
		if a.Expiry > 0 {
			exp := now.Add(a.Expiry)
			window.Expires = &exp
		}
		info.Validity = window
	}

	if a.Alg != "" || a.Kid != "" || a.X5t != "" {
		info.Signing = &jwt.SigningDescriptor{
			Algorithm:      values.Select(a.Alg != "", a.Alg, jwt.AlgorithmNone),
			KeyID:          a.Kid,
			CertThumbprint: a.X5t,
		}
	}

	token := jwt.CreateToken(info)
	sstr, err := token.SigningString()
	if err != nil {
		return errors.WithMessage(err, "unable to encode token")
	}

	fmt.Fprintln(ctx.Writer(), sstr)
	return nil
}
