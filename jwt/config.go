package jwt

import (
	"os"
	"path/filepath"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/effective-security/xjwt/metricskey"
	"gopkg.in/yaml.v3"
)

// LoadClaims returns a claim set loaded from a JSON or YAML file,
// selected by extension. Claim order follows the document.
func LoadClaims(file string) (*Claims, error) {
	raw, err := os.ReadFile(file)
	if err != nil {
		return nil, errors.WithMessage(err, "unable to read file")
	}

	claims := NewClaims()
	if filepath.Ext(file) == ".json" {
		defer metricskey.PerfClaimsLoad.MeasureSince(time.Now(), "json")
		if err = claims.UnmarshalJSON(raw); err != nil {
			return nil, errors.WithMessagef(err, "unable to parse JSON: %q", file)
		}
		return claims, nil
	}

	defer metricskey.PerfClaimsLoad.MeasureSince(time.Now(), "yaml")
	var doc yaml.Node
	if err = yaml.Unmarshal(raw, &doc); err != nil {
		return nil, errors.WithMessagef(err, "unable to parse YAML: %q", file)
	}
	if err = claimsFromYAML(claims, &doc); err != nil {
		return nil, errors.WithMessagef(err, "unable to parse YAML: %q", file)
	}
	return claims, nil
}

// claimsFromYAML walks the document mapping directly, a plain
// yaml.Unmarshal into a map would lose the member order.
func claimsFromYAML(claims *Claims, doc *yaml.Node) error {
	if doc.Kind != yaml.DocumentNode || len(doc.Content) == 0 {
		return errors.New("expected YAML document")
	}
	root := doc.Content[0]
	if root.Kind != yaml.MappingNode {
		return errors.New("expected YAML mapping")
	}

	for i := 0; i+1 < len(root.Content); i += 2 {
		name := root.Content[i].Value
		var val any
		if err := root.Content[i+1].Decode(&val); err != nil {
			return errors.WithStack(err)
		}
		claims.merge(name, val)
	}
	return nil
}
