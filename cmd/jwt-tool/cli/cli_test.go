package cli

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/alecthomas/kong"
	"github.com/effective-security/x/ctl"
	"github.com/effective-security/xjwt/jwt"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContext(t *testing.T) {
	var c Cli

	assert.NotNil(t, c.ErrWriter())
	assert.NotNil(t, c.Writer())
	assert.NotNil(t, c.Reader())

	c.WithErrWriter(os.Stderr)
	c.WithReader(os.Stdin)
	c.WithWriter(os.Stdout)

	assert.NotNil(t, c.Context())
	assert.NotNil(t, c.ErrWriter())
	assert.NotNil(t, c.Writer())
	assert.NotNil(t, c.Reader())

	out := bytes.NewBuffer([]byte{})
	c.WithWriter(out)
	err := c.WriteJSON(struct{}{})
	require.NoError(t, err)
	assert.Equal(t, "{}\n", out.String())

	_, err = c.ReadFile("")
	assert.EqualError(t, err, "empty file name")
}

func testToken(t *testing.T) string {
	t.Helper()
	return jwt.EncodeSegment([]byte(`{"alg":"RS256","typ":"JWT"}`)) +
		"." + jwt.EncodeSegment([]byte(`{"iss":"issuer.com","aud":"t1"}`)) +
		".c2ln"
}

func TestDecodeCmd(t *testing.T) {
	out := bytes.NewBuffer([]byte{})
	c := new(Cli).WithWriter(out)

	cmd := DecodeCmd{Token: testToken(t)}
	err := cmd.Run(c)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Algorithm: RS256")
	assert.Contains(t, out.String(), `"iss": "issuer.com"`)

	out.Reset()
	cmd = DecodeCmd{Token: testToken(t), JSON: true}
	err = cmd.Run(c)
	require.NoError(t, err)
	assert.Contains(t, out.String(), `"alg": "RS256"`)
	assert.Contains(t, out.String(), `"signature": "c2ln"`)

	cmd = DecodeCmd{Token: "a.b"}
	err = cmd.Run(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to decode token")
}

func TestDecodeCmdStdin(t *testing.T) {
	out := bytes.NewBuffer([]byte{})
	c := new(Cli).
		WithWriter(out).
		WithReader(strings.NewReader(testToken(t) + "\n"))

	cmd := DecodeCmd{Token: "-"}
	err := cmd.Run(c)
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Algorithm: RS256")
}

func TestCreateCmd(t *testing.T) {
	out := bytes.NewBuffer([]byte{})
	c := new(Cli).WithWriter(out)

	cmd := CreateCmd{
		Issuer:   "issuer.com",
		Audience: "t1",
		Claims:   "testdata/claims.yaml",
		Alg:      "ES256",
		Kid:      "key-1",
		ID:       true,
	}
	err := cmd.Run(c)
	require.NoError(t, err)

	sstr := strings.TrimSpace(out.String())
	tok, err := jwt.Parse(sstr + ".")
	require.NoError(t, err)
	assert.Equal(t, "ES256", tok.SigningAlgorithm())
	assert.Equal(t, "key-1", tok.KeyID())
	assert.Equal(t, "issuer.com", tok.Issuer())
	assert.Equal(t, "t1", tok.Audience())
	assert.Equal(t, "admin", tok.Claims().String("role"))
	assert.NotEmpty(t, tok.ID())

	cmd = CreateCmd{Claims: "testdata/missing.yaml"}
	err = cmd.Run(c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unable to load claims")
}

func TestParseCli(t *testing.T) {
	var cl struct {
		Cli

		Decode DecodeCmd `cmd:""`
		Create CreateCmd `cmd:""`
	}

	p := mustNew(t, &cl)
	ctx, err := p.Parse([]string{"decode", "a.b.c", "--json"})
	require.NoError(t, err)
	require.Equal(t, "decode <token>", ctx.Command())
	assert.True(t, cl.Decode.JSON)
}

func mustNew(t *testing.T, cli any, options ...kong.Option) *kong.Kong {
	t.Helper()
	options = append([]kong.Option{
		kong.Name("test"),
		kong.Exit(func(int) {
			t.Helper()
			t.Fatalf("unexpected exit()")
		}),
		ctl.BoolPtrMapper,
	}, options...)
	parser, err := kong.New(cli, options...)
	require.NoError(t, err)

	return parser
}
